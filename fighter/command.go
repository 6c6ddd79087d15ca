package fighter

import (
	"errors"
	"fmt"

	"github.com/automoto/duelgrounds/config"
)

// Command identifies a discrete action a fighter can be told to perform.
// Commands arrive from key bindings (player) and are either executed
// immediately or buffered while a previous action is still playing out.
type Command int

const (
	CommandJump Command = iota
	CommandAttack1
	CommandAttack2
	CommandSpecial
)

var commandNames = map[Command]string{
	CommandJump:    "jump",
	CommandAttack1: "attack_1",
	CommandAttack2: "attack_2",
	CommandSpecial: "special",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ErrUnknownCommand is returned by ParseCommand for names outside the
// command vocabulary. Unknown input is rejected at this boundary so the
// state machines only ever see valid commands.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand maps a command name to its Command value.
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// TargetState returns the action state the command leads to.
func (c Command) TargetState() config.StateID {
	switch c {
	case CommandJump:
		return config.StateJump
	case CommandAttack1:
		return config.StateAttack1
	case CommandAttack2:
		return config.StateAttack2
	case CommandSpecial:
		return config.StateSpecial
	}
	return config.StateNone
}

// IsActionState reports whether a state is a non-interruptible discrete
// action. Commands issued while one of these is active are buffered
// instead of fired.
func IsActionState(state config.StateID) bool {
	switch state {
	case config.StateJump, config.StateAttack1, config.StateAttack2, config.StateSpecial:
		return true
	}
	return false
}

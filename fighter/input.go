package fighter

import (
	"github.com/automoto/duelgrounds/config"
)

// InputState tracks the held movement keys, the facing direction, and at
// most one pending command for a single fighter. The state machine reads
// it through guards; it never mutates held keys itself.
type InputState struct {
	heldLeft  bool
	heldRight bool
	shiftHeld bool

	// direction is config.DirectionLeft or config.DirectionRight. It is
	// set on movement key presses and keeps its last value after all
	// keys are released, so the sprite never snaps back to a default
	// facing when the player stops.
	direction int

	pendingCommand Command
	hasPending     bool
}

// NewInputState returns an input state facing right with no keys held.
func NewInputState() *InputState {
	return &InputState{direction: config.DirectionRight}
}

func (s *InputState) PressLeft() {
	s.heldLeft = true
	s.updateDirection()
}

func (s *InputState) PressRight() {
	s.heldRight = true
	s.updateDirection()
}

func (s *InputState) ReleaseLeft() {
	s.heldLeft = false
	s.updateDirection()
}

func (s *InputState) ReleaseRight() {
	s.heldRight = false
	s.updateDirection()
}

// SetShift records whether the run modifier is held.
func (s *InputState) SetShift(held bool) {
	s.shiftHeld = held
}

// Right wins when both movement keys are held. Releasing everything
// leaves direction at its last value.
func (s *InputState) updateDirection() {
	switch {
	case s.heldRight:
		s.direction = config.DirectionRight
	case s.heldLeft:
		s.direction = config.DirectionLeft
	}
}

// Moving reports whether any movement key is held.
func (s *InputState) Moving() bool {
	return s.heldLeft || s.heldRight
}

// ShiftHeld reports whether the run modifier is held.
func (s *InputState) ShiftHeld() bool {
	return s.shiftHeld
}

// Direction returns the current facing, config.DirectionLeft or
// config.DirectionRight.
func (s *InputState) Direction() int {
	return s.direction
}

// Forward reports whether the fighter faces right. Running and jumping
// are forward-only moves.
func (s *InputState) Forward() bool {
	return s.direction == config.DirectionRight
}

// SetPendingCommand stores cmd in the single pending slot, replacing any
// command already there.
func (s *InputState) SetPendingCommand(cmd Command) {
	s.pendingCommand = cmd
	s.hasPending = true
}

// PendingCommand returns the pending command without consuming it.
func (s *InputState) PendingCommand() (Command, bool) {
	return s.pendingCommand, s.hasPending
}

// TakePendingCommand consumes and returns the pending command. Action
// states call this on entry so a stale command cannot fire twice.
func (s *InputState) TakePendingCommand() (Command, bool) {
	if !s.hasPending {
		return 0, false
	}
	s.hasPending = false
	return s.pendingCommand, true
}

// DesiredMovementState maps the held keys to the movement state they ask
// for: Run needs shift and forward facing, any other movement is Walk,
// no keys is Idle.
func (s *InputState) DesiredMovementState() config.StateID {
	switch {
	case !s.Moving():
		return config.StateIdle
	case s.shiftHeld && s.Forward():
		return config.StateRun
	default:
		return config.StateWalk
	}
}

package config

// StateID identifies a fighter state for animation and logic.
type StateID int

const (
	StateNone StateID = -1
)

const (
	StateIdle StateID = iota
	StateIdle2
	StateWalk
	StateRun
	StateJump
	StateAttack1
	StateAttack2
	StateSpecial
	StateHurt
	StateDead

	StateCount // Must be last - used for validation and iteration
)

// StateToName maps StateID to the name used in fighter profile files and
// on-screen labels.
var StateToName = map[StateID]string{
	StateIdle:    "Idle",
	StateIdle2:   "Idle_2",
	StateWalk:    "Walk",
	StateRun:     "Run",
	StateJump:    "Jump",
	StateAttack1: "Attack_1",
	StateAttack2: "Attack_2",
	StateSpecial: "Special",
	StateHurt:    "Hurt",
	StateDead:    "Dead",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStateID resolves a profile-file state name back to its StateID.
func ParseStateID(name string) (StateID, bool) {
	for id, n := range StateToName {
		if n == name {
			return id, true
		}
	}
	return StateNone, false
}

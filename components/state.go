package components

import (
	"github.com/automoto/duelgrounds/config"
	"github.com/yohamta/donburi"
)

// StateData mirrors the fighter machine's current state for rendering and
// HUD purposes. The machine is the source of truth; the state system copies
// it here once per tick and tracks how long it has been held.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

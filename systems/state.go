package systems

import (
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates copies each machine's current state into the entity's
// StateData and tracks how long it has been held, for the HUD and debug
// overlay.
func UpdateStates(ecs *ecs.ECS) {
	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		state := components.State.Get(e)

		var current cfg.StateID
		switch {
		case f.Machine != nil:
			current = f.Machine.Current()
		case f.Enemy != nil:
			current = f.Enemy.Current()
		default:
			return
		}

		if current == state.CurrentState {
			state.StateTimer++
			return
		}

		state.PreviousState = state.CurrentState
		state.CurrentState = current
		state.StateTimer = 0
	})
}

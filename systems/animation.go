package systems

import (
	"github.com/automoto/duelgrounds/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every running cycle and fires the per-loop
// completion callback on wrap. The callback goes back into the owning state
// machine, which may swap in a replacement cycle through the driver.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Cycle == nil {
			return
		}
		if !anim.Cycle.Update() {
			return
		}

		// Copy the hook before calling: completion handlers replace the
		// cycle and its callback through the driver.
		if hook := anim.OnComplete; hook != nil {
			hook()
		}
	})
}

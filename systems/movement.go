package systems

import (
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies cycle velocities and entry-offset easing to the
// fighter collision boxes. Stage bounds are solid; a blocked fighter slides
// to contact instead of passing through.
func UpdateMovement(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dx := physics.Velocity.X
		dy := physics.Velocity.Y

		if e.HasComponent(components.Tween) {
			tx, ty := advanceOffsetTween(components.Tween.Get(e))
			dx += tx
			dy += ty
		}

		if dx == 0 && dy == 0 {
			return
		}

		if dx != 0 {
			if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
				if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
					dx = check.ContactWithObject(solids[0]).X()
				}
			}
			obj.X += dx
		}
		if dy != 0 {
			if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
				if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
					dy = check.ContactWithObject(solids[0]).Y()
				}
			}
			obj.Y += dy
		}

		obj.Update()
	})
}

// advanceOffsetTween steps the entry-offset easing one tick and returns the
// delta still owed this frame. Finished tweens are cleared.
func advanceOffsetTween(tween *components.TweenData) (float64, float64) {
	if !tween.Active() {
		return 0, 0
	}

	const dt = 1.0 / float32(cfg.TPS)

	var dx, dy float64
	if tween.X != nil {
		value, finished := tween.X.Update(dt)
		dx = float64(value - tween.PrevX)
		tween.PrevX = value
		if finished {
			tween.X = nil
			tween.PrevX = 0
		}
	}
	if tween.Y != nil {
		value, finished := tween.Y.Update(dt)
		dy = float64(value - tween.PrevY)
		tween.PrevY = value
		if finished {
			tween.Y = nil
			tween.PrevY = 0
		}
	}

	return dx, dy
}

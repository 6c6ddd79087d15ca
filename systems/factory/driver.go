package factory

import (
	"github.com/automoto/duelgrounds/assets/animations"
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EntityDriver adapts an entity's animation, physics, and tween components
// to the fighter.AnimationDriver interface. Machine hooks mutate the entity
// through it; UpdateAnimations advances the cycles and fires loop callbacks.
type EntityDriver struct {
	entry *donburi.Entry
}

func NewEntityDriver(entry *donburi.Entry) *EntityDriver {
	return &EntityDriver{entry: entry}
}

func (d *EntityDriver) StartCycle(req fighter.CycleRequest) {
	anim := components.Animation.Get(d.entry)
	cycle := animations.NewCycle(req.Profile.FrameCount, ticksPerFrame(req.Profile.FPS))
	anim.SetCycle(req.State, cycle, req.Direction, req.Profile.Mirrorable, req.OnComplete, req.Tag)
}

// Cancel stops the loop callback and any motion registered under tag. The
// visual cycle keeps looping until the next StartCycle replaces it.
func (d *EntityDriver) Cancel(tag string) {
	anim := components.Animation.Get(d.entry)
	if anim.Tag == tag {
		anim.OnComplete = nil
	}

	physics := components.Physics.Get(d.entry)
	if physics.Tag == tag {
		physics.Velocity = components.Vector{}
		physics.Tag = ""
	}

	if d.entry.HasComponent(components.Tween) {
		components.Tween.Get(d.entry).Clear()
	}
}

func (d *EntityDriver) ApplyOffset(dx, dy float64) {
	if !d.entry.HasComponent(components.Tween) {
		return
	}
	tween := components.Tween.Get(d.entry)
	tween.Clear()

	duration := float32(cfg.Fighter.OffsetTweenSeconds)
	if dx != 0 {
		tween.X = gween.New(0, float32(dx), duration, ease.OutQuad)
	}
	if dy != 0 {
		tween.Y = gween.New(0, float32(dy), duration, ease.OutQuad)
	}
}

func (d *EntityDriver) ApplyVelocity(vx, vy float64, tag string) {
	physics := components.Physics.Get(d.entry)
	physics.Velocity = components.Vector{X: vx, Y: vy}
	physics.Tag = tag
}

package fighter

import (
	"github.com/automoto/duelgrounds/config"
)

// Cancellation tags. Each fighter owns one tag, so cancelling one
// fighter's cycles can never stop the other's.
const (
	PlayerTag = "player"
	EnemyTag  = "enemy"
)

// CycleRequest asks the animation driver to loop one state's cycle.
type CycleRequest struct {
	// State selects the frame set to play.
	State config.StateID
	// Profile carries the playback rate and cycle length.
	Profile AnimationProfile
	// Direction is the facing snapshot taken on state entry. The cycle
	// keeps this facing even if the input direction changes mid-cycle.
	Direction int
	// OnComplete fires once per finished loop, synchronously from the
	// driver's tick, until the cycle is cancelled. May be nil.
	OnComplete func()
	// Tag scopes the cycle for cancellation.
	Tag string
}

// AnimationDriver plays animation cycles and applies movement effects
// for a single fighter. The state machines only talk to their sprite
// through this interface, which keeps them free of any engine types.
//
// StartCycle replaces the driver's current cycle; the machine cancels
// the old tag first, so drivers may treat StartCycle as exclusive.
// Cancel stops the cycle and any velocity registered under tag and is a
// no-op when nothing runs under that tag.
type AnimationDriver interface {
	StartCycle(req CycleRequest)
	Cancel(tag string)
	// ApplyOffset nudges the fighter once, on state entry.
	ApplyOffset(dx, dy float64)
	// ApplyVelocity moves the fighter every tick until Cancel(tag).
	ApplyVelocity(vx, vy float64, tag string)
}

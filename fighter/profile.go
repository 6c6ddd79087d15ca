package fighter

import (
	"fmt"

	"github.com/automoto/duelgrounds/config"
)

// AnimationProfile describes one state's looping animation cycle and the
// movement side effects that run while the state is active. Profiles are
// loaded from the fighter YAML files in assets/profiles.
type AnimationProfile struct {
	// FPS is the playback rate of the cycle in animation frames per second.
	FPS int
	// FrameCount is the number of frames in one full cycle.
	FrameCount int
	// OffsetX and OffsetY are applied once, on state entry. Jump uses
	// this for its forward lunge.
	OffsetX float64
	OffsetY float64
	// VelX and VelY run continuously until the state's cycle is
	// cancelled. VelX is multiplied by the facing direction.
	VelX float64
	VelY float64
	// Mirrorable marks cycles whose frames may be flipped horizontally
	// when the fighter faces left.
	Mirrorable bool
}

// CycleSeconds returns the duration of one full cycle.
func (p AnimationProfile) CycleSeconds() float64 {
	return float64(p.FrameCount) / float64(p.FPS)
}

// CycleTicks returns the length of one full cycle in engine ticks,
// rounded down. A cycle is never shorter than one tick.
func (p AnimationProfile) CycleTicks(tps int) int {
	ticks := p.FrameCount * tps / p.FPS
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Validate reports whether the profile can drive a cycle at all.
func (p AnimationProfile) Validate() error {
	if p.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", p.FPS)
	}
	if p.FrameCount <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", p.FrameCount)
	}
	return nil
}

// ProfileSet maps every state a fighter can enter to its animation
// profile. A missing profile is a setup error caught by NewMachine and
// NewEnemyMachine before any cycle starts.
type ProfileSet map[config.StateID]AnimationProfile

// Validate checks that every state in required has a well-formed profile.
func (ps ProfileSet) Validate(required []config.StateID) error {
	for _, state := range required {
		profile, ok := ps[state]
		if !ok {
			return fmt.Errorf("missing animation profile for state %s", state)
		}
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("animation profile for state %s: %w", state, err)
		}
	}
	return nil
}

package factory

import (
	"github.com/automoto/duelgrounds/assets"
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds an AnimationData component for one fighter:
// every state in the profile set gets its frame images generated and
// cached up front, so the first entry into a state never stalls on image
// creation. kind is "player" or "enemy" and picks the trim color.
func GenerateAnimations(kind string, profiles fighter.ProfileSet) *components.AnimationData {
	frames := make(map[cfg.StateID][]*ebiten.Image, len(profiles))
	for state, profile := range profiles {
		frames[state] = assets.GetFrames(kind, state, profile.FrameCount)
	}

	return &components.AnimationData{
		Frames:       frames,
		CurrentState: cfg.StateIdle,
		Direction:    cfg.DirectionRight,
	}
}

// ticksPerFrame converts a profile's frames-per-second into the tick
// count one frame is held for at the engine's fixed rate.
func ticksPerFrame(fps int) float32 {
	if fps <= 0 {
		return 1
	}
	return float32(cfg.TPS) / float32(fps)
}

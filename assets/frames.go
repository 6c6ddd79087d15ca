package assets

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/duelgrounds/config"
)

// FrameLoader builds and caches the procedural frame images fighters are
// drawn with. Frames are generated once per state cycle and reused, the
// same way sliced sprite-sheet frames would be.
type FrameLoader struct {
	cache map[string][]*ebiten.Image
}

func NewFrameLoader() *FrameLoader {
	return &FrameLoader{cache: make(map[string][]*ebiten.Image)}
}

var frameLoader = NewFrameLoader()

// GetFrames returns the frame images for one state cycle, generating
// them on first use. kind picks the trim telling the player's figure
// from the enemy's.
func GetFrames(kind string, state config.StateID, frameCount int) []*ebiten.Image {
	return frameLoader.GetFrames(kind, state, frameCount)
}

func (l *FrameLoader) GetFrames(kind string, state config.StateID, frameCount int) []*ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", kind, state, frameCount)
	if frames, ok := l.cache[key]; ok {
		return frames
	}

	trim := config.Fighter.PlayerTrim
	if kind == "enemy" {
		trim = config.Fighter.EnemyTrim
	}

	frames := make([]*ebiten.Image, frameCount)
	for i := range frames {
		frames[i] = drawFrame(state, trim, i, frameCount)
	}
	l.cache[key] = frames

	return frames
}

// drawFrame paints one frame: a state-tinted figure whose limbs swing
// with the frame phase, trim marking the owning fighter, and a progress
// pip along the bottom edge. Frames face right; the renderer mirrors
// them for left-facing fighters.
func drawFrame(state config.StateID, trim color.RGBA, frame, frameCount int) *ebiten.Image {
	w := config.Fighter.FrameWidth
	h := config.Fighter.FrameHeight
	img := ebiten.NewImage(w, h)

	tint, ok := config.StateColors[state]
	if !ok {
		tint = config.White
	}

	phase := 0.0
	if frameCount > 1 {
		phase = math.Sin(2 * math.Pi * float64(frame) / float64(frameCount))
	}
	swing := float32(phase * 10)

	// Legs swing in opposition
	vector.DrawFilledRect(img, 52+swing/2, 88, 10, 40, tint, false)
	vector.DrawFilledRect(img, 66-swing/2, 88, 10, 40, tint, false)
	// Torso
	vector.DrawFilledRect(img, 46, 44, 36, 48, tint, false)
	// Lead arm reaches forward with the swing, rear arm trails
	vector.DrawFilledRect(img, 82, 52, 18+swing, 10, trim, false)
	vector.DrawFilledRect(img, 28-swing, 52, 18, 10, trim, false)
	// Head with trim band
	vector.DrawFilledCircle(img, 64, 30, 14, tint, false)
	vector.DrawFilledRect(img, 50, 20, 28, 6, trim, false)

	if frameCount > 1 {
		pipW := float32(w-16) / float32(frameCount)
		vector.DrawFilledRect(img, 8+pipW*float32(frame), float32(h-6), pipW, 3, config.White, false)
	}

	return img
}

package components

import (
	"github.com/automoto/duelgrounds/assets/animations"
	"github.com/automoto/duelgrounds/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Frames       map[config.StateID][]*ebiten.Image
	Cycle        *animations.Cycle
	CurrentState config.StateID
	Direction    int
	Mirrorable   bool
	OnComplete   func() // Fired once per completed loop until cancelled
	Tag          string
}

// SetCycle swaps in a fresh cycle for state. The caller decides whether a
// swap is wanted; repeated entries into the same state restart the loop.
func (a *AnimationData) SetCycle(state config.StateID, cycle *animations.Cycle, direction int, mirrorable bool, onComplete func(), tag string) {
	a.CurrentState = state
	a.Cycle = cycle
	a.Direction = direction
	a.Mirrorable = mirrorable
	a.OnComplete = onComplete
	a.Tag = tag
}

// CurrentFrame returns the image for the cycle's playhead, or nil when the
// state has no frames loaded.
func (a *AnimationData) CurrentFrame() *ebiten.Image {
	frames := a.Frames[a.CurrentState]
	if a.Cycle == nil || len(frames) == 0 {
		return nil
	}
	return frames[a.Cycle.Frame()%len(frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()

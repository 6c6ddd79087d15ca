package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData eases a state-entry offset over a short window instead of
// teleporting the fighter. PrevX/PrevY hold the portion already applied so
// the movement system only adds the per-tick delta.
type TweenData struct {
	X     *gween.Tween
	Y     *gween.Tween
	PrevX float32
	PrevY float32
}

func (t *TweenData) Active() bool {
	return t.X != nil || t.Y != nil
}

func (t *TweenData) Clear() {
	t.X = nil
	t.Y = nil
	t.PrevX = 0
	t.PrevY = 0
}

var Tween = donburi.NewComponentType[TweenData]()

package components

import "github.com/yohamta/donburi"

// DebugData toggles the diagnostic overlay drawn over the duel.
type DebugData struct {
	ShowOverlay bool
}

var Debug = donburi.NewComponentType[DebugData]()

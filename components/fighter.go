package components

import (
	"github.com/automoto/duelgrounds/fighter"
	"github.com/yohamta/donburi"
)

// FighterData binds an entity to its state machine. Exactly one of Machine
// or Enemy is set depending on which side the entity fights on; Input is
// only present for the player.
type FighterData struct {
	Machine *fighter.Machine
	Enemy   *fighter.EnemyMachine
	Input   *fighter.InputState
}

var Fighter = donburi.NewComponentType[FighterData]()

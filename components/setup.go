package components

import "github.com/yohamta/donburi"

// SetupData stores the duel setup screen state
type SetupData struct {
	// Seed text as typed; empty rolls a seed from the clock at duel start
	SeedText string

	// Stage selection
	StageIndex int
	StageNames []string
}

var Setup = donburi.NewComponentType[SetupData]()

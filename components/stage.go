package components

import (
	"github.com/automoto/duelgrounds/assets"
	"github.com/yohamta/donburi"
)

type StageData struct {
	CurrentStage *assets.Stage
	StageIndex   int
	Stages       []assets.Stage
}

var Stage = donburi.NewComponentType[StageData]()

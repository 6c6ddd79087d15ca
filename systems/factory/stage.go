package factory

import (
	"github.com/automoto/duelgrounds/archetypes"
	"github.com/automoto/duelgrounds/assets"
	"github.com/automoto/duelgrounds/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStage(ecs *ecs.ECS) *donburi.Entry {
	return CreateStageAtIndex(ecs, 0)
}

func CreateStageAtIndex(ecs *ecs.ECS, stageIndex int) *donburi.Entry {
	stage := archetypes.Stage.Spawn(ecs)

	loader := assets.NewStageLoader()
	stages := loader.MustLoadStages()

	// Clamp index to valid range
	if stageIndex < 0 || stageIndex >= len(stages) {
		stageIndex = 0
	}

	stageData := &components.StageData{
		Stages:       stages,
		StageIndex:   stageIndex,
		CurrentStage: &stages[stageIndex],
	}

	components.Stage.Set(stage, stageData)

	return stage
}

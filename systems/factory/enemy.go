package factory

import (
	"math/rand"

	"github.com/automoto/duelgrounds/archetypes"
	"github.com/automoto/duelgrounds/assets"
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
	"github.com/automoto/duelgrounds/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, spawn assets.SpawnPoint, rng *rand.Rand) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newFighterObject(ecs, enemy, spawn)
	obj.AddTags(tags.ResolvEnemy)

	profiles := assets.MustLoadFighterProfiles("enemy")
	components.Animation.SetValue(enemy, *GenerateAnimations("enemy", profiles))
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateNone,
	})

	machine, err := fighter.NewEnemyMachine(NewEntityDriver(enemy), profiles, rng, spawn.Direction)
	if err != nil {
		panic(err)
	}
	components.Fighter.SetValue(enemy, components.FighterData{
		Enemy: machine,
	})
	machine.Start()

	return enemy
}

package archetypes

import (
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Fighter,
		components.Object,
		components.Animation,
		components.Physics,
		components.Tween,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Fighter,
		components.Object,
		components.Animation,
		components.Physics,
		components.Tween,
		components.State,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"math/rand"

	"github.com/automoto/duelgrounds/archetypes"
	"github.com/automoto/duelgrounds/assets"
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
	"github.com/automoto/duelgrounds/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn assets.SpawnPoint, rng *rand.Rand) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newFighterObject(ecs, player, spawn)
	obj.AddTags(tags.ResolvPlayer)

	profiles := assets.MustLoadFighterProfiles("player")
	components.Animation.SetValue(player, *GenerateAnimations("player", profiles))
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateNone,
	})

	input := fighter.NewInputState()
	machine, err := fighter.NewMachine(input, NewEntityDriver(player), profiles, rng)
	if err != nil {
		panic(err)
	}
	components.Fighter.SetValue(player, components.FighterData{
		Machine: machine,
		Input:   input,
	})
	machine.Start()

	return player
}

// newFighterObject builds the resolv collision box for a fighter. Spawn X is
// the box's horizontal center and spawn Y the feet line, so the box hangs up
// and left from the spawn point.
func newFighterObject(ecs *ecs.ECS, entry *donburi.Entry, spawn assets.SpawnPoint) *resolv.Object {
	w := cfg.Fighter.CollisionWidth * cfg.Fighter.Scale
	h := cfg.Fighter.CollisionHeight * cfg.Fighter.Scale

	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obj
}

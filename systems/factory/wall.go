package factory

import (
	"github.com/automoto/duelgrounds/archetypes"
	"github.com/automoto/duelgrounds/assets"
	"github.com/automoto/duelgrounds/components"
	"github.com/automoto/duelgrounds/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

func CreateFloor(ecs *ecs.ECS, floor assets.Floor) *donburi.Entry {
	entry := archetypes.Floor.Spawn(ecs)

	obj := resolv.NewObject(floor.X, floor.Y, floor.Width, floor.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, floor.Width, floor.Height))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}

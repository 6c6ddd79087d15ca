package assets

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/duelgrounds/config"
)

//go:embed all:stages
var stageFS embed.FS

// SpawnPoint places a fighter on the stage. X is the horizontal center of
// the collision box, Y the feet line, Direction the initial facing.
type SpawnPoint struct {
	X         float64
	Y         float64
	Direction int
}

// Floor is the ground strip fighters stand on.
type Floor struct {
	X, Y, Width, Height float64
}

// Stage is one parsed duel arena.
type Stage struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn SpawnPoint
	EnemySpawn  SpawnPoint
	Floor       Floor
}

type StageLoader struct{}

func NewStageLoader() *StageLoader {
	return &StageLoader{}
}

func (l *StageLoader) MustLoadStages() []Stage {
	entries, err := stageFS.ReadDir("stages")
	if err != nil {
		panic(fmt.Sprintf("Failed to read stages directory: %v", err))
	}

	var stages []Stage
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			stagePath := filepath.Join("stages", entry.Name())
			stages = append(stages, l.MustLoadStage(stagePath))
		}
	}

	if len(stages) == 0 {
		panic("No stage files found in assets/stages directory")
	}

	return stages
}

func (l *StageLoader) MustLoadStage(stagePath string) Stage {
	stageMap, err := tiled.LoadFile(stagePath, tiled.WithFileSystem(stageFS))
	if err != nil {
		panic(err)
	}

	stage := Stage{
		Name:   stagePath,
		Width:  stageMap.Width * stageMap.TileWidth,
		Height: stageMap.Height * stageMap.TileHeight,
	}

	havePlayer := false
	haveEnemy := false
	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				stage.PlayerSpawn = spawnFromObject(o, config.DirectionRight)
				havePlayer = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				stage.EnemySpawn = spawnFromObject(o, config.DirectionLeft)
				haveEnemy = true
			}
		case "Floor":
			for _, o := range og.Objects {
				stage.Floor = Floor{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
			}
		}
	}

	// A stage without both spawns cannot host a duel; fail at load, not
	// mid-game.
	if !havePlayer || !haveEnemy {
		panic(fmt.Sprintf("Stage %s is missing a PlayerSpawn or EnemySpawn object group", stagePath))
	}
	if stage.Floor.Width == 0 {
		stage.Floor = Floor{
			X:      0,
			Y:      config.Stage.FloorY,
			Width:  float64(stage.Width),
			Height: float64(stage.Height) - config.Stage.FloorY,
		}
	}

	return stage
}

func spawnFromObject(o *tiled.Object, fallback int) SpawnPoint {
	direction := fallback
	switch o.Properties.GetString("direction") {
	case "left":
		direction = config.DirectionLeft
	case "right":
		direction = config.DirectionRight
	}
	return SpawnPoint{X: o.X, Y: o.Y, Direction: direction}
}

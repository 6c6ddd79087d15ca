package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/systems"
	"github.com/automoto/duelgrounds/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelConfig carries the settings the setup screen hands to a duel.
type DuelConfig struct {
	// Seed drives both machines' weighted rolls. Zero means roll from
	// the clock.
	Seed       int64
	StageIndex int
}

// DuelScene runs the fight: one player-controlled fighter against the
// weighted-random enemy.
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	duelConfig   *DuelConfig
	once         sync.Once
}

// NewDuelScene creates a duel with default configuration. The -seed flag
// still applies so a duel started straight from the menu stays
// reproducible.
func NewDuelScene(sc SceneChanger) *DuelScene {
	return &DuelScene{sceneChanger: sc, duelConfig: nil}
}

// NewDuelSceneWithConfig creates a duel with setup-screen configuration
func NewDuelSceneWithConfig(sc SceneChanger, config *DuelConfig) *DuelScene {
	return &DuelScene{sceneChanger: sc, duelConfig: config}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ds.sceneChanger)
	}

	// Input edges first, then pause so Esc lands before gameplay runs.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(ds.sceneChanger, createMenuScene))
	e.AddSystem(systems.UpdateDebug)

	// Gameplay order: player key edges fire machine events, the animation
	// tick fires completions (chains, resumes, enemy rolls), then the
	// resulting velocities and offsets move the collision boxes, and the
	// state mirror copies machine state out for the HUD.
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateStates))

	e.AddRenderer(cfg.Default, systems.DrawStage)
	e.AddRenderer(cfg.Default, systems.DrawFighters)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ds.ecs = e

	// Create the stage entity FIRST; its dimensions size the collision
	// space everything else registers into.
	stageIndex := 0
	if ds.duelConfig != nil {
		stageIndex = ds.duelConfig.StageIndex
	}
	stageEntry := factory.CreateStageAtIndex(ds.ecs, stageIndex)
	stage := components.Stage.Get(stageEntry).CurrentStage

	factory.CreateSpace(ds.ecs, stage.Width, stage.Height, 16, 16)

	// Arena solids: the floor strip plus side walls so fighters clamp to
	// the stage bounds instead of walking off screen.
	factory.CreateFloor(ds.ecs, stage.Floor)
	factory.CreateWall(ds.ecs, -16, 0, 16, float64(stage.Height))
	factory.CreateWall(ds.ecs, float64(stage.Width), 0, 16, float64(stage.Height))

	// One rng is shared by both machines so a single seed reproduces the
	// whole duel.
	seed := cfg.Debug.Seed
	if ds.duelConfig != nil {
		seed = ds.duelConfig.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	factory.CreatePlayer(ds.ecs, stage.PlayerSpawn, rng)
	factory.CreateEnemy(ds.ecs, stage.EnemySpawn, rng)

	log.Printf("duel started: stage %s, seed %d", stage.Name, seed)
}

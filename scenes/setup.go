package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/duelgrounds/components"
	"github.com/automoto/duelgrounds/systems"
	"github.com/automoto/duelgrounds/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SetupScene displays the duel setup screen using ebitenui
type SetupScene struct {
	sceneChanger SceneChanger
	setupUI      *ui.SetupUI
	setupData    *components.SetupData
	once         sync.Once
	shouldStart  bool
	shouldGoBack bool
}

// NewSetupScene creates a new setup scene
func NewSetupScene(sc SceneChanger) *SetupScene {
	return &SetupScene{sceneChanger: sc}
}

func (ss *SetupScene) Update() {
	ss.once.Do(ss.configure)

	ss.setupUI.Update()

	if ss.shouldStart {
		ss.shouldStart = false
		ss.startDuel()
		return
	}
	if ss.shouldGoBack {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger))
		return
	}
}

func (ss *SetupScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ss.setupUI == nil {
		return
	}
	ss.setupUI.UI.Draw(screen)
}

func (ss *SetupScene) configure() {
	ss.setupData = &components.SetupData{}
	systems.InitSetup(ss.setupData)

	ss.setupUI = ui.NewSetupUI(
		ss.setupData,
		func() { ss.shouldStart = true },
		func() { ss.shouldGoBack = true },
	)
}

// startDuel validates the typed seed and enters the duel with it. Bad
// seed text stays on this screen with a message instead of starting a
// duel the player cannot reproduce.
func (ss *SetupScene) startDuel() {
	seed, err := systems.ParseSeed(ss.setupUI.SeedText())
	if err != nil {
		ss.setupUI.SetStatus(err.Error())
		return
	}

	duelConfig := &DuelConfig{
		Seed:       seed,
		StageIndex: ss.setupData.StageIndex,
	}
	ss.sceneChanger.ChangeScene(NewDuelSceneWithConfig(ss.sceneChanger, duelConfig))
}

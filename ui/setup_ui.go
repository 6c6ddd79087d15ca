package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/duelgrounds/components"
	"github.com/automoto/duelgrounds/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI holds the ebitenui interface for the duel setup screen
type SetupUI struct {
	UI    *ebitenui.UI
	Setup *components.SetupData

	// Callbacks
	OnStartDuel func()
	OnGoBack    func()

	// Widget references for updates
	seedInput   *widget.TextInput
	stageLabel  *widget.Label
	statusLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSetupUI creates a new duel setup UI with ebitenui
func NewSetupUI(setup *components.SetupData, onStartDuel, onGoBack func()) *SetupUI {
	sui := &SetupUI{
		Setup:       setup,
		OnStartDuel: onStartDuel,
		OnGoBack:    onGoBack,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SetupUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DUEL SETUP", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(sui.buildSettingsPanel())
	contentContainer.AddChild(sui.buildControlsPanel())
	contentContainer.AddChild(sui.buildButtonsContainer())

	// Status label for seed parse errors
	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(sui.statusLabel)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildSettingsPanel holds the seed entry and stage selection rows.
func (sui *SetupUI) buildSettingsPanel() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	// Seed row
	seedRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	seedLabel := widget.NewLabel(
		widget.LabelOpts.Text("Seed: ", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	seedRow.AddChild(seedLabel)

	sui.seedInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&sui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("clock"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	seedRow.AddChild(sui.seedInput)

	randomButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Random", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.seedInput.SetText(fmt.Sprintf("%d", systems.RollSeed()))
			sui.SetStatus("")
		}),
	)
	seedRow.AddChild(randomButton)

	panel.AddChild(seedRow)

	seedHint := widget.NewLabel(
		widget.LabelOpts.Text("Same seed replays the same enemy and idle rolls", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	panel.AddChild(seedHint)

	// Stage row
	if len(sui.Setup.StageNames) > 0 {
		stageRow := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		stageTitleLabel := widget.NewLabel(
			widget.LabelOpts.Text("Stage:", &sui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{255, 255, 255, 255},
			}),
		)
		stageRow.AddChild(stageTitleLabel)

		sui.stageLabel = widget.NewLabel(
			widget.LabelOpts.Text(sui.Setup.StageNames[sui.Setup.StageIndex], &sui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{255, 255, 100, 255},
			}),
		)
		stageRow.AddChild(sui.stageLabel)

		stageButton := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
			widget.ButtonOpts.Image(sui.buttonImage()),
			widget.ButtonOpts.Text("Change", &sui.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{200, 200, 200, 255},
				Hover:   color.RGBA{255, 255, 255, 255},
				Pressed: color.RGBA{150, 150, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				systems.CycleStage(sui.Setup)
				sui.UpdateUI()
			}),
		)
		stageRow.AddChild(stageButton)

		panel.AddChild(stageRow)
	}

	return panel
}

// buildControlsPanel lists the current key bindings for reference.
func (sui *SetupUI) buildControlsPanel() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	controlsTitle := widget.NewLabel(
		widget.LabelOpts.Text("CONTROLS", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	panel.AddChild(controlsTitle)

	for _, row := range systems.BindingRows() {
		rowLabel := widget.NewLabel(
			widget.LabelOpts.Text(row, &sui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 180, 255},
			}),
		)
		panel.AddChild(rowLabel)
	}

	return panel
}

func (sui *SetupUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnGoBack != nil {
				sui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(sui.startButtonImage()),
		widget.ButtonOpts.Text("START", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStartDuel != nil {
				sui.OnStartDuel()
			}
		}),
	)
	container.AddChild(startButton)

	return container
}

func (sui *SetupUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SetupUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes labels to reflect the current setup state
func (sui *SetupUI) UpdateUI() {
	if sui.stageLabel != nil && len(sui.Setup.StageNames) > 0 {
		sui.stageLabel.Label = sui.Setup.StageNames[sui.Setup.StageIndex]
	}
}

// SeedText returns the seed as typed, for ParseSeed to interpret.
func (sui *SetupUI) SeedText() string {
	return sui.seedInput.GetText()
}

// SetStatus shows a message under the buttons; empty clears it.
func (sui *SetupUI) SetStatus(msg string) {
	if sui.statusLabel != nil {
		sui.statusLabel.Label = msg
	}
}

// Update processes UI events
func (sui *SetupUI) Update() {
	sui.UI.Update()
}

package systems

import (
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
	"github.com/automoto/duelgrounds/fonts"
	"github.com/automoto/duelgrounds/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudLabelBaseline = 16

// DrawHUD renders each fighter's state label plus, for the player, the
// buffered-command slots under the label.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	labelFont := fonts.Bold.Get()

	if entry, ok := tags.Player.First(ecs.World); ok {
		state := components.State.Get(entry)
		f := components.Fighter.Get(entry)

		label := "P1  " + state.CurrentState.String()
		text.Draw(screen, label, labelFont,
			int(cfg.HUD.Margin), int(cfg.HUD.Margin)+hudLabelBaseline,
			cfg.HUD.TextColor)

		drawBufferSlots(screen, f.Machine)
	}

	if entry, ok := tags.Enemy.First(ecs.World); ok {
		state := components.State.Get(entry)

		label := state.CurrentState.String() + "  CPU"
		textWidth := len(label) * 12 // Approximate width for 20pt font
		x := int(width - cfg.HUD.Margin - float64(textWidth))
		text.Draw(screen, label, labelFont,
			x, int(cfg.HUD.Margin)+hudLabelBaseline,
			cfg.HUD.TextColor)
	}
}

// drawBufferSlots shows the two command slots: filled while a command waits
// behind the playing action, dark when free.
func drawBufferSlots(screen *ebiten.Image, machine *fighter.Machine) {
	buffered := machine.BufferLen()
	y := cfg.HUD.Margin + hudLabelBaseline + cfg.HUD.LabelGap

	for i := 0; i < fighter.BufferCap; i++ {
		x := cfg.HUD.Margin + float64(i)*(cfg.HUD.BufferSlotW+cfg.HUD.BufferSlotGap)

		slotColor := cfg.HUD.SlotEmpty
		if i < buffered {
			slotColor = cfg.HUD.SlotFilled
		}
		vector.DrawFilledRect(screen,
			float32(x), float32(y),
			float32(cfg.HUD.BufferSlotW), float32(cfg.HUD.BufferSlotH),
			slotColor, false)
	}
}

package systems

import (
	"image/color"

	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawStage paints the backdrop and the ground strip the fighters stand on.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Stage.BackgroundColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	floorY := cfg.Stage.FloorY
	if stageEntry, ok := components.Stage.First(ecs.World); ok {
		floorY = components.Stage.Get(stageEntry).CurrentStage.Floor.Y
	}

	vector.DrawFilledRect(screen,
		0, float32(floorY),
		float32(width), float32(height-floorY),
		cfg.Stage.GroundColor, false)

	// Feet line
	vector.DrawFilledRect(screen,
		0, float32(floorY),
		float32(width), 2,
		color.RGBA{R: 60, G: 70, B: 95, A: 255}, false)
}

// DrawFighters renders both fighters from their active animation cycles,
// anchored bottom-center on the collision box so feet stay on the floor
// line regardless of frame size.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		anim := components.Animation.Get(e)

		img := anim.CurrentFrame()
		if img == nil {
			// Fallback to the collision box if no frames are loaded
			vector.DrawFilledRect(screen,
				float32(o.X), float32(o.Y),
				float32(o.W), float32(o.H),
				cfg.LightRed, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box
		drawOp.GeoM.Translate(-float64(cfg.Fighter.FrameWidth)/2, -float64(cfg.Fighter.FrameHeight))
		drawOp.GeoM.Scale(cfg.Fighter.Scale, cfg.Fighter.Scale)

		// Flip the sprite if facing left
		if anim.Mirrorable && anim.Direction == cfg.DirectionLeft {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)

		screen.DrawImage(img, drawOp)
	})
}

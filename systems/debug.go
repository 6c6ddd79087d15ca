package systems

import (
	"fmt"
	"image/color"
	"strings"

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

// UpdateDebug toggles the overlay and services the injure test key.
func UpdateDebug(ecs *ecs.ECS) {
	debug := GetOrCreateDebug(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		debug.ShowOverlay = !debug.ShowOverlay
	}

	// H hurts the player; the machine only honors it from Idle.
	if GetAction(input, cfg.ActionDebugInjure).JustPressed {
		if entry, ok := tags.Player.First(ecs.World); ok {
			components.Fighter.Get(entry).Machine.Injure()
		}
	}
}

// DrawDebug renders collision outlines and machine diagnostics while the
// overlay is toggled on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	debug := GetOrCreateDebug(ecs)
	if !debug.ShowOverlay {
		return
	}

	drawCollisionBoxes(ecs, screen)
	drawMachineDiagnostics(ecs, screen)
}

func drawCollisionBoxes(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{R: 100, G: 100, B: 100, A: 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{R: 0, G: 0, B: 255, A: 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{R: 255, G: 0, B: 0, A: 255} // Red
		}

		x, y := obj.X, obj.Y
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}

func drawMachineDiagnostics(ecs *ecs.ECS, screen *ebiten.Image) {
	smallFont := fonts.Small.Get()
	y := 64

	if entry, ok := tags.Player.First(ecs.World); ok {
		f := components.Fighter.Get(entry)
		state := components.State.Get(entry)

		cmds := make([]string, 0, fighter.BufferCap)
		for _, cmd := range f.Machine.Buffered() {
			cmds = append(cmds, cmd.String())
		}

		facing := "right"
		if f.Input.Direction() == cfg.DirectionLeft {
			facing = "left"
		}

		lines := []string{
			fmt.Sprintf("player: %s (%d ticks)", state.CurrentState, state.StateTimer),
			fmt.Sprintf("facing: %s  moving: %t  shift: %t", facing, f.Input.Moving(), f.Input.ShiftHeld()),
			fmt.Sprintf("buffer: [%s]", strings.Join(cmds, ", ")),
		}
		for i, line := range lines {
			text.Draw(screen, line, smallFont, 10, y+i*14, cfg.White)
		}
		y += len(lines)*14 + 6
	}

	if entry, ok := tags.Enemy.First(ecs.World); ok {
		f := components.Fighter.Get(entry)
		state := components.State.Get(entry)

		line := fmt.Sprintf("enemy: %s  rolls: %d", state.CurrentState, f.Enemy.Rolls())
		text.Draw(screen, line, smallFont, 10, y, cfg.White)
	}
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Debug))
	}

	ent, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(ent)
}

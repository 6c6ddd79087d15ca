package systems

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/duelgrounds/assets"
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InitSetup initializes the duel setup screen with default settings and
// the list of shipped stages.
func InitSetup(setup *components.SetupData) {
	setup.SeedText = ""
	setup.StageIndex = 0

	loader := assets.NewStageLoader()
	for _, stage := range loader.MustLoadStages() {
		setup.StageNames = append(setup.StageNames, StageDisplayName(stage.Name))
	}
}

// StageDisplayName converts a stage path like "stages/duelground.tmx"
// into a readable name.
func StageDisplayName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return "Unknown"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// CycleStage advances to the next available stage
func CycleStage(setup *components.SetupData) {
	if len(setup.StageNames) == 0 {
		return
	}
	setup.StageIndex = (setup.StageIndex + 1) % len(setup.StageNames)
}

// ParseSeed interprets the seed text typed on the setup screen. Empty
// text means no preference, so a seed is rolled from the clock. Anything
// else must be a base-10 integer.
func ParseSeed(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return RollSeed(), nil
	}
	seed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed must be a whole number: %q", trimmed)
	}
	return seed, nil
}

// RollSeed produces a fresh seed from the clock, truncated so it stays
// short enough to read back and retype.
func RollSeed() int64 {
	return time.Now().UnixNano() % 1_000_000_000
}

// bindingRef is one row of the controls reference shown on the setup
// screen.
type bindingRef struct {
	label  string
	action cfg.ActionID
}

var bindingRefs = []bindingRef{
	{"Move", cfg.ActionMoveLeft},
	{"Run (hold)", cfg.ActionRunModifier},
	{"Jump", cfg.ActionJump},
	{"Attack 1", cfg.ActionAttack1},
	{"Attack 2", cfg.ActionAttack2},
	{"Special", cfg.ActionSpecial},
	{"Pause", cfg.ActionPause},
	{"Debug overlay", cfg.ActionDebugOverlay},
}

// BindingRows formats the current key bindings for the setup screen's
// controls reference.
func BindingRows() []string {
	rows := make([]string, 0, len(bindingRefs))
	for _, ref := range bindingRefs {
		keys := append([]ebiten.Key{}, cfg.Input.Bindings[ref.action].Keys...)
		if ref.action == cfg.ActionMoveLeft {
			// Fold the right-hand keys in so movement reads as one row.
			keys = append(keys, cfg.Input.Bindings[cfg.ActionMoveRight].Keys...)
		}
		names := make([]string, 0, len(keys))
		for _, key := range keys {
			names = append(names, key.String())
		}
		rows = append(rows, fmt.Sprintf("%-14s %s", ref.label, strings.Join(names, " / ")))
	}
	return rows
}

package config

import "image/color"

// TPS is the fixed tick rate the engine runs at. Animation speeds are
// converted from frames-per-second to ticks-per-frame against this value.
const TPS = 60

// FighterConfig contains fighter presentation and movement tuning shared by
// the player and the enemy.
type FighterConfig struct {
	// Dimensions of one logical animation frame before scaling
	FrameWidth  int
	FrameHeight int

	// Draw scale applied to every fighter
	Scale float64

	// Collision box (unscaled) used for the resolv object
	CollisionWidth  float64
	CollisionHeight float64

	// Duration over which a state-entry offset is eased in, in seconds
	OffsetTweenSeconds float64

	// Trim colors telling the two fighters apart; the body itself is
	// tinted per state via StateColors
	PlayerTrim color.RGBA
	EnemyTrim  color.RGBA
}

// StageConfig contains fallbacks used when the stage map omits a value
type StageConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	FloorY          float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        float64
	LabelGap      float64
	BufferSlotW   float64
	BufferSlotH   float64
	BufferSlotGap float64
	TextColor     color.RGBA
	SlotEmpty     color.RGBA
	SlotFilled    color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the duel
	Seed     int64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Stage StageConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// StateColors tints the procedural fighter body per state so playback is
// readable without sprite sheets.
var StateColors = map[StateID]color.RGBA{
	StateIdle:    {R: 90, G: 160, B: 220, A: 255},
	StateIdle2:   {R: 120, G: 190, B: 240, A: 255},
	StateWalk:    {R: 90, G: 200, B: 120, A: 255},
	StateRun:     {R: 40, G: 230, B: 90, A: 255},
	StateJump:    {R: 240, G: 220, B: 80, A: 255},
	StateAttack1: {R: 240, G: 130, B: 60, A: 255},
	StateAttack2: {R: 240, G: 90, B: 40, A: 255},
	StateSpecial: {R: 200, G: 80, B: 230, A: 255},
	StateHurt:    {R: 230, G: 60, B: 60, A: 255},
	StateDead:    {R: 110, G: 110, B: 110, A: 255},
}

// Direction constants for fighter facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "Duelgrounds",
	}

	Fighter = FighterConfig{
		FrameWidth:         128,
		FrameHeight:        128,
		Scale:              2.0,
		CollisionWidth:     36,
		CollisionHeight:    100,
		OffsetTweenSeconds: 0.25,
		PlayerTrim:         Orange,
		EnemyTrim:          LightBlue,
	}

	Stage = StageConfig{
		// Dark midnight blue over a near-black ground strip
		BackgroundColor: color.RGBA{R: 0, G: 51, B: 102, A: 255},
		GroundColor:     color.RGBA{R: 25, G: 30, B: 45, A: 255},
		FloorY:          348,
	}

	HUD = HUDConfig{
		Margin:        10,
		LabelGap:      4,
		BufferSlotW:   14,
		BufferSlotH:   14,
		BufferSlotGap: 4,
		TextColor:     White,
		SlotEmpty:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		SlotFilled:    BrightOrange,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            90,
		MenuStartY:        180,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start Duel", "Duel Setup", "Exit"},
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Seed:     0,
	}
}

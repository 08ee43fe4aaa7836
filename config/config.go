package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	// Logical screen size; ebiten scales it to the window.
	Width  int
	Height int
	Title  string
	TPS    int
}

// WorldConfig describes the fixed level bounds
type WorldConfig struct {
	Width  float64
	Height float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width     float64
	Height    float64
	Gravity   float64
	JumpForce float64 // negative is up
	MoveSpeed float64
	Color     color.RGBA
}

// MessageConfig holds the collision messages shown to the player
type MessageConfig struct {
	Wall    string
	Ceiling string
	Ground  string
	Killed  string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
	TitleSize       float64
	ButtonWidth     int
	ButtonHeight    int
	ButtonSpacing   int
	ButtonTextSize  float64
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
	PulseFrames     float32 // length of one title pulse
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	WonTitle        string
	LostTitle       string
	TitleSize       float64
}

// HUDConfig positions the in-game overlay text
type HUDConfig struct {
	X, Y      float64
	TextSize  float64
	TextColor color.RGBA
}

// ToastConfig controls how long a collision message stays on screen
type ToastConfig struct {
	HoldFrames float32
	FadeFrames float32
	Y          float64
	TextSize   float64
	TextColor  color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 1.0 snaps to the target each frame
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	Overlay       bool // Draw player state in the corner
	LegacyRestart bool // Restart resets only the player and counter
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Message MessageConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Toast ToastConfig
var Camera CameraConfig
var Debug DebugConfig

// Render layers, drawn in ascending order
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerDebug
)

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DarkGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Gold      = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	Violet    = color.RGBA{R: 200, G: 122, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 0, G: 82, B: 172, A: 255}
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		Title:  "2D Platformer",
		TPS:    60,
	}

	World = WorldConfig{
		Width:  1920,
		Height: 1080,
	}

	Player = PlayerConfig{
		Width:     40,
		Height:    40,
		Gravity:   0.5,
		JumpForce: -10,
		MoveSpeed: 5,
		Color:     Red,
	}

	Message = MessageConfig{
		Wall:    "You hit a wall!",
		Ceiling: "You hit a ceiling!",
		Ground:  "You hit the ground!",
		Killed:  "You were killed by an enemy!",
	}

	Menu = MenuConfig{
		BackgroundColor: White,
		TitleColor:      Black,
		Title:           "2D Platformer",
		TitleSize:       50,
		ButtonWidth:     200,
		ButtonHeight:    50,
		ButtonSpacing:   20,
		ButtonTextSize:  30,
		ButtonIdle:      LightGray,
		ButtonHover:     Gray,
		ButtonPressed:   DarkGray,
		ButtonText:      Black,
		PulseFrames:     90,
	}

	GameOver = GameOverConfig{
		BackgroundColor: White,
		TitleColor:      Red,
		WonTitle:        "YOU WON!",
		LostTitle:       "GAME OVER",
		TitleSize:       50,
	}

	HUD = HUDConfig{
		X:         20,
		Y:         20,
		TextSize:  30,
		TextColor: Black,
	}

	Toast = ToastConfig{
		HoldFrames: 60,
		FadeFrames: 30,
		Y:          70,
		TextSize:   26,
		TextColor:  DarkBlue,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}

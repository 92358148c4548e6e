package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity is drawn on
const Default ecs.LayerID = 0

// ShipConfig contains all player ship configuration values
type ShipConfig struct {
	// Movement
	Speed   float64
	Padding float64 // Minimum distance kept from the screen edges

	// Combat
	Health       int
	InvulnFrames int
	FireCooldown int // frames between shots while fire is held

	// Dimensions
	Width  float64
	Height float64
}

// EnemyTypeConfig contains configuration for a specific enemy type
type EnemyTypeConfig struct {
	Name   string
	Health int
	Score  int

	// Entry tween
	EntrySeconds float32 // Time to fly from spawn to its target line

	// Strafing once in position
	StrafeSpeed float64

	// Firing
	FireCooldownMin int // frames
	FireCooldownMax int // frames
	LaserSpeed      float64
	LaserDamage     int

	// Dimensions
	Width  float64
	Height float64

	// Visual
	Color color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
	SpawnY      float64 // Y coordinate enemies enter from (above the screen)
}

// LaserConfig contains player laser configuration values
type LaserConfig struct {
	Speed  float64
	Damage int
	Width  float64
	Height float64

	// Off-screen margin after which lasers are removed
	CullMargin float64

	PlayerColor color.RGBA
	EnemyColor  color.RGBA
}

// WaveConfig contains wave progression configuration
type WaveConfig struct {
	DelayFrames int // Pause between the last kill of a wave and the next wave
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	DamageFlashSeconds float32 // Length of the red flash fade on the damaged entity
	HealthBarDuration  int     // frames
}

// ScreenShakeConfig contains screen shake configuration
type ScreenShakeConfig struct {
	PlayerDamageIntensity float64
	PlayerDamageDuration  int
}

// UIConfig contains HUD configuration
type UIConfig struct {
	Margin          float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBG     color.RGBA
	HealthBarFG     color.RGBA
	TextColor       color.RGBA
}

// MenuConfig contains main menu configuration
type MenuConfig struct {
	Title           string
	Options         []string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	OptionSpacing   float64
}

// GameOverConfig contains game over screen configuration
type GameOverConfig struct {
	Title           string
	Options         []string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	ShowOverlay bool // Draw audio registry stats and live one-shot count
	NoPersist   bool // Don't read or write saved settings
}

// Global configuration instances
var C *Config
var Ship ShipConfig
var Enemy EnemyConfig
var Laser LaserConfig
var Wave WaveConfig
var Combat CombatConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Space        = color.RGBA{R: 8, G: 6, B: 24, A: 255}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 576,
		Title:  "Laser Defender",
		TPS:    60,
	}

	Ship = ShipConfig{
		Speed:        3.0,
		Padding:      8.0,
		Health:       100,
		InvulnFrames: 30,
		FireCooldown: 12,
		Width:        20,
		Height:       24,
	}

	Enemy = EnemyConfig{
		DefaultType: "scout",
		SpawnY:      -32,
		Types: map[string]EnemyTypeConfig{
			"scout": {
				Name:            "scout",
				Health:          20,
				Score:           50,
				EntrySeconds:    1.5,
				StrafeSpeed:     0.8,
				FireCooldownMin: 90,
				FireCooldownMax: 180,
				LaserSpeed:      3.5,
				LaserDamage:     10,
				Width:           18,
				Height:          16,
				Color:           LightGreen,
			},
			"gunship": {
				Name:            "gunship",
				Health:          60,
				Score:           150,
				EntrySeconds:    2.5,
				StrafeSpeed:     0.4,
				FireCooldownMin: 45,
				FireCooldownMax: 90,
				LaserSpeed:      4.5,
				LaserDamage:     20,
				Width:           28,
				Height:          22,
				Color:           Orange,
			},
		},
	}

	Laser = LaserConfig{
		Speed:       8.0,
		Damage:      10,
		Width:       3,
		Height:      10,
		CullMargin:  32,
		PlayerColor: LightBlue,
		EnemyColor:  LightRed,
	}

	Wave = WaveConfig{
		DelayFrames: 90,
	}

	Combat = CombatConfig{
		DamageFlashSeconds: 0.25,
		HealthBarDuration:  90,
	}

	ScreenShake = ScreenShakeConfig{
		PlayerDamageIntensity: 4.0,
		PlayerDamageDuration:  12,
	}

	UI = UIConfig{
		Margin:          8,
		HealthBarWidth:  100,
		HealthBarHeight: 8,
		HealthBarBG:     color.RGBA{R: 60, G: 20, B: 20, A: 255},
		HealthBarFG:     Red,
		TextColor:       White,
	}

	Menu = MenuConfig{
		Title:           "LASER DEFENDER",
		Options:         []string{"Start", "SFX Volume", "Mute", "Exit"},
		BackgroundColor: Space,
		TitleColor:      Yellow,
		OptionSpacing:   28,
	}

	GameOver = GameOverConfig{
		Title:           "GAME OVER",
		Options:         []string{"Retry", "Menu"},
		BackgroundColor: BlackOverlay,
		TitleColor:      LightRed,
	}
}

package config

import (
	"image/color"

	"github.com/automoto/gggames/shared/gameconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config contains window and connection values
type Config struct {
	Width  int
	Height int

	ServerAddress string
	PlayerName    string
	Version       string
}

// CameraConfig contains client-side camera smoothing values
type CameraConfig struct {
	FollowSmoothing float64
	// Rig is the boom camera shared with the server settings.
	Rig gameconfig.CameraRig
}

// NetConfig contains client networking values
type NetConfig struct {
	ResendIntervalMs int     // resend held input at least this often
	InterpSpeed      float64 // fraction of a snapshot interval covered per frame at 60 FPS
}

// HUDConfig contains debug overlay values
type HUDConfig struct {
	Visible bool
	Padding int
}

var C *Config
var Camera CameraConfig
var Net NetConfig
var HUD HUDConfig

// Game holds the settings shared with the server. The offline scene builds
// its arena and characters from it.
var Game gameconfig.Settings

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky         = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	Ground      = color.RGBA{R: 70, G: 78, B: 96, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:         1280,
		Height:        720,
		ServerAddress: "localhost:7373",
		PlayerName:    "Player",
	}

	Game = gameconfig.Default()

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		Rig:             Game.Character.Camera,
	}

	Net = NetConfig{
		ResendIntervalMs: 50,
		InterpSpeed:      1.0 / 3.0,
	}

	HUD = HUDConfig{
		Visible: true,
		Padding: 6,
	}
}

// UseSettings replaces the shared game settings, e.g. after loading a
// settings file.
func UseSettings(s gameconfig.Settings) {
	Game = s
	Camera.Rig = s.Character.Camera
}

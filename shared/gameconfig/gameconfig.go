// Package gameconfig holds the settings shared by the server and the offline
// client: server options, character tuning and the arena. Values start from
// Default and are overridden by a YAML file.
package gameconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/leveldata"
	"github.com/automoto/gggames/shared/movement"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Server    ServerSettings          `yaml:"server"`
	Character CharacterSettings       `yaml:"character"`
	Arena     leveldata.CollisionData `yaml:"arena"`
}

type ServerSettings struct {
	Port        uint   `yaml:"port"`
	TickRate    int    `yaml:"tick_rate"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version"` // empty accepts any client
	MetricsAddr string `yaml:"metrics_addr"`
	Watch       bool   `yaml:"watch"` // reload character tuning when the file changes
}

type CharacterSettings struct {
	Action   action.Tuning   `yaml:"action"`
	Movement movement.Params `yaml:"movement"`
	Camera   CameraRig       `yaml:"camera"`
}

// CameraRig is a boom camera looking at the character from the side.
type CameraRig struct {
	ArmLength        float64 `yaml:"arm_length"`
	SocketOffsetX    float64 `yaml:"socket_offset_x"`
	SocketOffsetY    float64 `yaml:"socket_offset_y"` // up is positive
	OrthoWidth       float64 `yaml:"ortho_width"`
	AbsoluteRotation bool    `yaml:"absolute_rotation"`
}

func Default() Settings {
	return Settings{
		Server: ServerSettings{
			Port:        7373,
			TickRate:    20,
			Name:        "GG Games Server",
			MetricsAddr: ":9373",
		},
		Character: CharacterSettings{
			Action:   action.DefaultTuning(),
			Movement: movement.DefaultParams(),
			Camera: CameraRig{
				ArmLength:        500,
				SocketOffsetY:    75,
				OrthoWidth:       2048,
				AbsoluteRotation: true,
			},
		},
		Arena: leveldata.DefaultArena(),
	}
}

// Parse overlays YAML on top of Default. Keys missing from data keep their
// default value.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads path and parses it. A missing file is reported with an error
// that satisfies errors.Is(err, os.ErrNotExist).
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

func (s Settings) Validate() error {
	if s.Server.TickRate <= 0 || s.Server.TickRate > 60 {
		return fmt.Errorf("tick_rate %d out of range 1..60", s.Server.TickRate)
	}
	a := s.Character.Action
	if a.AttackImpulseStrength <= 0 {
		return fmt.Errorf("attack_impulse_strength %g must be positive", a.AttackImpulseStrength)
	}
	if a.DefenceDuration <= 0 {
		return fmt.Errorf("defence_duration %g must be positive", a.DefenceDuration)
	}
	if a.SpeedTolerance < 0 || a.TimeTolerance < 0 {
		return errors.New("action tolerances must not be negative")
	}
	m := s.Character.Movement
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("character size %gx%g must be positive", m.Width, m.Height)
	}
	if s.Character.Camera.OrthoWidth <= 0 {
		return errors.New("camera ortho_width must be positive")
	}
	if err := leveldata.Prepare(&s.Arena); err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	return nil
}

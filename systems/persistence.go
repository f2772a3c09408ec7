package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/gggames/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ServerAddress string `json:"serverAddress"`
	PlayerName    string `json:"playerName"`
	Fullscreen    bool   `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gggames",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings copies saved values into the client config. Empty
// fields keep the defaults.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.ServerAddress != "" {
		cfg.C.ServerAddress = saved.ServerAddress
	}
	if saved.PlayerName != "" {
		cfg.C.PlayerName = saved.PlayerName
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// SaveCurrentSettings stores the client config in use.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		ServerAddress: cfg.C.ServerAddress,
		PlayerName:    cfg.C.PlayerName,
		Fullscreen:    ebiten.IsFullscreen(),
	})
}

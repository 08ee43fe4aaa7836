package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/platformer/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// settingsStore is the subset of *gdata.Manager the settings code uses.
type settingsStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var (
	store    settingsStore
	settings = SavedSettings{ResolutionIndex: cfg.Settings.DefaultResolutionIndex}
)

// InitPersistence opens the gdata store for settings. Without it settings
// still work but are not remembered between runs.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings reads saved settings into memory. Missing data keeps the
// defaults.
func LoadSettings() (SavedSettings, error) {
	if store == nil {
		return settings, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return settings, nil
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return settings, fmt.Errorf("parse saved settings: %w", err)
	}
	if saved.ResolutionIndex < 0 || saved.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		saved.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	settings = saved
	return settings, nil
}

// saveSettings writes the in-memory settings. Failures are logged, not fatal.
func saveSettings() {
	if store == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}

// CurrentSettings returns the settings in effect.
func CurrentSettings() SavedSettings {
	return settings
}

// ApplySettings pushes the in-memory settings to the window.
func ApplySettings() {
	ebiten.SetFullscreen(settings.Fullscreen)
	if !settings.Fullscreen {
		res := cfg.Settings.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// SetFullscreen records and applies the fullscreen preference.
func SetFullscreen(on bool) {
	settings.Fullscreen = on
	ApplySettings()
	saveSettings()
}

// ToggleFullscreen flips fullscreen and reports the new value.
func ToggleFullscreen() bool {
	SetFullscreen(!settings.Fullscreen)
	return settings.Fullscreen
}

// CycleResolution advances to the next window size and returns its label.
func CycleResolution() string {
	settings.ResolutionIndex = nextResolution(settings.ResolutionIndex)
	ApplySettings()
	saveSettings()
	return cfg.Settings.Resolutions[settings.ResolutionIndex].Label
}

// ResolutionLabel names the current window size.
func ResolutionLabel() string {
	return cfg.Settings.Resolutions[settings.ResolutionIndex].Label
}

func nextResolution(i int) int {
	return (i + 1) % len(cfg.Settings.Resolutions)
}

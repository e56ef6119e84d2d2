package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/ronin/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Only settings
// persist; the journey itself always starts over.
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	FlurryDefault bool    `json:"flurryDefault"`
	ShowBoxes     bool    `json:"showBoxes"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ronin",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live values.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:     GetSFXVolume(),
		FlurryDefault: cfg.Debug.FlurryDefault,
		ShowBoxes:     cfg.Debug.ShowBoxes,
	})
}

// ApplySavedSettings applies loaded settings at startup, before any scene
// exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = saved.SFXVolume
	cfg.Debug.FlurryDefault = saved.FlurryDefault
	cfg.Debug.ShowBoxes = saved.ShowBoxes
}

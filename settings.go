package spruce

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user-facing preferences persisted across runs. Particle
// and formation state is deliberately not persisted; the scene regenerates
// from config every start.
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"`
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		SoundVolume:  0.5,
	}
}

// Storage location within the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings through a gdata store. A nil
// gdata manager degrades to in-memory settings: everything works, nothing
// persists.
type SettingsManager struct {
	manager  *gdata.Manager
	settings Settings
}

// NewSettingsManager creates a manager and loads any previously saved
// settings. A load failure is not fatal; defaults are used and the error is
// logged.
func NewSettingsManager(manager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		manager:  manager,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[spruce] settings: load failed, using defaults: %v", err)
	}
	return sm
}

// Load reads settings from the store. With a nil manager or no saved
// settings it resets to defaults and returns nil.
func (sm *SettingsManager) Load() error {
	if sm.manager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.manager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("unmarshal settings: %w", err)
	}

	sm.settings = loaded
	return nil
}

// Save writes the current settings to the store. With a nil manager this is
// a no-op.
func (sm *SettingsManager) Save() error {
	if sm.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := sm.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings value.
func (sm *SettingsManager) Settings() Settings {
	return sm.settings
}

// SetSoundEnabled updates the in-memory setting. Call Save to persist.
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume updates the in-memory setting, clamped to [0, 1].
// Call Save to persist.
func (sm *SettingsManager) SetSoundVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sm.settings.SoundVolume = v
}

package spruce

import "testing"

// All tests run against a nil gdata manager: the degraded in-memory mode.
// The store-backed path is the same code with the manager calls live.

func TestSettingsManagerDefaultsWithoutStore(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", sm.Settings())
	}
}

func TestSettingsManagerSetSoundEnabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	if sm.Settings().SoundEnabled {
		t.Error("sound should be disabled")
	}
}

func TestSettingsManagerVolumeClamped(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(1.8)
	assertNear(t, "over", sm.Settings().SoundVolume, 1)
	sm.SetSoundVolume(-0.3)
	assertNear(t, "under", sm.Settings().SoundVolume, 0)
	sm.SetSoundVolume(0.25)
	assertNear(t, "mid", sm.Settings().SoundVolume, 0.25)
}

func TestSettingsManagerSaveWithoutStoreIsNoOp(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("nil-store save should succeed: %v", err)
	}
}

func TestSettingsManagerLoadWithoutStoreResets(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	if err := sm.Load(); err != nil {
		t.Fatal(err)
	}
	if !sm.Settings().SoundEnabled {
		t.Error("nil-store load should reset to defaults")
	}
}

package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Play(SoundDing) {
		t.Error("Expected Play to report false without initialization")
	}
	sm.StartHum()
	if sm.IsHumming() {
		t.Error("Expected no hum without initialization")
	}
	sm.StopHum()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.StartHum()
	if !sm.IsHumming() {
		t.Error("Expected hum after StartHum")
	}
	sm.StopHum()
	if sm.IsHumming() {
		t.Error("Expected no hum after StopHum")
	}

	sm.Cleanup()
}

// TestSoundManagerMute verifies mute toggling
func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsMuted() {
		t.Fatal("Expected default config to start unmuted")
	}
	if enabled := sm.ToggleMute(); enabled {
		t.Error("Expected ToggleMute to report disabled")
	}
	if !sm.IsMuted() {
		t.Error("Expected muted after toggle")
	}
	if enabled := sm.ToggleMute(); !enabled {
		t.Error("Expected ToggleMute to report enabled")
	}
}

// TestSoundManagerDisabledConfig verifies a disabled config starts muted
func TestSoundManagerDisabledConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false

	sm := NewSoundManager(cfg)
	if !sm.IsMuted() {
		t.Error("Expected disabled config to start muted")
	}
}

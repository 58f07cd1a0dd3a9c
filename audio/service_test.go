package audio

import "testing"

func TestSoundManagerServiceIdentity(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Name() != ServiceName {
		t.Errorf("Expected name %q, got %q", ServiceName, sm.Name())
	}
	if len(sm.Dependencies()) != 0 {
		t.Errorf("Expected no dependencies, got %v", sm.Dependencies())
	}
}

func TestSoundManagerStopWithoutStart(t *testing.T) {
	sm := NewSoundManager(nil)

	// Must not panic or touch the speaker
	if err := sm.Stop(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
	if err := sm.Stop(); err != nil {
		t.Errorf("Second Stop should be a no-op, got %v", err)
	}
}

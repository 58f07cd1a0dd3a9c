package audio

import "testing"

// TestSoundTypeValues verifies sound type constants
func TestSoundTypeValues(t *testing.T) {
	if SoundBeep != 0 {
		t.Errorf("Expected SoundBeep=0, got %d", SoundBeep)
	}
	if SoundDing != 1 {
		t.Errorf("Expected SoundDing=1, got %d", SoundDing)
	}
	if SoundHum != 2 {
		t.Errorf("Expected SoundHum=2, got %d", SoundHum)
	}
	if SoundType(99).String() != "unknown" {
		t.Errorf("Expected unknown name for out-of-range sound")
	}
}

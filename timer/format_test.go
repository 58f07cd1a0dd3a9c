package timer

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "00:00.000"},
		{"single millisecond", 1, "00:00.001"},
		{"sub-second", 999, "00:00.999"},
		{"one second", 1000, "00:01.000"},
		{"default preset", 30000, "00:30.000"},
		{"minute and a half", 90500, "01:30.500"},
		{"last millisecond of a minute", 59999, "00:59.999"},
		{"ten minutes", 600000, "10:00.000"},
		{"one hour stays in minutes", 3600000, "60:00.000"},
		{"three digit minutes", 6000000, "100:00.000"},
		{"truncates not rounds", 1999, "00:01.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.ms); got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

// TestFormatFixedWidth verifies the display width is stable below 100 minutes
func TestFormatFixedWidth(t *testing.T) {
	for ms := int64(0); ms < 100*60000; ms += 7919 {
		if got := Format(ms); len(got) != 9 {
			t.Fatalf("Format(%d) = %q, expected 9 characters", ms, got)
		}
	}
}

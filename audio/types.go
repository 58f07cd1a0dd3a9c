package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBeep SoundType = iota // Accepted button press
	SoundDing                  // Countdown finished
	SoundHum                   // Magnetron running, looped
	soundTypeCount
)

// String returns the config key for the sound
func (s SoundType) String() string {
	switch s {
	case SoundBeep:
		return "beep"
	case SoundDing:
		return "ding"
	case SoundHum:
		return "hum"
	default:
		return "unknown"
	}
}

// ParseSoundType maps a config key back to its sound
func ParseSoundType(name string) (SoundType, bool) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if st.String() == name {
			return st, true
		}
	}
	return 0, false
}

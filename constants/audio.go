package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Ding Sound Timing
const (
	DingSoundDuration           = 1200 * time.Millisecond
	DingSoundAttack             = 5 * time.Millisecond
	DingSoundFundamentalRelease = 1100 * time.Millisecond
	DingSoundOvertoneRelease    = 400 * time.Millisecond
)

// Button Beep Timing
const (
	BeepSoundDuration = 90 * time.Millisecond
	BeepSoundAttack   = 3 * time.Millisecond
	BeepSoundRelease  = 30 * time.Millisecond
	BeepSoundFreq     = 1046.5 // C6
)

// Magnetron Hum
const (
	// HumBaseFreq is the mains hum fundamental
	HumBaseFreq = 60.0

	// HumCycle is the length of one slow amplitude wobble
	HumCycle = 2 * time.Second
)

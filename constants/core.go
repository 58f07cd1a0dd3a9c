package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ConsoleSampleInterval is how often the console front-end samples the countdown
	ConsoleSampleInterval = 50 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Countdown Defaults
const (
	// DefaultDurationMs is the countdown armed at session start
	DefaultDurationMs = 30000
)

// DefaultPresetsMs lists the selectable countdown lengths
var DefaultPresetsMs = []int64{10000, 30000, 60000, 90000, 120000, 300000}

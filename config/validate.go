package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	var errs []error

	if len(c.Timer.PresetsMs) == 0 {
		errs = append(errs, errors.New("timer.presets_ms is empty"))
	}
	seen := make(map[int64]bool, len(c.Timer.PresetsMs))
	for _, p := range c.Timer.PresetsMs {
		if p <= 0 {
			errs = append(errs, fmt.Errorf("timer.presets_ms contains non-positive value %d", p))
		}
		if seen[p] {
			errs = append(errs, fmt.Errorf("timer.presets_ms contains duplicate %d", p))
		}
		seen[p] = true
	}
	if !slices.Contains(c.Timer.PresetsMs, c.Timer.DefaultMs) {
		errs = append(errs, fmt.Errorf("timer.default_ms %d is not one of the presets", c.Timer.DefaultMs))
	}

	if c.Display.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("display.frame_interval must be positive, got %s", c.Display.FrameInterval))
	}
	switch c.Display.Color {
	case ColorAuto, Color256, ColorTrueColor, ColorMono:
	default:
		errs = append(errs, fmt.Errorf("display.color %q is not one of auto, 256, truecolor, mono", c.Display.Color))
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume %g outside [0, 1]", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// SortedPresets returns the presets in ascending order
func (c *Config) SortedPresets() []int64 {
	out := slices.Clone(c.Timer.PresetsMs)
	slices.Sort(out)
	return out
}

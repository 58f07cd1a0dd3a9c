package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names
const (
	EnvDefaultMs     = "MICROWAVE_DEFAULT_MS"
	EnvPresetsMs     = "MICROWAVE_PRESETS_MS"
	EnvFrameInterval = "MICROWAVE_FRAME_INTERVAL"
	EnvColor         = "MICROWAVE_COLOR"
	EnvAudioEnabled  = "MICROWAVE_AUDIO_ENABLED"
	EnvMasterVolume  = "MICROWAVE_MASTER_VOLUME"
	EnvSFXVolumes    = "MICROWAVE_SFX_VOLUMES"
	EnvSampleRate    = "MICROWAVE_SAMPLE_RATE"
	EnvTracePath     = "MICROWAVE_TRACE_PATH"
)

// applyEnv overlays MICROWAVE_* variables, malformed values are errors
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDefaultMs); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDefaultMs, err)
		}
		c.Timer.DefaultMs = ms
	}

	if v := os.Getenv(EnvPresetsMs); v != "" {
		presets, err := parsePresets(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPresetsMs, err)
		}
		c.Timer.PresetsMs = presets
	}

	if v := os.Getenv(EnvFrameInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFrameInterval, err)
		}
		c.Display.FrameInterval = d
	}

	if v := os.Getenv(EnvColor); v != "" {
		c.Display.Color = strings.ToLower(v)
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = enabled
	}

	// Master volume is given as 0-100 and clamped
	if v := os.Getenv(EnvMasterVolume); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(pct)/100.0, 0), 1)
	}

	if v := os.Getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return fmt.Errorf("%s: %w", EnvSFXVolumes, err)
		}
		if c.Audio.Volumes == nil {
			c.Audio.Volumes = make(map[string]float64, len(volumes))
		}
		for name, vol := range volumes {
			c.Audio.Volumes[name] = vol
		}
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSampleRate, err)
		}
		c.Audio.SampleRate = rate
	}

	if v := os.Getenv(EnvTracePath); v != "" {
		c.Trace.Path = v
	}

	return nil
}

// parsePresets reads a comma separated list of millisecond or Go duration values
func parsePresets(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		ms, err := ParseDurationMs(f)
		if err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	return out, nil
}

// ParseDurationMs accepts a bare millisecond count or a Go duration string such as "1m30s"
func ParseDurationMs(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d.Milliseconds(), nil
}

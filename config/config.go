// Package config loads microwave settings from defaults, a YAML file, a .env file and the
// environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/microwave/audio"
	"github.com/lixenwraith/microwave/constants"
	"gopkg.in/yaml.v3"
)

// Color modes accepted by display.color
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
	ColorMono      = "mono"
)

// Config is the root settings document
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Trace   TraceConfig   `yaml:"trace"`
}

// TimerConfig selects the countdown presets
type TimerConfig struct {
	DefaultMs int64   `yaml:"default_ms"`
	PresetsMs []int64 `yaml:"presets_ms"`
}

// DisplayConfig controls the terminal front-end
type DisplayConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Color         string        `yaml:"color"`
}

// AudioConfig mirrors audio.AudioConfig with config-file keys
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"`
}

// TraceConfig enables the CBOR transition trace when Path is set
type TraceConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in settings
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	volumes := make(map[string]float64, len(ac.EffectVolumes))
	for st, v := range ac.EffectVolumes {
		volumes[st.String()] = v
	}

	return &Config{
		Timer: TimerConfig{
			DefaultMs: constants.DefaultDurationMs,
			PresetsMs: slices.Clone(constants.DefaultPresetsMs),
		},
		Display: DisplayConfig{
			FrameInterval: constants.FrameUpdateInterval,
			Color:         ColorAuto,
		},
		Audio: AudioConfig{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
			Volumes:      volumes,
		},
	}
}

// Load builds the effective configuration
// An empty path skips the YAML file; a missing envFile is ignored
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// AudioSettings converts the file keys into the audio package config
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if st, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = v
		}
	}
	return ac
}

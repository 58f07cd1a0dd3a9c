package audio

import "github.com/lixenwraith/microwave/constants"

// AudioConfig holds output and mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundBeep: 0.4,
			SoundDing: 1.0,
			SoundHum:  0.3,
		},
	}
}

// effectiveVolume combines the master and per-effect volume
func (c *AudioConfig) effectiveVolume(st SoundType) float64 {
	vol, ok := c.EffectVolumes[st]
	if !ok {
		vol = 1.0
	}
	return vol * c.MasterVolume
}

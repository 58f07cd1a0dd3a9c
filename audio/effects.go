package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/microwave/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateDingSound generates the end-of-cycle bell
func CreateDingSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := NewOscillator(1318.51, constants.DingSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.DingSoundDuration, constants.DingSoundAttack, constants.DingSoundFundamentalRelease, rate)

	// Inharmonic partial gives the metallic ring
	over := NewOscillator(1318.51*2.76, constants.DingSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.DingSoundDuration, constants.DingSoundAttack, constants.DingSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.75),
		newVolume(overShaped, 0.25),
	)

	return newVolume(mixed, cfg.effectiveVolume(SoundDing))
}

// CreateBeepSound generates the short keypad confirmation tone
func CreateBeepSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, constants.BeepSoundFreq)
	if err != nil {
		// Frequency above Nyquist for this rate, fall back to the raw oscillator
		tone = NewOscillator(constants.BeepSoundFreq, constants.BeepSoundDuration, WaveSquare, rate)
	}
	clipped := beep.Take(rate.N(constants.BeepSoundDuration), tone)
	shaped := NewEnvelope(clipped, constants.BeepSoundDuration, constants.BeepSoundAttack, constants.BeepSoundRelease, rate)

	return newVolume(shaped, cfg.effectiveVolume(SoundBeep))
}

// HumGenerator generates the endless low magnetron drone
type HumGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewHumGenerator creates a hum generator at the given rate
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{
		sr:      sr,
		samples: sr.N(constants.HumCycle),
	}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Slow wobble over one cycle
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		amplitude := 0.12 * (0.8 + 0.2*math.Sin(cyclePos*math.Pi*2))

		// Mains fundamental plus second harmonic
		sample := amplitude * (math.Sin(2*math.Pi*constants.HumBaseFreq*t) +
			0.5*math.Sin(2*math.Pi*constants.HumBaseFreq*2*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// CreateHumSound returns the looping drone scaled to the configured volume
func CreateHumSound(cfg *AudioConfig) beep.Streamer {
	return newVolume(NewHumGenerator(beep.SampleRate(cfg.SampleRate)), cfg.effectiveVolume(SoundHum))
}

// GetSoundEffect returns the streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBeep:
		return CreateBeepSound(cfg)
	case SoundDing:
		return CreateDingSound(cfg)
	case SoundHum:
		return CreateHumSound(cfg)
	default:
		return nil
	}
}

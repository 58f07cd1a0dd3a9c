package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/microwave/constants"
)

// SoundManager manages all appliance audio
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	humStreamer *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager, nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
	}
}

// Initialize sets up the speaker, calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sampleRate := beep.SampleRate(sm.config.SampleRate)
	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.humStreamer != nil {
		speaker.Lock()
		sm.humStreamer.Paused = true
		speaker.Unlock()
		sm.humStreamer = nil
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a one-shot effect, returns false if nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if st == SoundHum {
		return false
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// StartHum starts the looping magnetron drone
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	// If already playing, don't restart
	if sm.humStreamer != nil && !sm.humStreamer.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: CreateHumSound(sm.config), Paused: false}
	sm.humStreamer = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopHum stops the drone
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopHumLocked()
}

func (sm *SoundManager) stopHumLocked() {
	if sm.humStreamer == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
		sm.humStreamer.Paused = true
		speaker.Unlock()
	} else {
		sm.humStreamer.Paused = true
	}
	sm.humStreamer = nil
}

// ToggleMute flips mute, returns true if sound is now enabled
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted {
		sm.stopHumLocked()
	}
	return !sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsHumming reports whether the drone is active
func (sm *SoundManager) IsHumming() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.humStreamer != nil && !sm.humStreamer.Paused
}

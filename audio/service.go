package audio

// ServiceName identifies the audio backend in the service hub
const ServiceName = "audio"

// Name implements service.Service
func (sm *SoundManager) Name() string { return ServiceName }

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string { return nil }

// Start implements service.Service by opening the speaker
func (sm *SoundManager) Start() error { return sm.Initialize() }

// Stop implements service.Service, safe to call more than once
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}

package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when no rate is configured
const DefaultSampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and a mixer that effects are added to
// Safe for concurrent use; the speaker callback runs on its own goroutine
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   DefaultSampleRate,
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
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

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlaySwipe plays the whoosh panned toward the throw direction
func (sm *SoundManager) PlaySwipe(pan float64) {
	sm.play(func() beep.Streamer { return CreateSwipeSound(sm.rate, pan, sm.volume) })
}

// PlaySpringBack plays the soft return tick
func (sm *SoundManager) PlaySpringBack() {
	sm.play(func() beep.Streamer { return CreateSpringSound(sm.rate, sm.volume) })
}

// PlayEmpty plays the chime for the last card leaving the deck
func (sm *SoundManager) PlayEmpty() {
	sm.play(func() beep.Streamer { return CreateEmptySound(sm.rate, sm.volume) })
}

// play builds and mixes a streamer; silently dropped when audio is unavailable
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

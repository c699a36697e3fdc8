package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stardrift/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and plays short synthesized cues for
// simulation events. Audio failure is never fatal; an uninitialized
// manager swallows every call.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent manager; call Initialize to get sound
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvent plays the cue matching one simulation event
func (sm *SoundManager) HandleEvent(ev event.SimEvent) {
	switch ev.Type {
	case event.EventAsteroidDestroyed:
		d := 120 * time.Millisecond
		sm.play(NewFade(NewOscillator(0, d, WaveNoise, sampleRate), d, sampleRate))
	case event.EventUFODestroyed:
		d := 300 * time.Millisecond
		sm.play(NewFade(NewSweep(600, 80, d, sampleRate), d, sampleRate))
	case event.EventUFOSpinout:
		d := 250 * time.Millisecond
		sm.play(NewFade(NewSweep(300, 900, d, sampleRate), d, sampleRate))
	case event.EventShieldHit:
		d := 100 * time.Millisecond
		sm.play(NewFade(NewOscillator(220, d, WaveSquare, sampleRate), d, sampleRate))
	case event.EventShipDestroyed:
		d := 600 * time.Millisecond
		sm.play(NewFade(NewSweep(400, 40, d, sampleRate), d, sampleRate))
	case event.EventAbilityBlast:
		d := 200 * time.Millisecond
		sm.play(NewFade(NewSweep(200, 1200, d, sampleRate), d, sampleRate))
	case event.EventBossSpawned:
		d := 800 * time.Millisecond
		sm.play(NewFade(NewSweep(60, 120, d, sampleRate), d, sampleRate))
	case event.EventLevelStarted:
		d := 150 * time.Millisecond
		sm.play(NewFade(NewOscillator(880, d, WaveSine, sampleRate), d, sampleRate))
	case event.EventGameOver:
		d := 1 * time.Second
		sm.play(NewFade(NewSweep(300, 30, d, sampleRate), d, sampleRate))
	}
}

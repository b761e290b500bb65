package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/fxi/framepusher/config"
	"github.com/fxi/framepusher/constants"
	"github.com/fxi/framepusher/status"
)

// SoundManager plays physics feedback through a single speaker mixer
// Every method is safe to call before Initialize or after Cleanup; they no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastBump    time.Time

	// now is replaceable for rate-limit tests
	now func() time.Time

	statBumps *atomic.Int64
	statState *status.AtomicString
}

// NewSoundManager creates a sound manager; reg may be nil
func NewSoundManager(cfg config.AudioConfig, reg *status.Registry) *SoundManager {
	if reg == nil {
		reg = status.NewRegistry(1)
	}
	sm := &SoundManager{
		cfg:       cfg,
		rate:      beep.SampleRate(cfg.SampleRate),
		mixer:     &beep.Mixer{},
		now:       time.Now,
		statBumps: reg.Ints.Get(status.KeyBumps),
		statState: reg.Strings.Get(status.KeyAudioState),
	}
	sm.statState.Store("off")
	return sm
}

// Initialize sets up the speaker
// Returns ErrDisabled when audio is turned off in config
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.statState.Store(sm.stateLabel())
	return nil
}

// Cleanup stops all sounds and releases the speaker
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
	sm.statState.Store("off")
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	sm.statState.Store(sm.stateLabel())
	return sm.muted
}

// Muted reports whether output is muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayBump plays a push tick for the frame at depth, rate-limited so a
// held drag against a wall does not buzz
// Returns true if a sound was queued
func (sm *SoundManager) PlayBump(depth int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() || !sm.allowBump() {
		return false
	}
	sm.statBumps.Add(1)

	sm.add(CreateBumpSound(sm.rate, depth, sm.cfg.Volume))
	return true
}

// PlayWhoosh plays the release swell
func (sm *SoundManager) PlayWhoosh() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	sm.add(CreateWhooshSound(sm.rate, sm.cfg.Volume))
}

// PlayChime plays the rest chime
func (sm *SoundManager) PlayChime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	s, err := CreateChimeSound(sm.rate, sm.cfg.Volume)
	if err != nil {
		log.Printf("audio: chime: %v", err)
		return
	}
	sm.add(s)
}

// Play dispatches by sound type; depth is only used by SoundBump
func (sm *SoundManager) Play(st SoundType, depth int) {
	switch st {
	case SoundBump:
		sm.PlayBump(depth)
	case SoundWhoosh:
		sm.PlayWhoosh()
	case SoundChime:
		sm.PlayChime()
	}
}

// allowBump must be called with mu held
func (sm *SoundManager) allowBump() bool {
	now := sm.now()
	if now.Sub(sm.lastBump) < constants.MinBumpGap {
		return false
	}
	sm.lastBump = now
	return true
}

// playable must be called with mu held
func (sm *SoundManager) playable() bool {
	return sm.initialized && !sm.muted
}

// add must be called with mu held; the mixer is shared with the speaker goroutine
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) stateLabel() string {
	switch {
	case !sm.initialized:
		return "off"
	case sm.muted:
		return "muted"
	default:
		return "on"
	}
}

package audio

import (
	"errors"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/adrianov/snake-sub002/constants"
)

// Sentinel errors
var (
	ErrAlreadyRunning = errors.New("audio engine already running")
)

// SampleRate is the fixed output rate for the whole audio path
const SampleRate = beep.SampleRate(constants.AudioSampleRate)

// Engine owns the speaker and the master mixer. When the speaker
// cannot initialize it degrades to silent mode and the game continues
// without audio
type Engine struct {
	mixer *beep.Mixer

	masterVolume float64 // Written before Start, read-only after

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewEngine creates an engine with the given master volume
func NewEngine(masterVolume float64) *Engine {
	if masterVolume < 0 {
		masterVolume = 0
	} else if masterVolume > 1 {
		masterVolume = 1
	}
	return &Engine{
		mixer:        &beep.Mixer{},
		masterVolume: masterVolume,
	}
}

// Start initializes the speaker and begins pulling from the mixer.
// Speaker failure is not an error; the engine goes silent instead
func (e *Engine) Start() error {
	if e.running.Load() {
		return ErrAlreadyRunning
	}

	if err := speaker.Init(SampleRate, SampleRate.N(constants.AudioBufferDuration)); err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}

	speaker.Play(e.mixer)
	e.running.Store(true)
	return nil
}

// Stop silences everything and releases the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.silentMode.Load() {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// AddStream attaches a long-lived streamer (music) to the mixer
func (e *Engine) AddStream(s beep.Streamer) {
	if !e.running.Load() || e.silentMode.Load() {
		return
	}
	speaker.Lock()
	e.mixer.Add(newVolume(s, e.masterVolume))
	speaker.Unlock()
}

// PlayEffect queues a finite sound effect
func (e *Engine) PlayEffect(s beep.Streamer) bool {
	if !e.IsEnabled() {
		return false
	}
	speaker.Lock()
	e.mixer.Add(newVolume(s, e.masterVolume))
	speaker.Unlock()
	return true
}

// ToggleMute flips mute, returns true if audio is now audible
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true when running, unmuted and not silent
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// IsRunning returns true if the engine started (even in silent mode)
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// MasterVolume returns the configured master volume
func (e *Engine) MasterVolume() float64 {
	return e.masterVolume
}

// Lock exposes the speaker lock for callers mutating live streamers
func (e *Engine) Lock() {
	if !e.silentMode.Load() {
		speaker.Lock()
	}
}

// Unlock releases the speaker lock
func (e *Engine) Unlock() {
	if !e.silentMode.Load() {
		speaker.Unlock()
	}
}

package audio

import (
	"github.com/gopxl/beep"

	"github.com/adrianov/snake-sub002/constants"
)

// Music manages background tune bookkeeping: which pattern plays,
// day/night selection, and pausing in lockstep with the game
type Music struct {
	engine    *Engine
	sequencer *Sequencer
	ctrl      *beep.Ctrl

	night   bool
	started bool
}

// NewMusic wires a sequencer into the engine behind a pause control
func NewMusic(engine *Engine, bpm int, volume float64) *Music {
	seq := NewSequencer(bpm)
	seq.SetVolume(volume)
	return &Music{
		engine:    engine,
		sequencer: seq,
		ctrl:      &beep.Ctrl{Streamer: seq},
	}
}

// Start attaches the sequencer to the mixer and begins the day theme
func (m *Music) Start() {
	if m.started {
		return
	}
	m.started = true
	m.sequencer.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	m.sequencer.Start()
	m.engine.AddStream(m.ctrl)
}

// Stop halts playback permanently
func (m *Music) Stop() {
	m.sequencer.Stop()
}

// SetNight switches between the day and night themes. The change is
// quantized to the next bar so tunes hand over cleanly
func (m *Music) SetNight(night bool) {
	if night == m.night {
		return
	}
	m.night = night

	id := PatternDayTheme
	root := constants.DefaultRootKey
	if night {
		id = PatternNightTheme
		root = constants.DefaultRootKey - 12
	}
	m.engine.Lock()
	m.sequencer.SetPattern(id, root, true)
	m.engine.Unlock()
}

// IsNight reports the current theme selection
func (m *Music) IsNight() bool {
	return m.night
}

// SetPaused freezes or resumes playback, mirroring the game pause
func (m *Music) SetPaused(paused bool) {
	m.engine.Lock()
	m.ctrl.Paused = paused
	m.engine.Unlock()
}

// SetAudible silences music without losing sequencer position,
// used by the global mute toggle
func (m *Music) SetAudible(audible bool) {
	m.SetPaused(!audible)
}

// Sequencer exposes the underlying sequencer, for tests
func (m *Music) Sequencer() *Sequencer {
	return m.sequencer
}

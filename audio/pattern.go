package audio

import (
	"sync"
)

// PatternID identifies a registered melody pattern
type PatternID int

const (
	PatternSilence PatternID = iota
	PatternDayTheme
	PatternNightTheme
)

// NoteTrigger defines a note event within a pattern
type NoteTrigger struct {
	Step       int
	NoteOffset int // Semitones relative to the root note
	Velocity   float64
	Duration   int // Steps, 0 = one step
}

// MelodyPattern is static melody data: note triggers on a step grid
type MelodyPattern struct {
	ID         PatternID
	Length     int // Steps in pattern
	Instrument InstrumentType
	Notes      []NoteTrigger
}

var (
	melodyPatterns = make(map[PatternID]*MelodyPattern)
	patternMu      sync.RWMutex
)

// RegisterMelodyPattern adds a melody pattern to the registry
func RegisterMelodyPattern(p *MelodyPattern) {
	patternMu.Lock()
	melodyPatterns[p.ID] = p
	patternMu.Unlock()
}

// GetMelodyPattern retrieves a pattern by ID, nil when unknown
func GetMelodyPattern(id PatternID) *MelodyPattern {
	patternMu.RLock()
	defer patternMu.RUnlock()
	return melodyPatterns[id]
}

// InitDefaultPatterns registers the built-in tunes.
// Called at startup before the sequencer starts
func InitDefaultPatterns() {
	// Bouncy major-pentatonic day theme, two bars
	RegisterMelodyPattern(&MelodyPattern{
		ID:         PatternDayTheme,
		Length:     32,
		Instrument: InstrLead,
		Notes: []NoteTrigger{
			{Step: 0, NoteOffset: 12, Velocity: 0.8, Duration: 2},
			{Step: 2, NoteOffset: 16, Velocity: 0.6, Duration: 2},
			{Step: 4, NoteOffset: 19, Velocity: 0.7, Duration: 2},
			{Step: 8, NoteOffset: 16, Velocity: 0.6, Duration: 2},
			{Step: 10, NoteOffset: 14, Velocity: 0.6, Duration: 2},
			{Step: 12, NoteOffset: 12, Velocity: 0.7, Duration: 4},
			{Step: 16, NoteOffset: 9, Velocity: 0.6, Duration: 2},
			{Step: 18, NoteOffset: 12, Velocity: 0.7, Duration: 2},
			{Step: 20, NoteOffset: 14, Velocity: 0.6, Duration: 2},
			{Step: 24, NoteOffset: 16, Velocity: 0.7, Duration: 4},
			{Step: 28, NoteOffset: 12, Velocity: 0.5, Duration: 4},
			// Bass line underneath
			{Step: 0, NoteOffset: -12, Velocity: 0.7, Duration: 4},
			{Step: 8, NoteOffset: -8, Velocity: 0.6, Duration: 4},
			{Step: 16, NoteOffset: -5, Velocity: 0.6, Duration: 4},
			{Step: 24, NoteOffset: -12, Velocity: 0.7, Duration: 4},
		},
	})

	// Slow minor night theme, two bars
	RegisterMelodyPattern(&MelodyPattern{
		ID:         PatternNightTheme,
		Length:     32,
		Instrument: InstrPad,
		Notes: []NoteTrigger{
			{Step: 0, NoteOffset: 0, Velocity: 0.6, Duration: 8},
			{Step: 8, NoteOffset: 3, Velocity: 0.5, Duration: 8},
			{Step: 16, NoteOffset: 7, Velocity: 0.55, Duration: 8},
			{Step: 24, NoteOffset: 3, Velocity: 0.45, Duration: 8},
			// Sparse high answer
			{Step: 4, NoteOffset: 15, Velocity: 0.35, Duration: 4},
			{Step: 20, NoteOffset: 12, Velocity: 0.35, Duration: 4},
		},
	})
}

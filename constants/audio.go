package constants

import "time"

// Audio engine
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Sequencer
const (
	DefaultBPM     = 112
	MinBPM         = 60
	MaxBPM         = 200
	StepsPerBeat   = 4
	StepsPerBar    = 16
	MaxPatternLen  = 64
	MaxPolyphony   = 6
	DefaultRootKey = 57 // A3
)

// SamplesPerStep returns audio samples per sequencer step at a given BPM
func SamplesPerStep(bpm int) int {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	samplesPerBeat := AudioSampleRate * 60 / bpm
	return samplesPerBeat / StepsPerBeat
}

// Eat sound timing
const (
	EatSoundNote1Duration = 70 * time.Millisecond
	EatSoundNote2Duration = 160 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 40 * time.Millisecond
	EatSoundNote2Release  = 120 * time.Millisecond
)

// Turn tick timing
const (
	TurnSoundDuration = 30 * time.Millisecond
	TurnSoundAttack   = 2 * time.Millisecond
	TurnSoundRelease  = 20 * time.Millisecond
)

// Game-over jingle timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverAttack       = 5 * time.Millisecond
	GameOverRelease      = 120 * time.Millisecond
)

package audio

import (
	"math"

	"github.com/adrianov/snake-sub002/constants"
)

// InstrumentType selects the chip voice character
type InstrumentType int

const (
	InstrLead InstrumentType = iota // Square lead
	InstrBass                       // Filtered saw bass
	InstrPad                        // Detuned triangle pad
)

// ADSRState tracks envelope phase
type ADSRState int

const (
	ADSRIdle ADSRState = iota
	ADSRAttack
	ADSRDecay
	ADSRSustain
	ADSRRelease
)

// VoiceParams contains trigger parameters
type VoiceParams struct {
	Note       int     // MIDI note
	Velocity   float64 // 0.0-1.0
	Duration   int     // Samples until auto-release, 0 = sustain
	Instrument InstrumentType
}

// TonalVoice generates one pitched chip sound with an ADSR envelope.
// Voices are pooled by the sequencer and reused via stealing
type TonalVoice struct {
	instrument InstrumentType
	note       int
	freq       float64
	velocity   float64
	phase      float64

	envState    ADSRState
	envLevel    float64
	envPos      int
	attack      int
	decay       int
	sustain     float64
	release     int
	releaseFrom float64

	remaining   int // Samples until auto-release, -1 = none
	filterState float64

	active bool
}

// NewTonalVoice creates an idle voice
func NewTonalVoice() *TonalVoice {
	return &TonalVoice{}
}

// Sample produces the next mono sample, advancing voice state
func (v *TonalVoice) Sample() float64 {
	if !v.active {
		return 0
	}

	var raw float64
	switch v.instrument {
	case InstrBass:
		saw := 2.0*v.phase - 1.0
		// One-pole low-pass that closes as the note decays
		cutoff := 0.25 - 0.15*(1-v.envLevel)
		v.filterState += cutoff * (saw - v.filterState)
		raw = v.filterState
	case InstrPad:
		detune := 0.004
		raw = (waveSample(WaveTriangle, v.phase) +
			waveSample(WaveTriangle, math.Mod(v.phase*(1+detune), 1)) +
			waveSample(WaveTriangle, math.Mod(v.phase*(1-detune)+1, 1))) / 3
	default:
		raw = waveSample(WaveSquare, v.phase)
	}

	v.phase += v.freq / float64(constants.AudioSampleRate)
	if v.phase >= 1.0 {
		v.phase -= 1.0
	}

	if v.remaining > 0 {
		v.remaining--
		if v.remaining == 0 {
			v.Release()
		}
	}

	env := v.processEnvelope()
	if v.envState == ADSRIdle {
		v.active = false
		return 0
	}
	return raw * env * v.velocity
}

func (v *TonalVoice) processEnvelope() float64 {
	switch v.envState {
	case ADSRAttack:
		if v.attack > 0 {
			v.envLevel = float64(v.envPos) / float64(v.attack)
		} else {
			v.envLevel = 1.0
		}
		v.envPos++
		if v.envPos >= v.attack {
			v.envState = ADSRDecay
			v.envPos = 0
		}

	case ADSRDecay:
		if v.decay > 0 {
			t := float64(v.envPos) / float64(v.decay)
			v.envLevel = 1.0 - t*(1.0-v.sustain)
		} else {
			v.envLevel = v.sustain
		}
		v.envPos++
		if v.envPos >= v.decay {
			v.envState = ADSRSustain
		}

	case ADSRSustain:
		v.envLevel = v.sustain
		// Stays here until Release()

	case ADSRRelease:
		if v.release > 0 {
			t := float64(v.envPos) / float64(v.release)
			v.envLevel = v.releaseFrom * (1.0 - t)
		} else {
			v.envLevel = 0
		}
		v.envPos++
		if v.envPos >= v.release || v.envLevel <= 0.001 {
			v.envState = ADSRIdle
			v.envLevel = 0
		}
	}
	return v.envLevel
}

// Trigger starts the voice with instrument-specific ADSR settings
func (v *TonalVoice) Trigger(params VoiceParams) {
	v.instrument = params.Instrument
	v.note = params.Note
	v.freq = NoteFreq(params.Note)
	v.velocity = params.Velocity
	v.phase = 0
	v.filterState = 0

	sr := float64(constants.AudioSampleRate)
	switch params.Instrument {
	case InstrBass:
		v.attack = int(0.005 * sr)
		v.decay = int(0.12 * sr)
		v.sustain = 0.5
		v.release = int(0.08 * sr)
	case InstrPad:
		v.attack = int(0.08 * sr)
		v.decay = int(0.25 * sr)
		v.sustain = 0.6
		v.release = int(0.4 * sr)
	default:
		v.attack = int(0.004 * sr)
		v.decay = int(0.08 * sr)
		v.sustain = 0.45
		v.release = int(0.06 * sr)
	}

	v.remaining = params.Duration
	if v.remaining <= 0 {
		v.remaining = -1
	}

	v.envState = ADSRAttack
	v.envPos = 0
	v.envLevel = 0
	v.active = true
}

// Release moves the envelope into its release phase
func (v *TonalVoice) Release() {
	if v.active && v.envState != ADSRRelease {
		v.releaseFrom = v.envLevel
		v.envState = ADSRRelease
		v.envPos = 0
	}
}

// Reset silences the voice immediately
func (v *TonalVoice) Reset() {
	v.active = false
	v.envState = ADSRIdle
	v.envLevel = 0
}

// Active reports whether the voice is producing sound
func (v *TonalVoice) Active() bool { return v.active }

// Note returns the triggered MIDI note
func (v *TonalVoice) Note() int { return v.note }

// EnvLevel returns the current envelope level, used for voice stealing
func (v *TonalVoice) EnvLevel() float64 { return v.envLevel }

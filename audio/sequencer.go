package audio

import (
	"sync"

	"github.com/adrianov/snake-sub002/constants"
)

// Sequencer plays static melody pattern data on a fixed step grid.
// It implements beep.Streamer; the speaker pulls samples, so all
// mutation happens under the speaker lock via the engine
type Sequencer struct {
	mu sync.Mutex

	bpm            int
	samplesPerStep int

	pattern     *MelodyPattern
	patternID   PatternID
	rootNote    int
	pending     PatternID // Queued quantized switch, PatternSilence = none
	pendingRoot int

	currentStep int
	samplePos   int

	voices [constants.MaxPolyphony]*TonalVoice

	volume  float64
	running bool
}

// NewSequencer creates a sequencer at the given BPM
func NewSequencer(bpm int) *Sequencer {
	s := &Sequencer{volume: 1.0}
	for i := range s.voices {
		s.voices[i] = NewTonalVoice()
	}
	s.SetBPM(bpm)
	return s
}

// SetBPM updates tempo, clamped to the supported range
func (s *Sequencer) SetBPM(bpm int) {
	if bpm < constants.MinBPM {
		bpm = constants.MinBPM
	} else if bpm > constants.MaxBPM {
		bpm = constants.MaxBPM
	}
	s.mu.Lock()
	s.bpm = bpm
	s.samplesPerStep = constants.SamplesPerStep(bpm)
	s.mu.Unlock()
}

// SetVolume sets music volume (0.0-1.0)
func (s *Sequencer) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	s.mu.Lock()
	s.volume = vol
	s.mu.Unlock()
}

// SetPattern switches melody pattern. With quantize, the switch waits
// for the next bar boundary; otherwise it applies immediately
func (s *Sequencer) SetPattern(id PatternID, root int, quantize bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantize && s.running && s.pattern != nil {
		s.pending = id
		s.pendingRoot = root
		return
	}
	s.applyPattern(id, root)
}

// applyPattern installs a pattern; caller holds the lock
func (s *Sequencer) applyPattern(id PatternID, root int) {
	s.patternID = id
	s.rootNote = root
	s.pattern = GetMelodyPattern(id)
	s.pending = PatternSilence
}

// CurrentPattern returns the active pattern ID
func (s *Sequencer) CurrentPattern() PatternID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patternID
}

// Start begins playback, triggering step 0 so the first beat is not lost
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.triggerStep(0)
}

// Stop halts playback and silences all voices
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.currentStep = 0
	s.samplePos = 0
	for _, v := range s.voices {
		v.Reset()
	}
}

// IsRunning reports playback state
func (s *Sequencer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// triggerStep fires note triggers for a step; caller holds the lock
func (s *Sequencer) triggerStep(step int) {
	if s.pattern == nil {
		return
	}
	localStep := step % s.pattern.Length
	for _, trig := range s.pattern.Notes {
		if trig.Step != localStep {
			continue
		}
		dur := trig.Duration
		if dur <= 0 {
			dur = 1
		}
		s.triggerNote(s.rootNote+trig.NoteOffset, trig.Velocity, dur*s.samplesPerStep, s.pattern.Instrument)
	}
}

// triggerNote allocates a voice, stealing the most-decayed one when
// the pool is exhausted; caller holds the lock
func (s *Sequencer) triggerNote(note int, velocity float64, durationSamples int, instr InstrumentType) {
	var voice *TonalVoice
	for _, v := range s.voices {
		if !v.Active() {
			voice = v
			break
		}
	}
	if voice == nil {
		lowest := 2.0
		for _, v := range s.voices {
			if v.EnvLevel() < lowest {
				lowest = v.EnvLevel()
				voice = v
			}
		}
	}
	if voice == nil {
		return
	}
	voice.Trigger(VoiceParams{
		Note:       note,
		Velocity:   velocity,
		Duration:   durationSamples,
		Instrument: instr,
	})
}

// Stream implements beep.Streamer, mixing all voices into the buffer
func (s *Sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range samples {
		if !s.running {
			samples[i][0] = 0
			samples[i][1] = 0
			continue
		}

		if s.samplePos >= s.samplesPerStep {
			s.samplePos = 0
			s.currentStep = (s.currentStep + 1) % constants.MaxPatternLen

			// Quantized pattern switches land on bar boundaries
			if s.currentStep%constants.StepsPerBar == 0 && s.pending != PatternSilence {
				s.applyPattern(s.pending, s.pendingRoot)
			}

			s.triggerStep(s.currentStep)
		}
		s.samplePos++

		var sum float64
		for _, v := range s.voices {
			if v.Active() {
				sum += v.Sample()
			}
		}
		sum *= s.volume * 0.5 // Headroom for polyphony

		samples[i][0] = sum
		samples[i][1] = sum
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (s *Sequencer) Err() error { return nil }

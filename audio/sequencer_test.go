package audio

import (
	"testing"

	"github.com/adrianov/snake-sub002/constants"
)

func TestPatternRegistry(t *testing.T) {
	InitDefaultPatterns()

	day := GetMelodyPattern(PatternDayTheme)
	if day == nil {
		t.Fatal("Expected day theme registered")
	}
	if day.Length != 32 {
		t.Errorf("Expected 32-step day theme, got %d", day.Length)
	}
	if GetMelodyPattern(PatternNightTheme) == nil {
		t.Error("Expected night theme registered")
	}
	if GetMelodyPattern(PatternID(99)) != nil {
		t.Error("Expected nil for unknown pattern")
	}
}

func TestSequencerSilentWhenStopped(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)

	buf := make([][2]float64, 256)
	n, ok := seq.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected full silent buffer, got n=%d ok=%v", n, ok)
	}
	for _, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("Expected silence while stopped")
		}
	}
}

func TestSequencerStartTriggersFirstStep(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	seq.Start()

	active := 0
	for _, v := range seq.voices {
		if v.Active() {
			active++
		}
	}
	// Day theme step 0 has a lead note and a bass note
	if active != 2 {
		t.Errorf("Expected 2 voices triggered at step 0, got %d", active)
	}
}

func TestSequencerProducesAudio(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	seq.Start()

	buf := make([][2]float64, 4096)
	seq.Stream(buf)

	var peak float64
	for _, s := range buf {
		if s[0] > peak {
			peak = s[0]
		} else if -s[0] > peak {
			peak = -s[0]
		}
	}
	if peak == 0 {
		t.Error("Expected audible output from running sequencer")
	}
}

func TestSequencerAdvancesSteps(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	seq.Start()

	spb := constants.SamplesPerStep(constants.DefaultBPM)
	buf := make([][2]float64, spb*3+10)
	seq.Stream(buf)

	if seq.currentStep != 3 {
		t.Errorf("Expected step 3 after three step intervals, got %d", seq.currentStep)
	}
}

func TestSequencerQuantizedSwitchWaitsForBar(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	seq.Start()

	seq.SetPattern(PatternNightTheme, constants.DefaultRootKey-12, true)
	if seq.CurrentPattern() != PatternDayTheme {
		t.Fatal("Expected quantized switch deferred")
	}

	// Stream just short of the first bar boundary
	spb := constants.SamplesPerStep(constants.DefaultBPM)
	buf := make([][2]float64, spb*(constants.StepsPerBar-1))
	seq.Stream(buf)
	if seq.CurrentPattern() != PatternDayTheme {
		t.Fatal("Expected day theme until the bar boundary")
	}

	// Cross the boundary
	buf = make([][2]float64, spb*2)
	seq.Stream(buf)
	if seq.CurrentPattern() != PatternNightTheme {
		t.Error("Expected night theme after the bar boundary")
	}
}

func TestSequencerImmediateSwitch(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	seq.Start()

	seq.SetPattern(PatternNightTheme, constants.DefaultRootKey-12, false)
	if seq.CurrentPattern() != PatternNightTheme {
		t.Error("Expected immediate switch without quantize")
	}
}

func TestSequencerStopSilencesVoices(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)
	seq.SetPattern(PatternDayTheme, constants.DefaultRootKey, false)
	seq.Start()
	seq.Stop()

	if seq.IsRunning() {
		t.Error("Expected sequencer stopped")
	}
	for i, v := range seq.voices {
		if v.Active() {
			t.Errorf("Expected voice %d silenced by stop", i)
		}
	}
}

func TestSequencerBPMClamped(t *testing.T) {
	seq := NewSequencer(10000)
	if seq.bpm != constants.MaxBPM {
		t.Errorf("Expected BPM clamped to %d, got %d", constants.MaxBPM, seq.bpm)
	}
	seq.SetBPM(1)
	if seq.bpm != constants.MinBPM {
		t.Errorf("Expected BPM clamped to %d, got %d", constants.MinBPM, seq.bpm)
	}
}

func TestSequencerVoiceStealing(t *testing.T) {
	InitDefaultPatterns()
	seq := NewSequencer(constants.DefaultBPM)

	seq.mu.Lock()
	for i := 0; i < constants.MaxPolyphony; i++ {
		seq.triggerNote(60+i, 1.0, 0, InstrLead)
	}
	// Pool is full; one more must steal rather than drop
	seq.triggerNote(80, 1.0, 0, InstrLead)
	seq.mu.Unlock()

	found := false
	for _, v := range seq.voices {
		if v.Note() == 80 {
			found = true
		}
	}
	if !found {
		t.Error("Expected the new note to steal a voice from the full pool")
	}
}

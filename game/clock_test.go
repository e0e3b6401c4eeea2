package game

import (
	"testing"
	"time"
)

func TestClockAdvances(t *testing.T) {
	pc := NewPausableClock()
	t1 := pc.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := pc.Now()

	if !t2.After(t1) {
		t.Error("Expected game time to advance while running")
	}
}

func TestClockFreezesDuringPause(t *testing.T) {
	pc := NewPausableClock()
	pc.Pause()

	t1 := pc.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := pc.Now()

	if !t2.Equal(t1) {
		t.Errorf("Expected frozen time during pause, got %v then %v", t1, t2)
	}
}

func TestClockExcludesPausedTime(t *testing.T) {
	pc := NewPausableClock()
	time.Sleep(5 * time.Millisecond)

	pc.Pause()
	time.Sleep(30 * time.Millisecond)
	pc.Resume()

	elapsed := pc.Elapsed()
	if elapsed >= 30*time.Millisecond {
		t.Errorf("Expected elapsed to exclude the 30ms pause, got %v", elapsed)
	}
}

func TestClockPauseIdempotent(t *testing.T) {
	pc := NewPausableClock()
	pc.Pause()
	pc.Pause()
	if !pc.IsPaused() {
		t.Error("Expected clock paused")
	}
	pc.Resume()
	pc.Resume()
	if pc.IsPaused() {
		t.Error("Expected clock running after resume")
	}
}

package game

import (
	"sync"
	"time"
)

// PausableClock provides game time that freezes during pause.
// Scene timers read game time, so pausing freezes the sky as well
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Game time epoch (adjusted for pauses)

	paused          bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock
func NewPausableClock() *PausableClock {
	now := time.Now()
	return &PausableClock{
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		// During pause: frozen time at the pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	realElapsed := time.Since(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Elapsed returns game time elapsed since the clock started
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.gameStartTime)
}

// Pause freezes game time. No-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = time.Now()
}

// Resume unfreezes game time. No-op when not paused
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += time.Since(pc.pauseStartTime)
}

// IsPaused returns the pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

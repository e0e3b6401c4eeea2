package constants

import "time"

// Board dimensions in cells
const (
	DefaultBoardWidth  = 32
	DefaultBoardHeight = 24
)

// Game loop timing
const (
	// FrameUpdateInterval is the render tick (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond
)

// Speed levels gate how many frames pass between snake steps.
// Lower frame count = faster snake
const (
	MinSpeedLevel     = 1
	MaxSpeedLevel     = 9
	DefaultSpeedLevel = 5
)

// StepFramesForSpeed returns frames per snake step for a speed level
func StepFramesForSpeed(level int) int {
	if level < MinSpeedLevel {
		level = MinSpeedLevel
	} else if level > MaxSpeedLevel {
		level = MaxSpeedLevel
	}
	return 13 - level
}

// Gameplay rules
const (
	InitialSnakeLength = 3
	GrowthPerFood      = 2
	ScorePerFood       = 10
)

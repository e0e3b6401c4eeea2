package game

import (
	"math/rand"

	"github.com/adrianov/snake-sub002/constants"
)

// Point is a board cell coordinate
type Point struct {
	X, Y int
}

// Direction is a unit step applied to the head each tick
type Direction Point

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// opposite reports whether d reverses o
func (d Direction) opposite(o Direction) bool {
	return d.X == -o.X && d.Y == -o.Y
}

// State is the full snake simulation state.
// Not safe for concurrent use; the main loop owns it
type State struct {
	width  int
	height int

	snake   []Point // Head first
	dir     Direction
	nextDir Direction
	grow    int

	food Point

	score      int
	highScore  int
	speedLevel int

	paused   bool
	gameOver bool

	rng *rand.Rand
}

// New creates a fresh game on a width×height board
func New(width, height int, seed int64) *State {
	s := &State{
		width:      width,
		height:     height,
		highScore:  0,
		speedLevel: constants.DefaultSpeedLevel,
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset restarts the game, keeping the high score and speed level
func (s *State) Reset() {
	midX, midY := s.width/2, s.height/2
	s.snake = s.snake[:0]
	for i := 0; i < constants.InitialSnakeLength; i++ {
		s.snake = append(s.snake, Point{midX - i, midY})
	}
	s.dir = DirRight
	s.nextDir = DirRight
	s.grow = 0
	s.score = 0
	s.paused = false
	s.gameOver = false
	s.placeFood()
}

// Turn queues a direction change. Reversals are rejected so the snake
// can never fold onto its own neck
func (s *State) Turn(d Direction) bool {
	if d.opposite(s.dir) {
		return false
	}
	s.nextDir = d
	return true
}

// StepResult reports what happened during a step
type StepResult int

const (
	StepMoved StepResult = iota
	StepAte
	StepDied
	StepSkipped // Paused or already over
)

// Step advances the simulation one cell
func (s *State) Step() StepResult {
	if s.paused || s.gameOver {
		return StepSkipped
	}

	s.dir = s.nextDir
	head := s.snake[0]
	newHead := Point{
		X: (head.X + s.dir.X + s.width) % s.width,
		Y: (head.Y + s.dir.Y + s.height) % s.height,
	}

	// Self collision. The tail cell is still fatal when growing, so
	// check before the tail shrinks
	for i, p := range s.snake {
		// Moving into the vacating tail cell is legal when not growing
		if i == len(s.snake)-1 && s.grow == 0 {
			continue
		}
		if p == newHead {
			s.gameOver = true
			if s.score > s.highScore {
				s.highScore = s.score
			}
			return StepDied
		}
	}

	s.snake = append(s.snake, Point{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = newHead

	result := StepMoved
	if newHead == s.food {
		s.grow += constants.GrowthPerFood
		s.score += constants.ScorePerFood
		if s.score > s.highScore {
			s.highScore = s.score
		}
		s.placeFood()
		result = StepAte
	}

	if s.grow > 0 {
		s.grow--
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}
	return result
}

// placeFood picks a uniform free cell, never on the snake
func (s *State) placeFood() {
	free := s.width*s.height - len(s.snake)
	if free <= 0 {
		// Board full; leave food where it is
		return
	}
	for {
		f := Point{s.rng.Intn(s.width), s.rng.Intn(s.height)}
		occupied := false
		for _, p := range s.snake {
			if p == f {
				occupied = true
				break
			}
		}
		if !occupied {
			s.food = f
			return
		}
	}
}

// TogglePause flips the pause flag, returns the new state
func (s *State) TogglePause() bool {
	if s.gameOver {
		return false
	}
	s.paused = !s.paused
	return s.paused
}

// SpeedUp raises the speed level within bounds
func (s *State) SpeedUp() {
	if s.speedLevel < constants.MaxSpeedLevel {
		s.speedLevel++
	}
}

// SpeedDown lowers the speed level within bounds
func (s *State) SpeedDown() {
	if s.speedLevel > constants.MinSpeedLevel {
		s.speedLevel--
	}
}

// Accessors

func (s *State) Width() int      { return s.width }
func (s *State) Height() int     { return s.height }
func (s *State) Score() int      { return s.score }
func (s *State) HighScore() int  { return s.highScore }
func (s *State) SpeedLevel() int { return s.speedLevel }
func (s *State) Paused() bool    { return s.paused }
func (s *State) GameOver() bool  { return s.gameOver }
func (s *State) Food() Point     { return s.food }

// Snapshot is an immutable per-frame copy consumed by the render pipeline
type Snapshot struct {
	Snake      []Point
	Food       Point
	Score      int
	HighScore  int
	SpeedLevel int
	Paused     bool
	GameOver   bool
}

// Snapshot copies the state for rendering. The returned snake slice is
// owned by the caller
func (s *State) Snapshot() Snapshot {
	snake := make([]Point, len(s.snake))
	copy(snake, s.snake)
	return Snapshot{
		Snake:      snake,
		Food:       s.food,
		Score:      s.score,
		HighScore:  s.highScore,
		SpeedLevel: s.speedLevel,
		Paused:     s.paused,
		GameOver:   s.gameOver,
	}
}

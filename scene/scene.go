package scene

import (
	"time"

	"github.com/adrianov/snake-sub002/config"
	"github.com/adrianov/snake-sub002/constants"
	"github.com/adrianov/snake-sub002/game"
	"github.com/adrianov/snake-sub002/render"
)

// Scene owns the animated sky layers and the per-frame derived state
// (darkness level, moon cycle progress, reset transition). It registers
// all renderers in the mandated compositing order:
// background → stars → moon → grid → food → snake → overlay
type Scene struct {
	clock *game.PausableClock

	background *Background
	starfield  *Starfield
	moon       *Moon

	grid    *GridRenderer
	food    *FoodRenderer
	snake   *SnakeRenderer
	overlay *OverlayRenderer

	boardW int
	boardH int

	// Latest game snapshot, swapped in once per frame before rendering
	snap game.Snapshot

	lastFrame time.Time
}

// New wires up all scene layers
func New(cfg *config.Config, clock *game.PausableClock) *Scene {
	s := &Scene{
		clock:      clock,
		boardW:     cfg.BoardWidth,
		boardH:     cfg.BoardHeight,
		background: NewBackground(cfg.DayCycle),
		starfield:  NewStarfield(cfg.StarDensity),
		moon:       NewMoon(cfg.MoonCycle),
	}
	s.grid = NewGridRenderer(s)
	s.food = NewFoodRenderer(s)
	s.snake = NewSnakeRenderer(s)
	s.overlay = NewOverlayRenderer(s)
	return s
}

// RegisterAll adds every layer to the orchestrator in draw order
func (s *Scene) RegisterAll(o *render.Orchestrator) {
	o.Register(s.background, render.PriorityBackground)
	o.Register(s.starfield, render.PriorityStars)
	o.Register(s.moon, render.PriorityMoon)
	o.Register(s.grid, render.PriorityGrid)
	o.Register(s.food, render.PriorityFood)
	o.Register(s.snake, render.PrioritySnake)
	o.Register(s.overlay, render.PriorityOverlay)
}

// SetSnapshot stores the game state consumed by this frame's renderers
func (s *Scene) SetSnapshot(snap game.Snapshot) {
	s.snap = snap
}

// BuildContext derives the frame's render context: darkness from the
// day cycle, moon orbital position and reset-transition alpha from the
// moon cycle, board placement from the screen size
func (s *Scene) BuildContext(screenW, screenH int) render.Context {
	now := s.clock.Now()
	elapsed := s.clock.Elapsed()

	delta := 0.0
	if !s.lastFrame.IsZero() {
		delta = now.Sub(s.lastFrame).Seconds()
	}
	s.lastFrame = now

	ctx := render.Context{
		GameTime:     now,
		DeltaTime:    delta,
		IsPaused:     s.snap.Paused,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		BoardWidth:   0,
		BoardHeight:  0,
	}

	// Center the board, leaving the top row for the HUD
	bw, bh := s.boardW, s.boardH
	ctx.BoardWidth = bw
	ctx.BoardHeight = bh
	ctx.BoardOffsetX = (screenW - bw*render.CellWidth) / 2
	ctx.BoardOffsetY = (screenH-bh)/2 + 1
	if ctx.BoardOffsetX < 0 {
		ctx.BoardOffsetX = 0
	}
	if ctx.BoardOffsetY < 1 {
		ctx.BoardOffsetY = 1
	}

	// Darkness level drives gradient interpolation and the star/moon
	// visibility thresholds
	ctx.Darkness = s.background.Level(elapsed)

	progress, resetAlpha := s.moon.CycleState(elapsed)
	ctx.MoonVisible = ctx.Darkness >= constants.MoonVisibleDarkness
	if ctx.MoonVisible {
		// Moon alpha ramps in past the threshold, scaled by the
		// reset transition
		ramp := (ctx.Darkness - constants.MoonVisibleDarkness) /
			(constants.MaxDarkness - constants.MoonVisibleDarkness)
		if ramp > 1 {
			ramp = 1
		}
		ctx.MoonAlpha = ramp * resetAlpha
		ctx.MoonX, ctx.MoonY = s.moon.OrbitPosition(progress, screenW, screenH)
		ctx.MoonRadiusY = constants.MoonRadiusCells
		ctx.MoonRadiusX = constants.MoonRadiusCells * 2
	}

	return ctx
}

// Snapshot returns the current frame's game state
func (s *Scene) Snapshot() game.Snapshot {
	return s.snap
}

// Moon exposes the moon layer, for phase display and tests
func (s *Scene) Moon() *Moon {
	return s.moon
}

// Background exposes the background layer, for tests
func (s *Scene) Background() *Background {
	return s.background
}

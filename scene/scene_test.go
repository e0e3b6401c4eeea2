package scene

import (
	"testing"
	"time"

	"github.com/adrianov/snake-sub002/config"
	"github.com/adrianov/snake-sub002/constants"
	"github.com/adrianov/snake-sub002/game"
	"github.com/adrianov/snake-sub002/render"
)

func newTestScene() (*Scene, *game.PausableClock) {
	cfg := config.Default()
	clock := game.NewPausableClock()
	return New(cfg, clock), clock
}

func TestBuildContextCentersBoard(t *testing.T) {
	s, _ := newTestScene()

	ctx := s.BuildContext(120, 40)

	if ctx.BoardWidth != constants.DefaultBoardWidth || ctx.BoardHeight != constants.DefaultBoardHeight {
		t.Errorf("Unexpected board dims %dx%d", ctx.BoardWidth, ctx.BoardHeight)
	}
	wantX := (120 - constants.DefaultBoardWidth*render.CellWidth) / 2
	if ctx.BoardOffsetX != wantX {
		t.Errorf("Expected x offset %d, got %d", wantX, ctx.BoardOffsetX)
	}
	if ctx.BoardOffsetY < 1 {
		t.Errorf("Expected board below the HUD row, got y offset %d", ctx.BoardOffsetY)
	}
}

func TestBuildContextMoonHiddenInDaylight(t *testing.T) {
	s, _ := newTestScene()

	// Fresh clock: cycle start, darkness ~0
	ctx := s.BuildContext(120, 40)
	if ctx.Darkness >= constants.MoonVisibleDarkness {
		t.Fatalf("Expected low darkness at cycle start, got %f", ctx.Darkness)
	}
	if ctx.MoonVisible {
		t.Error("Expected moon hidden in daylight")
	}
	if ctx.MoonAlpha != 0 {
		t.Errorf("Expected zero moon alpha in daylight, got %f", ctx.MoonAlpha)
	}
}

func TestBuildContextPausedFlagFollowsSnapshot(t *testing.T) {
	s, _ := newTestScene()

	s.SetSnapshot(game.Snapshot{Paused: true})
	ctx := s.BuildContext(80, 24)
	if !ctx.IsPaused {
		t.Error("Expected paused flag carried into the context")
	}
}

func TestSceneRendersFullPipeline(t *testing.T) {
	s, _ := newTestScene()

	st := game.New(constants.DefaultBoardWidth, constants.DefaultBoardHeight, 7)
	s.SetSnapshot(st.Snapshot())

	buf := render.NewBuffer(120, 40)
	ctx := s.BuildContext(120, 40)

	// Run layers directly in the mandated order; each must not panic
	// and the board must end up composited over the sky
	s.background.Render(ctx, buf)
	s.starfield.Render(ctx, buf)
	s.moon.Render(ctx, buf)
	s.grid.Render(ctx, buf)
	s.food.Render(ctx, buf)
	s.snake.Render(ctx, buf)
	s.overlay.Render(ctx, buf)

	headX, headY := ctx.CellToScreen(st.Snapshot().Snake[0].X, st.Snapshot().Snake[0].Y)
	if buf.Get(headX, headY).Bg != snakeHeadColor {
		t.Error("Expected the snake head composited on top of the lower layers")
	}
}

func TestSceneClockPauseFreezesDarkness(t *testing.T) {
	s, clock := newTestScene()

	clock.Pause()
	a := s.BuildContext(80, 24).Darkness
	time.Sleep(5 * time.Millisecond)
	b := s.BuildContext(80, 24).Darkness

	if a != b {
		t.Errorf("Expected darkness frozen while paused, got %f then %f", a, b)
	}
}

package scene

import (
	"github.com/adrianov/snake-sub002/render"
)

var (
	snakeHeadColor   = render.RGB{R: 110, G: 240, B: 140}
	snakeBodyBright  = render.RGB{R: 70, G: 200, B: 110}
	snakeEyeColor    = render.RGB{R: 20, G: 40, B: 24}
	snakeDeadColor   = render.RGB{R: 150, G: 150, B: 150}
	snakeTailDarken  = 0.55 // Fraction of brightness lost by the tail end
	snakeBodyMaxTail = 255
)

// SnakeRenderer draws the snake with a longitudinal brightness
// gradient: bright behind the head, darkening toward the tail.
// Colors come from a precomputed LUT indexed by tail fraction
type SnakeRenderer struct {
	scene *Scene

	bodyColorLUT [256]render.RGB
	deadColorLUT [256]render.RGB
}

func NewSnakeRenderer(s *Scene) *SnakeRenderer {
	r := &SnakeRenderer{scene: s}
	r.buildBodyColorLUT()
	return r
}

func (r *SnakeRenderer) buildBodyColorLUT() {
	for i := 0; i <= snakeBodyMaxTail; i++ {
		t := float64(i) / float64(snakeBodyMaxTail)
		factor := 1.0 - t*snakeTailDarken
		r.bodyColorLUT[i] = render.Scale(snakeBodyBright, factor)
		r.deadColorLUT[i] = render.Scale(snakeDeadColor, factor)
	}
}

func (r *SnakeRenderer) Render(ctx render.Context, buf *render.Buffer) {
	snap := r.scene.Snapshot()
	if len(snap.Snake) == 0 {
		return
	}

	lut := &r.bodyColorLUT
	head := snakeHeadColor
	if snap.GameOver {
		lut = &r.deadColorLUT
		head = snakeDeadColor
	}

	// Body first so the head wins self-overlap at the neck
	n := len(snap.Snake)
	for i := n - 1; i >= 1; i-- {
		t := 0.0
		if n > 1 {
			t = float64(i-1) / float64(n-1)
		}
		c := lut[int(t*float64(snakeBodyMaxTail))]
		sx, sy := ctx.CellToScreen(snap.Snake[i].X, snap.Snake[i].Y)
		for dx := 0; dx < render.CellWidth; dx++ {
			buf.SetBg(sx+dx, sy, c)
		}
	}

	sx, sy := ctx.CellToScreen(snap.Snake[0].X, snap.Snake[0].Y)
	for dx := 0; dx < render.CellWidth; dx++ {
		buf.SetBg(sx+dx, sy, head)
	}
	buf.SetRuneBold(sx, sy, 'o', snakeEyeColor)
	buf.SetRuneBold(sx+1, sy, 'o', snakeEyeColor)
}

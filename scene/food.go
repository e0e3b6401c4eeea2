package scene

import (
	"math"

	"github.com/adrianov/snake-sub002/render"
)

var (
	foodColor     = render.RGB{R: 226, G: 70, B: 70}
	foodHighlight = render.RGB{R: 255, G: 180, B: 120}
)

// FoodRenderer draws the food cell with a slow pulse
type FoodRenderer struct {
	scene *Scene
}

func NewFoodRenderer(s *Scene) *FoodRenderer {
	return &FoodRenderer{scene: s}
}

func (f *FoodRenderer) Render(ctx render.Context, buf *render.Buffer) {
	snap := f.scene.Snapshot()
	if len(snap.Snake) == 0 {
		return
	}

	t := float64(ctx.GameTime.UnixMilli()) / 1000.0
	pulse := 0.85 + 0.15*math.Sin(t*3)
	c := render.Scale(foodColor, pulse)

	sx, sy := ctx.CellToScreen(snap.Food.X, snap.Food.Y)
	for dx := 0; dx < render.CellWidth; dx++ {
		buf.SetBg(sx+dx, sy, c)
	}
	buf.SetRune(sx, sy, '(', foodHighlight)
	buf.SetRune(sx+1, sy, ')', foodHighlight)
}

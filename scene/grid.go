package scene

import (
	"github.com/adrianov/snake-sub002/render"
)

var (
	gridTintLight = render.RGB{R: 255, G: 255, B: 255}
	gridTintDark  = render.RGB{R: 0, G: 0, B: 0}
	gridBorder    = render.RGB{R: 120, G: 130, B: 150}
)

// GridRenderer draws the board area: a checkerboard tint over the sky
// and a thin border. The tint fades as darkness rises so the night sky
// stays visible through the board
type GridRenderer struct {
	scene *Scene
}

func NewGridRenderer(s *Scene) *GridRenderer {
	return &GridRenderer{scene: s}
}

func (g *GridRenderer) Render(ctx render.Context, buf *render.Buffer) {
	// Stronger tint in daylight, subtle at night
	tintAlpha := 0.10 - 0.06*(ctx.Darkness/100)

	for cy := 0; cy < ctx.BoardHeight; cy++ {
		for cx := 0; cx < ctx.BoardWidth; cx++ {
			sx, sy := ctx.CellToScreen(cx, cy)
			tint := gridTintDark
			if (cx+cy)%2 == 0 {
				tint = gridTintLight
			}
			for dx := 0; dx < render.CellWidth; dx++ {
				buf.BlendBg(sx+dx, sy, tint, tintAlpha)
			}
		}
	}

	// Border box one cell outside the board
	left := ctx.BoardOffsetX - 1
	right := ctx.BoardOffsetX + ctx.BoardWidth*render.CellWidth
	top := ctx.BoardOffsetY - 1
	bottom := ctx.BoardOffsetY + ctx.BoardHeight

	for x := left; x <= right; x++ {
		buf.SetRune(x, top, '─', gridBorder)
		buf.SetRune(x, bottom, '─', gridBorder)
	}
	for y := top + 1; y < bottom; y++ {
		buf.SetRune(left, y, '│', gridBorder)
		buf.SetRune(right, y, '│', gridBorder)
	}
	buf.SetRune(left, top, '┌', gridBorder)
	buf.SetRune(right, top, '┐', gridBorder)
	buf.SetRune(left, bottom, '└', gridBorder)
	buf.SetRune(right, bottom, '┘', gridBorder)
}

package scene

import (
	"fmt"

	"github.com/adrianov/snake-sub002/render"
)

var (
	hudText    = render.RGB{R: 235, G: 235, B: 235}
	hudShadow  = render.RGB{R: 10, G: 12, B: 20}
	overlayBg  = render.RGB{R: 14, G: 16, B: 28}
	overlayFg  = render.RGB{R: 240, G: 240, B: 240}
	overlayDim = render.RGB{R: 170, G: 175, B: 190}
)

// moonPhaseGlyphs indexes phase fraction octants, new moon first
var moonPhaseGlyphs = []rune{'🌑', '🌒', '🌓', '🌔', '🌕', '🌖', '🌗', '🌘'}

// OverlayRenderer draws the HUD status line and the modal pause /
// game-over overlays. Renders last so it sits above every scene layer
type OverlayRenderer struct {
	scene *Scene
}

func NewOverlayRenderer(s *Scene) *OverlayRenderer {
	return &OverlayRenderer{scene: s}
}

func (o *OverlayRenderer) Render(ctx render.Context, buf *render.Buffer) {
	snap := o.scene.Snapshot()

	phase := o.scene.Moon().Phase()
	glyph := moonPhaseGlyphs[int(phase*8)%8]

	hud := fmt.Sprintf(" Score %d  High %d  Speed %d  %c ",
		snap.Score, snap.HighScore, snap.SpeedLevel, glyph)
	for i, r := range []rune(hud) {
		buf.BlendBg(i, 0, hudShadow, 0.6)
		buf.SetRune(i, 0, r, hudText)
	}

	switch {
	case snap.GameOver:
		o.drawModal(ctx, buf, "GAME OVER", fmt.Sprintf("Score %d, press R to restart, Q to quit", snap.Score))
	case snap.Paused:
		o.drawModal(ctx, buf, "PAUSED", "press P to resume")
	}
}

// drawModal centers a two-line dialog over a dimmed box
func (o *OverlayRenderer) drawModal(ctx render.Context, buf *render.Buffer, title, body string) {
	w := len([]rune(body)) + 6
	if tw := len([]rune(title)) + 6; tw > w {
		w = tw
	}
	h := 5
	x0 := (ctx.ScreenWidth - w) / 2
	y0 := (ctx.ScreenHeight - h) / 2

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			buf.BlendBg(x, y, overlayBg, 0.85)
		}
	}

	titleX := x0 + (w-len([]rune(title)))/2
	bodyX := x0 + (w-len([]rune(body)))/2
	for i, r := range []rune(title) {
		buf.SetRuneBold(titleX+i, y0+1, r, overlayFg)
	}
	for i, r := range []rune(body) {
		buf.SetRune(bodyX+i, y0+3, r, overlayDim)
	}
}

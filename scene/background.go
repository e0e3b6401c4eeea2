package scene

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/adrianov/snake-sub002/render"
)

// Gradient stop sets for the sky. Each pair is top → horizon
var (
	daySkyTop     = render.RGB{R: 96, G: 164, B: 222}
	daySkyHorizon = render.RGB{R: 176, G: 216, B: 240}

	nightSkyTop     = render.RGB{R: 6, G: 8, B: 24}
	nightSkyHorizon = render.RGB{R: 24, G: 30, B: 56}

	// Dusk tint pulled toward the horizon rows during transitions
	duskTint = render.RGB{R: 226, G: 120, B: 60}
)

// Background tracks the darkness level scalar and paints the sky
// gradient behind everything else
type Background struct {
	dayCycle time.Duration
}

// NewBackground creates the background layer for a day cycle length
func NewBackground(dayCycle time.Duration) *Background {
	return &Background{dayCycle: dayCycle}
}

// Level maps elapsed game time to the 0-100 darkness scalar.
// Cosine curve: 0 at cycle start (noon), 100 at the midpoint (midnight)
func (b *Background) Level(elapsed time.Duration) float64 {
	if b.dayCycle <= 0 {
		return 0
	}
	p := math.Mod(elapsed.Seconds(), b.dayCycle.Seconds()) / b.dayCycle.Seconds()
	return (1 - math.Cos(2*math.Pi*p)) / 2 * 100
}

// duskAmount peaks when darkness crosses the middle of its range,
// fading the horizon toward the dusk tint
func duskAmount(darkness float64) float64 {
	// Triangle peaking at darkness 50
	d := 1 - math.Abs(darkness-50)/50
	if d < 0 {
		return 0
	}
	return d * d
}

// blendStop interpolates a day stop toward its night stop in a
// perceptual color space; plain RGB lerp turns sky blues muddy
func blendStop(day, night render.RGB, t float64) render.RGB {
	d := colorful.Color{R: float64(day.R) / 255, G: float64(day.G) / 255, B: float64(day.B) / 255}
	n := colorful.Color{R: float64(night.R) / 255, G: float64(night.G) / 255, B: float64(night.B) / 255}
	m := d.BlendLuv(n, t).Clamped()
	return render.RGB{R: uint8(m.R * 255), G: uint8(m.G * 255), B: uint8(m.B * 255)}
}

// Render fills every cell with the interpolated sky gradient
func (b *Background) Render(ctx render.Context, buf *render.Buffer) {
	w, h := buf.Size()
	if h == 0 {
		return
	}

	t := ctx.Darkness / 100
	top := blendStop(daySkyTop, nightSkyTop, t)
	horizon := blendStop(daySkyHorizon, nightSkyHorizon, t)
	dusk := duskAmount(ctx.Darkness)

	denom := float64(h - 1)
	if denom <= 0 {
		denom = 1
	}
	for y := 0; y < h; y++ {
		rowT := float64(y) / denom
		row := render.Lerp(top, horizon, rowT)
		if dusk > 0 {
			// Tint strengthens toward the horizon
			row = render.Blend(row, duskTint, dusk*0.35*rowT)
		}
		for x := 0; x < w; x++ {
			buf.SetBg(x, y, row)
		}
	}
}

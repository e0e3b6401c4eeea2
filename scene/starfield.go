package scene

import (
	"math"
	"math/rand"

	"github.com/adrianov/snake-sub002/constants"
	"github.com/adrianov/snake-sub002/render"
)

// star is one fixed point of the field
type star struct {
	x, y       int
	glyph      rune
	brightness float64 // Base intensity 0-1
	twinklePh  float64 // Phase offset for the twinkle oscillation
	twinkleHz  float64
}

var starGlyphs = []rune{'·', '.', '+', '*'}

// Starfield draws a fixed star field above the background. Stars only
// appear past the darkness threshold and are occluded inside the
// moon's drawn radius
type Starfield struct {
	density float64
	stars   []star
	width   int
	height  int
}

// NewStarfield creates an empty field; stars are laid out on first Layout
func NewStarfield(density float64) *Starfield {
	return &Starfield{density: density}
}

// Layout regenerates star placement for the given screen size.
// Seeded deterministically so the field is identical across frames
// and stable for a given size
func (sf *Starfield) Layout(width, height int) {
	if width == sf.width && height == sf.height {
		return
	}
	sf.width = width
	sf.height = height

	count := int(float64(width*height) * sf.density)
	rng := rand.New(rand.NewSource(constants.StarfieldSeed))
	sf.stars = sf.stars[:0]
	for i := 0; i < count; i++ {
		sf.stars = append(sf.stars, star{
			x:          rng.Intn(width),
			y:          rng.Intn(height),
			glyph:      starGlyphs[rng.Intn(len(starGlyphs))],
			brightness: 0.4 + 0.6*rng.Float64(),
			twinklePh:  rng.Float64() * 2 * math.Pi,
			twinkleHz:  0.3 + 0.7*rng.Float64(),
		})
	}
}

// visibility ramps star alpha from 0 at the threshold to 1 at full night
func starVisibility(darkness float64) float64 {
	if darkness <= constants.StarVisibleDarkness {
		return 0
	}
	v := (darkness - constants.StarVisibleDarkness) / (constants.MaxDarkness - constants.StarVisibleDarkness)
	if v > 1 {
		v = 1
	}
	return v
}

// Render draws visible stars, skipping low-alpha draws and any star
// inside the moon disc
func (sf *Starfield) Render(ctx render.Context, buf *render.Buffer) {
	sf.Layout(ctx.ScreenWidth, ctx.ScreenHeight)

	vis := starVisibility(ctx.Darkness)
	if vis < constants.MinDrawAlpha {
		return
	}

	t := float64(ctx.GameTime.UnixMilli()) / 1000.0
	for _, s := range sf.stars {
		// Moon occlusion; skipped while the moon is nearly faded out
		// during its reset transition
		if ctx.MoonAlpha > 0.2 && ctx.InMoonDisc(s.x, s.y) {
			continue
		}

		twinkle := 0.75 + 0.25*math.Sin(t*2*math.Pi*s.twinkleHz+s.twinklePh)
		alpha := vis * s.brightness * twinkle
		if alpha < constants.MinDrawAlpha {
			continue
		}

		fg := render.Scale(render.RGB{R: 255, G: 255, B: 240}, alpha)
		buf.SetRune(s.x, s.y, s.glyph, fg)
	}
}

// StarCount reports the current field size, for tests
func (sf *Starfield) StarCount() int {
	return len(sf.stars)
}

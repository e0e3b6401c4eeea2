package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/adrianov/snake-sub002/constants"
	"github.com/adrianov/snake-sub002/render"
)

// Moon surface colors
var (
	moonLit    = render.RGB{R: 232, G: 230, B: 202}
	moonDark   = render.RGB{R: 36, G: 40, B: 58}
	moonCrater = render.RGB{R: 188, G: 184, B: 158}
)

// crater is a procedurally placed dark spot on the lit disc,
// in unit-disc coordinates
type crater struct {
	u, v float64
	r    float64
}

// Moon renders a phase-clipped disc at an orbital position derived
// from elapsed game time
type Moon struct {
	cycle   time.Duration
	craters []crater

	// Injected for tests; defaults to time.Now
	wallClock func() time.Time
}

// NewMoon creates the moon layer for an orbital cycle length
func NewMoon(cycle time.Duration) *Moon {
	m := &Moon{
		cycle:     cycle,
		wallClock: time.Now,
	}
	m.placeCraters()
	return m
}

// placeCraters scatters craters inside the unit disc, deterministically
func (m *Moon) placeCraters() {
	rng := rand.New(rand.NewSource(constants.CraterSeed))
	m.craters = m.craters[:0]
	for len(m.craters) < constants.CraterCount {
		u := rng.Float64()*2 - 1
		v := rng.Float64()*2 - 1
		if u*u+v*v > 0.7 {
			// Keep craters off the limb so they stay visible
			continue
		}
		m.craters = append(m.craters, crater{
			u: u,
			v: v,
			r: 0.12 + 0.18*rng.Float64(),
		})
	}
}

// Phase returns the lunar phase fraction in [0, 1): 0 = new moon,
// 0.5 = full moon. Computed from wall-clock days since the reference
// new-moon epoch over the synodic period
func (m *Moon) Phase() float64 {
	days := m.wallClock().Sub(time.Unix(constants.NewMoonEpochUnix, 0)).Hours() / 24
	f := math.Mod(days/constants.SynodicPeriodDays, 1)
	if f < 0 {
		f += 1
	}
	return f
}

// CycleState maps elapsed game time to orbital progress in [0, 1) and
// the reset-transition alpha. Alpha dips to 0 exactly at the wrap and
// ramps back to 1, producing the fade-out/fade-in reset
func (m *Moon) CycleState(elapsed time.Duration) (progress, alpha float64) {
	cycleSec := m.cycle.Seconds()
	if cycleSec <= 0 {
		return 0, 1
	}
	progress = math.Mod(elapsed.Seconds(), cycleSec) / cycleSec

	half := constants.MoonResetDuration.Seconds() / 2 / cycleSec
	switch {
	case progress < half:
		alpha = progress / half
	case progress > 1-half:
		alpha = (1 - progress) / half
	default:
		alpha = 1
	}
	return progress, alpha
}

// OrbitPosition converts orbital progress to a screen position on an
// arc across the upper sky, right to left like a rising moon
func (m *Moon) OrbitPosition(progress float64, screenW, screenH int) (int, int) {
	x := float64(screenW) * (0.92 - 0.84*progress)
	peak := float64(screenH) * 0.28
	base := float64(screenH) * 0.45
	y := base - (base-peak)*math.Sin(math.Pi*progress)
	return int(x), int(y)
}

// litAt applies the terminator clip: for a unit-disc point (u, v),
// reports whether it is on the lit side of the disc for phase f.
// Waxing phases light the right limb, waning the left
func litAt(u, v, f float64) bool {
	halfw := 1 - v*v
	if halfw < 0 {
		return false
	}
	halfw = math.Sqrt(halfw)
	terminator := math.Cos(2*math.Pi*f) * halfw
	if f < 0.5 {
		return u >= terminator
	}
	return u <= -terminator
}

// craterAt reports whether a unit-disc point falls inside a crater
func (m *Moon) craterAt(u, v float64) bool {
	for _, c := range m.craters {
		du := u - c.u
		dv := v - c.v
		if du*du+dv*dv <= c.r*c.r {
			return true
		}
	}
	return false
}

// Render draws the moon disc using the context's precomputed position
// and alpha. Dark-side cells get a faint silhouette; lit cells show
// craters
func (m *Moon) Render(ctx render.Context, buf *render.Buffer) {
	if !ctx.MoonVisible || ctx.MoonAlpha < constants.MinDrawAlpha {
		return
	}

	phase := m.Phase()
	rx, ry := ctx.MoonRadiusX, ctx.MoonRadiusY
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			u := float64(dx) / float64(rx)
			v := float64(dy) / float64(ry)
			if u*u+v*v > 1 {
				continue
			}

			sx, sy := ctx.MoonX+dx, ctx.MoonY+dy
			if litAt(u, v, phase) {
				c := moonLit
				if m.craterAt(u, v) {
					c = moonCrater
				}
				buf.BlendBg(sx, sy, c, ctx.MoonAlpha)
			} else {
				buf.BlendBg(sx, sy, moonDark, ctx.MoonAlpha*0.5)
			}
		}
	}
}

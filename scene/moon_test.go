package scene

import (
	"math"
	"testing"
	"time"

	"github.com/adrianov/snake-sub002/constants"
	"github.com/adrianov/snake-sub002/render"
)

func moonAt(t *testing.T, wall time.Time) *Moon {
	t.Helper()
	m := NewMoon(constants.MoonCycleDuration)
	m.wallClock = func() time.Time { return wall }
	return m
}

func TestPhaseAtEpochIsNew(t *testing.T) {
	m := moonAt(t, time.Unix(constants.NewMoonEpochUnix, 0))
	if got := m.Phase(); got > 0.001 {
		t.Errorf("Expected phase ~0 at the reference epoch, got %f", got)
	}
}

func TestPhaseAtHalfSynodicIsFull(t *testing.T) {
	half := time.Duration(constants.SynodicPeriodDays / 2 * 24 * float64(time.Hour))
	m := moonAt(t, time.Unix(constants.NewMoonEpochUnix, 0).Add(half))

	if got := m.Phase(); math.Abs(got-0.5) > 0.001 {
		t.Errorf("Expected phase ~0.5 half a synodic period after new moon, got %f", got)
	}
}

func TestPhaseWrapsBeforeEpoch(t *testing.T) {
	m := moonAt(t, time.Unix(constants.NewMoonEpochUnix, 0).Add(-time.Hour))
	got := m.Phase()
	if got < 0 || got >= 1 {
		t.Errorf("Expected phase in [0,1) before the epoch, got %f", got)
	}
}

func TestLitAtNewMoonNothingLit(t *testing.T) {
	for _, v := range []float64{-0.5, 0, 0.5} {
		for _, u := range []float64{-0.5, 0, 0.5} {
			if litAt(u, v, 0) {
				t.Errorf("Expected (%f,%f) unlit at new moon", u, v)
			}
		}
	}
}

func TestLitAtFullMoonAllLit(t *testing.T) {
	for _, v := range []float64{-0.5, 0, 0.5} {
		for _, u := range []float64{-0.5, 0, 0.5} {
			if !litAt(u, v, 0.5) {
				t.Errorf("Expected (%f,%f) lit at full moon", u, v)
			}
		}
	}
}

func TestLitAtQuarters(t *testing.T) {
	// First quarter: right half lit
	if !litAt(0.5, 0, 0.25) {
		t.Error("Expected right limb lit at first quarter")
	}
	if litAt(-0.5, 0, 0.25) {
		t.Error("Expected left limb unlit at first quarter")
	}

	// Last quarter: left half lit
	if !litAt(-0.5, 0, 0.75) {
		t.Error("Expected left limb lit at last quarter")
	}
	if litAt(0.5, 0, 0.75) {
		t.Error("Expected right limb unlit at last quarter")
	}
}

func TestCycleStateResetTransition(t *testing.T) {
	m := NewMoon(2 * time.Minute)

	// Mid-cycle: fully opaque
	_, alpha := m.CycleState(time.Minute)
	if alpha != 1 {
		t.Errorf("Expected alpha 1 mid-cycle, got %f", alpha)
	}

	// At the wrap: fully faded
	progress, alpha := m.CycleState(0)
	if progress != 0 {
		t.Errorf("Expected progress 0 at wrap, got %f", progress)
	}
	if alpha != 0 {
		t.Errorf("Expected alpha 0 at wrap, got %f", alpha)
	}

	// Just before the wrap: fading out
	_, alphaBefore := m.CycleState(2*time.Minute - 500*time.Millisecond)
	if alphaBefore >= 1 || alphaBefore <= 0 {
		t.Errorf("Expected partial fade-out near wrap, got %f", alphaBefore)
	}

	// Just after the wrap: fading in
	_, alphaAfter := m.CycleState(500 * time.Millisecond)
	if alphaAfter >= 1 || alphaAfter <= 0 {
		t.Errorf("Expected partial fade-in after wrap, got %f", alphaAfter)
	}
}

func TestOrbitPositionStaysOnScreen(t *testing.T) {
	m := NewMoon(constants.MoonCycleDuration)
	for p := 0.0; p < 1.0; p += 0.05 {
		x, y := m.OrbitPosition(p, 120, 40)
		if x < 0 || x > 120 {
			t.Errorf("Orbit x=%d off screen at progress %f", x, p)
		}
		if y < 0 || y > 20 {
			t.Errorf("Expected orbit in the upper sky, got y=%d at progress %f", y, p)
		}
	}
}

func TestCratersDeterministic(t *testing.T) {
	a := NewMoon(constants.MoonCycleDuration)
	b := NewMoon(constants.MoonCycleDuration)

	if len(a.craters) != constants.CraterCount {
		t.Fatalf("Expected %d craters, got %d", constants.CraterCount, len(a.craters))
	}
	for i := range a.craters {
		if a.craters[i] != b.craters[i] {
			t.Errorf("Crater %d differs between instances", i)
		}
	}
}

func TestMoonRenderSkippedBelowAlphaFloor(t *testing.T) {
	m := NewMoon(constants.MoonCycleDuration)
	buf := render.NewBuffer(40, 20)
	base := render.RGB{R: 7, G: 7, B: 7}
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			buf.SetBg(x, y, base)
		}
	}

	ctx := render.Context{
		ScreenWidth: 40, ScreenHeight: 20,
		MoonVisible: true,
		MoonAlpha:   0.001, // Below the draw floor
		MoonX:       20, MoonY: 10,
		MoonRadiusX: 6, MoonRadiusY: 3,
	}
	m.Render(ctx, buf)

	if got := buf.Get(20, 10).Bg; got != base {
		t.Errorf("Expected draw skipped below alpha floor, bg changed to %v", got)
	}
}

package constants

import "time"

// Day/night cycle
const (
	// DayCycleDuration is one full day→night→day loop of the background
	DayCycleDuration = 4 * time.Minute

	// Darkness level bounds (0 = full day, 100 = full night)
	MinDarkness = 0
	MaxDarkness = 100

	// StarVisibleDarkness is the darkness level at which stars start to appear
	StarVisibleDarkness = 50

	// MoonVisibleDarkness is the darkness level at which the moon appears
	MoonVisibleDarkness = 40
)

// Starfield
const (
	// StarDensity is stars per screen cell; actual count scales with area
	StarDensity = 0.012

	// StarfieldSeed keeps star placement stable across frames and resizes
	StarfieldSeed = 0x5EED

	// MinDrawAlpha is the floor below which a scene draw is skipped entirely
	MinDrawAlpha = 0.02
)

// Moon
const (
	// MoonCycleDuration is one full orbital sweep across the sky
	MoonCycleDuration = 2 * time.Minute

	// MoonResetDuration is the fade-out/fade-in transition when the
	// orbital cycle wraps back to the start of the arc
	MoonResetDuration = 3 * time.Second

	// MoonRadiusCells is the disc radius in cell rows; horizontal radius
	// is doubled to compensate for the 2:1 terminal cell aspect
	MoonRadiusCells = 3

	// SynodicPeriodDays is the mean lunar synodic period
	SynodicPeriodDays = 29.530588853

	// CraterCount is the number of procedural craters on the lit disc
	CraterCount = 5

	// CraterSeed keeps crater placement stable
	CraterSeed = 0xC7A7E5
)

// NewMoonEpochUnix is 2000-01-06 18:14 UTC, a reference new moon
const NewMoonEpochUnix = 947182440

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/adrianov/snake-sub002/constants"
)

// Config holds all runtime settings, loaded from environment variables
// with sane defaults. Out-of-range values are clamped, not rejected
type Config struct {
	BoardWidth  int `env:"SNAKE_BOARD_WIDTH"  envDefault:"32"`
	BoardHeight int `env:"SNAKE_BOARD_HEIGHT" envDefault:"24"`
	SpeedLevel  int `env:"SNAKE_SPEED"        envDefault:"5"`

	DayCycle  time.Duration `env:"SNAKE_DAY_CYCLE"  envDefault:"4m"`
	MoonCycle time.Duration `env:"SNAKE_MOON_CYCLE" envDefault:"2m"`

	AudioEnabled bool    `env:"SNAKE_AUDIO"        envDefault:"true"`
	MasterVolume float64 `env:"SNAKE_VOLUME"       envDefault:"0.8"`
	MusicVolume  float64 `env:"SNAKE_MUSIC_VOLUME" envDefault:"0.6"`
	MusicBPM     int     `env:"SNAKE_MUSIC_BPM"    envDefault:"112"`

	StarDensity float64 `env:"SNAKE_STAR_DENSITY" envDefault:"0.012"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.clamp()
	return &cfg, nil
}

// Default returns the built-in configuration without touching the environment
func Default() *Config {
	cfg := &Config{
		BoardWidth:   constants.DefaultBoardWidth,
		BoardHeight:  constants.DefaultBoardHeight,
		SpeedLevel:   constants.DefaultSpeedLevel,
		DayCycle:     constants.DayCycleDuration,
		MoonCycle:    constants.MoonCycleDuration,
		AudioEnabled: true,
		MasterVolume: 0.8,
		MusicVolume:  0.6,
		MusicBPM:     constants.DefaultBPM,
		StarDensity:  constants.StarDensity,
	}
	return cfg
}

func (c *Config) clamp() {
	if c.BoardWidth < 8 {
		c.BoardWidth = 8
	}
	if c.BoardHeight < 8 {
		c.BoardHeight = 8
	}
	if c.SpeedLevel < constants.MinSpeedLevel {
		c.SpeedLevel = constants.MinSpeedLevel
	} else if c.SpeedLevel > constants.MaxSpeedLevel {
		c.SpeedLevel = constants.MaxSpeedLevel
	}
	if c.DayCycle < 30*time.Second {
		c.DayCycle = 30 * time.Second
	}
	if c.MoonCycle < 10*time.Second {
		c.MoonCycle = 10 * time.Second
	}
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	} else if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.MusicVolume < 0 {
		c.MusicVolume = 0
	} else if c.MusicVolume > 1 {
		c.MusicVolume = 1
	}
	if c.MusicBPM < constants.MinBPM {
		c.MusicBPM = constants.MinBPM
	} else if c.MusicBPM > constants.MaxBPM {
		c.MusicBPM = constants.MaxBPM
	}
	if c.StarDensity < 0 {
		c.StarDensity = 0
	} else if c.StarDensity > 0.1 {
		c.StarDensity = 0.1
	}
}

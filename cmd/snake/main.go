package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/adrianov/snake-sub002/audio"
	"github.com/adrianov/snake-sub002/config"
	"github.com/adrianov/snake-sub002/constants"
	"github.com/adrianov/snake-sub002/game"
	"github.com/adrianov/snake-sub002/render"
	"github.com/adrianov/snake-sub002/scene"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/snake.log")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	// Color mode is resolved through tcell's environment detection
	switch *colorModeFlag {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack,
	// otherwise the trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsnake crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if err := run(screen, cfg, *muteFlag); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, cfg *config.Config, startMuted bool) error {
	state := game.New(cfg.BoardWidth, cfg.BoardHeight, time.Now().UnixNano())
	if cfg.SpeedLevel != state.SpeedLevel() {
		for state.SpeedLevel() < cfg.SpeedLevel {
			state.SpeedUp()
		}
		for state.SpeedLevel() > cfg.SpeedLevel {
			state.SpeedDown()
		}
	}

	clock := game.NewPausableClock()
	sc := scene.New(cfg, clock)

	width, height := screen.Size()
	orchestrator := render.NewOrchestrator(screen, width, height)
	sc.RegisterAll(orchestrator)

	// Audio: engine failure degrades to silence, never aborts the game
	audio.InitDefaultPatterns()
	engine := audio.NewEngine(cfg.MasterVolume)
	var music *audio.Music
	if cfg.AudioEnabled {
		if err := engine.Start(); err == nil {
			defer engine.Stop()
			music = audio.NewMusic(engine, cfg.MusicBPM, cfg.MusicVolume)
			music.Start()
			if startMuted {
				engine.ToggleMute()
				music.SetAudible(false)
			}
		} else {
			log.Printf("audio start failed: %v (continuing without audio)", err)
		}
	}

	// Input polling in its own goroutine; the channel closes on Fini
	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	var frameNumber uint64
	for {
		select {
		case ev, open := <-eventChan:
			if !open {
				return nil
			}
			if !handleEvent(ev, state, clock, engine, music, orchestrator) {
				return nil
			}

		case <-frameTicker.C:
			frameNumber++

			if !state.Paused() && !state.GameOver() &&
				frameNumber%uint64(constants.StepFramesForSpeed(state.SpeedLevel())) == 0 {
				switch state.Step() {
				case game.StepAte:
					engine.PlayEffect(audio.CreateEatSound(1.0, audio.SampleRate))
				case game.StepDied:
					log.Printf("game over: score=%d", state.Score())
					engine.PlayEffect(audio.CreateGameOverSound(1.0, audio.SampleRate))
					if music != nil {
						music.SetPaused(true)
					}
				}
			}

			sc.SetSnapshot(state.Snapshot())
			w, h := screen.Size()
			ctx := sc.BuildContext(w, h)

			// Night theme follows the same threshold as the stars
			if music != nil && !state.GameOver() {
				music.SetNight(ctx.Darkness >= constants.StarVisibleDarkness)
			}

			orchestrator.RenderFrame(ctx)
		}
	}
}

// turn queues a direction change, ticking only when the turn is accepted
func turn(state *game.State, engine *audio.Engine, dir game.Direction) {
	if state.Turn(dir) {
		engine.PlayEffect(audio.CreateTurnSound(1.0, audio.SampleRate))
	}
}

// handleEvent processes one terminal event; returns false to quit
func handleEvent(ev tcell.Event, state *game.State, clock *game.PausableClock,
	engine *audio.Engine, music *audio.Music, orchestrator *render.Orchestrator) bool {

	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		orchestrator.Resize(w, h)

	case *tcell.EventKey:
		switch tev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			turn(state, engine, game.DirUp)
		case tcell.KeyDown:
			turn(state, engine, game.DirDown)
		case tcell.KeyLeft:
			turn(state, engine, game.DirLeft)
		case tcell.KeyRight:
			turn(state, engine, game.DirRight)
		case tcell.KeyRune:
			switch tev.Rune() {
			case 'q', 'Q':
				return false
			case 'w', 'W', 'k':
				turn(state, engine, game.DirUp)
			case 's', 'S', 'j':
				turn(state, engine, game.DirDown)
			case 'a', 'A', 'h':
				turn(state, engine, game.DirLeft)
			case 'd', 'D', 'l':
				turn(state, engine, game.DirRight)
			case 'p', 'P', ' ':
				paused := state.TogglePause()
				if paused {
					clock.Pause()
				} else {
					clock.Resume()
				}
				if music != nil {
					music.SetPaused(paused || !engine.IsEnabled())
				}
			case 'r', 'R':
				if state.GameOver() {
					state.Reset()
					if music != nil {
						music.SetPaused(!engine.IsEnabled())
					}
				}
			case 'm', 'M':
				audible := engine.ToggleMute()
				if music != nil {
					music.SetAudible(audible && !state.Paused())
				}
			case '+', '=':
				state.SpeedUp()
			case '-', '_':
				state.SpeedDown()
			}
		}
	}
	return true
}

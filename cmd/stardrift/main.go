package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/leaderboard"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/spatial"
	"github.com/lixenwraith/stardrift/systems"
	"github.com/lixenwraith/stardrift/telemetry"
)

var configFlag = flag.String("config", "", "Path to config file (optional)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, logClose, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer logClose()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// Restore the terminal even when the loop panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSTARDRIFT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	run(cfg, logger, screen)
}

func openLogger(lc config.LogConfig) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("level %q: %w", lc.Level, err)
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

func run(cfg *config.Config, logger zerolog.Logger, screen tcell.Screen) {
	events := event.NewQueue()
	world := spatial.World{Width: cfg.World.Width, Height: cfg.World.Height}
	simCtx := engine.NewContext(world, rand.New(rand.NewSource(time.Now().UnixNano())), events)
	sim := systems.NewSimulation(simCtx, logger)

	recorder := telemetry.NewRecorder(logger)
	logger.Info().Str("run_id", recorder.RunID()).Msg("session started")

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			logger.Warn().Err(err).Msg("audio unavailable")
		}
	}
	defer sound.Cleanup()

	var submitter *leaderboard.Submitter
	if cfg.Redis.Enabled {
		store, err := leaderboard.NewStore(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn().Err(err).Msg("leaderboard unavailable")
		} else {
			defer store.Close()
			submitter = leaderboard.NewSubmitter(store, events, cfg.Player.Name)
		}
	}

	renderer := render.NewTerminalRenderer(screen, sim)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh := make(chan tcell.Event, 32)
	quitCh := make(chan struct{})
	defer close(quitCh)
	go screen.ChannelEvents(evCh, quitCh)

	g := &game{
		sim:       sim,
		events:    events,
		keyboard:  input.NewKeyboard(),
		evCh:      evCh,
		sound:     sound,
		recorder:  recorder,
		renderer:  renderer,
		submitter: submitter,
		cancel:    cancel,
	}

	loop := engine.NewLoop(g, renderer, logger)
	loop.Run(ctx)
}

// game adapts the simulation to the fixed-step loop: it feeds input in
// before each step and fans events out after
type game struct {
	sim       *systems.Simulation
	events    *event.Queue
	keyboard  *input.Keyboard
	evCh      chan tcell.Event
	sound     *audio.SoundManager
	recorder  *telemetry.Recorder
	renderer  *render.TerminalRenderer
	submitter *leaderboard.Submitter
	cancel    context.CancelFunc

	submitted bool
}

// Step implements engine.Stepper
func (g *game) Step(dt float64) {
	now := time.Now()

drain:
	for {
		select {
		case ev := <-g.evCh:
			g.keyboard.HandleEvent(ev, now)
		default:
			break drain
		}
	}

	cmd := g.keyboard.Command(now)
	if cmd.Quit {
		g.cancel()
		return
	}
	g.sim.SetCommand(cmd)
	g.sim.Step(dt)

	for _, ev := range g.events.Consume() {
		g.dispatch(ev)
	}
}

func (g *game) dispatch(ev event.SimEvent) {
	g.sound.HandleEvent(ev)
	g.recorder.Record(ev)

	switch ev.Type {
	case event.EventGameOver:
		if g.submitter != nil && !g.submitted {
			g.submitted = true
			if p, ok := ev.Payload.(*event.GameOverPayload); ok {
				g.submitter.SubmitAsync(p.Score)
			}
		}
	case event.EventScoreSubmitted:
		p, ok := ev.Payload.(*event.ScoreSubmittedPayload)
		if !ok {
			return
		}
		if p.Err != nil {
			g.renderer.SetRankLine("RANK --")
		} else {
			g.renderer.SetRankLine(fmt.Sprintf("RANK #%d", p.Rank+1))
		}
	}
}

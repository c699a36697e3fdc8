package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/parameter"
)

// Stepper advances the simulation by one fixed timestep
type Stepper interface {
	Step(dt float64)
}

// Renderer draws the current state; called once per frame after stepping
type Renderer interface {
	Render()
}

// Loop drives a Stepper at the fixed simulation rate with an accumulator,
// so a slow frame produces extra catch-up steps instead of a longer dt
type Loop struct {
	stepper  Stepper
	renderer Renderer
	log      zerolog.Logger

	// MaxCatchUpSteps bounds the spiral of death after a long stall
	MaxCatchUpSteps int
}

// NewLoop wires a loop over the given stepper and renderer
func NewLoop(stepper Stepper, renderer Renderer, log zerolog.Logger) *Loop {
	return &Loop{
		stepper:         stepper,
		renderer:        renderer,
		log:             log,
		MaxCatchUpSteps: 5,
	}
}

// Run blocks until ctx is cancelled, stepping at parameter.SimulationHz
func (l *Loop) Run(ctx context.Context) error {
	dt := parameter.SimulationStep.Seconds()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	var accumulator time.Duration

	for {
		select {
		case <-ctx.Done():
			l.log.Info().Msg("simulation loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			accumulator += now.Sub(last)
			last = now

			steps := 0
			for accumulator >= parameter.SimulationStep {
				l.stepper.Step(dt)
				accumulator -= parameter.SimulationStep
				steps++
				if steps >= l.MaxCatchUpSteps {
					// Drop the backlog rather than stall further
					l.log.Warn().
						Dur("dropped", accumulator).
						Msg("frame backlog dropped")
					accumulator = 0
					break
				}
			}

			if l.renderer != nil {
				l.renderer.Render()
			}
		}
	}
}

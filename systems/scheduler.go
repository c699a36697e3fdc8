package systems

import (
	"math"

	"github.com/lixenwraith/stardrift/parameter"
)

// CollisionScheduler throttles the 16 pair categories independently: each
// has a target fps picked from its load metric, eased toward at a fixed
// transition rate, and a dt accumulator gating when the pass runs. It owns
// no entities, only the timing.
type CollisionScheduler struct {
	current     [parameter.PairKindCount]float64 // smoothed fps
	accumulator [parameter.PairKindCount]float64
}

// NewCollisionScheduler starts every category at its unloaded rate
func NewCollisionScheduler() *CollisionScheduler {
	s := &CollisionScheduler{}
	for k := range s.current {
		s.current[k] = parameter.PairConfigs[k].NormalFPS
	}
	return s
}

// CurrentFPS exposes the smoothed rate of one category
func (s *CollisionScheduler) CurrentFPS(k parameter.PairKind) float64 {
	return s.current[k]
}

// ShouldRun advances one category by real dt under the given load and
// reports whether its collision pass is due this frame. Excess accumulator
// time is discarded, the pass is rate-limited rather than catch-up run.
func (s *CollisionScheduler) ShouldRun(k parameter.PairKind, dt, load float64) bool {
	cfg := parameter.PairConfigs[k]

	target := cfg.NormalFPS
	if load > cfg.LoadThreshold {
		target = cfg.ReducedFPS
	}

	// Ease current fps toward target, never snap
	step := parameter.SchedulerTransitionRate * dt
	diff := target - s.current[k]
	if math.Abs(diff) <= step {
		s.current[k] = target
	} else {
		s.current[k] += math.Copysign(step, diff)
	}

	s.accumulator[k] += dt
	if s.current[k] <= 0 {
		return false
	}
	if s.accumulator[k] >= 1/s.current[k] {
		s.accumulator[k] = 0
		return true
	}
	return false
}

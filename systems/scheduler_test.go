package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/stardrift/parameter"
)

func TestSchedulerEasesTowardReducedRate(t *testing.T) {
	s := NewCollisionScheduler()
	k := parameter.PairShipAsteroid // (60, 45, 250)

	if got := s.CurrentFPS(k); got != 60 {
		t.Fatalf("initial fps = %v, want 60", got)
	}

	// Load 300 exceeds the 250 threshold; after one frame the rate moved
	// 10/60 of an fps, not snapped to 45
	dt := 1.0 / 60
	s.ShouldRun(k, dt, 300)
	want := 60 - parameter.SchedulerTransitionRate*dt
	if got := s.CurrentFPS(k); math.Abs(got-want) > 1e-9 {
		t.Errorf("fps after one loaded frame = %v, want %v", got, want)
	}

	// 1.5 simulated seconds covers the full 15 fps transition
	for i := 0; i < 90; i++ {
		s.ShouldRun(k, dt, 300)
	}
	if got := s.CurrentFPS(k); got != 45 {
		t.Errorf("fps after transition = %v, want 45", got)
	}

	// Load dropping back eases toward normal again
	for i := 0; i < 90; i++ {
		s.ShouldRun(k, dt, 100)
	}
	if got := s.CurrentFPS(k); got != 60 {
		t.Errorf("fps after recovery = %v, want 60", got)
	}
}

func TestSchedulerRateLimitsPasses(t *testing.T) {
	s := NewCollisionScheduler()
	k := parameter.PairUFOUFO // normal 20 fps

	// At 60Hz frames and a 20 fps category, roughly every 3rd frame runs
	runs := 0
	for i := 0; i < 60; i++ {
		if s.ShouldRun(k, 1.0/60, 0) {
			runs++
		}
	}
	if runs < 18 || runs > 22 {
		t.Errorf("pass ran %d times in 1s, want about 20", runs)
	}
}

func TestSchedulerDiscardsExcessTime(t *testing.T) {
	s := NewCollisionScheduler()
	k := parameter.PairBossAsteroid // normal 30 fps

	// A huge stalled frame yields exactly one pass, no catch-up burst
	if !s.ShouldRun(k, 0.5, 0) {
		t.Fatal("expected pass after long frame")
	}
	if s.ShouldRun(k, 1.0/240, 0) {
		t.Error("pass ran again immediately, accumulator not reset")
	}
}

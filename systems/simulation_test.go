package systems

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/spatial"
)

func newTestSimulation(seed int64) *Simulation {
	world := spatial.World{Width: 1600, Height: 1000}
	ctx := engine.NewContext(world, rand.New(rand.NewSource(seed)), event.NewQueue())
	return NewSimulation(ctx, zerolog.Nop())
}

func TestSimulationInvariantsOverManyFrames(t *testing.T) {
	s := newTestSimulation(41)
	dt := 1.0 / 60

	cmds := []input.Command{
		{},
		{Thrust: true, Fire: true},
		{Thrust: true, TurnLeft: true},
		{Fire: true, TurnRight: true},
		{Reverse: true, StrafeLeft: true},
	}

	for frame := 0; frame < 1800; frame++ {
		s.SetCommand(cmds[frame/360])
		s.Step(dt)

		ctx := s.Ctx
		if n := ctx.LiveAsteroids(); n > parameter.MaxAsteroids {
			t.Fatalf("frame %d: %d asteroids over cap", frame, n)
		}
		if n := len(ctx.Particles); n > parameter.MaxParticles {
			t.Fatalf("frame %d: %d particles over cap", frame, n)
		}
		if ctx.TimeScale < parameter.DilationMin || ctx.TimeScale > parameter.DilationMax {
			t.Fatalf("frame %d: dilation %v outside clamp", frame, ctx.TimeScale)
		}
		for _, a := range ctx.Asteroids {
			if a.Pos.X < 0 || a.Pos.X > ctx.World.Width+1e-9 ||
				a.Pos.Y < 0 || a.Pos.Y > ctx.World.Height+1e-9 {
				t.Fatalf("frame %d: asteroid at %v escaped the field", frame, a.Pos)
			}
		}
	}
}

func TestShipMovesOnDilatedTime(t *testing.T) {
	s := newTestSimulation(46)
	ctx := s.Ctx
	ctx.Ship.InvulnTimer = 1e9
	dt := 1.0 / 60

	// Ten idle seconds drive the dilation floor down
	for i := 0; i < 600; i++ {
		s.SetCommand(input.Command{})
		s.Step(dt)
	}
	if ctx.TimeScale >= 0.1 {
		t.Fatalf("idle dilation = %v, want < 0.1", ctx.TimeScale)
	}

	// One thrust frame in a near-frozen world barely moves the ship
	before := ctx.Ship.Vel.Magnitude()
	s.SetCommand(input.Command{Thrust: true})
	s.Step(dt)
	gained := ctx.Ship.Vel.Magnitude() - before

	full := parameter.ShipThrustPower * parameter.ShipAccelBoost * dt
	if gained > full*0.2 {
		t.Errorf("frozen-world thrust gained %v speed, real-dt gain is %v", gained, full)
	}
}

func TestLevelAdvancesAfterClear(t *testing.T) {
	s := newTestSimulation(42)
	ctx := s.Ctx
	if ctx.Level != 1 {
		t.Fatalf("starting level = %d, want 1", ctx.Level)
	}

	// Vaporize the field and the pending saucer wave
	for _, a := range ctx.Asteroids {
		a.Active = false
	}
	s.ufosPending = 0

	steps := int(parameter.LevelClearDelaySecs*60) + 5
	for i := 0; i < steps; i++ {
		s.Step(1.0 / 60)
	}

	if ctx.Level != 2 {
		t.Errorf("level = %d after clear delay, want 2", ctx.Level)
	}
	if ctx.LiveAsteroids() == 0 {
		t.Error("next level spawned no asteroids")
	}
}

func TestShipRespawnsWithLivesLeft(t *testing.T) {
	s := newTestSimulation(43)
	ctx := s.Ctx

	ctx.Ship.Active = false
	ctx.Lives = 2

	steps := int(parameter.RespawnDelaySecs*60) + 5
	for i := 0; i < steps; i++ {
		s.Step(1.0 / 60)
	}

	if ctx.Ship == nil || !ctx.Ship.Active {
		t.Fatal("ship did not respawn")
	}
	if !ctx.Ship.Invulnerable() {
		t.Error("respawned ship has no grace window")
	}
	if s.Over() {
		t.Error("run marked over with lives remaining")
	}
}

func TestRunEndsAtZeroLives(t *testing.T) {
	s := newTestSimulation(44)
	ctx := s.Ctx

	ctx.Ship.Active = false
	ctx.Lives = 0

	for i := 0; i < 10; i++ {
		s.Step(1.0 / 60)
	}

	if !s.Over() {
		t.Error("run not over at zero lives")
	}
	if ctx.Ship != nil && ctx.Ship.Active {
		t.Error("dead run still has an active ship")
	}
}

func TestBossArrivesOnScheduledLevel(t *testing.T) {
	s := newTestSimulation(45)
	ctx := s.Ctx

	// Force-clear levels until the boss level starts
	for ctx.Level < parameter.BossLevelEvery {
		for _, a := range ctx.Asteroids {
			a.Active = false
		}
		for _, u := range ctx.UFOs {
			u.Active = false
		}
		s.ufosPending = 0
		steps := int(parameter.LevelClearDelaySecs*60) + 5
		for i := 0; i < steps; i++ {
			s.Step(1.0 / 60)
		}
	}

	if ctx.Boss == nil || !ctx.Boss.Active {
		t.Errorf("no boss on level %d", ctx.Level)
	}
}

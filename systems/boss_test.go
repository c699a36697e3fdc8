package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

func spawnTestBoss(ctx *engine.Context) *component.Boss {
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	// Park mid-field so edge-exit logic stays out of the way
	b.Pos = ctx.Center()
	b.BaseY = b.Pos.Y
	b.Mirrored = false
	b.Vel = vmath.Vec{X: parameter.BossSpeed}
	return b
}

func TestBossSineMovement(t *testing.T) {
	ctx := newTestContext(21)
	b := spawnTestBoss(ctx)
	startX, baseY := b.Pos.X, b.BaseY

	// Quarter period of the 0.1Hz sine puts the boss at peak amplitude
	quarter := 1 / (4 * parameter.BossSineFrequency)
	dt := 1.0 / 60
	steps := int(quarter / dt)
	for i := 0; i < steps; i++ {
		b.Move(dt)
	}

	wantX := startX + parameter.BossSpeed*float64(steps)*dt
	if math.Abs(b.Pos.X-wantX) > 1e-6 {
		t.Errorf("X = %v, want %v", b.Pos.X, wantX)
	}
	offset := b.Pos.Y - baseY
	if math.Abs(offset-b.Amplitude) > b.Amplitude*0.05 {
		t.Errorf("sine offset %v, want near amplitude %v", offset, b.Amplitude)
	}
}

func TestBossWeaponCycleVolleyEveryFourth(t *testing.T) {
	ctx := newTestContext(22)
	ctx.Ship = component.NewShip(vmath.Vec{X: 100, Y: 100})
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	b.Pos = ctx.Center()
	b.BaseY = b.Pos.Y
	b.Vel = vmath.Vec{}
	b.StartupDelay = 0

	dt := 1.0 / 60

	// Cycles 1-3 walk the guns one shot per interval
	cycleSteps := int(parameter.BossCycleSecs/dt) + 1
	for i := 0; i < cycleSteps; i++ {
		bs.Update(ctx, dt)
	}
	firstCycleShots := len(ctx.BossBullets)
	wantWalk := int(parameter.BossCycleSecs / parameter.BossShotIntervalSecs)
	if firstCycleShots < wantWalk-2 || firstCycleShots > wantWalk+2 {
		t.Errorf("first cycle fired %d shots, want about %d", firstCycleShots, wantWalk)
	}

	// Advance into the 4th cycle; the volley fires all guns at once
	for i := 0; i < 3*cycleSteps; i++ {
		bs.Update(ctx, dt)
	}
	if b.CycleIndex < parameter.BossVolleyCycleEvery-1 {
		t.Fatalf("cycle index %d, expected to reach the volley cycle", b.CycleIndex)
	}

	// All 24 anchors produced a bullet during the volley cycle
	total := len(ctx.BossBullets)
	if total < firstCycleShots+parameter.BossGunCount {
		t.Errorf("total shots %d, want at least %d from the volley",
			total, firstCycleShots+parameter.BossGunCount)
	}
}

func TestBossBulletsNeverExpireByDistance(t *testing.T) {
	ctx := newTestContext(23)
	ctx.Ship = component.NewShip(vmath.Vec{X: 100, Y: 100})
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	b.Pos = ctx.Center()
	b.StartupDelay = 0
	bs.fireGun(ctx, b, 0)

	if len(ctx.BossBullets) != 1 {
		t.Fatalf("gun fired %d bullets, want 1", len(ctx.BossBullets))
	}

	var m Movement
	for i := 0; i < 60*30; i++ {
		m.UpdateBullets(ctx, 1.0/60)
	}
	if !ctx.BossBullets[0].Active {
		t.Error("boss bullet expired; removal is collision-only")
	}
}

func TestBossShotCounterOnlyAdvancesOnFiredShots(t *testing.T) {
	ctx := newTestContext(27)
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	b.Pos = ctx.Center()
	b.StartupDelay = 0

	// No ship and no asteroids: nothing to aim at, nothing fires
	for i := 0; i < 6; i++ {
		bs.fireGun(ctx, b, i)
	}
	if b.ShotsTotal != 0 {
		t.Fatalf("dry fire advanced ShotsTotal to %d, want 0", b.ShotsTotal)
	}
	if len(ctx.BossBullets) != 0 {
		t.Fatalf("dry fire spawned %d bullets", len(ctx.BossBullets))
	}

	// With a target every pull fires, and the 4th shot aims at the player
	ctx.Ship = component.NewShip(vmath.Vec{X: 100, Y: 100})
	for i := 0; i < parameter.BossPlayerShotEvery; i++ {
		bs.fireGun(ctx, b, i)
	}
	if b.ShotsTotal != parameter.BossPlayerShotEvery {
		t.Errorf("ShotsTotal = %d, want %d", b.ShotsTotal, parameter.BossPlayerShotEvery)
	}
	if len(ctx.BossBullets) != parameter.BossPlayerShotEvery {
		t.Errorf("fired %d bullets, want %d", len(ctx.BossBullets), parameter.BossPlayerShotEvery)
	}
}

func TestBossSplitsLargeAsteroidsOnly(t *testing.T) {
	ctx := newTestContext(24)
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	b.Pos = ctx.Center()
	b.Mirrored = false

	small := component.NewAsteroid(ctx.Rand, b.Pos, 2)
	ctx.AddAsteroid(small)

	bs.CollideAsteroids(ctx)
	if !small.Active {
		t.Error("tier 2 asteroid destroyed by hull, should pass through")
	}

	large := component.NewAsteroid(ctx.Rand, b.Pos, 3)
	ctx.AddAsteroid(large)

	bs.CollideAsteroids(ctx)
	if large.Active {
		t.Error("tier 3 asteroid survived the hull")
	}
}

func TestBossChainSplitsInOnePass(t *testing.T) {
	ctx := newTestContext(25)
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	b.Pos = ctx.Center()
	b.Mirrored = false

	// A stationary tier 5 rock dead center stays inside the hull while its
	// children spawn at the parent position, so the chain runs to tier 2
	rock := component.NewAsteroid(ctx.Rand, b.Pos, 5)
	rock.Vel = vmath.Vec{}
	ctx.AddAsteroid(rock)

	bs.CollideAsteroids(ctx)

	for _, a := range ctx.Asteroids {
		if a.Active && a.Size >= parameter.BossSplitMinSize {
			// Children inherit speed from a zero-velocity parent, they
			// cannot have drifted off the hull within the pass
			t.Errorf("tier %d asteroid still active inside hull after chain pass", a.Size)
		}
	}

	// Survivors are all tier 1 or 2 pass-through children
	live := 0
	for _, a := range ctx.Asteroids {
		if a.Active {
			live++
			if a.Size > 2 {
				t.Errorf("survivor tier %d, want 1 or 2", a.Size)
			}
		}
	}
	if live == 0 {
		t.Error("chain annihilated everything, tier 2 children should remain")
	}
}

func TestBossHitAcrossWrap(t *testing.T) {
	ctx := newTestContext(26)
	bs := NewBossSystem(&Lifecycle{})
	b := bs.Spawn(ctx)
	b.Mirrored = false
	// Hull hangs off the left edge; the rock sits near the right edge
	b.Pos = vmath.Vec{X: 10, Y: 500}

	rock := component.NewAsteroid(ctx.Rand, vmath.Vec{X: ctx.World.Width - 5, Y: 500}, 4)
	rock.Vel = vmath.Vec{}
	ctx.AddAsteroid(rock)

	bs.CollideAsteroids(ctx)
	if rock.Active {
		t.Error("asteroid across the wrap seam not detected against the hull")
	}
}

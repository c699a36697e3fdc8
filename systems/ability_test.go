package systems

import (
	"testing"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

func newChargedAbility(ctx *engine.Context) *Ability {
	ctx.Ship = component.NewShip(ctx.Center())
	ctx.Ship.AbilityCharges = 1
	return NewAbility(&Lifecycle{})
}

// runCharge steps the ability through a full activation, well past the
// longest inter-blast delay
func runCharge(ctx *engine.Context, ab *Ability) {
	dt := 1.0 / 60
	delay := parameter.AbilityBreakDelayMax
	steps := int(delay*60)*parameter.AbilityBlastsPerCharge + 10
	for i := 0; i < steps; i++ {
		ab.Update(ctx, dt)
		if !ab.Running() {
			return
		}
	}
}

func TestAbilityBlastSplitsEveryAsteroidOneTier(t *testing.T) {
	ctx := newTestContext(31)
	ab := newChargedAbility(ctx)

	rock := component.NewAsteroid(ctx.Rand, vmath.Vec{X: 400, Y: 300}, 5)
	rock.Vel = vmath.Vec{X: 50}
	ctx.AddAsteroid(rock)

	if !ab.TryActivate(ctx) {
		t.Fatal("activation refused with a charge available")
	}
	ab.Update(ctx, 1.0/60)

	if rock.Active {
		t.Error("blast left the tier 5 rock intact")
	}
	live := 0
	for _, a := range ctx.Asteroids {
		if a.Active {
			live++
			if a.Size != 4 {
				t.Errorf("child tier %d after first blast, want 4", a.Size)
			}
		}
	}
	if live != 2 {
		t.Errorf("first blast left %d live asteroids, want 2 split children", live)
	}
	if want := 5 * parameter.ScorePerAsteroidSizeShield; ctx.Score != want {
		t.Errorf("score after first blast = %d, want %d", ctx.Score, want)
	}
}

func TestAbilityChargeLeavesSurvivorsAndScore(t *testing.T) {
	ctx := newTestContext(32)
	ab := newChargedAbility(ctx)

	rock := component.NewAsteroid(ctx.Rand, vmath.Vec{X: 400, Y: 300}, 5)
	rock.Vel = vmath.Vec{X: 50}
	ctx.AddAsteroid(rock)

	if !ab.TryActivate(ctx) {
		t.Fatal("activation refused with a charge available")
	}
	runCharge(ctx, ab)

	if ab.Running() {
		t.Fatal("charge still running after both blasts")
	}
	// 5 -> two 4s -> four 3s; tiers above 2 always split, nothing vanishes
	live := 0
	for _, a := range ctx.Asteroids {
		if a.Active {
			live++
			if a.Size != 3 {
				t.Errorf("survivor tier %d, want 3", a.Size)
			}
		}
	}
	if live != 4 {
		t.Errorf("%d live asteroids after the charge, want 4", live)
	}
	if want := (5 + 2*4) * parameter.ScorePerAsteroidSizeShield; ctx.Score != want {
		t.Errorf("score = %d, want %d", ctx.Score, want)
	}
}

func TestAbilityBlastScoreEvent(t *testing.T) {
	ctx := newTestContext(33)
	ab := newChargedAbility(ctx)
	ctx.AddAsteroid(component.NewAsteroid(ctx.Rand, vmath.Vec{X: 400, Y: 300}, 3))

	ab.TryActivate(ctx)
	ab.Update(ctx, 1.0/60)

	var scored *event.ScoreChangedPayload
	blasts := 0
	for _, ev := range ctx.Events.Consume() {
		switch ev.Type {
		case event.EventScoreChanged:
			scored = ev.Payload.(*event.ScoreChangedPayload)
		case event.EventAbilityBlast:
			blasts++
		}
	}
	if blasts != 1 {
		t.Errorf("%d blast events after one blast, want 1", blasts)
	}
	if scored == nil {
		t.Fatal("blast emitted no score event")
	}
	if scored.Cause != "ability" {
		t.Errorf("score cause = %q, want ability", scored.Cause)
	}
	if want := 3 * parameter.ScorePerAsteroidSizeShield; scored.Delta != want {
		t.Errorf("score delta = %d, want %d", scored.Delta, want)
	}
}

func TestAbilityClearsSmallSaucerGroups(t *testing.T) {
	ctx := newTestContext(34)
	ab := newChargedAbility(ctx)

	for i := 0; i < 2; i++ {
		ctx.UFOs = append(ctx.UFOs,
			component.NewUFO(ctx.Rand, vmath.Vec{X: float64(100 * i), Y: 100}, component.PersonalityAggressive))
	}

	ab.TryActivate(ctx)
	ab.Update(ctx, 1.0/60)

	// ceil(2 * 0.3) rounds up to one saucer on the first blast
	if got := ctx.LiveUFOs(); got != 1 {
		t.Fatalf("live saucers after first blast = %d, want 1", got)
	}
	runCharge(ctx, ab)
	if got := ctx.LiveUFOs(); got != 0 {
		t.Errorf("live saucers after the charge = %d, want 0", got)
	}
}

func TestAbilitySkipsSpinningOutSaucers(t *testing.T) {
	ctx := newTestContext(35)
	ab := newChargedAbility(ctx)

	dying := component.NewUFO(ctx.Rand, vmath.Vec{X: 100, Y: 100}, component.PersonalityDefensive)
	dying.SpinoutTimer = 1.0
	healthy := component.NewUFO(ctx.Rand, vmath.Vec{X: 300, Y: 100}, component.PersonalityDefensive)
	ctx.UFOs = append(ctx.UFOs, dying, healthy)

	ab.TryActivate(ctx)
	ab.Update(ctx, 1.0/60)

	if !dying.Active {
		t.Error("spinout saucer despawned by the blast, it is damage-immune")
	}
	if healthy.Active {
		t.Error("healthy saucer survived a blast that owed one clear")
	}
}

func TestAbilityChildrenSplitOnNextBlastOnly(t *testing.T) {
	ctx := newTestContext(36)
	ab := newChargedAbility(ctx)

	rock := component.NewAsteroid(ctx.Rand, vmath.Vec{X: 400, Y: 300}, 4)
	ctx.AddAsteroid(rock)

	ab.TryActivate(ctx)
	ab.Update(ctx, 1.0/60)

	// One blast splits one tier; children spawned mid-blast are untouched
	for _, a := range ctx.Asteroids {
		if a.Active && a.Size != 3 {
			t.Errorf("tier %d live after one blast of a tier 4 field, want 3", a.Size)
		}
	}
}

func TestAbilityRechargeRates(t *testing.T) {
	ctx := newTestContext(37)
	ctx.Ship = component.NewShip(ctx.Center())
	ab := NewAbility(&Lifecycle{})
	dt := 1.0 / 60

	if ab.TryActivate(ctx) {
		t.Fatal("activation succeeded with zero charges")
	}

	// The first charge arrives on the accelerated clock
	steps := int(parameter.AbilityFirstChargeSecs*60) + 2
	for i := 0; i < steps; i++ {
		ab.Update(ctx, dt)
	}
	if ctx.Ship.AbilityCharges != 1 {
		t.Fatalf("charges after first window = %d, want 1", ctx.Ship.AbilityCharges)
	}

	// The second takes the full interval
	steps = int(parameter.AbilityFirstChargeSecs*60) + 2
	for i := 0; i < steps; i++ {
		ab.Update(ctx, dt)
	}
	if ctx.Ship.AbilityCharges != 1 {
		t.Errorf("second charge arrived on the accelerated clock")
	}
	steps = int((parameter.AbilityChargeSecs-parameter.AbilityFirstChargeSecs)*60) + 2
	for i := 0; i < steps; i++ {
		ab.Update(ctx, dt)
	}
	if ctx.Ship.AbilityCharges != parameter.AbilityMaxCharges {
		t.Errorf("charges = %d, want %d", ctx.Ship.AbilityCharges, parameter.AbilityMaxCharges)
	}
}

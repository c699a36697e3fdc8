package systems

import (
	"math"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Ability runs the screen-clearing dual ability as an explicit step machine:
// each activation spends one charge and fires two blasts with a randomized
// delay between them. A blast splits every live asteroid one tier at half
// score and thins out the saucer group. No blocking anywhere; Update is
// called once per frame.
type Ability struct {
	lifecycle *Lifecycle

	active     bool
	blastsLeft int
	stepTimer  float64
}

// NewAbility wires the ability to the lifecycle that performs the splits
func NewAbility(lifecycle *Lifecycle) *Ability {
	return &Ability{lifecycle: lifecycle}
}

// Running reports whether a blast sequence is in progress
func (ab *Ability) Running() bool {
	return ab.active
}

// TryActivate spends a charge and starts the blast sequence
func (ab *Ability) TryActivate(ctx *engine.Context) bool {
	ship := ctx.Ship
	if ab.active || ship == nil || ship.AbilityCharges <= 0 {
		return false
	}
	ship.AbilityCharges--
	ab.active = true
	ab.blastsLeft = parameter.AbilityBlastsPerCharge
	ab.stepTimer = 0
	return true
}

// Update advances charge regeneration and any running blast sequence
func (ab *Ability) Update(ctx *engine.Context, dt float64) {
	ab.recharge(ctx.Ship, dt)

	if !ab.active {
		return
	}

	ab.stepTimer -= dt
	if ab.stepTimer > 0 {
		return
	}
	ab.fireBlast(ctx)
}

// fireBlast splits every asteroid alive at blast time one tier, with the
// normal split rule and the half-score rate, then clears part of the saucer
// group. Children spawned by this blast only break on the next one.
func (ab *Ability) fireBlast(ctx *engine.Context) {
	targets := make([]*component.Asteroid, 0, len(ctx.Asteroids))
	for _, a := range ctx.Asteroids {
		if a.Active {
			targets = append(targets, a)
		}
	}

	score := 0
	for _, a := range targets {
		score += a.Size * parameter.ScorePerAsteroidSizeShield
		ab.lifecycle.DestroyAsteroid(ctx, a, vmath.Vec{}, true)
	}
	if score > 0 {
		ctx.Score += score
		ctx.Events.Emit(event.EventScoreChanged, &event.ScoreChangedPayload{
			Delta: score,
			Total: ctx.Score,
			Cause: "ability",
		})
	}

	ab.clearUFOs(ctx)

	ctx.Events.Emit(event.EventAbilityBlast, &event.AbilityBlastPayload{
		Step:      parameter.AbilityBlastsPerCharge - ab.blastsLeft + 1,
		Destroyed: len(targets),
	})

	ab.blastsLeft--
	if ab.blastsLeft <= 0 {
		ab.active = false
		return
	}
	ab.stepTimer = parameter.AbilityBreakDelayMin +
		ctx.Rand.Float64()*(parameter.AbilityBreakDelayMax-parameter.AbilityBreakDelayMin)
}

// clearUFOs despawns a fraction of the live saucers per blast, always at
// least one while any remain
func (ab *Ability) clearUFOs(ctx *engine.Context) {
	live := ctx.LiveUFOs()
	if live == 0 {
		return
	}
	toClear := int(math.Ceil(float64(live) * parameter.AbilityUFOClearFraction))
	if toClear < 1 {
		toClear = 1
	}
	for _, u := range ctx.UFOs {
		if toClear <= 0 {
			break
		}
		if !u.Active || u.SpinningOut() {
			continue
		}
		u.Active = false
		ctx.Events.Emit(event.EventUFODestroyed, &event.UFODestroyedPayload{
			Pos:         u.Pos,
			Personality: u.Personality.String(),
		})
		ab.lifecycle.UFOBurst(ctx, u.Pos)
		toClear--
	}
}

// recharge refills ability charges; the first charge of a fresh ship
// arrives at an accelerated rate
func (ab *Ability) recharge(ship *component.Ship, dt float64) {
	if ship == nil || ship.AbilityCharges >= parameter.AbilityMaxCharges {
		return
	}
	ship.AbilityRecharge += dt

	need := parameter.AbilityChargeSecs
	if !ship.FirstChargeUsed {
		need = parameter.AbilityFirstChargeSecs
	}
	if ship.AbilityRecharge >= need {
		ship.AbilityCharges++
		ship.AbilityRecharge = 0
		ship.FirstChargeUsed = true
	}
}

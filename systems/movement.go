package systems

import (
	"math"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Movement integrates the ship, bullets, asteroids and particles. Every
// entity, the ship included, receives the dilated dt from the caller.
type Movement struct{}

// UpdateShip applies one frame of flight control and returns the unsigned
// turn input in degrees for the dilation turn bonus
func (m *Movement) UpdateShip(ctx *engine.Context, dlt *DilationController, cmd input.Command, dt float64) float64 {
	ship := ctx.Ship
	if ship == nil || !ship.Active {
		return 0
	}

	// Rotation
	turn := cmd.Turn()
	turnDegrees := 0.0
	if turn != 0 {
		delta := turn * parameter.ShipRotationSpeed * dt
		ship.Angle = vmath.NormalizeAngle(ship.Angle + delta)
		turnDegrees = math.Abs(delta) * 180 / math.Pi
	}

	// Thrust with the speed-dependent acceleration curve
	accel := vmath.Vec{}
	if cmd.Thrust {
		accel = accel.Add(vmath.FromAngle(ship.Angle, parameter.ShipThrustPower))
	}
	if cmd.Reverse {
		accel = accel.Sub(vmath.FromAngle(ship.Angle, parameter.ShipThrustPower))
	}
	if s := cmd.Strafe(); s != 0 {
		lateral := vmath.FromAngle(ship.Angle, parameter.ShipThrustPower).Perpendicular()
		accel = accel.Add(lateral.Scale(s))
	}

	if accel.MagnitudeSq() > 0 {
		ship.Vel = ship.Vel.Add(accel.Scale(accelMultiplier(ship.Vel.Magnitude()) * dt))
	} else {
		// Coasting decay, sharpened near standstill so the ship settles
		decay := parameter.ShipSpeedDecay
		if ship.Vel.Magnitude() < parameter.ShipMaxSpeed*parameter.ShipDecayFastPct/100 {
			decay = math.Pow(decay, parameter.ShipDecayFastPower)
		}
		ship.Vel = ship.Vel.Scale(math.Pow(decay, dt))
	}
	ship.Vel = ship.Vel.ClampMagnitude(parameter.ShipMaxSpeed)

	ship.Integrate(dt)
	ship.Pos = ctx.World.WrapPosition(ship.Pos)

	m.updateFire(ctx, dlt, cmd.Fire, dt)
	m.updateShield(ship, dt)

	if ship.InvulnTimer > 0 {
		ship.InvulnTimer -= dt
	}
	return turnDegrees
}

// accelMultiplier boosts acceleration at low speed and starves it near max
func accelMultiplier(speed float64) float64 {
	pct := speed / parameter.ShipMaxSpeed * 100
	if pct < parameter.ShipAccelBoostBelowPct {
		return parameter.ShipAccelBoost
	}
	t := (pct - parameter.ShipAccelBoostBelowPct) / (100 - parameter.ShipAccelBoostBelowPct)
	return vmath.Lerp(parameter.ShipAccelBoost, parameter.ShipAccelFloorAtMax, vmath.Clamp(t, 0, 1))
}

// updateFire runs the rate-of-fire progression and spawns player bullets
func (m *Movement) updateFire(ctx *engine.Context, dlt *DilationController, firing bool, dt float64) {
	ship := ctx.Ship

	if ship.FireCooldown > 0 {
		ship.FireCooldown -= dt
	}

	if !firing {
		ship.HoldTime = 0
		return
	}
	ship.HoldTime += dt

	if ship.FireCooldown > 0 {
		return
	}

	muzzle := ship.Pos.Add(vmath.FromAngle(ship.Angle, ship.Radius))
	ctx.Bullets = append(ctx.Bullets, component.NewBullet(
		component.OwnerShip, muzzle, ship.Angle,
		parameter.BulletSpeed, parameter.BulletRadius, parameter.BulletMaxDistance,
	))
	dlt.NoteShot()
	ship.FireCooldown = fireInterval(ship.HoldTime)
}

// fireInterval maps trigger hold time to the shot interval: a quartic ramp
// down to the peak rate, then a quadratic ease back to the fatigue floor
func fireInterval(hold float64) float64 {
	if hold <= parameter.ShipROFPeakTime {
		t := hold / parameter.ShipROFPeakTime
		return vmath.Lerp(parameter.ShipROFStartInterval, parameter.ShipROFPeakInterval, t*t*t*t)
	}
	u := vmath.Clamp((hold-parameter.ShipROFPeakTime)/parameter.ShipROFCurveDuration, 0, 1)
	return vmath.Lerp(parameter.ShipROFPeakInterval, parameter.ShipROFFloorInterval, u*u)
}

// updateShield recharges one absorbed hit at a time
func (m *Movement) updateShield(ship *component.Ship, dt float64) {
	if ship.ShieldHits >= parameter.ShieldMaxHits {
		ship.ShieldRecharge = 0
		return
	}
	ship.ShieldRecharge += dt
	if ship.ShieldRecharge >= parameter.ShieldRechargeSecs {
		ship.ShieldHits++
		ship.ShieldRecharge = 0
	}
}

// UpdateBullets advances all bullets with wrap-aware travel distance
func (m *Movement) UpdateBullets(ctx *engine.Context, dt float64) {
	for _, b := range ctx.Bullets {
		if !b.Active {
			continue
		}
		b.Advance(dt)
		b.Pos = ctx.World.WrapPosition(b.Pos)
	}
	// Boss bullets never expire by distance; they are removed on collision
	// or with the boss itself
	for _, b := range ctx.BossBullets {
		if !b.Active {
			continue
		}
		b.Integrate(dt)
		b.Pos = ctx.World.WrapPosition(b.Pos)
	}
}

// UpdateAsteroids drifts and spins the rocks
func (m *Movement) UpdateAsteroids(ctx *engine.Context, dt float64) {
	for _, a := range ctx.Asteroids {
		if !a.Active {
			continue
		}
		a.Integrate(dt)
		a.RotationAngle = vmath.NormalizeAngle(a.RotationAngle + a.RotationSpeed*dt)
		a.Pos = ctx.World.WrapPosition(a.Pos)
	}
}

// UpdateParticles ages the debris
func (m *Movement) UpdateParticles(ctx *engine.Context, dt float64) {
	for _, p := range ctx.Particles {
		if !p.Active {
			continue
		}
		p.Update(dt)
		p.Pos = ctx.World.WrapPosition(p.Pos)
	}
}

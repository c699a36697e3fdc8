package systems

import (
	"math"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// AI drives saucer behavior: a per-personality state machine selects a
// steering-weight mixture, the weighted behaviors produce a target velocity,
// and the saucer tweens toward it. No behavior ever writes velocity
// directly.
type AI struct {
	lifecycle *Lifecycle
}

// NewAI wires the controller to the lifecycle used for death effects
func NewAI(lifecycle *Lifecycle) *AI {
	return &AI{lifecycle: lifecycle}
}

// stateWeights maps each FSM state to its steering mixture. The asteroid
// avoidance weight is added on top for every state.
var stateWeights = [component.AIStateCount]component.BehaviorWeights{
	component.StatePatrol:      {component.BehaviorPatrol: 1.0},
	component.StatePursue:      {component.BehaviorSeek: 1.0},
	component.StateFlank:       {component.BehaviorFlank: 1.0, component.BehaviorSeek: 0.3},
	component.StateFlee:        {component.BehaviorFlee: 1.0},
	component.StateEvade:       {component.BehaviorEvade: 1.0, component.BehaviorFlee: 0.5},
	component.StateIntercept:   {component.BehaviorIntercept: 1.0},
	component.StateSeek:        {component.BehaviorSeek: 0.8, component.BehaviorPatrol: 0.2},
	component.StateSwarmAttack: {component.BehaviorSwarm: 0.6, component.BehaviorSeek: 0.6},
	component.StateSwarmPatrol: {component.BehaviorSwarm: 0.8, component.BehaviorPatrol: 0.4},
}

// avoidAsteroidsWeight applies regardless of state
const avoidAsteroidsWeight = 0.5

// Update advances every live saucer by the dilated dt
func (ai *AI) Update(ctx *engine.Context, dt float64) {
	for _, u := range ctx.UFOs {
		if !u.Active {
			continue
		}
		if u.SpinningOut() {
			ai.updateSpinout(ctx, u, dt)
			continue
		}
		ai.updateSaucer(ctx, u, dt)
	}
}

func (ai *AI) updateSaucer(ctx *engine.Context, u *component.UFO, dt float64) {
	threat := threatScore(ctx, u)
	opportunity := opportunityScore(ctx)

	u.StateTimer -= dt
	if u.StateTimer <= 0 {
		u.State, u.StateTimer = nextState(ctx, u, threat, opportunity)
	}

	target := ai.steeringTarget(ctx, u, dt)

	// Exponential tween toward the target; ease out to rest when the
	// behaviors produce nothing
	if target.MagnitudeSq() > 0 {
		f := math.Min(parameter.UFOVelocityTweenRate*dt, 1)
		u.Vel = u.Vel.Add(target.Sub(u.Vel).Scale(f))
	} else {
		f := vmath.EaseOutCubic(vmath.Clamp(parameter.UFOVelocityTweenRate*dt, 0, 1))
		u.Vel = u.Vel.Scale(1 - f)
	}

	u.Integrate(dt)
	u.Pos = ctx.World.WrapPosition(u.Pos)

	// Facing eases toward the travel heading; the rate compensates for
	// dilation so slow motion does not freeze the spin
	if u.Vel.MagnitudeSq() > 1 {
		rate := parameter.UFORotationBase /
			math.Max(ctx.TimeScale, parameter.UFORotationDilationFloor)
		u.Angle = vmath.ApproachAngle(u.Angle, u.Vel.Heading(), rate, dt)
	}

	ai.updateShooting(ctx, u, dt)
}

// === STATE TRANSITIONS ===

// nextState consults the personality's transition table. Durations are in
// seconds of dilated time.
func nextState(ctx *engine.Context, u *component.UFO, threat, opportunity float64) (component.AIState, float64) {
	allies := ctx.LiveUFOs() > 1
	playerSpeed := 0.0
	if ctx.Ship != nil {
		playerSpeed = ctx.Ship.Vel.Magnitude()
	}

	switch u.Personality {
	case component.PersonalityAggressive:
		switch {
		case threat > 0.7:
			return component.StateEvade, 1.0
		case opportunity > 0.5:
			return component.StatePursue, 2.0
		case threat > 0.4:
			return component.StateFlank, 1.5
		default:
			return component.StateSeek, 2.0
		}

	case component.PersonalityDefensive:
		switch {
		case threat > 0.5:
			return component.StateFlee, 2.0
		case threat > 0.25:
			return component.StateEvade, 1.5
		case opportunity > 0.6:
			return component.StateIntercept, 1.5
		default:
			return component.StatePatrol, 2.5
		}

	case component.PersonalityTactical:
		switch {
		case threat > 0.6:
			return component.StateEvade, 1.0
		case playerSpeed > 600:
			return component.StateIntercept, 2.0
		case playerSpeed < 200 && opportunity > 0.3:
			return component.StatePursue, 2.0
		case opportunity > 0.5:
			return component.StateFlank, 1.5
		default:
			return component.StatePatrol, 2.0
		}

	case component.PersonalitySwarm:
		if allies {
			if opportunity > 0.4 && threat < 0.6 {
				return component.StateSwarmAttack, 2.0
			}
			return component.StateSwarmPatrol, 2.0
		}
		if opportunity > 0.5 {
			return component.StatePursue, 1.5
		}
		return component.StatePatrol, 2.0

	case component.PersonalityDeadly:
		// Never retreats at low threat; evades only briefly under fire
		switch {
		case threat > 0.8:
			return component.StateEvade, 0.5
		case opportunity > 0.3:
			return component.StatePursue, 2.5
		default:
			return component.StateSeek, 2.0
		}
	}

	return component.StatePatrol, 2.0
}

// threatScore weighs player proximity, incoming bullets and player speed
func threatScore(ctx *engine.Context, u *component.UFO) float64 {
	ship := ctx.Ship
	if ship == nil || !ship.Active {
		return 0
	}

	threat := 0.0
	dist := ctx.World.WrappedDelta(u.Pos, ship.Pos).Magnitude()
	switch {
	case dist < parameter.UFODangerZone:
		threat += parameter.ThreatCloseDistance
	case dist < parameter.UFOOptimalDistance:
		threat += parameter.ThreatMidDistance
	}

	for _, b := range ctx.Bullets {
		if !b.Active || b.Owner != component.OwnerShip {
			continue
		}
		d := ctx.World.WrappedDelta(u.Pos, b.Pos).Magnitude()
		switch {
		case d < 50:
			threat += parameter.ThreatBulletNear
		case d < parameter.UFOEvadeRadius:
			threat += parameter.ThreatBulletFar
		}
	}

	speed := ship.Vel.Magnitude()
	switch {
	case speed > 800:
		threat += parameter.ThreatFastPlayer
	case speed > 400:
		threat += parameter.ThreatMovingPlayer
	}

	return vmath.Clamp(threat, 0, 1)
}

// opportunityScore weighs how exposed the player currently is
func opportunityScore(ctx *engine.Context) float64 {
	ship := ctx.Ship
	if ship == nil || !ship.Active {
		return 0
	}

	opportunity := 0.0
	speed := ship.Vel.Magnitude()
	switch {
	case speed < 200:
		opportunity += parameter.OpportunitySlowPlayer
	case speed < 400:
		opportunity += parameter.OpportunityModeratePlayer
	}

	busy := 0
	for _, a := range ctx.Asteroids {
		if !a.Active {
			continue
		}
		if ctx.World.WrappedDelta(ship.Pos, a.Pos).Magnitude() < parameter.OpportunityBusyRadius {
			busy++
		}
	}
	if busy >= parameter.OpportunityBusyAsteroids {
		opportunity += parameter.OpportunityBusyPlayer
	}

	return vmath.Clamp(opportunity, 0, 1)
}

// === STEERING ===

// steeringTarget mixes the active behaviors into one capped target velocity
func (ai *AI) steeringTarget(ctx *engine.Context, u *component.UFO, dt float64) vmath.Vec {
	weights := stateWeights[u.State]

	sum := vmath.Vec{}
	for b := component.Behavior(0); b < component.BehaviorCount; b++ {
		w := weights[b]
		if b == component.BehaviorAvoidAsteroids {
			w += avoidAsteroidsWeight
		}
		if w == 0 {
			continue
		}
		sum = sum.Add(ai.behaviorVelocity(ctx, u, b, dt).Scale(w))
	}

	if sum.MagnitudeSq() == 0 {
		return sum
	}
	return sum.Normalize().Scale(math.Min(sum.Magnitude(), u.MaxSpeed))
}

func (ai *AI) behaviorVelocity(ctx *engine.Context, u *component.UFO, b component.Behavior, dt float64) vmath.Vec {
	ship := ctx.Ship

	switch b {
	case component.BehaviorSeek:
		if ship == nil || !ship.Active {
			return vmath.Vec{}
		}
		return ctx.World.WrappedDelta(u.Pos, ship.Pos).Normalize().Scale(u.Speed)

	case component.BehaviorFlee:
		if ship == nil || !ship.Active {
			return vmath.Vec{}
		}
		return ctx.World.WrappedDelta(ship.Pos, u.Pos).Normalize().Scale(u.Speed)

	case component.BehaviorFlank:
		if ship == nil || !ship.Active {
			return vmath.Vec{}
		}
		side := ship.Vel.Normalize().Perpendicular().Scale(parameter.UFOFlankOffset * u.FlankSide)
		point := ship.Pos.Add(side)
		return ctx.World.WrappedDelta(u.Pos, point).Normalize().Scale(u.Speed)

	case component.BehaviorSwarm:
		centroid, n := vmath.Vec{}, 0
		for _, other := range ctx.UFOs {
			if other == u || !other.Active || other.SpinningOut() {
				continue
			}
			centroid = centroid.Add(other.Pos)
			n++
		}
		if n == 0 {
			return vmath.Vec{}
		}
		centroid = centroid.Scale(1 / float64(n))
		return ctx.World.WrappedDelta(u.Pos, centroid).Normalize().Scale(u.Speed / 2)

	case component.BehaviorPatrol:
		u.PatrolPhase += parameter.UFOOscillationSpeed * dt
		forward := vmath.Vec{X: u.FlankSide, Y: 0}.Scale(u.Speed * 0.6)
		lateral := vmath.Vec{X: 0, Y: 1}.Scale(math.Sin(u.PatrolPhase) * u.Speed * 0.4)
		return forward.Add(lateral)

	case component.BehaviorIntercept:
		if ship == nil || !ship.Active {
			return vmath.Vec{}
		}
		lead := ship.Pos.Add(ship.Vel.Scale(parameter.UFOInterceptLeadSecs))
		return ctx.World.WrappedDelta(u.Pos, lead).Normalize().Scale(u.Speed)

	case component.BehaviorEvade:
		repulse := vmath.Vec{}
		for _, blt := range ctx.Bullets {
			if !blt.Active || blt.Owner != component.OwnerShip {
				continue
			}
			away := ctx.World.WrappedDelta(blt.Pos, u.Pos)
			d := away.Magnitude()
			if d == 0 || d > parameter.UFOEvadeRadius {
				continue
			}
			repulse = repulse.Add(away.Normalize().Scale((parameter.UFOEvadeRadius - d) / parameter.UFOEvadeRadius))
		}
		if repulse.MagnitudeSq() == 0 {
			return vmath.Vec{}
		}
		return repulse.Normalize().Scale(u.Speed)

	case component.BehaviorAvoidAsteroids:
		repulse := vmath.Vec{}
		for _, a := range ctx.Asteroids {
			if !a.Active {
				continue
			}
			away := ctx.World.WrappedDelta(a.HitboxCenter(), u.Pos)
			d := away.Magnitude()
			radius := parameter.UFOAvoidRadius + a.Radius
			if d == 0 || d > radius {
				continue
			}
			repulse = repulse.Add(away.Normalize().Scale((radius - d) / radius))
		}
		if repulse.MagnitudeSq() == 0 {
			return vmath.Vec{}
		}
		return repulse.Normalize().Scale(u.Speed)
	}

	return vmath.Vec{}
}

// === SHOOTING ===

func (ai *AI) updateShooting(ctx *engine.Context, u *component.UFO, dt float64) {
	ship := ctx.Ship
	if ship == nil || !ship.Active {
		return
	}

	u.ShootTimer += dt
	if u.ShootTimer < u.ShootInterval {
		return
	}
	if u.BulletsFired >= parameter.UFOMaxBullets(ctx.Level) {
		return
	}
	u.ShootTimer = 0
	u.BulletsFired++

	// Deadly and tactical saucers lead the target; the rest aim directly
	aimAt := ship.Pos
	if u.Personality == component.PersonalityDeadly || u.Personality == component.PersonalityTactical {
		aimAt = ship.Pos.Add(ship.Vel.Scale(parameter.UFOInterceptLeadSecs))
	}
	angle := ctx.World.WrappedDelta(u.Pos, aimAt).Heading()

	// Accuracy cone widens for clumsy saucers and early levels
	combined := u.Accuracy * u.AccuracyMult * levelAccuracy(ctx.Level)
	halfWidth := (1 - vmath.Clamp(combined, 0, 1)) * parameter.UFOAccuracySpread
	angle += (ctx.Rand.Float64()*2 - 1) * halfWidth

	ctx.Bullets = append(ctx.Bullets, component.NewBullet(
		component.OwnerUFO, u.Pos, angle,
		parameter.UFOBulletSpeed, parameter.BulletRadius, parameter.UFOBulletMaxDistance,
	))
}

// levelAccuracy penalizes aim on early levels, perfect from level 5
func levelAccuracy(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(parameter.UFOLevelAccuracy) {
		return 1.0
	}
	return parameter.UFOLevelAccuracy[level-1]
}

// === SPINOUT ===

// BeginSpinout puts a hit saucer into its damage-immune death spiral
func (ai *AI) BeginSpinout(ctx *engine.Context, u *component.UFO) {
	u.SpinoutTimer = parameter.SpinoutDurationSecs
	u.Vel = u.Vel.Scale(parameter.SpinoutSpeedFactor)
	ctx.Events.Emit(event.EventUFOSpinout, &event.UFODestroyedPayload{
		Pos:         u.Pos,
		Personality: u.Personality.String(),
	})
}

func (ai *AI) updateSpinout(ctx *engine.Context, u *component.UFO, dt float64) {
	u.SpinoutTimer -= dt
	u.Angle = vmath.NormalizeAngle(u.Angle + parameter.SpinoutSpinRate*dt)
	u.Integrate(dt)
	u.Pos = ctx.World.WrapPosition(u.Pos)

	if u.SpinoutTimer <= 0 {
		u.SpinoutTimer = 0
		u.Active = false
		ctx.Events.Emit(event.EventUFODestroyed, &event.UFODestroyedPayload{
			Pos:         u.Pos,
			Personality: u.Personality.String(),
		})
		ai.lifecycle.UFOBurst(ctx, u.Pos)
	}
}

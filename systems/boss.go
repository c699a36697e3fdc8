package systems

import (
	"math"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// BossSystem runs the capital-ship encounter: sine drift, the 6-second
// weapon cycles over 24 gun anchors, and hull collisions that chain-split
// asteroids within a single pass.
type BossSystem struct {
	lifecycle *Lifecycle

	polyBuf []vmath.Vec
}

// NewBossSystem wires the encounter to the lifecycle used for splits
func NewBossSystem(lifecycle *Lifecycle) *BossSystem {
	return &BossSystem{
		lifecycle: lifecycle,
		polyBuf:   make([]vmath.Vec, 0, len(parameter.BossHitboxPoints)),
	}
}

// Spawn brings the boss in from a field edge
func (bs *BossSystem) Spawn(ctx *engine.Context) *component.Boss {
	b := component.NewBoss(ctx.Rand, vmath.Vec{X: ctx.World.Width, Y: ctx.World.Height}, ctx.Level)
	ctx.Boss = b
	ctx.Events.Emit(event.EventBossSpawned, &event.BossSpawnedPayload{
		Pos:   b.Pos,
		Level: b.Level,
	})
	return b
}

// Update advances movement and weapons by the dilated dt
func (bs *BossSystem) Update(ctx *engine.Context, dt float64) {
	b := ctx.Boss
	if b == nil || !b.Active {
		return
	}

	b.Move(dt)

	// The boss crosses the field once and leaves; its bullets go with it
	if (b.Vel.X > 0 && b.Pos.X > ctx.World.Width+parameter.BossBoundRadius) ||
		(b.Vel.X < 0 && b.Pos.X < -parameter.BossBoundRadius) {
		b.Active = false
		for _, blt := range ctx.BossBullets {
			blt.Active = false
		}
		return
	}

	bs.updateWeapons(ctx, b, dt)
}

// updateWeapons runs the startup delay then the cycle machine: every 4th
// cycle all guns volley at once, other cycles walk the anchors one shot at
// a time
func (bs *BossSystem) updateWeapons(ctx *engine.Context, b *component.Boss, dt float64) {
	if b.StartupDelay > 0 {
		b.StartupDelay -= dt
		return
	}

	b.CycleTimer += dt
	if b.CycleTimer >= parameter.BossCycleSecs {
		b.CycleTimer -= parameter.BossCycleSecs
		b.CycleIndex++
		b.GunIndex = 0
		b.ShotTimer = 0
		b.VolleyFired = false
	}

	if (b.CycleIndex+1)%parameter.BossVolleyCycleEvery == 0 {
		if !b.VolleyFired {
			for i := 0; i < parameter.BossGunCount; i++ {
				bs.fireGun(ctx, b, i)
			}
			b.VolleyFired = true
		}
		return
	}

	b.ShotTimer += dt
	for b.ShotTimer >= parameter.BossShotIntervalSecs {
		b.ShotTimer -= parameter.BossShotIntervalSecs
		bs.fireGun(ctx, b, b.GunIndex)
		b.GunIndex = (b.GunIndex + 1) % parameter.BossGunCount
	}
}

// fireGun aims at the asteroid nearest the player, except every 4th shot
// overall which targets the player directly. Boss bullets never expire by
// distance.
func (bs *BossSystem) fireGun(ctx *engine.Context, b *component.Boss, gun int) {
	origin := b.GunPosition(gun)

	var targetPos vmath.Vec
	playerShot := b.ShotsTotal%parameter.BossPlayerShotEvery == parameter.BossPlayerShotEvery-1

	switch {
	case playerShot && ctx.Ship != nil && ctx.Ship.Active:
		targetPos = ctx.Ship.Pos
	default:
		a := nearestAsteroidToPlayer(ctx)
		if a == nil {
			if ctx.Ship == nil || !ctx.Ship.Active {
				return
			}
			targetPos = ctx.Ship.Pos
		} else {
			targetPos = a.Pos
		}
	}

	// Only shots that actually leave a gun advance the player-shot counter
	b.ShotsTotal++
	angle := ctx.World.WrappedDelta(origin, targetPos).Heading()
	ctx.BossBullets = append(ctx.BossBullets, component.NewBullet(
		component.OwnerBoss, origin, angle,
		parameter.BossBulletSpeed, parameter.BulletRadius, math.Inf(1),
	))
}

// nearestAsteroidToPlayer breaks distance ties randomly
func nearestAsteroidToPlayer(ctx *engine.Context) *component.Asteroid {
	if ctx.Ship == nil {
		return nil
	}
	var best *component.Asteroid
	bestDist := math.Inf(1)
	for _, a := range ctx.Asteroids {
		if !a.Active {
			continue
		}
		d := ctx.World.WrappedDelta(ctx.Ship.Pos, a.Pos).MagnitudeSq()
		if d < bestDist || (d == bestDist && ctx.Rand.Float64() < 0.5) {
			best = a
			bestDist = d
		}
	}
	return best
}

// CollideAsteroids is the boss↔asteroid pair pass: tier 3+ rocks split on
// the hull with their velocity doubled as the impactor, tiers 1 and 2 pass
// through. Split children are re-checked against the same polygon before
// the pass ends, so a large rock can chain down several tiers at once.
func (bs *BossSystem) CollideAsteroids(ctx *engine.Context) {
	b := ctx.Boss
	if b == nil || !b.Active {
		return
	}

	bs.polyBuf = b.WorldHitbox(bs.polyBuf[:0])

	pending := make([]*component.Asteroid, 0, len(ctx.Asteroids))
	for _, a := range ctx.Asteroids {
		if a.Active {
			pending = append(pending, a)
		}
	}

	for len(pending) > 0 {
		a := pending[0]
		pending = pending[1:]

		if !a.Active || a.Size < parameter.BossSplitMinSize {
			continue
		}
		if !ctx.World.CheckWrappedPolygonCollision(a.HitboxCenter(), a.Radius, bs.polyBuf) {
			continue
		}

		impactor := a.Vel.Scale(parameter.BossImpactVelocityBoost)
		children := bs.lifecycle.DestroyAsteroid(ctx, a, impactor, false)
		ctx.Events.Emit(event.EventBossImpact, &event.AsteroidSplitPayload{
			Pos:        a.Pos,
			ParentSize: a.Size,
			Children:   len(children),
		})
		pending = append(pending, children...)
	}
}

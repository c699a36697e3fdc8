package systems

import (
	"math"
	"sort"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Lifecycle owns spawning, splitting and capacity eviction. Pool caps are
// enforced here before any spawn or split completes, never after the fact.
type Lifecycle struct{}

// SpawnLevel places the level's asteroid wave on the field edges and
// returns how many were spawned
func (l *Lifecycle) SpawnLevel(ctx *engine.Context, level int) int {
	spawned := 0
	for _, code := range levelSpawnCodes(ctx, level) {
		if ctx.LiveAsteroids() >= parameter.MaxAsteroids {
			break
		}
		size := code[ctx.Rand.Intn(len(code))]
		l.SpawnAsteroid(ctx, edgeSpawnPosition(ctx), size)
		spawned++
	}

	ctx.Events.Emit(event.EventLevelStarted, &event.LevelStartedPayload{
		Level:     level,
		Asteroids: spawned,
	})
	return spawned
}

// levelSpawnCodes resolves the spawn table: guaranteed slots plus the
// independently rolled chance entries, with the open-ended fallback above
// the last tabulated level
func levelSpawnCodes(ctx *engine.Context, level int) []parameter.SizeCode {
	if level > len(parameter.LevelSpawnTable) {
		codes := make([]parameter.SizeCode, level)
		for i := range codes {
			codes[i] = parameter.CodeAny
		}
		return codes
	}

	entry := parameter.LevelSpawnTable[level-1]
	codes := append([]parameter.SizeCode{}, entry.Guaranteed...)
	for _, roll := range entry.Random {
		if ctx.Rand.Float64() < roll.Chance {
			codes = append(codes, roll.Code)
		}
	}
	return codes
}

// edgeSpawnPosition picks a point on a random field edge so waves never
// materialize on top of the ship
func edgeSpawnPosition(ctx *engine.Context) vmath.Vec {
	switch ctx.Rand.Intn(4) {
	case 0:
		return vmath.Vec{X: ctx.Rand.Float64() * ctx.World.Width, Y: 0}
	case 1:
		return vmath.Vec{X: ctx.Rand.Float64() * ctx.World.Width, Y: ctx.World.Height}
	case 2:
		return vmath.Vec{X: 0, Y: ctx.Rand.Float64() * ctx.World.Height}
	default:
		return vmath.Vec{X: ctx.World.Width, Y: ctx.Rand.Float64() * ctx.World.Height}
	}
}

// SpawnAsteroid adds one asteroid, evicting the newest rocks when the pool
// is at its hard cap
func (l *Lifecycle) SpawnAsteroid(ctx *engine.Context, pos vmath.Vec, size int) *component.Asteroid {
	l.evictAsteroids(ctx, 1)
	a := component.NewAsteroid(ctx.Rand, pos, size)
	ctx.AddAsteroid(a)
	return a
}

// evictAsteroids frees room for incoming spawns by removing the
// most-recently created asteroids first
func (l *Lifecycle) evictAsteroids(ctx *engine.Context, incoming int) {
	excess := ctx.LiveAsteroids() + incoming - parameter.MaxAsteroids
	for ; excess > 0; excess-- {
		var newest *component.Asteroid
		for _, a := range ctx.Asteroids {
			if !a.Active {
				continue
			}
			if newest == nil || a.Seq > newest.Seq {
				newest = a
			}
		}
		if newest == nil {
			return
		}
		newest.Active = false
		ctx.Events.Emit(event.EventAsteroidEvicted, &event.AsteroidDestroyedPayload{
			Pos:  newest.Pos,
			Size: newest.Size,
		})
	}
}

// DestroyAsteroid removes an asteroid, applies the split rule and spawns
// its burst. Returns any split children so a caller can re-check them
// against the same collider within the frame.
func (l *Lifecycle) DestroyAsteroid(ctx *engine.Context, a *component.Asteroid, impactorVel vmath.Vec, scored bool) []*component.Asteroid {
	if !a.Active {
		return nil
	}
	a.Active = false

	ctx.Events.Emit(event.EventAsteroidDestroyed, &event.AsteroidDestroyedPayload{
		Pos:    a.Pos,
		Size:   a.Size,
		Scored: scored,
	})
	l.AsteroidBurst(ctx, a.Pos, a.Size)

	children := l.splitChildren(ctx, a, impactorVel)
	if len(children) > 0 {
		ctx.Events.Emit(event.EventAsteroidSplit, &event.AsteroidSplitPayload{
			Pos:        a.Pos,
			ParentSize: a.Size,
			Children:   len(children),
		})
	}
	return children
}

// splitChildren applies the split rule: size >2 always yields two children
// of size-1; size 2 yields two size-1 children only 25% of the time and is
// destroyed outright otherwise; size 1 never splits
func (l *Lifecycle) splitChildren(ctx *engine.Context, parent *component.Asteroid, impactorVel vmath.Vec) []*component.Asteroid {
	switch {
	case parent.Size <= 1:
		return nil
	case parent.Size == 2:
		if ctx.Rand.Float64() >= parameter.SplitTier2Chance {
			return nil
		}
	}

	l.evictAsteroids(ctx, 2)

	parentSpeed := parent.Vel.Magnitude()
	parentAngle := parent.Vel.Heading()
	kick := impactorVel.Scale(parameter.SplitImpactorKick)

	children := make([]*component.Asteroid, 0, 2)
	for i := 0; i < 2; i++ {
		speed := parentSpeed * parameter.SplitChildSpeedFactor *
			(parameter.SplitSpeedVarMin +
				ctx.Rand.Float64()*(parameter.SplitSpeedVarMax-parameter.SplitSpeedVarMin))
		angle := parentAngle +
			(ctx.Rand.Float64()*2-1)*parameter.SplitAngleSpreadRad

		child := component.NewAsteroid(ctx.Rand, parent.Pos, parent.Size-1)
		child.Vel = vmath.FromAngle(angle, speed).Add(kick)
		ctx.AddAsteroid(child)
		children = append(children, child)
	}
	return children
}

// === PARTICLES ===

// SpawnParticle adds one particle after making room under the pool cap
func (l *Lifecycle) SpawnParticle(ctx *engine.Context, p *component.Particle) {
	l.evictParticles(ctx, 1)
	if len(ctx.Particles) >= parameter.MaxParticles {
		return // eviction already at its per-pass ceiling, drop the spawn
	}
	ctx.Particles = append(ctx.Particles, p)
}

// particleBudget converts a fraction of the pool cap to a particle count
func particleBudget(fraction float64) int {
	pool := float64(parameter.MaxParticles)
	return int(pool * fraction)
}

// evictParticles removes the lowest-priority, shortest-lived particles
// until the pool is back under its soft limit, never more than the
// configured fraction in one pass
func (l *Lifecycle) evictParticles(ctx *engine.Context, incoming int) {
	if len(ctx.Particles)+incoming <= parameter.MaxParticles {
		return
	}

	soft := particleBudget(parameter.ParticleSoftLimitFraction)
	maxEvict := particleBudget(parameter.ParticleEvictMaxFraction)

	live := make([]*component.Particle, 0, len(ctx.Particles))
	for _, p := range ctx.Particles {
		if p.Active {
			live = append(live, p)
		}
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].Priority != live[j].Priority {
			return live[i].Priority < live[j].Priority
		}
		return live[i].Life < live[j].Life
	})

	evicted := 0
	for _, p := range live {
		if evicted >= maxEvict || len(ctx.Particles)-evicted+incoming <= soft {
			break
		}
		p.Active = false
		evicted++
	}

	if evicted > 0 {
		compactParticles(ctx)
	}
}

func compactParticles(ctx *engine.Context) {
	out := ctx.Particles[:0]
	for _, p := range ctx.Particles {
		if p.Active {
			out = append(out, p)
		}
	}
	for i := len(out); i < len(ctx.Particles); i++ {
		ctx.Particles[i] = nil
	}
	ctx.Particles = out
}

// === EXPLOSION RECIPES ===

// AsteroidBurst spawns the tier-scaled debris cloud for one destroyed rock
func (l *Lifecycle) AsteroidBurst(ctx *engine.Context, pos vmath.Vec, size int) {
	count := int(float64(parameter.AsteroidBurstBase+size*parameter.AsteroidBurstPerSize) *
		parameter.AsteroidBurstScale)
	t := float64(size-1) / 8.0
	speed := vmath.Lerp(parameter.AsteroidParticleSpeedMin, parameter.AsteroidParticleSpeedMax, t)
	life := float64(size) * parameter.AsteroidParticleLifePerSize

	priority := parameter.PrioritySmallBurst
	switch {
	case size >= 7:
		priority = parameter.PriorityLargeBurst
	case size >= 4:
		priority = parameter.PriorityMediumBurst
	}

	l.burst(ctx, pos, count, speed, life, priority)
}

// UFOBurst spawns the saucer death explosion
func (l *Lifecycle) UFOBurst(ctx *engine.Context, pos vmath.Vec) {
	l.burst(ctx, pos, parameter.UFOBurstCount, 120, 1.2, parameter.PriorityUFODeath)
}

// ShipBurst spawns the player death explosion
func (l *Lifecycle) ShipBurst(ctx *engine.Context, pos vmath.Vec) {
	l.burst(ctx, pos, parameter.ShipDeathBurstCount, 140, 1.6, parameter.PriorityShipDeath)
}

func (l *Lifecycle) burst(ctx *engine.Context, pos vmath.Vec, count int, speed, life float64, priority int) {
	for i := 0; i < count; i++ {
		angle := ctx.Rand.Float64() * 2 * math.Pi
		jitter := 0.5 + ctx.Rand.Float64()*0.5
		lifeJitter := life * (0.75 + ctx.Rand.Float64()*0.25)

		l.SpawnParticle(ctx, &component.Particle{
			Transform: component.Transform{
				Pos:    pos,
				Vel:    vmath.FromAngle(angle, speed*jitter),
				Active: true,
			},
			Priority:    priority,
			Life:        lifeJitter,
			InitialLife: lifeJitter,
			Drag:        0.5,
			Color:       uint8(ctx.Rand.Intn(3)),
		})
	}
}

package systems

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// UFOBulletBreakChance is the odds a saucer bullet shatters the rock it
// hits instead of just being absorbed
const UFOBulletBreakChance = 0.10

// Collisions resolves the throttled pair categories. Each pass runs only
// when its scheduler slot is due; all hits deactivate entities logically
// and the frame-end compaction removes them.
type Collisions struct {
	scheduler *CollisionScheduler
	lifecycle *Lifecycle
	ai        *AI
	boss      *BossSystem
}

// NewCollisions wires the resolver to its collaborators
func NewCollisions(sched *CollisionScheduler, lc *Lifecycle, ai *AI, boss *BossSystem) *Collisions {
	return &Collisions{scheduler: sched, lifecycle: lc, ai: ai, boss: boss}
}

// Update runs every pair category that is due this frame. dt is real time;
// the scheduler throttles on wall-clock rates, not dilated ones.
func (cs *Collisions) Update(ctx *engine.Context, dt float64) {
	asteroids := float64(ctx.LiveAsteroids())
	ufos := float64(ctx.LiveUFOs())
	playerBullets := float64(countBullets(ctx, component.OwnerShip))
	ufoBullets := float64(countBullets(ctx, component.OwnerUFO))
	bossBullets := float64(len(ctx.BossBullets))
	bossLoad := 0.0
	if ctx.Boss != nil && ctx.Boss.Active {
		bossLoad = 1.0
	}

	type pass struct {
		kind parameter.PairKind
		load float64
		run  func(*engine.Context)
	}
	passes := []pass{
		{parameter.PairShipAsteroid, asteroids, cs.shipAsteroid},
		{parameter.PairShipUFO, ufos, cs.shipUFO},
		{parameter.PairShipUFOBullet, ufoBullets, cs.shipUFOBullet},
		{parameter.PairShipBoss, bossLoad, cs.shipBoss},
		{parameter.PairShipBossBullet, bossBullets, cs.shipBossBullet},
		{parameter.PairBulletAsteroid, playerBullets * asteroids, cs.bulletAsteroid},
		{parameter.PairBulletUFO, playerBullets * ufos, cs.bulletUFO},
		{parameter.PairBulletBoss, playerBullets * bossLoad, cs.bulletBoss},
		{parameter.PairBulletUFOBullet, playerBullets * ufoBullets, cs.bulletUFOBullet},
		{parameter.PairBulletBossBullet, playerBullets * bossBullets, cs.bulletBossBullet},
		{parameter.PairUFOAsteroid, ufos * asteroids, cs.ufoAsteroid},
		{parameter.PairUFOUFO, ufos * ufos, cs.ufoUFO},
		{parameter.PairUFOBoss, ufos * bossLoad, cs.ufoBoss},
		{parameter.PairUFOBulletAsteroid, ufoBullets * asteroids, cs.ufoBulletAsteroid},
		{parameter.PairBossAsteroid, asteroids * bossLoad, cs.bossAsteroid},
		{parameter.PairBossBulletAsteroid, bossBullets * asteroids, cs.bossBulletAsteroid},
	}

	for _, p := range passes {
		if cs.scheduler.ShouldRun(p.kind, dt, p.load) {
			p.run(ctx)
		}
	}
}

func countBullets(ctx *engine.Context, owner component.BulletOwner) int {
	n := 0
	for _, b := range ctx.Bullets {
		if b.Active && b.Owner == owner {
			n++
		}
	}
	return n
}

// === SHIP PASSES ===

func (cs *Collisions) shipAsteroid(ctx *engine.Context) {
	ship := ctx.Ship
	if ship == nil || !ship.Active || ship.Invulnerable() {
		return
	}
	for _, a := range ctx.Asteroids {
		if !a.Active {
			continue
		}
		if !ctx.World.CheckWrappedCollision(ship.Pos, ship.Radius, a.HitboxCenter(), a.Radius) {
			continue
		}
		if cs.absorbHit(ctx) {
			// Ramming with an active shield shatters the rock at half score
			cs.addScore(ctx, a.Size*parameter.ScorePerAsteroidSizeShield, "asteroid_ram")
			cs.lifecycle.DestroyAsteroid(ctx, a, ship.Vel, true)
			continue
		}
		cs.killShip(ctx)
		return
	}
}

func (cs *Collisions) shipUFO(ctx *engine.Context) {
	ship := ctx.Ship
	if ship == nil || !ship.Active || ship.Invulnerable() {
		return
	}
	for _, u := range ctx.UFOs {
		if !u.Active || u.SpinningOut() {
			continue
		}
		if !ctx.World.CheckWrappedCollision(ship.Pos, ship.Radius, u.Pos, u.Radius) {
			continue
		}
		if cs.absorbHit(ctx) {
			cs.addScore(ctx, parameter.ScoreUFOShieldKill, "ufo_ram")
			cs.destroyUFO(ctx, u)
			continue
		}
		cs.killShip(ctx)
		return
	}
}

func (cs *Collisions) shipUFOBullet(ctx *engine.Context) {
	cs.shipVsBullets(ctx, ctx.Bullets, component.OwnerUFO)
}

func (cs *Collisions) shipBossBullet(ctx *engine.Context) {
	cs.shipVsBullets(ctx, ctx.BossBullets, component.OwnerBoss)
}

func (cs *Collisions) shipVsBullets(ctx *engine.Context, bullets []*component.Bullet, owner component.BulletOwner) {
	ship := ctx.Ship
	if ship == nil || !ship.Active || ship.Invulnerable() {
		return
	}
	for _, b := range bullets {
		if !b.Active || b.Owner != owner {
			continue
		}
		if !ctx.World.CheckWrappedCollision(ship.Pos, ship.Radius, b.Pos, b.Radius) {
			continue
		}
		b.Active = false
		if cs.absorbHit(ctx) {
			continue
		}
		cs.killShip(ctx)
		return
	}
}

func (cs *Collisions) shipBoss(ctx *engine.Context) {
	ship := ctx.Ship
	b := ctx.Boss
	if ship == nil || !ship.Active || ship.Invulnerable() || b == nil || !b.Active {
		return
	}
	poly := b.WorldHitbox(nil)
	if !ctx.World.CheckWrappedPolygonCollision(ship.Pos, ship.Radius, poly) {
		return
	}
	if cs.absorbHit(ctx) {
		// Shield holds but the hull shoves the ship away
		away := ctx.World.WrappedDelta(b.Pos, ship.Pos).Normalize()
		ship.Vel = away.Scale(parameter.ShipMaxSpeed / 2)
		return
	}
	cs.killShip(ctx)
}

// absorbHit spends a shield hit if one is available
func (cs *Collisions) absorbHit(ctx *engine.Context) bool {
	ship := ctx.Ship
	if ship.ShieldHits <= 0 {
		return false
	}
	ship.ShieldHits--
	ship.ShieldRecharge = 0
	ctx.Events.Emit(event.EventShieldHit, &event.ShieldHitPayload{
		Remaining: ship.ShieldHits,
	})
	return true
}

func (cs *Collisions) killShip(ctx *engine.Context) {
	ship := ctx.Ship
	ship.Active = false
	ctx.Lives--
	cs.lifecycle.ShipBurst(ctx, ship.Pos)
	ctx.Events.Emit(event.EventShipDestroyed, nil)
	if ctx.Lives <= 0 {
		ctx.Events.Emit(event.EventGameOver, &event.GameOverPayload{
			Score: ctx.Score,
			Level: ctx.Level,
		})
	}
}

// === PLAYER BULLET PASSES ===

func (cs *Collisions) bulletAsteroid(ctx *engine.Context) {
	for _, b := range ctx.Bullets {
		if !b.Active || b.Owner != component.OwnerShip {
			continue
		}
		for _, a := range ctx.Asteroids {
			if !a.Active {
				continue
			}
			if !ctx.World.CheckWrappedCollision(b.Pos, b.Radius, a.HitboxCenter(), a.Radius) {
				continue
			}
			b.Active = false
			cs.addScore(ctx, a.Size*parameter.ScorePerAsteroidSize, "asteroid_kill")
			cs.lifecycle.DestroyAsteroid(ctx, a, b.Vel, true)
			break
		}
	}
}

func (cs *Collisions) bulletUFO(ctx *engine.Context) {
	for _, b := range ctx.Bullets {
		if !b.Active || b.Owner != component.OwnerShip {
			continue
		}
		for _, u := range ctx.UFOs {
			if !u.Active || u.SpinningOut() {
				continue
			}
			if !ctx.World.CheckWrappedCollision(b.Pos, b.Radius, u.Pos, u.Radius) {
				continue
			}
			b.Active = false
			cs.addScore(ctx, parameter.ScoreUFOKill, "ufo_kill")
			cs.ai.BeginSpinout(ctx, u)
			break
		}
	}
}

func (cs *Collisions) bulletBoss(ctx *engine.Context) {
	b := ctx.Boss
	if b == nil || !b.Active {
		return
	}
	poly := b.WorldHitbox(nil)
	for _, blt := range ctx.Bullets {
		if !blt.Active || blt.Owner != component.OwnerShip {
			continue
		}
		// The hull shrugs off small-arms fire
		if ctx.World.CheckWrappedPolygonCollision(blt.Pos, blt.Radius, poly) {
			blt.Active = false
		}
	}
}

func (cs *Collisions) bulletUFOBullet(ctx *engine.Context) {
	for _, pb := range ctx.Bullets {
		if !pb.Active || pb.Owner != component.OwnerShip {
			continue
		}
		for _, ub := range ctx.Bullets {
			if !ub.Active || ub.Owner != component.OwnerUFO {
				continue
			}
			if ctx.World.CheckWrappedCollision(pb.Pos, pb.Radius, ub.Pos, ub.Radius) {
				pb.Active = false
				ub.Active = false
				break
			}
		}
	}
}

func (cs *Collisions) bulletBossBullet(ctx *engine.Context) {
	for _, pb := range ctx.Bullets {
		if !pb.Active || pb.Owner != component.OwnerShip {
			continue
		}
		for _, bb := range ctx.BossBullets {
			if !bb.Active {
				continue
			}
			if ctx.World.CheckWrappedCollision(pb.Pos, pb.Radius, bb.Pos, bb.Radius) {
				pb.Active = false
				bb.Active = false
				break
			}
		}
	}
}

// === UFO PASSES ===

func (cs *Collisions) ufoAsteroid(ctx *engine.Context) {
	for _, u := range ctx.UFOs {
		if !u.Active || u.SpinningOut() {
			continue
		}
		for _, a := range ctx.Asteroids {
			if !a.Active {
				continue
			}
			if ctx.World.CheckWrappedCollision(u.Pos, u.Radius, a.HitboxCenter(), a.Radius) {
				cs.ai.BeginSpinout(ctx, u)
				break
			}
		}
	}
}

// ufoUFO separates overlapping saucers with a symmetric shove
func (cs *Collisions) ufoUFO(ctx *engine.Context) {
	for i, a := range ctx.UFOs {
		if !a.Active {
			continue
		}
		for _, b := range ctx.UFOs[i+1:] {
			if !b.Active {
				continue
			}
			if !ctx.World.CheckWrappedCollision(a.Pos, a.Radius, b.Pos, b.Radius) {
				continue
			}
			push := ctx.World.WrappedDelta(b.Pos, a.Pos)
			if push.MagnitudeSq() == 0 {
				push = vmath.Vec{X: 1}
			}
			push = push.Normalize().Scale(a.Speed / 4)
			a.Vel = a.Vel.Add(push)
			b.Vel = b.Vel.Sub(push)
		}
	}
}

func (cs *Collisions) ufoBoss(ctx *engine.Context) {
	b := ctx.Boss
	if b == nil || !b.Active {
		return
	}
	poly := b.WorldHitbox(nil)
	for _, u := range ctx.UFOs {
		if !u.Active || u.SpinningOut() {
			continue
		}
		if ctx.World.CheckWrappedPolygonCollision(u.Pos, u.Radius, poly) {
			cs.ai.BeginSpinout(ctx, u)
		}
	}
}

// ufoBulletAsteroid absorbs saucer fire into the rocks, with a small
// chance the hit shatters the rock outright
func (cs *Collisions) ufoBulletAsteroid(ctx *engine.Context) {
	for _, b := range ctx.Bullets {
		if !b.Active || b.Owner != component.OwnerUFO {
			continue
		}
		for _, a := range ctx.Asteroids {
			if !a.Active {
				continue
			}
			if !ctx.World.CheckWrappedCollision(b.Pos, b.Radius, a.HitboxCenter(), a.Radius) {
				continue
			}
			b.Active = false
			if ctx.Rand.Float64() < UFOBulletBreakChance {
				cs.lifecycle.DestroyAsteroid(ctx, a, b.Vel, false)
			}
			break
		}
	}
}

// === BOSS PASSES ===

func (cs *Collisions) bossAsteroid(ctx *engine.Context) {
	cs.boss.CollideAsteroids(ctx)
}

// bossBulletAsteroid lets the boss's own fire clear rocks from its path
func (cs *Collisions) bossBulletAsteroid(ctx *engine.Context) {
	for _, b := range ctx.BossBullets {
		if !b.Active {
			continue
		}
		for _, a := range ctx.Asteroids {
			if !a.Active {
				continue
			}
			if !ctx.World.CheckWrappedCollision(b.Pos, b.Radius, a.HitboxCenter(), a.Radius) {
				continue
			}
			b.Active = false
			cs.lifecycle.DestroyAsteroid(ctx, a, b.Vel, false)
			break
		}
	}
}

func (cs *Collisions) addScore(ctx *engine.Context, delta int, cause string) {
	if delta == 0 {
		return
	}
	ctx.Score += delta
	ctx.Events.Emit(event.EventScoreChanged, &event.ScoreChangedPayload{
		Delta: delta,
		Total: ctx.Score,
		Cause: cause,
	})
}

// destroyUFO removes a saucer immediately, no spinout
func (cs *Collisions) destroyUFO(ctx *engine.Context, u *component.UFO) {
	u.Active = false
	ctx.Events.Emit(event.EventUFODestroyed, &event.UFODestroyedPayload{
		Pos:         u.Pos,
		Personality: u.Personality.String(),
	})
	cs.lifecycle.UFOBurst(ctx, u.Pos)
}

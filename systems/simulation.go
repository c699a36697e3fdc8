package systems

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Simulation is the root: it owns the engine context and runs every system
// in a fixed order each frame. The dilation factor is resolved first, then
// every entity update, the ship included, receives the dilated dt.
type Simulation struct {
	Ctx *engine.Context

	dilation   *DilationController
	scheduler  *CollisionScheduler
	lifecycle  *Lifecycle
	movement   Movement
	ai         *AI
	ability    *Ability
	boss       *BossSystem
	collisions *Collisions
	log        zerolog.Logger

	cmd input.Command

	// lastTurn is the previous frame's turn input in degrees; the dilation
	// controller reads it before the ship integrates this frame
	lastTurn     float64
	respawnTimer float64
	clearTimer   float64
	clearPending bool
	ufoWaveTimer float64
	ufosPending  int
	ufoSpawnGap  float64
	over         bool
}

// NewSimulation builds the full system graph over a fresh context and
// spawns level 1
func NewSimulation(ctx *engine.Context, log zerolog.Logger) *Simulation {
	lc := &Lifecycle{}
	ai := NewAI(lc)
	boss := NewBossSystem(lc)
	sched := NewCollisionScheduler()

	s := &Simulation{
		Ctx:        ctx,
		dilation:   NewDilationController(),
		scheduler:  sched,
		lifecycle:  lc,
		ai:         ai,
		ability:    NewAbility(lc),
		boss:       boss,
		collisions: NewCollisions(sched, lc, ai, boss),
		log:        log,
	}
	s.startLevel()
	return s
}

// SetCommand stores the player intent consumed by the next Step
func (s *Simulation) SetCommand(cmd input.Command) {
	s.cmd = cmd
}

// Over reports whether the run has ended
func (s *Simulation) Over() bool {
	return s.over
}

// TimeScale exposes the current dilation factor for display
func (s *Simulation) TimeScale() float64 {
	return s.Ctx.TimeScale
}

// Step advances the simulation by one fixed real-time timestep
func (s *Simulation) Step(dt float64) {
	ctx := s.Ctx

	s.updateShipFlow(dt)

	// Player aggression sets the world's clock. The factor is resolved from
	// the previous frame's state before anything integrates, so the ship
	// itself freezes along with the world when the player goes quiet.
	speed, firing := 0.0, false
	if ctx.Ship != nil && ctx.Ship.Active {
		speed = ctx.Ship.Vel.Magnitude()
		firing = s.cmd.Fire
	}
	ctx.TimeScale = s.dilation.Update(dt, speed, firing, s.lastTurn)
	sdt := dt * ctx.TimeScale

	s.lastTurn = 0
	if ctx.Ship != nil && ctx.Ship.Active {
		s.lastTurn = s.movement.UpdateShip(ctx, s.dilation, s.cmd, sdt)
	}

	if s.cmd.Ability {
		s.ability.TryActivate(ctx)
	}
	s.ability.Update(ctx, dt)

	s.ai.Update(ctx, sdt)
	s.boss.Update(ctx, sdt)
	s.movement.UpdateBullets(ctx, sdt)
	s.movement.UpdateAsteroids(ctx, sdt)
	s.movement.UpdateParticles(ctx, sdt)

	// Collision throttling runs on wall-clock rates
	s.collisions.Update(ctx, dt)

	s.updateUFOWave(dt)
	s.updateLevelFlow(dt)

	ctx.Compact()

	if !s.over && ctx.Lives <= 0 && (ctx.Ship == nil || !ctx.Ship.Active) {
		s.over = true
		s.log.Info().Int("score", ctx.Score).Int("level", ctx.Level).Msg("game over")
	}
}

// updateShipFlow respawns the ship after its death delay
func (s *Simulation) updateShipFlow(dt float64) {
	ctx := s.Ctx
	if ctx.Ship != nil && ctx.Ship.Active {
		return
	}
	if ctx.Lives <= 0 {
		return
	}
	s.respawnTimer += dt
	if s.respawnTimer >= parameter.RespawnDelaySecs {
		s.respawnTimer = 0
		ctx.Ship = component.NewShip(ctx.Center())
	}
}

// updateUFOWave trickles the level's saucer wave in one at a time
func (s *Simulation) updateUFOWave(dt float64) {
	ctx := s.Ctx

	if s.ufoWaveTimer > 0 {
		s.ufoWaveTimer -= dt
		if s.ufoWaveTimer > 0 {
			return
		}
	}
	if s.ufosPending <= 0 {
		return
	}

	s.ufoSpawnGap -= dt
	if s.ufoSpawnGap > 0 {
		return
	}
	s.ufoSpawnGap = 1.0

	if ctx.LiveUFOs() >= parameter.MaxUFOs {
		return
	}
	s.ufosPending--
	ctx.UFOs = append(ctx.UFOs, component.NewUFO(ctx.Rand, edgeSpawnPosition(ctx), s.pickPersonality()))
}

// pickPersonality draws an archetype; deadly saucers join from level 5
func (s *Simulation) pickPersonality() component.Personality {
	ctx := s.Ctx
	if ctx.Level >= parameter.DeadlyPersonalityLevel &&
		ctx.Rand.Float64() < parameter.DeadlyPersonalityChance {
		return component.PersonalityDeadly
	}
	return component.Personality(ctx.Rand.Intn(int(component.PersonalityDeadly)))
}

// updateLevelFlow watches for a cleared field and starts the next level
func (s *Simulation) updateLevelFlow(dt float64) {
	ctx := s.Ctx

	cleared := ctx.LiveAsteroids() == 0 &&
		ctx.LiveUFOs() == 0 &&
		s.ufosPending == 0 &&
		(ctx.Boss == nil || !ctx.Boss.Active)
	if !cleared {
		s.clearPending = false
		return
	}

	if !s.clearPending {
		s.clearPending = true
		s.clearTimer = parameter.LevelClearDelaySecs
		ctx.Events.Emit(event.EventLevelCleared, &event.LevelStartedPayload{
			Level: ctx.Level,
		})
		return
	}

	s.clearTimer -= dt
	if s.clearTimer > 0 {
		return
	}
	s.clearPending = false

	ctx.Level++
	if ctx.Lives < parameter.MaxLives {
		ctx.Lives++
	}
	// Stray shots from the finished level do not follow the player in
	for _, b := range ctx.Bullets {
		b.Active = false
	}
	s.startLevel()
}

// startLevel spawns the wave, arms the saucer trickle and grants the grace
// window
func (s *Simulation) startLevel() {
	ctx := s.Ctx

	s.lifecycle.SpawnLevel(ctx, ctx.Level)

	if ctx.Ship == nil {
		ctx.Ship = component.NewShip(ctx.Center())
	} else if ctx.Ship.Active {
		ctx.Ship.Pos = ctx.Center()
		ctx.Ship.Vel = vmath.Vec{}
		ctx.Ship.ShieldHits = parameter.ShieldMaxHits
		ctx.Ship.InvulnTimer = parameter.LevelStartInvulnSecs
	}

	perLevel := parameter.UFOWaveMinPerLevel +
		ctx.Rand.Intn(parameter.UFOWaveMaxPerLevel-parameter.UFOWaveMinPerLevel+1)
	s.ufosPending = perLevel * ctx.Level
	if s.ufosPending > parameter.MaxUFOs {
		s.ufosPending = parameter.MaxUFOs
	}
	s.ufoWaveTimer = parameter.UFOWaveDelaySecs
	s.ufoSpawnGap = 0

	if ctx.Level%parameter.BossLevelEvery == 0 {
		s.boss.Spawn(ctx)
	}

	s.log.Info().
		Int("level", ctx.Level).
		Int("asteroids", ctx.LiveAsteroids()).
		Int("ufos_pending", s.ufosPending).
		Bool("boss", ctx.Boss != nil).
		Msg("level started")
}

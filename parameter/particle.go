package parameter

// Particle eviction priorities, 0 = first to evict
const (
	PriorityAmbient     = 0
	PriorityDebris      = 1
	PrioritySmallBurst  = 2
	PriorityMediumBurst = 3
	PriorityLargeBurst  = 4
	PriorityUFODeath    = 5
	PriorityShipDeath   = 6
)

// Eviction policy: when the pool is full, remove lowest-priority,
// shortest-remaining-lifetime particles until under the soft limit, never
// more than the fraction below in one pass.
const (
	ParticleSoftLimitFraction = 0.9
	ParticleEvictMaxFraction  = 0.2
)

// Explosion recipes
const (
	// Asteroid bursts: total = (20 + 2·size·20) / 2, split 40% red /
	// 35% orange / 25% yellow
	AsteroidBurstBase    = 20
	AsteroidBurstPerSize = 40
	AsteroidBurstScale   = 0.5

	// Particle speed interpolates 50→150 across tiers 1→9
	AsteroidParticleSpeedMin = 50.0
	AsteroidParticleSpeedMax = 150.0

	// Lifetime = size × this, with 0.75–1.0 jitter
	AsteroidParticleLifePerSize = 0.2

	UFOBurstCount      = 90
	ShipDeathBurstCount = 150
)

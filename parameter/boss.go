package parameter

// Boss movement: horizontal drift plus a vertical sine wave whose amplitude
// is randomized per spawn and scaled by level
const (
	BossSpeed            = 60.0
	BossSineFrequency    = 0.1 // full waves per second
	BossSineAmplitudeMin = 10.0
	BossSineAmplitudeMax = 40.0
	BossAmplitudePerLevel = 2.0
)

// Boss weapon cycling: after the startup delay the boss runs 6-second
// cycles; every 4th cycle all guns fire at once, otherwise guns fire one by
// one every shot interval.
const (
	BossStartupDelaySecs = 4.0
	BossCycleSecs        = 6.0
	BossVolleyCycleEvery = 4
	BossShotIntervalSecs = 0.25
	BossBulletSpeed      = 300.0
	BossPlayerShotEvery  = 4 // every 4th shot targets the player directly
)

// Gun anchors: 12 along the ventral ring and 12 along the spine line, in
// boss-local coordinates
const (
	BossRingGuns = 12
	BossLineGuns = 12
	BossGunCount = BossRingGuns + BossLineGuns
)

// BossHitboxPoints is the 11-point concave hull of the hull silhouette in
// boss-local coordinates. Mirrored in X when the boss faces the other way.
var BossHitboxPoints = [11]struct{ X, Y float64 }{
	{372, 57}, {219, 21}, {151, -38}, {129, -136}, {1, -128},
	{-18, -57}, {-171, -6}, {-369, -1}, {-371, 27}, {102, 137}, {371, 74},
}

// BossBoundRadius is the broad-phase radius enclosing the hitbox polygon
const BossBoundRadius = 380.0

// Collision with asteroids: tier 3+ asteroids split on the hull (impactor
// velocity doubled), tiers 1–2 pass through
const (
	BossSplitMinSize       = 3
	BossImpactVelocityBoost = 2.0
)

// BossLevelEvery schedules the encounter on every Nth level
const BossLevelEvery = 3

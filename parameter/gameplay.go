// Package parameter holds every tuning constant and lookup table used by the
// simulation, one concern per file. Systems never embed magic numbers; they
// read them from here so a rebalance touches a single package.
package parameter

// World defaults, overridable via config
const (
	DefaultWorldWidth  = 1600.0
	DefaultWorldHeight = 1000.0
)

// Entity pool hard caps
const (
	MaxAsteroids = 64
	MaxParticles = 2048
	MaxUFOs      = 12
)

// Scoring
const (
	ScorePerAsteroidSize       = 100 // size 4 asteroid = 400 points
	ScorePerAsteroidSizeShield = 50  // ramming with shield awards half
	ScoreUFOKill               = 200
	ScoreUFOShieldKill         = 100
)

// Lives and level flow
const (
	StartingLives        = 3
	MaxLives             = 3
	LevelStartInvulnSecs = 1.0
	UFOWaveDelaySecs     = 5.0
	RespawnDelaySecs     = 2.0
	LevelClearDelaySecs  = 3.0
)

package event

import "github.com/lixenwraith/stardrift/vmath"

// AsteroidDestroyedPayload carries the death site for effects and scoring
type AsteroidDestroyedPayload struct {
	Pos    vmath.Vec
	Size   int
	Scored bool // false for evictions and boss hull impacts
}

// AsteroidSplitPayload carries the parent and child tiers of one split
type AsteroidSplitPayload struct {
	Pos        vmath.Vec
	ParentSize int
	Children   int
}

// UFODestroyedPayload carries the saucer's death site and archetype
type UFODestroyedPayload struct {
	Pos         vmath.Vec
	Personality string
}

// ShieldHitPayload carries remaining hits after absorption
type ShieldHitPayload struct {
	Remaining int
}

// AbilityBlastPayload carries the blast step index within a charge
type AbilityBlastPayload struct {
	Step      int
	Destroyed int
}

// LevelStartedPayload carries the level index and its wave size
type LevelStartedPayload struct {
	Level     int
	Asteroids int
}

// ScoreChangedPayload carries the delta, the new total and what earned it
type ScoreChangedPayload struct {
	Delta int
	Total int
	Cause string
}

// GameOverPayload carries the final run results
type GameOverPayload struct {
	Score int
	Level int
}

// BossSpawnedPayload carries the entry position and level scaling
type BossSpawnedPayload struct {
	Pos   vmath.Vec
	Level int
}

// ScoreSubmittedPayload reports the async leaderboard outcome
type ScoreSubmittedPayload struct {
	Rank int64
	Err  error
}

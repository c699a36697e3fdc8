package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Lifecycle Event ===

	// EventAsteroidDestroyed signals an asteroid left play
	// Trigger: Collision passes, ability blasts
	// Consumer: Audio, Telemetry | Payload: *AsteroidDestroyedPayload
	EventAsteroidDestroyed EventType = iota

	// EventAsteroidSplit signals split children were spawned
	// Trigger: Lifecycle split rule
	// Consumer: Telemetry | Payload: *AsteroidSplitPayload
	EventAsteroidSplit

	// EventAsteroidEvicted signals capacity eviction removed an asteroid
	// Trigger: Lifecycle when spawning over the hard cap
	// Consumer: Telemetry | Payload: *AsteroidDestroyedPayload
	EventAsteroidEvicted

	// EventUFODestroyed signals a saucer exploded
	// Trigger: Collision passes, spinout expiry
	// Consumer: Audio, Telemetry | Payload: *UFODestroyedPayload
	EventUFODestroyed

	// EventUFOSpinout signals a saucer entered its death spiral
	// Trigger: Collision pass on an unshielded hit
	// Consumer: Audio | Payload: *UFODestroyedPayload
	EventUFOSpinout

	// === Ship Event ===

	// EventShieldHit signals the shield absorbed a hit
	// Trigger: Collision passes
	// Consumer: Audio, Render | Payload: *ShieldHitPayload
	EventShieldHit

	// EventShipDestroyed signals the ship was destroyed
	// Trigger: Collision pass with shields down
	// Consumer: Audio, Telemetry, game flow | Payload: nil
	EventShipDestroyed

	// EventAbilityBlast signals one blast step of the dual ability fired
	// Trigger: Ability state machine
	// Consumer: Audio, Render | Payload: *AbilityBlastPayload
	EventAbilityBlast

	// === Flow Event ===

	// EventLevelStarted signals a new level's wave was spawned
	// Trigger: Simulation level flow
	// Consumer: Telemetry, Audio | Payload: *LevelStartedPayload
	EventLevelStarted

	// EventLevelCleared signals all asteroids and saucers are gone
	// Trigger: Simulation level flow
	// Consumer: Telemetry | Payload: *LevelStartedPayload
	EventLevelCleared

	// EventScoreChanged signals the score total moved
	// Trigger: Kill and ram scoring
	// Consumer: Render, Leaderboard | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventGameOver signals the run ended
	// Trigger: Ship destroyed with no lives left
	// Consumer: Leaderboard submit, Telemetry | Payload: *GameOverPayload
	EventGameOver

	// === Boss Event ===

	// EventBossSpawned signals the boss entered the field
	// Trigger: Simulation level flow
	// Consumer: Audio, Telemetry | Payload: *BossSpawnedPayload
	EventBossSpawned

	// EventBossImpact signals the boss hull split an asteroid
	// Trigger: Boss collision pass
	// Consumer: Audio | Payload: *AsteroidSplitPayload
	EventBossImpact

	// === External Event ===

	// EventScoreSubmitted signals the background leaderboard submit finished
	// Trigger: Leaderboard worker goroutine
	// Consumer: Render (status line) | Payload: *ScoreSubmittedPayload
	EventScoreSubmitted
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventAsteroidSplit:
		return "asteroid_split"
	case EventAsteroidEvicted:
		return "asteroid_evicted"
	case EventUFODestroyed:
		return "ufo_destroyed"
	case EventUFOSpinout:
		return "ufo_spinout"
	case EventShieldHit:
		return "shield_hit"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventAbilityBlast:
		return "ability_blast"
	case EventLevelStarted:
		return "level_started"
	case EventLevelCleared:
		return "level_cleared"
	case EventScoreChanged:
		return "score_changed"
	case EventGameOver:
		return "game_over"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossImpact:
		return "boss_impact"
	case EventScoreSubmitted:
		return "score_submitted"
	default:
		return "unknown"
	}
}

// SimEvent represents a single simulation event with payload
type SimEvent struct {
	Type    EventType
	Payload any
}

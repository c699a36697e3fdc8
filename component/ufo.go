package component

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Personality is a UFO's fixed behavioral archetype
type Personality int

const (
	PersonalityAggressive Personality = iota
	PersonalityDefensive
	PersonalityTactical
	PersonalitySwarm
	PersonalityDeadly
	PersonalityCount
)

var personalityNames = [PersonalityCount]string{
	"aggressive", "defensive", "tactical", "swarm", "deadly",
}

func (p Personality) String() string {
	if p < 0 || p >= PersonalityCount {
		return "unknown"
	}
	return personalityNames[p]
}

// AIState is a node of the UFO state machine
type AIState int

const (
	StatePatrol AIState = iota
	StatePursue
	StateFlank
	StateFlee
	StateEvade
	StateIntercept
	StateSeek
	StateSwarmAttack
	StateSwarmPatrol
	AIStateCount
)

var aiStateNames = [AIStateCount]string{
	"patrol", "pursue", "flank", "flee", "evade",
	"intercept", "seek", "swarm_attack", "swarm_patrol",
}

func (s AIState) String() string {
	if s < 0 || s >= AIStateCount {
		return "unknown"
	}
	return aiStateNames[s]
}

// Behavior indexes the steering behaviors mixed by a state's weight vector
type Behavior int

const (
	BehaviorSeek Behavior = iota
	BehaviorFlee
	BehaviorFlank
	BehaviorSwarm
	BehaviorPatrol
	BehaviorIntercept
	BehaviorEvade
	BehaviorAvoidAsteroids
	BehaviorCount
)

// BehaviorWeights is a per-state mixture over the steering behaviors
type BehaviorWeights [BehaviorCount]float64

// UFO is one enemy saucer. Steering targets are recomputed every frame; the
// velocity is tweened, never snapped.
type UFO struct {
	Transform
	Radius      float64
	Personality Personality

	// FSM
	State         AIState
	StateTimer    float64 // remaining duration of the current state
	PatrolPhase   float64 // sine phase for lateral patrol oscillation
	FlankSide     float64 // +1 or -1, chosen at spawn

	// Shooting
	ShootTimer   float64
	ShootInterval float64
	BulletsFired int
	Accuracy     float64 // fixed per-spawn modifier
	AccuracyMult float64 // individual multiplier

	// Base stats after personality scaling
	Speed    float64
	MaxSpeed float64

	// Spinout sub-state: damage-immune erratic flight before exploding
	SpinoutTimer float64
}

// NewUFO creates a saucer at pos with personality-scaled stats
func NewUFO(rng *rand.Rand, pos vmath.Vec, p Personality) *UFO {
	speed := parameter.UFOBaseSpeed
	maxSpeed := parameter.UFOBaseMaxSpeed
	interval := parameter.UFOBaseShootInterval
	accuracy := 1.0
	if p == PersonalityDeadly {
		speed *= parameter.DeadlySpeedFactor
		maxSpeed *= parameter.DeadlySpeedFactor
		interval *= parameter.DeadlyShootFactor
		accuracy = parameter.DeadlyAccuracy
	}

	side := 1.0
	if rng.Float64() < 0.5 {
		side = -1.0
	}

	return &UFO{
		Transform: Transform{
			Pos:    pos,
			Active: true,
		},
		Radius:        parameter.UFORadius,
		Personality:   p,
		State:         StatePatrol,
		PatrolPhase:   rng.Float64() * 2 * math.Pi,
		FlankSide:     side,
		ShootInterval: interval,
		Accuracy:      accuracy,
		AccuracyMult:  0.8 + rng.Float64()*0.4,
		Speed:         speed,
		MaxSpeed:      maxSpeed,
	}
}

// SpinningOut reports whether the saucer is in its death spiral
func (u *UFO) SpinningOut() bool {
	return u.SpinoutTimer > 0
}

package parameter

// UFO base stats shared across personalities
const (
	UFORadius             = 26.0
	UFOBaseSpeed          = 100.0
	UFOBaseMaxSpeed       = 150.0
	UFOBaseShootInterval  = 1.0
	UFOBulletSpeed        = 400.0
	UFOBulletMaxDistance  = 1000.0
	UFOOscillationSpeed   = 2.0
	UFOPatrolLateralRange = 50.0
)

// Deadly personality multipliers
const (
	DeadlySpeedFactor    = 1.2
	DeadlyShootFactor    = 0.7
	DeadlyAccuracy       = 1.5
	DeadlyAggression     = 2.0
)

// Tactical awareness distances
const (
	UFOOptimalDistance   = 200.0
	UFODangerZone        = 100.0
	UFOEvadeRadius       = 100.0
	UFOAvoidRadius       = 80.0
	UFOFlankOffset       = 150.0
	UFOInterceptLeadSecs = 1.0
)

// Threat scoring contributions
const (
	ThreatCloseDistance  = 0.4
	ThreatMidDistance    = 0.2
	ThreatBulletNear     = 0.3 // bullet within 50 units
	ThreatBulletFar      = 0.1 // bullet within 100 units
	ThreatFastPlayer     = 0.3 // speed over 800
	ThreatMovingPlayer   = 0.1 // speed over 400
)

// Opportunity scoring contributions
const (
	OpportunitySlowPlayer       = 0.4 // speed under 200
	OpportunityModeratePlayer   = 0.2 // speed under 400
	OpportunityBusyPlayer       = 0.3 // 3+ asteroids within 200 of player
	OpportunityBusyRadius       = 200.0
	OpportunityBusyAsteroids    = 3
)

// Steering integration
const (
	UFOVelocityTweenRate = 3.0 // exponential approach toward target velocity
	UFORotationBase      = 2.5 // rad/sec before dilation compensation
	UFORotationDilationFloor = 0.1
)

// Accuracy cone: half-width is (1 - combined accuracy) × this, radians
const UFOAccuracySpread = 0.5

// Per-level accuracy penalty for levels 1–4; level 5+ is unpenalized
var UFOLevelAccuracy = []float64{0.5, 0.6, 0.8, 0.9}

// UFOMaxBullets is the level-scaled cap on bullets a single UFO may fire
func UFOMaxBullets(level int) int {
	return 5 + (level/2)*5
}

// Spinout sub-state after a shield-less hit: erratic flight, damage-immune,
// then explodes
const (
	SpinoutDurationSecs  = 1.2
	SpinoutSpinRate      = 12.0 // rad/sec
	SpinoutSpeedFactor   = 0.6
)

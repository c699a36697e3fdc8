package parameter

// Ship handling
const (
	ShipRadius        = 15.0
	ShipThrustPower   = 281.25
	ShipRotationSpeed = 5.0    // rad/sec
	ShipMaxSpeed      = 1000.0 // full-speed reference for decay/accel curves
	ShipSpeedDecay    = 0.275  // velocity retained per second when coasting
)

// Acceleration multiplier curve: boost at low speed, diminishing at high
const (
	ShipAccelBoostBelowPct = 50.0
	ShipAccelBoost         = 1.25
	ShipAccelFloorAtMax    = 0.1
)

// Speed decay sharpening thresholds (percent of ShipMaxSpeed)
const (
	ShipDecayFastPct   = 10.0 // below this the decay constant is raised to the 4th power
	ShipDecayFastPower = 4
)

// Rate-of-fire progression: quartic ramp to peak, then quadratic ease back
const (
	ShipROFStartInterval = 0.09
	ShipROFPeakInterval  = 0.042
	ShipROFFloorInterval = 0.17
	ShipROFPeakTime      = 2.0
	ShipROFCurveDuration = 11.38
)

// Shield system
const (
	ShieldMaxHits          = 3
	ShieldRechargeSecs     = 3.0
	ShieldDamageVisualSecs = 1.0
)

// Dual ability system
const (
	AbilityMaxCharges       = 2
	AbilityChargeSecs       = 10.0
	AbilityFirstChargeSecs  = 5.0
	AbilityBlastsPerCharge  = 2
	AbilityBreakDelayMin    = 0.2
	AbilityBreakDelayMax    = 0.42
	AbilityUFOClearFraction = 0.3 // UFOs despawned per blast
)

// Player bullets
const (
	BulletSpeed       = 500.0
	BulletMaxDistance = 1000.0
	BulletRadius      = 4.0
)

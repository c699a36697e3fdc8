package parameter

// Time dilation maps accumulated "movement units" (player speed plus firing
// and turning bonuses) to a global time-scale factor.

// Dilation clamp range
const (
	DilationMin = 0.01
	DilationMax = 5.0
)

// DilationBreakpoints and DilationTargets form a piecewise movement→dilation
// table. Linear interpolation applies between adjacent breakpoints below
// DilationLerpCeiling; above it the table acts as a step function.
var (
	DilationBreakpoints = []float64{0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}
	DilationTargets     = []float64{0.01, 1.0, 5.0, 2.5, 0.75, 0.5, 0.4, 0.3, 0.2, 0.1, 0.01}
)

// DilationLerpCeiling bounds the interpolated region of the table
const DilationLerpCeiling = 2000.0

// DilationRiseRate scales interpolation toward a higher target per second
const DilationRiseRate = 2.0

// Shooting movement bonus, progressive per consecutive shot. The 4th and
// later shots all use the last entry. Resets when firing stops.
var DilationShootBonuses = []float64{200, 300, 400, 500}

// Turning movement bonus: accumulated turn degrees map through a quadratic
// curve from TurnBonusRateMin to TurnBonusRateMax degrees→movement-units as
// the accumulator approaches TurnBonusFullDegrees.
const (
	TurnBonusRateMin     = 0.01
	TurnBonusRateMax     = 0.1
	TurnBonusFullDegrees = 1000.0
	TurnBonusCap         = 250.0
)

// Decay sharpening: when total movement falls under these fractions of the
// normal-speed breakpoint, the exponential decay constant is raised to the
// given powers so near-frozen time recovers quickly.
const (
	DilationDecayFastPct   = 0.10
	DilationDecayFasterPct = 0.05
	DilationDecayFastPow   = 4
	DilationDecayFasterPow = 8
)

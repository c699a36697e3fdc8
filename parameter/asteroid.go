package parameter

// Asteroid size tiers run 1 (smallest) through 9 (largest). Index 0 of each
// table is unused padding so tables index directly by tier.

// AsteroidBaseRadius is the radius of a tier-4 (scale 1.0) asteroid
const AsteroidBaseRadius = 50.0

// AsteroidHitboxScale shrinks hitboxes slightly below the visual silhouette
const AsteroidHitboxScale = 0.925

// AsteroidScaleFactors maps tier to visual/hitbox scale
var AsteroidScaleFactors = [10]float64{0, 0.25, 0.5, 0.75, 1.0, 1.5, 3.0, 4.5, 6.0, 7.5}

// AsteroidRotationMultipliers slow rotation for large tiers
var AsteroidRotationMultipliers = [10]float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1}

// AsteroidSpeedMultipliers speed up small tiers and slow large ones
var AsteroidSpeedMultipliers = [10]float64{3.0, 2.5, 2.0, 1.5, 1.0, 0.9, 0.7, 0.5, 0.3, 0.1}

// Base drift speed range before tier multiplier, units/sec
const (
	AsteroidBaseSpeedMin = 50.0 * 0.75
	AsteroidBaseSpeedMax = 150.0 * 0.75
)

// Base rotation speed range before tier multiplier, rad/sec
const (
	AsteroidBaseRotationMin = -2.0
	AsteroidBaseRotationMax = 2.0
)

// Hitbox center offsets from visual center, per tier. Large tiers have
// visibly lopsided sprites; the calibration keeps hits honest.
var AsteroidHitboxOffsets = [10]struct{ X, Y float64 }{
	{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	{2, -1}, {4, -2}, {6, -4}, {9, -5}, {12, -7},
}

// Splitting
const (
	SplitChildSpeedFactor = 1.3  // children inherit parent speed × this
	SplitSpeedVarMin      = 0.7  // × uniform variation
	SplitSpeedVarMax      = 1.3
	SplitAngleSpreadRad   = 1.0471975511965976 // ±60° around parent heading
	SplitImpactorKick     = 0.05               // fraction of impactor velocity added
	SplitTier2Chance      = 0.25               // tier 2: 25% yields children, else destroyed
)

// AsteroidRadius returns the collision radius for a size tier
func AsteroidRadius(size int) float64 {
	if size < 1 || size > 9 {
		return AsteroidBaseRadius * AsteroidHitboxScale
	}
	return AsteroidBaseRadius * AsteroidScaleFactors[size] * AsteroidHitboxScale
}

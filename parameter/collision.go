package parameter

// PairKind names one throttled collision-pair category
type PairKind int

const (
	PairShipAsteroid PairKind = iota
	PairShipUFO
	PairShipUFOBullet
	PairShipBoss
	PairShipBossBullet
	PairBulletAsteroid
	PairBulletUFO
	PairBulletBoss
	PairBulletUFOBullet
	PairBulletBossBullet
	PairUFOAsteroid
	PairUFOUFO
	PairUFOBoss
	PairUFOBulletAsteroid
	PairBossAsteroid
	PairBossBulletAsteroid

	PairKindCount
)

var pairKindNames = [PairKindCount]string{
	"ship_asteroid", "ship_ufo", "ship_ufo_bullet", "ship_boss",
	"ship_boss_bullet", "bullet_asteroid", "bullet_ufo", "bullet_boss",
	"bullet_ufo_bullet", "bullet_boss_bullet", "ufo_asteroid", "ufo_ufo",
	"ufo_boss", "ufo_bullet_asteroid", "boss_asteroid", "boss_bullet_asteroid",
}

func (k PairKind) String() string {
	if k < 0 || k >= PairKindCount {
		return "unknown"
	}
	return pairKindNames[k]
}

// PairConfig throttles one category: run at NormalFPS until the category's
// load metric exceeds LoadThreshold, then ease toward ReducedFPS.
type PairConfig struct {
	NormalFPS     float64
	ReducedFPS    float64
	LoadThreshold float64
}

// SchedulerTransitionRate is how fast a category's current fps moves toward
// its target, in fps per second. Smoothing avoids judder on load spikes.
const SchedulerTransitionRate = 10.0

// PairConfigs indexes by PairKind. Load metrics differ per category: simple
// counts for ship pairs, cross products for bullet×pool pairs.
var PairConfigs = [PairKindCount]PairConfig{
	PairShipAsteroid:       {60, 45, 250},
	PairShipUFO:            {60, 45, 8},
	PairShipUFOBullet:      {60, 45, 64},
	PairShipBoss:           {60, 45, 1},
	PairShipBossBullet:     {60, 45, 128},
	PairBulletAsteroid:     {60, 30, 2000},
	PairBulletUFO:          {60, 30, 400},
	PairBulletBoss:         {60, 30, 128},
	PairBulletUFOBullet:    {30, 15, 512},
	PairBulletBossBullet:   {30, 15, 512},
	PairUFOAsteroid:        {30, 20, 600},
	PairUFOUFO:             {20, 10, 36},
	PairUFOBoss:            {20, 10, 8},
	PairUFOBulletAsteroid:  {30, 15, 1500},
	PairBossAsteroid:       {30, 20, 250},
	PairBossBulletAsteroid: {20, 10, 2000},
}

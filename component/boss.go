package component

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Boss is the capital-ship encounter: linear horizontal drift, a vertical
// sine offset, 24 gun anchors and a concave polygon hitbox
type Boss struct {
	Transform
	Level     int
	Mirrored  bool // facing left; X coordinates of guns and hitbox flip
	BaseY     float64
	Amplitude float64
	SineTime  float64

	// Weapon cycle
	StartupDelay float64
	CycleTimer   float64
	CycleIndex   int
	ShotTimer    float64
	GunIndex     int
	ShotsTotal   int
	VolleyFired  bool

	Guns [parameter.BossGunCount]vmath.Vec // boss-local anchor points
}

// NewBoss spawns the boss entering from the given side at height y
func NewBoss(rng *rand.Rand, world vmath.Vec, level int) *Boss {
	amplitude := parameter.BossSineAmplitudeMin +
		rng.Float64()*(parameter.BossSineAmplitudeMax-parameter.BossSineAmplitudeMin) +
		float64(level)*parameter.BossAmplitudePerLevel

	mirrored := rng.Float64() < 0.5
	x := -parameter.BossBoundRadius
	vx := parameter.BossSpeed
	if mirrored {
		x = world.X + parameter.BossBoundRadius
		vx = -parameter.BossSpeed
	}
	y := world.Y * (0.25 + rng.Float64()*0.5)

	b := &Boss{
		Transform: Transform{
			Pos:    vmath.Vec{X: x, Y: y},
			Vel:    vmath.Vec{X: vx},
			Active: true,
		},
		Level:        level,
		Mirrored:     mirrored,
		BaseY:        y,
		Amplitude:    amplitude,
		StartupDelay: parameter.BossStartupDelaySecs,
	}
	b.layoutGuns()
	return b
}

// layoutGuns places 12 anchors on the ventral ring and 12 along the spine
func (b *Boss) layoutGuns() {
	const ringRadius = 140.0
	for i := 0; i < parameter.BossRingGuns; i++ {
		a := 2 * math.Pi * float64(i) / float64(parameter.BossRingGuns)
		b.Guns[i] = vmath.Vec{
			X: ringRadius * math.Cos(a),
			Y: 60 + ringRadius*0.4*math.Sin(a),
		}
	}
	for i := 0; i < parameter.BossLineGuns; i++ {
		t := float64(i)/float64(parameter.BossLineGuns-1)*2 - 1 // -1..1
		b.Guns[parameter.BossRingGuns+i] = vmath.Vec{X: t * 360, Y: -20}
	}
}

// Move advances the drift and recomputes the sine offset
func (b *Boss) Move(dt float64) {
	b.SineTime += dt
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y = b.BaseY + b.Amplitude*math.Sin(2*math.Pi*parameter.BossSineFrequency*b.SineTime)
}

// localToWorld applies mirroring and translation to a boss-local point
func (b *Boss) localToWorld(p vmath.Vec) vmath.Vec {
	if b.Mirrored {
		p.X = -p.X
	}
	return b.Pos.Add(p)
}

// GunPosition returns the world position of gun anchor i
func (b *Boss) GunPosition(i int) vmath.Vec {
	return b.localToWorld(b.Guns[i])
}

// WorldHitbox appends the world-space hitbox polygon to buf and returns it
func (b *Boss) WorldHitbox(buf []vmath.Vec) []vmath.Vec {
	for _, p := range parameter.BossHitboxPoints {
		buf = append(buf, b.localToWorld(vmath.Vec{X: p.X, Y: p.Y}))
	}
	return buf
}

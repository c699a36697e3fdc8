package component

import "github.com/lixenwraith/stardrift/vmath"

// BulletOwner identifies who fired a bullet; collision categories depend on it
type BulletOwner int

const (
	OwnerShip BulletOwner = iota
	OwnerUFO
	OwnerBoss
	BulletOwnerCount
)

var bulletOwnerNames = [BulletOwnerCount]string{"ship", "ufo", "boss"}

func (o BulletOwner) String() string {
	if o < 0 || o >= BulletOwnerCount {
		return "unknown"
	}
	return bulletOwnerNames[o]
}

// Bullet travels a fixed distance then expires. Distance accumulates from
// per-frame displacement so toroidal wraps do not inflate it.
type Bullet struct {
	Transform
	Owner       BulletOwner
	Radius      float64
	MaxDistance float64
	Traveled    float64
}

// NewBullet fires a bullet from pos along angle at speed
func NewBullet(owner BulletOwner, pos vmath.Vec, angle, speed, radius, maxDistance float64) *Bullet {
	return &Bullet{
		Transform: Transform{
			Pos:    pos,
			Vel:    vmath.FromAngle(angle, speed),
			Angle:  angle,
			Active: true,
		},
		Owner:       owner,
		Radius:      radius,
		MaxDistance: maxDistance,
	}
}

// Advance integrates the bullet and expires it past its range
func (b *Bullet) Advance(dt float64) {
	step := b.Vel.Scale(dt)
	b.Pos = b.Pos.Add(step)
	b.Traveled += step.Magnitude()
	if b.Traveled >= b.MaxDistance {
		b.Active = false
	}
}

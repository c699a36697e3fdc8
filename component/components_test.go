package component

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{PersonalityAggressive.String(), "aggressive"},
		{PersonalityDeadly.String(), "deadly"},
		{StatePatrol.String(), "patrol"},
		{StateSwarmAttack.String(), "swarm_attack"},
		{OwnerBoss.String(), "boss"},
		{Personality(99).String(), "unknown"},
		{AIState(-1).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNewShipStartsProtected(t *testing.T) {
	s := NewShip(vmath.Vec{X: 100, Y: 100})
	if s.ShieldHits != parameter.ShieldMaxHits {
		t.Errorf("shields = %d, want full", s.ShieldHits)
	}
	if !s.Invulnerable() {
		t.Error("fresh ship not invulnerable")
	}
	if !s.Active {
		t.Error("fresh ship inactive")
	}
}

func TestNewUFODeadlyScaling(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := NewUFO(rng, vmath.Vec{}, PersonalityTactical)
	deadly := NewUFO(rng, vmath.Vec{}, PersonalityDeadly)

	if deadly.Speed <= base.Speed || deadly.MaxSpeed <= base.MaxSpeed {
		t.Errorf("deadly speed %v/%v not above base %v/%v",
			deadly.Speed, deadly.MaxSpeed, base.Speed, base.MaxSpeed)
	}
	if deadly.ShootInterval >= base.ShootInterval {
		t.Errorf("deadly shoot interval %v not below base %v",
			deadly.ShootInterval, base.ShootInterval)
	}
	if deadly.Accuracy != parameter.DeadlyAccuracy {
		t.Errorf("deadly accuracy = %v", deadly.Accuracy)
	}
}

func TestNewUFOAccuracyMultiplierRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		u := NewUFO(rng, vmath.Vec{}, PersonalityAggressive)
		if u.AccuracyMult < 0.8 || u.AccuracyMult > 1.2 {
			t.Fatalf("accuracy multiplier %v outside [0.8, 1.2]", u.AccuracyMult)
		}
		if u.FlankSide != 1 && u.FlankSide != -1 {
			t.Fatalf("flank side %v", u.FlankSide)
		}
	}
}

func TestBossGunLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBoss(rng, vmath.Vec{X: 1600, Y: 1000}, 3)

	if len(b.Guns) != parameter.BossGunCount {
		t.Fatalf("gun count = %d", len(b.Guns))
	}

	// Ring anchors share a common radius in X
	const ringRadius = 140.0
	for i := 0; i < parameter.BossRingGuns; i++ {
		if math.Abs(b.Guns[i].X) > ringRadius+1e-9 {
			t.Errorf("ring gun %d at %v outside radius", i, b.Guns[i])
		}
	}
	// Spine anchors share one Y and span the full line
	first := b.Guns[parameter.BossRingGuns]
	last := b.Guns[parameter.BossGunCount-1]
	if first.Y != last.Y {
		t.Errorf("spine guns not colinear: %v vs %v", first, last)
	}
	if first.X != -last.X {
		t.Errorf("spine not symmetric: %v vs %v", first.X, last.X)
	}
}

func TestBossMirroringFlipsGuns(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var b *Boss
	for {
		b = NewBoss(rng, vmath.Vec{X: 1600, Y: 1000}, 1)
		if b.Mirrored {
			break
		}
	}

	local := b.Guns[parameter.BossRingGuns] // leftmost spine gun
	world := b.GunPosition(parameter.BossRingGuns)
	if world.X != b.Pos.X-local.X {
		t.Errorf("mirrored gun at %v, want X flipped around %v", world, b.Pos)
	}
}

func TestBossSinePath(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewBoss(rng, vmath.Vec{X: 1600, Y: 1000}, 1)

	quarter := 0.25 / parameter.BossSineFrequency
	steps := 1000
	for i := 0; i < steps; i++ {
		b.Move(quarter / float64(steps))
	}
	want := b.BaseY + b.Amplitude
	if math.Abs(b.Pos.Y-want) > 1.0 {
		t.Errorf("Y = %v at quarter period, want peak %v", b.Pos.Y, want)
	}
}

func TestBossHitboxPointCount(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	b := NewBoss(rng, vmath.Vec{X: 1600, Y: 1000}, 1)
	hull := b.WorldHitbox(nil)
	if len(hull) != len(parameter.BossHitboxPoints) {
		t.Errorf("hull has %d points, want %d", len(hull), len(parameter.BossHitboxPoints))
	}
}

func TestParticleExpires(t *testing.T) {
	p := &Particle{
		Transform:   Transform{Active: true, Vel: vmath.Vec{X: 100}},
		Life:        0.5,
		InitialLife: 0.5,
		Drag:        0.5,
	}
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60)
	}
	if p.Active {
		t.Error("particle alive past its lifetime")
	}
	if p.Vel.X >= 100 {
		t.Error("drag did not slow the particle")
	}
}

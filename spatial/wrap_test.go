package spatial

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/stardrift/vmath"
)

var testWorld = World{Width: 800, Height: 600}

func TestWrappedPositionsCandidateCount(t *testing.T) {
	tests := []struct {
		name   string
		pos    vmath.Vec
		radius float64
		want   int
	}{
		{"interior", vmath.Vec{X: 400, Y: 300}, 20, 1},
		{"left edge", vmath.Vec{X: 5, Y: 300}, 20, 2},
		{"right edge", vmath.Vec{X: 795, Y: 300}, 20, 2},
		{"top edge", vmath.Vec{X: 400, Y: 5}, 20, 2},
		{"bottom edge", vmath.Vec{X: 400, Y: 595}, 20, 2},
		{"top-left corner", vmath.Vec{X: 5, Y: 5}, 20, 4},
		{"bottom-right corner", vmath.Vec{X: 795, Y: 595}, 20, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testWorld.WrappedPositions(tt.pos, tt.radius, nil)
			if len(got) != tt.want {
				t.Errorf("got %d candidates, want %d: %v", len(got), tt.want, got)
			}
		})
	}
}

func TestWrappedCollisionAcrossEdge(t *testing.T) {
	// Ship at (2,300) r=15 and asteroid at (798,300) r=50: raw distance is
	// 796 but wrapped distance is 4, so they collide.
	ship := vmath.Vec{X: 2, Y: 300}
	asteroid := vmath.Vec{X: 798, Y: 300}
	if !testWorld.CheckWrappedCollision(ship, 15, asteroid, 50) {
		t.Error("expected collision across vertical edge")
	}
}

func TestWrappedCollisionInteriorMiss(t *testing.T) {
	if testWorld.CheckWrappedCollision(vmath.Vec{X: 100, Y: 100}, 10, vmath.Vec{X: 400, Y: 400}, 10) {
		t.Error("distant interior circles should not collide")
	}
}

func TestWrappedCollisionSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := vmath.Vec{X: rng.Float64() * 800, Y: rng.Float64() * 600}
		b := vmath.Vec{X: rng.Float64() * 800, Y: rng.Float64() * 600}
		ra := rng.Float64() * 80
		rb := rng.Float64() * 80
		ab := testWorld.CheckWrappedCollision(a, ra, b, rb)
		ba := testWorld.CheckWrappedCollision(b, rb, a, ra)
		if ab != ba {
			t.Fatalf("asymmetric result for a=%v ra=%v b=%v rb=%v: %v vs %v", a, ra, b, rb, ab, ba)
		}
	}
}

func TestWrappedCollisionCorner(t *testing.T) {
	// Objects in opposite corners touch through the corner wrap
	if !testWorld.CheckWrappedCollision(vmath.Vec{X: 3, Y: 3}, 10, vmath.Vec{X: 797, Y: 597}, 10) {
		t.Error("expected collision across corner wrap")
	}
}

func TestWrapPosition(t *testing.T) {
	tests := []struct {
		name string
		in   vmath.Vec
		want vmath.Vec
	}{
		{"inside unchanged", vmath.Vec{X: 400, Y: 300}, vmath.Vec{X: 400, Y: 300}},
		{"off left", vmath.Vec{X: -1, Y: 300}, vmath.Vec{X: 800, Y: 300}},
		{"off right", vmath.Vec{X: 801, Y: 300}, vmath.Vec{X: 0, Y: 300}},
		{"off top", vmath.Vec{X: 400, Y: -1}, vmath.Vec{X: 400, Y: 600}},
		{"off bottom", vmath.Vec{X: 400, Y: 601}, vmath.Vec{X: 400, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testWorld.WrapPosition(tt.in); got != tt.want {
				t.Errorf("WrapPosition(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrappedDelta(t *testing.T) {
	// A bullet wrapping from x=798 to x=2 moved 4 units, not 796
	d := testWorld.WrappedDelta(vmath.Vec{X: 798, Y: 300}, vmath.Vec{X: 2, Y: 300})
	if d.Magnitude() > 5 {
		t.Errorf("wrapped delta magnitude = %v, want ~4", d.Magnitude())
	}
}

package spatial

import "github.com/lixenwraith/stardrift/vmath"

// PointInPolygon tests containment with the ray casting method.
// Works for concave polygons; vertices may wind in either direction.
func PointInPolygon(p vmath.Vec, poly []vmath.Vec) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// pointSegmentDistanceSq returns the squared distance from p to segment ab
func pointSegmentDistanceSq(p, a, b vmath.Vec) float64 {
	ab := b.Sub(a)
	lenSq := ab.MagnitudeSq()
	if lenSq == 0 {
		return p.Sub(a).MagnitudeSq()
	}
	t := vmath.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Sub(closest).MagnitudeSq()
}

// CircleIntersectsPolygon reports whether a circle overlaps a polygon:
// either the center is inside, or any edge passes within the radius.
func CircleIntersectsPolygon(center vmath.Vec, radius float64, poly []vmath.Vec) bool {
	if PointInPolygon(center, poly) {
		return true
	}
	rSq := radius * radius
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if pointSegmentDistanceSq(center, poly[j], poly[i]) < rSq {
			return true
		}
	}
	return false
}

// CheckWrappedPolygonCollision tests a circle against a world-space polygon
// across all wrapped candidate positions of the circle
func (w World) CheckWrappedPolygonCollision(center vmath.Vec, radius float64, poly []vmath.Vec) bool {
	var buf [4]vmath.Vec
	for _, c := range w.WrappedPositions(center, radius, buf[:0]) {
		if CircleIntersectsPolygon(c, radius, poly) {
			return true
		}
	}
	return false
}

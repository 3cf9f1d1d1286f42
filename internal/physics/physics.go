// Package physics provides the launch model, the per-tick integrator and the
// distance and collision helpers shared by the game core.
package physics

import "math"

// Point represents a 2D coordinate in world space. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
// Circles that exactly touch do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Normalize returns the unit vector of (dx, dy).
// A zero-length vector yields (0, 0) instead of NaN.
func Normalize(dx, dy float64) (ux, uy float64) {
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return 0, 0
	}
	return dx / length, dy / length
}

// Perpendicular returns (dx, dy) rotated by 90 degrees.
func Perpendicular(dx, dy float64) (px, py float64) {
	return -dy, dx
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Speed returns the magnitude of a velocity vector.
func Speed(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

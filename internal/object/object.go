// Package object defines the launcher, projectile and target entities.
// They carry state only; the game package owns every mutation rule.
package object

import (
	"math"

	"github.com/tomz197/springlaunch/internal/physics"
)

// Spring is the launcher. Tension holds it back from its relaxed BaseLength.
type Spring struct {
	X, Y       float64 // Anchor position
	Tension    float64
	Angle      float64 // Degrees, interpreted through Convention
	BaseLength float64
	Convention physics.AngleConvention
}

// NewSpring creates a spring anchored at (x, y).
func NewSpring(x, y, baseLength float64, conv physics.AngleConvention) *Spring {
	return &Spring{
		X:          x,
		Y:          y,
		BaseLength: baseLength,
		Convention: conv,
	}
}

// CurrentLength is the held-back length of the spring.
func (s *Spring) CurrentLength() float64 {
	return s.BaseLength - s.Tension
}

// Endpoint returns the free end of the spring at the given length.
func (s *Spring) Endpoint(length float64) physics.Point {
	theta := s.Convention.Elevation(s.Angle)
	return physics.Point{
		X: s.X + length*math.Cos(theta),
		Y: s.Y - length*math.Sin(theta),
	}
}

// RestPoint is where the projectile sits before launch.
func (s *Spring) RestPoint() physics.Point {
	return s.Endpoint(s.CurrentLength())
}

// Coil returns a zigzag polyline from the anchor to end with the given number
// of coils, offset perpendicular to the spring axis by amplitude.
// A zero-length spring collapses to its anchor instead of producing NaN.
func (s *Spring) Coil(end physics.Point, coils int, amplitude float64) []physics.Point {
	dx := end.X - s.X
	dy := end.Y - s.Y
	px, py := physics.Perpendicular(physics.Normalize(dx, dy))

	points := make([]physics.Point, 0, coils+2)
	points = append(points, physics.Point{X: s.X, Y: s.Y})
	for i := 1; i <= coils; i++ {
		t := float64(i) / float64(coils+1)
		offset := amplitude
		if i%2 == 0 {
			offset = -amplitude
		}
		points = append(points, physics.Point{
			X: s.X + t*dx + px*offset,
			Y: s.Y + t*dy + py*offset,
		})
	}
	return append(points, end)
}

// Projectile is the launched ball.
type Projectile struct {
	physics.Body
}

// NewProjectile creates an idle projectile of the given radius.
func NewProjectile(radius float64) *Projectile {
	return &Projectile{Body: physics.Body{Radius: radius}}
}

// PlaceAt puts the projectile at rest at p, ready to fly.
func (p *Projectile) PlaceAt(pt physics.Point) {
	p.X, p.Y = pt.X, pt.Y
	p.VX, p.VY = 0, 0
	p.Active = true
}

// Speed returns the current speed.
func (p *Projectile) Speed() float64 {
	return physics.Speed(p.VX, p.VY)
}

// Target is a fixed circle to hit.
type Target struct {
	ID     int
	X, Y   float64
	Radius float64
	Color  string // Cosmetic, passed through to renderers
	Hit    bool
}

// MarkHit flags the target as hit. Hits are never undone except by Reset.
func (t *Target) MarkHit() {
	t.Hit = true
}

// Reset clears the hit flag.
func (t *Target) Reset() {
	t.Hit = false
}

// Overlaps reports whether p touches this target. Touching edges do not count.
func (t *Target) Overlaps(p *Projectile) bool {
	return physics.CirclesOverlap(p.X, p.Y, p.Radius, t.X, t.Y, t.Radius)
}

// CountHit returns the number of targets already hit.
func CountHit(targets []Target) int {
	n := 0
	for i := range targets {
		if targets[i].Hit {
			n++
		}
	}
	return n
}

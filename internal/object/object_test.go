package object

import (
	"math"
	"testing"

	"github.com/tomz197/springlaunch/internal/physics"
)

func TestSpringRestPoint(t *testing.T) {
	s := NewSpring(100, 550, 100, physics.FromHorizontal)
	s.Tension = 15
	s.Angle = 45

	if got := s.CurrentLength(); got != 85 {
		t.Fatalf("CurrentLength = %v, want 85", got)
	}
	p := s.RestPoint()
	d := 85 * math.Sqrt2 / 2
	if math.Abs(p.X-(100+d)) > 1e-9 || math.Abs(p.Y-(550-d)) > 1e-9 {
		t.Fatalf("RestPoint = %+v, want (%v,%v)", p, 100+d, 550-d)
	}
}

func TestSpringCoilZeroLength(t *testing.T) {
	s := NewSpring(100, 550, 100, physics.FromHorizontal)
	pts := s.Coil(physics.Point{X: 100, Y: 550}, 6, 15)
	if len(pts) != 8 {
		t.Fatalf("len = %d, want 8", len(pts))
	}
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("pts[%d] = %+v is NaN", i, p)
		}
	}
}

func TestSpringCoilZigzag(t *testing.T) {
	s := NewSpring(0, 0, 100, physics.FromHorizontal)
	pts := s.Coil(physics.Point{X: 70, Y: 0}, 6, 15)
	if pts[0] != (physics.Point{}) || pts[len(pts)-1] != (physics.Point{X: 70}) {
		t.Fatalf("coil endpoints = %+v, %+v", pts[0], pts[len(pts)-1])
	}
	// Along +x the perpendicular is +y; odd coils sit on that side.
	if pts[1].Y != 15 || pts[2].Y != -15 {
		t.Fatalf("coil offsets = %v, %v; want 15, -15", pts[1].Y, pts[2].Y)
	}
	if math.Abs(pts[1].X-10) > 1e-9 {
		t.Fatalf("first coil x = %v, want 10", pts[1].X)
	}
}

func TestTargetOverlaps(t *testing.T) {
	target := Target{X: 500, Y: 550, Radius: 20}
	p := NewProjectile(15)

	p.PlaceAt(physics.Point{X: 500, Y: 515})
	if target.Overlaps(p) {
		t.Fatal("touching circles reported as overlapping")
	}
	p.PlaceAt(physics.Point{X: 500, Y: 515.5})
	if !target.Overlaps(p) {
		t.Fatal("overlapping circles not detected")
	}
}

func TestCountHit(t *testing.T) {
	targets := []Target{{Hit: true}, {}, {Hit: true}}
	if n := CountHit(targets); n != 2 {
		t.Fatalf("CountHit = %d, want 2", n)
	}
	targets[0].Reset()
	if n := CountHit(targets); n != 1 {
		t.Fatalf("CountHit after reset = %d, want 1", n)
	}
}

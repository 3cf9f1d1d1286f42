package physics

import "testing"

func classicWorld() World {
	return World{
		Gravity:     0.2,
		Damping:     0.99,
		Restitution: 0.6,
		RestSpeed:   0.5,
		FloorY:      550,
		Width:       1000,
		Floor:       FloorHardStop,
		Walls:       WallRetire,
	}
}

func TestIntegrateOrdering(t *testing.T) {
	b := &Body{X: 100, Y: 100, VX: 2, VY: 0, Radius: 15, Active: true}
	w := classicWorld()

	if ev := Integrate(b, w); ev != EventNone {
		t.Fatalf("event = %v, want none", ev)
	}
	// Gravity lands in the position update of the same tick, damping only after it.
	if !near(b.Y, 100.2, eps) {
		t.Fatalf("y = %v, want 100.2", b.Y)
	}
	if !near(b.X, 102, eps) {
		t.Fatalf("x = %v, want 102", b.X)
	}
	if !near(b.VY, 0.2*0.99, eps) || !near(b.VX, 2*0.99, eps) {
		t.Fatalf("velocity = (%v,%v), want damped", b.VX, b.VY)
	}
}

func TestIntegrateHardStopFloor(t *testing.T) {
	b := &Body{X: 400, Y: 534, VX: 3, VY: 5, Radius: 15, Active: true}
	w := classicWorld()

	if ev := Integrate(b, w); ev != EventLanded {
		t.Fatalf("event = %v, want landed", ev)
	}
	if b.Active {
		t.Fatal("body still active after landing")
	}
	if b.Y != 535 {
		t.Fatalf("y = %v, want clamped to 535", b.Y)
	}
	if b.VX != 0 || b.VY != 0 {
		t.Fatalf("velocity = (%v,%v), want zero", b.VX, b.VY)
	}

	x, y := b.X, b.Y
	if ev := Integrate(b, w); ev != EventNone {
		t.Fatalf("retired body produced %v", ev)
	}
	if b.X != x || b.Y != y {
		t.Fatal("retired body moved")
	}
}

func TestIntegrateBounceComesToRest(t *testing.T) {
	w := classicWorld()
	w.Floor = FloorBounce
	w.Walls = WallNone
	b := &Body{X: 400, Y: 300, Radius: 15, Active: true}

	bounces := 0
	for tick := 0; tick < 10000; tick++ {
		wasDown := b.VY > 0
		ev := Integrate(b, w)
		if ev == EventLanded {
			if b.Active || b.VY != 0 {
				t.Fatalf("landed body active=%v vy=%v", b.Active, b.VY)
			}
			if bounces == 0 {
				t.Fatal("landed without bouncing first")
			}
			return
		}
		if wasDown && b.VY < 0 {
			bounces++
			if b.Y != w.FloorY-b.Radius {
				t.Fatalf("bounce at y=%v, want clamped", b.Y)
			}
		}
	}
	t.Fatal("body never came to rest")
}

func TestIntegrateWalls(t *testing.T) {
	cases := []struct {
		name       string
		policy     WallPolicy
		wantEvent  Event
		wantActive bool
	}{
		{"retire", WallRetire, EventHitWall, false},
		{"bounce", WallBounce, EventNone, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := classicWorld()
			w.Walls = tc.policy
			b := &Body{X: 980, Y: 200, VX: 10, Radius: 15, Active: true}

			ev := Integrate(b, w)
			if ev != tc.wantEvent {
				t.Fatalf("event = %v, want %v", ev, tc.wantEvent)
			}
			if b.Active != tc.wantActive {
				t.Fatalf("active = %v, want %v", b.Active, tc.wantActive)
			}
			if b.X != 985 {
				t.Fatalf("x = %v, want clamped to 985", b.X)
			}
			if b.VX >= 0 {
				t.Fatalf("vx = %v, want reflected", b.VX)
			}
		})
	}
}

func TestIntegrateNoWalls(t *testing.T) {
	w := classicWorld()
	w.Walls = WallNone
	b := &Body{X: 995, Y: 200, VX: 10, Radius: 15, Active: true}
	if ev := Integrate(b, w); ev != EventNone || b.X <= 1000 {
		t.Fatalf("event = %v x = %v, want free flight past the edge", ev, b.X)
	}
}

func TestFloorTakesPrecedenceOverWall(t *testing.T) {
	w := classicWorld()
	b := &Body{X: 990, Y: 540, VX: 10, VY: 5, Radius: 15, Active: true}
	if ev := Integrate(b, w); ev != EventLanded {
		t.Fatalf("event = %v, want landed", ev)
	}
}

func TestEventString(t *testing.T) {
	if EventHitWall.String() != "hit_wall" {
		t.Fatalf("got %q", EventHitWall.String())
	}
	if Event(42).String() != "Event(42)" {
		t.Fatalf("got %q", Event(42).String())
	}
}

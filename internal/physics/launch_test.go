package physics

import (
	"math"
	"testing"
)

var classicLaunch = LaunchParams{
	SpringConstant:  0.03,
	ForceMultiplier: 7,
	BaseLength:      100,
	Convention:      FromHorizontal,
}

func TestLaunchVelocityReference(t *testing.T) {
	force := LaunchForce(15, classicLaunch)
	if !near(force, 3.15, eps) {
		t.Fatalf("force = %v, want 3.15", force)
	}

	vx, vy := LaunchVelocity(15, 45, classicLaunch)
	want := 3.15 * math.Sqrt2 / 2
	if !near(vx, want, 1e-9) || !near(vy, -want, 1e-9) {
		t.Fatalf("velocity = (%v,%v), want (%v,%v)", vx, vy, want, -want)
	}
	if !near(vx, 2.23, 0.005) {
		t.Fatalf("vx = %v, want about 2.23", vx)
	}
}

func TestLaunchSpeedMonotonicInTension(t *testing.T) {
	for _, angle := range []float64{0, 30, 45, 60, 90} {
		prev := -1.0
		for tension := 0.0; tension < classicLaunch.BaseLength; tension += 2.5 {
			vx, vy := LaunchVelocity(tension, angle, classicLaunch)
			speed := Speed(vx, vy)
			if tension > 0 && speed <= prev {
				t.Fatalf("angle %v: speed at tension %v = %v, not above %v", angle, tension, speed, prev)
			}
			prev = speed
		}
	}
}

func TestLaunchDirectionMatchesAngle(t *testing.T) {
	for angle := 0.0; angle <= 90; angle += 15 {
		vx, vy := LaunchVelocity(20, angle, classicLaunch)
		// Flip vy back to a y-up frame before measuring.
		got := math.Atan2(-vy, vx) * 180 / math.Pi
		if !near(got, angle, 1e-9) {
			t.Fatalf("direction = %v°, want %v°", got, angle)
		}
	}
}

func TestLaunchFromVertical(t *testing.T) {
	p := classicLaunch
	p.Convention = FromVertical

	vx, vy := LaunchVelocity(20, 0, p)
	if !near(vx, 0, 1e-9) || vy >= 0 {
		t.Fatalf("0° from vertical = (%v,%v), want straight up", vx, vy)
	}

	vx, vy = LaunchVelocity(20, 90, p)
	if vx <= 0 || !near(vy, 0, 1e-9) {
		t.Fatalf("90° from vertical = (%v,%v), want flat", vx, vy)
	}
}

func TestCompressionClamp(t *testing.T) {
	cases := []struct {
		tension float64
		check   func(float64) bool
	}{
		{-5, func(c float64) bool { return c == 0 }},
		{math.NaN(), func(c float64) bool { return c == 0 }},
		{40, func(c float64) bool { return c == 40 }},
		{100, func(c float64) bool { return c < 100 && c > 99.99 }},
		{250, func(c float64) bool { return c < 100 && c > 99.99 }},
	}
	for _, tc := range cases {
		if got := classicLaunch.Compression(tc.tension); !tc.check(got) {
			t.Errorf("Compression(%v) = %v", tc.tension, got)
		}
	}
}

func TestAngleConventionText(t *testing.T) {
	var c AngleConvention
	if err := c.UnmarshalText([]byte("vertical")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != FromVertical {
		t.Fatalf("got %v, want vertical", c)
	}
	if err := c.UnmarshalText([]byte("diagonal")); err == nil {
		t.Fatal("expected error for unknown convention")
	}
}

package physics

import (
	"fmt"
	"math"
)

// AngleConvention selects how a user-facing launch angle maps to an elevation.
type AngleConvention int

const (
	// FromHorizontal treats 0° as flat and 90° as straight up.
	FromHorizontal AngleConvention = iota
	// FromVertical treats 0° as straight up; the elevation is 90° minus the angle.
	FromVertical
)

var angleConventionNames = map[AngleConvention]string{
	FromHorizontal: "horizontal",
	FromVertical:   "vertical",
}

func (c AngleConvention) String() string {
	if name, ok := angleConventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("AngleConvention(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c AngleConvention) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *AngleConvention) UnmarshalText(text []byte) error {
	for conv, name := range angleConventionNames {
		if name == string(text) {
			*c = conv
			return nil
		}
	}
	return fmt.Errorf("unknown angle convention %q", text)
}

// Elevation converts an angle in degrees to the elevation above the horizontal, in radians.
func (c AngleConvention) Elevation(angleDeg float64) float64 {
	if c == FromVertical {
		angleDeg = 90 - angleDeg
	}
	return angleDeg * math.Pi / 180
}

// LaunchParams are the spring constants used to turn tension into velocity.
type LaunchParams struct {
	SpringConstant  float64
	ForceMultiplier float64 // empirical tuning scalar applied on top of Hooke's law
	BaseLength      float64
	Convention      AngleConvention
}

// Compression clamps tension to [0, BaseLength).
func (p LaunchParams) Compression(tension float64) float64 {
	if tension < 0 || math.IsNaN(tension) {
		return 0
	}
	if tension >= p.BaseLength {
		return math.Nextafter(p.BaseLength, 0)
	}
	return tension
}

// LaunchForce returns the force magnitude stored in a spring held back by tension.
func LaunchForce(tension float64, p LaunchParams) float64 {
	return p.SpringConstant * p.Compression(tension) * p.ForceMultiplier
}

// LaunchVelocity resolves the spring force into initial velocity components.
// Screen Y grows downward, so an upward launch has a negative vy.
func LaunchVelocity(tension, angleDeg float64, p LaunchParams) (vx, vy float64) {
	force := LaunchForce(tension, p)
	theta := p.Convention.Elevation(angleDeg)
	return force * math.Cos(theta), -force * math.Sin(theta)
}

package physics

import (
	"fmt"
	"math"
)

// Event is a terminal or scoring occurrence produced during a tick.
type Event int

const (
	EventNone      Event = iota
	EventLanded          // came to rest on the floor
	EventHitWall         // retired by a side wall
	EventHitTarget       // retired by a target hit
	EventWon             // target hit that completed the set
)

var eventNames = [...]string{
	EventNone:      "none",
	EventLanded:    "landed",
	EventHitWall:   "hit_wall",
	EventHitTarget: "hit_target",
	EventWon:       "won",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler so events read well on the wire.
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Terminal reports whether the event ends a flight.
func (e Event) Terminal() bool {
	return e != EventNone
}

// FloorPolicy selects the floor collision response.
type FloorPolicy int

const (
	// FloorHardStop zeroes velocity and retires the body on first contact.
	FloorHardStop FloorPolicy = iota
	// FloorBounce reflects vy with restitution until the rebound drops below RestSpeed.
	FloorBounce
)

// WallPolicy selects the side wall collision response.
type WallPolicy int

const (
	// WallRetire reflects vx and retires the body.
	WallRetire WallPolicy = iota
	// WallBounce reflects vx with restitution and keeps flying.
	WallBounce
	// WallNone disables side walls entirely.
	WallNone
)

var floorPolicyNames = map[FloorPolicy]string{
	FloorHardStop: "hard_stop",
	FloorBounce:   "bounce",
}

var wallPolicyNames = map[WallPolicy]string{
	WallRetire: "retire",
	WallBounce: "bounce",
	WallNone:   "none",
}

func (p FloorPolicy) String() string {
	if name, ok := floorPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("FloorPolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p FloorPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FloorPolicy) UnmarshalText(text []byte) error {
	for policy, name := range floorPolicyNames {
		if name == string(text) {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("unknown floor policy %q", text)
}

func (p WallPolicy) String() string {
	if name, ok := wallPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("WallPolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p WallPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *WallPolicy) UnmarshalText(text []byte) error {
	for policy, name := range wallPolicyNames {
		if name == string(text) {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("unknown wall policy %q", text)
}

// Body is a free-flying circle.
type Body struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, per tick
	Radius float64
	Active bool // false once retired
}

// Retire stops the body. A retired body is never integrated again.
func (b *Body) Retire() {
	b.Active = false
}

// World holds the per-tick forces and boundaries.
type World struct {
	Gravity     float64 // added to vy every tick
	Damping     float64 // velocity factor applied after the position update, in (0, 1]
	Restitution float64 // fraction of velocity kept on a bounce
	RestSpeed   float64 // FloorBounce: rebounds slower than this come to rest
	FloorY      float64
	Width       float64
	Floor       FloorPolicy
	Walls       WallPolicy
}

// Integrate advances b by one tick using semi-implicit Euler and resolves
// floor and wall contact. Returns the terminal event, if any.
func Integrate(b *Body, w World) Event {
	if !b.Active {
		return EventNone
	}

	// Velocity before position; the ordering changes energy behaviour.
	b.VY += w.Gravity
	b.X += b.VX
	b.Y += b.VY
	b.VX *= w.Damping
	b.VY *= w.Damping

	if ev := collideFloor(b, w); ev.Terminal() {
		return ev
	}
	return collideWalls(b, w)
}

func collideFloor(b *Body, w World) Event {
	limit := w.FloorY - b.Radius
	if b.Y <= limit {
		return EventNone
	}
	b.Y = limit

	switch w.Floor {
	case FloorBounce:
		b.VY *= -w.Restitution
		if math.Abs(b.VY) >= w.RestSpeed {
			return EventNone
		}
	}

	b.VX, b.VY = 0, 0
	b.Retire()
	return EventLanded
}

func collideWalls(b *Body, w World) Event {
	if w.Walls == WallNone {
		return EventNone
	}
	lo, hi := b.Radius, w.Width-b.Radius
	if b.X >= lo && b.X <= hi {
		return EventNone
	}

	b.X = Clamp(b.X, lo, hi)
	b.VX *= -w.Restitution

	if w.Walls == WallRetire {
		b.Retire()
		return EventHitWall
	}
	return EventNone
}

package game

import (
	"github.com/tomz197/springlaunch/internal/object"
	"github.com/tomz197/springlaunch/internal/physics"
)

// Spring drawing parameters. A held spring is drawn tight, a released one loose.
const (
	heldCoils         = 6
	heldAmplitude     = 15.0
	releasedCoils     = 8
	releasedAmplitude = 8.0
)

// ProjectileView is the projectile as seen by a renderer.
type ProjectileView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
	Active bool    `json:"active"`
}

// SpringView is the spring pose for drawing the coil.
type SpringView struct {
	Anchor     physics.Point   `json:"anchor"`
	End        physics.Point   `json:"end"`
	Tension    float64         `json:"tension"`
	Angle      float64         `json:"angle"`
	Compressed bool            `json:"compressed"`
	Coil       []physics.Point `json:"coil"`
}

// TargetView is one target as seen by a renderer.
type TargetView struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	Hit    bool    `json:"hit"`
}

// Snapshot is everything a renderer needs for one frame. It shares no memory
// with the session.
type Snapshot struct {
	State       State           `json:"state"`
	Projectile  ProjectileView  `json:"projectile"`
	Spring      SpringView      `json:"spring"`
	Targets     []TargetView    `json:"targets"`
	Trail       []physics.Point `json:"trail"`
	LaunchCount int             `json:"launch_count"`
	HitCount    int             `json:"hit_count"`
	TargetsHit  int             `json:"targets_hit"`
	Won         bool            `json:"won"`
	Miss        bool            `json:"miss"`
	LastEvent   physics.Event   `json:"last_event"`
	Force       float64         `json:"force"`
	Speed       float64         `json:"speed"`
	Efficiency  int             `json:"efficiency"`
	World       WorldView       `json:"world"`
}

// WorldView carries the static geometry a renderer needs to scale its view.
type WorldView struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	FloorY     float64 `json:"floor_y"`
	LaunchX    float64 `json:"launch_x"`
	MaxAngle   float64 `json:"max_angle"`
	BaseLength float64 `json:"base_length"`
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	p := s.projectile
	snap := Snapshot{
		State: s.state,
		Projectile: ProjectileView{
			X: p.X, Y: p.Y, VX: p.VX, VY: p.VY,
			Radius: p.Radius,
			Active: p.Active,
		},
		Spring:      s.springView(),
		Targets:     make([]TargetView, len(s.targets)),
		Trail:       s.trail.Points(make([]physics.Point, 0, s.trail.Len())),
		LaunchCount: s.launchCount,
		HitCount:    s.hitCount,
		TargetsHit:  object.CountHit(s.targets),
		Won:         s.won,
		Miss:        s.miss,
		LastEvent:   s.lastEvent,
		Force:       s.Force(),
		Speed:       p.Speed(),
		Efficiency:  s.Efficiency(),
		World: WorldView{
			Width:      s.cfg.WorldWidth,
			Height:     s.cfg.WorldHeight,
			FloorY:     s.cfg.FloorY,
			LaunchX:    s.cfg.LaunchX,
			MaxAngle:   s.cfg.MaxAngle,
			BaseLength: s.cfg.BaseLength,
		},
	}
	for i, t := range s.targets {
		snap.Targets[i] = TargetView{
			ID: t.ID, X: t.X, Y: t.Y,
			Radius: t.Radius,
			Color:  t.Color,
			Hit:    t.Hit,
		}
	}
	return snap
}

func (s *Session) springView() SpringView {
	view := SpringView{
		Anchor:     physics.Point{X: s.spring.X, Y: s.spring.Y},
		Tension:    s.spring.Tension,
		Angle:      s.spring.Angle,
		Compressed: s.state == StateIdle,
	}
	if view.Compressed {
		view.End = physics.Point{X: s.projectile.X, Y: s.projectile.Y}
		view.Coil = s.spring.Coil(view.End, heldCoils, heldAmplitude)
	} else {
		view.End = s.spring.Endpoint(s.spring.BaseLength)
		view.Coil = s.spring.Coil(view.End, releasedCoils, releasedAmplitude)
	}
	return view
}

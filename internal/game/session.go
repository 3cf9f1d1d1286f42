// Package game owns the launch session: spring, projectile, targets, scoring
// and the idle → in-flight → resolved round cycle.
package game

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/springlaunch/internal/object"
	"github.com/tomz197/springlaunch/internal/physics"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is one player's game. It is not safe for concurrent use; the
// goroutine driving the frame loop owns it.
type Session struct {
	cfg    Config
	launch physics.LaunchParams
	world  physics.World
	logger *log.Logger
	sched  *Scheduler

	spring     *object.Spring
	projectile *object.Projectile
	targets    []object.Target
	trail      *physics.Trail

	state       State
	won         bool
	launchCount int
	hitCount    int
	lastEvent   physics.Event
	lastHit     int
	miss        bool
	flightTicks int

	// round increments on every return to idle; stale reset callbacks compare against it.
	round        uint64
	pendingReset TaskHandle
}

// NewSession creates a session in the idle state with default tension and angle.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		launch:     cfg.launchParams(),
		world:      cfg.world(),
		logger:     log.New(io.Discard),
		sched:      NewScheduler(),
		spring:     object.NewSpring(cfg.LaunchX, cfg.LaunchY, cfg.BaseLength, cfg.AngleConvention),
		projectile: object.NewProjectile(cfg.ProjectileRadius),
		trail:      physics.NewTrail(cfg.TrailCap, cfg.TrailEvery),
		lastHit:    -1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.targets = make([]object.Target, len(cfg.Targets))
	for i, ts := range cfg.Targets {
		s.targets[i] = object.Target{
			ID:     i,
			X:      ts.X,
			Y:      ts.Y,
			Radius: ts.Radius,
			Color:  ts.Color,
		}
	}

	s.ResetRound(false)
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// SetTension updates the spring tension while idle. Values are clamped to
// [0, BaseLength). Returns false if the spring is locked.
func (s *Session) SetTension(v float64) bool {
	if s.state != StateIdle {
		return false
	}
	s.spring.Tension = s.launch.Compression(v)
	s.pose()
	return true
}

// SetAngle updates the launch angle while idle. Values are clamped to
// [0, MaxAngle]. Returns false if the spring is locked or deg is NaN.
func (s *Session) SetAngle(deg float64) bool {
	if s.state != StateIdle || math.IsNaN(deg) {
		return false
	}
	s.spring.Angle = physics.Clamp(deg, 0, s.cfg.MaxAngle)
	s.pose()
	return true
}

// Fire launches the projectile. It is a no-op unless the round is idle and
// the game has not been won. Returns true if a flight started.
func (s *Session) Fire() bool {
	if s.state != StateIdle || s.won {
		return false
	}

	s.launchCount++
	s.miss = false
	s.lastEvent = physics.EventNone
	s.lastHit = -1
	s.flightTicks = 0
	s.trail.Clear()

	vx, vy := physics.LaunchVelocity(s.spring.Tension, s.spring.Angle, s.launch)
	s.projectile.VX, s.projectile.VY = vx, vy
	s.projectile.Active = true
	s.state = StateInFlight

	s.logger.Debug("launch",
		"angle", s.spring.Angle,
		"tension", s.spring.Tension,
		"force", physics.LaunchForce(s.spring.Tension, s.launch),
		"vx", vx,
		"vy", vy,
	)
	return true
}

// Step advances the session by one frame of duration dt. Pending timers run
// first, then one physics tick if a flight is in progress. Returns the
// terminal event produced by this tick, if any.
func (s *Session) Step(dt time.Duration) physics.Event {
	s.sched.Advance(dt)

	if s.state != StateInFlight {
		return physics.EventNone
	}

	s.flightTicks++
	ev := physics.Integrate(&s.projectile.Body, s.world)
	s.trail.Sample(s.flightTicks, s.projectile.X, s.projectile.Y)

	if !ev.Terminal() {
		if i, ok := resolveTargets(s.projectile, s.targets); ok {
			ev = s.scoreHit(i)
		}
	}
	if ev.Terminal() {
		s.resolve(ev)
	}
	return ev
}

// ResetRound returns to idle immediately, cancelling any pending auto-reset.
// With preserveScore false it also clears target hits, zeroes the counters,
// clears the win and restores the default tension and angle.
func (s *Session) ResetRound(preserveScore bool) {
	s.pendingReset.Cancel()
	s.pendingReset = TaskHandle{}

	if !preserveScore {
		for i := range s.targets {
			s.targets[i].Reset()
		}
		s.launchCount = 0
		s.hitCount = 0
		s.won = false
		s.miss = false
		s.lastEvent = physics.EventNone
		s.lastHit = -1
		s.spring.Tension = s.launch.Compression(s.cfg.DefaultTension)
		s.spring.Angle = physics.Clamp(s.cfg.DefaultAngle, 0, s.cfg.MaxAngle)
	}

	s.toIdle()
}

func (s *Session) scoreHit(i int) physics.Event {
	s.hitCount++
	s.lastHit = i

	hit := object.CountHit(s.targets)
	s.logger.Info("target hit", "target", s.targets[i].ID, "hit", hit, "of", len(s.targets))

	if hit == len(s.targets) {
		s.won = true
		s.logger.Info("all targets hit", "launches", s.launchCount)
		return physics.EventWon
	}
	return physics.EventHitTarget
}

// resolve ends the flight and schedules the score-preserving return to idle.
func (s *Session) resolve(ev physics.Event) {
	s.state = StateResolved
	s.lastEvent = ev
	s.miss = ev == physics.EventLanded || ev == physics.EventHitWall
	if s.miss {
		s.logger.Debug("miss", "event", ev, "x", s.projectile.X, "y", s.projectile.Y)
	}

	round := s.round
	s.pendingReset = s.sched.After(s.cfg.ResetDelay, func() {
		if s.round != round || s.state != StateResolved {
			return
		}
		s.pendingReset = TaskHandle{}
		s.toIdle()
	})
}

func (s *Session) toIdle() {
	s.round++
	s.state = StateIdle
	s.flightTicks = 0
	s.trail.Clear()
	s.pose()
}

// pose puts the projectile at the tip of the held-back spring.
func (s *Session) pose() {
	s.projectile.PlaceAt(s.spring.RestPoint())
}

// State returns the round phase.
func (s *Session) State() State { return s.state }

// Launched reports whether the current round has been fired.
func (s *Session) Launched() bool { return s.state != StateIdle }

// Won reports whether every target has been hit.
func (s *Session) Won() bool { return s.won }

// LaunchCount returns the launches since the last full reset.
func (s *Session) LaunchCount() int { return s.launchCount }

// HitCount returns the target hits since the last full reset.
func (s *Session) HitCount() int { return s.hitCount }

// LastEvent returns the terminal event of the most recent flight.
func (s *Session) LastEvent() physics.Event { return s.lastEvent }

// LastLandingWasMiss reports whether the most recent flight ended without a
// hit. Cleared by the next Fire.
func (s *Session) LastLandingWasMiss() bool { return s.miss }

// Projectile returns a copy of the projectile.
func (s *Session) Projectile() object.Projectile { return *s.projectile }

// Spring returns a copy of the spring.
func (s *Session) Spring() object.Spring { return *s.spring }

// Targets returns a copy of the targets in their fixed order.
func (s *Session) Targets() []object.Target {
	return append([]object.Target(nil), s.targets...)
}

// Trail returns the sampled flight path, oldest first.
func (s *Session) Trail() []physics.Point {
	return s.trail.Points(nil)
}

// Force returns the launch force the current tension would produce.
func (s *Session) Force() float64 {
	return physics.LaunchForce(s.spring.Tension, s.launch)
}

// Efficiency returns hits per launch as a rounded percentage.
func (s *Session) Efficiency() int {
	if s.launchCount == 0 {
		return 0
	}
	return int(math.Round(float64(s.hitCount) / float64(s.launchCount) * 100))
}

// ResetPending reports whether an auto-reset is scheduled.
func (s *Session) ResetPending() bool {
	return s.pendingReset.Pending()
}

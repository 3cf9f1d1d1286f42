package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/springlaunch/internal/physics"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// TargetSpec places one target.
type TargetSpec struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"`
}

// Config holds every tunable of a session. The near-duplicate variants of the
// game differ only in these values.
type Config struct {
	// World
	WorldWidth  float64 `toml:"world_width"`
	WorldHeight float64 `toml:"world_height"`
	FloorY      float64 `toml:"floor_y"`

	// Launcher
	LaunchX         float64                 `toml:"launch_x"`
	LaunchY         float64                 `toml:"launch_y"`
	SpringConstant  float64                 `toml:"spring_constant"`
	ForceMultiplier float64                 `toml:"force_multiplier"`
	BaseLength      float64                 `toml:"base_length"`
	DefaultTension  float64                 `toml:"default_tension"`
	DefaultAngle    float64                 `toml:"default_angle"`
	MaxAngle        float64                 `toml:"max_angle"`
	AngleConvention physics.AngleConvention `toml:"angle_convention"`

	// Flight
	Gravity          float64             `toml:"gravity"`
	Damping          float64             `toml:"damping"`
	Restitution      float64             `toml:"restitution"`
	RestSpeed        float64             `toml:"rest_speed"`
	ProjectileRadius float64             `toml:"projectile_radius"`
	FloorPolicy      physics.FloorPolicy `toml:"floor_policy"`
	WallPolicy       physics.WallPolicy  `toml:"wall_policy"`

	// Trail
	TrailEvery int `toml:"trail_every"`
	TrailCap   int `toml:"trail_cap"`

	// Rounds
	ResetDelay time.Duration `toml:"reset_delay"`
	Targets    []TargetSpec  `toml:"targets"`
}

// DefaultConfig returns the classic tuning: hard-stop floor, retiring walls,
// three floor targets 200 units apart.
func DefaultConfig() Config {
	const floorY = 550.0
	return Config{
		WorldWidth:  1000,
		WorldHeight: 650,
		FloorY:      floorY,

		LaunchX:         100,
		LaunchY:         floorY,
		SpringConstant:  0.03,
		ForceMultiplier: 7,
		BaseLength:      100,
		DefaultTension:  15,
		DefaultAngle:    45,
		MaxAngle:        90,
		AngleConvention: physics.FromHorizontal,

		Gravity:          0.2,
		Damping:          0.99,
		Restitution:      0.6,
		RestSpeed:        0.5,
		ProjectileRadius: 15,
		FloorPolicy:      physics.FloorHardStop,
		WallPolicy:       physics.WallRetire,

		TrailEvery: 3,
		TrailCap:   300,

		ResetDelay: time.Second,
		Targets: []TargetSpec{
			{X: 300, Y: floorY, Radius: 20, Color: "#ff0000"},
			{X: 500, Y: floorY, Radius: 20, Color: "#00ff00"},
			{X: 700, Y: floorY, Radius: 20, Color: "#0000ff"},
		},
	}
}

// Validate checks the config for values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("%w: world must have positive size, got %vx%v", ErrInvalidConfig, c.WorldWidth, c.WorldHeight)
	case c.BaseLength <= 0:
		return fmt.Errorf("%w: base_length must be positive, got %v", ErrInvalidConfig, c.BaseLength)
	case c.DefaultTension < 0 || c.DefaultTension >= c.BaseLength:
		return fmt.Errorf("%w: default_tension must be in [0, %v), got %v", ErrInvalidConfig, c.BaseLength, c.DefaultTension)
	case c.MaxAngle <= 0 || c.MaxAngle > 180:
		return fmt.Errorf("%w: max_angle must be in (0, 180], got %v", ErrInvalidConfig, c.MaxAngle)
	case c.DefaultAngle < 0 || c.DefaultAngle > c.MaxAngle:
		return fmt.Errorf("%w: default_angle must be in [0, %v], got %v", ErrInvalidConfig, c.MaxAngle, c.DefaultAngle)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping must be in (0, 1], got %v", ErrInvalidConfig, c.Damping)
	case c.Restitution < 0 || c.Restitution > 1:
		return fmt.Errorf("%w: restitution must be in [0, 1], got %v", ErrInvalidConfig, c.Restitution)
	case c.ProjectileRadius <= 0:
		return fmt.Errorf("%w: projectile_radius must be positive, got %v", ErrInvalidConfig, c.ProjectileRadius)
	case c.TrailEvery < 1 || c.TrailCap < 1:
		return fmt.Errorf("%w: trail_every and trail_cap must be at least 1", ErrInvalidConfig)
	case c.ResetDelay < 0:
		return fmt.Errorf("%w: reset_delay must not be negative, got %v", ErrInvalidConfig, c.ResetDelay)
	case len(c.Targets) == 0:
		return fmt.Errorf("%w: at least one target is required", ErrInvalidConfig)
	}
	for i, t := range c.Targets {
		if t.Radius <= 0 {
			return fmt.Errorf("%w: target %d radius must be positive, got %v", ErrInvalidConfig, i, t.Radius)
		}
	}
	return nil
}

func (c Config) launchParams() physics.LaunchParams {
	return physics.LaunchParams{
		SpringConstant:  c.SpringConstant,
		ForceMultiplier: c.ForceMultiplier,
		BaseLength:      c.BaseLength,
		Convention:      c.AngleConvention,
	}
}

func (c Config) world() physics.World {
	return physics.World{
		Gravity:     c.Gravity,
		Damping:     c.Damping,
		Restitution: c.Restitution,
		RestSpeed:   c.RestSpeed,
		FloorY:      c.FloorY,
		Width:       c.WorldWidth,
		Floor:       c.FloorPolicy,
		Walls:       c.WallPolicy,
	}
}

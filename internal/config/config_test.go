package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/springlaunch/internal/game"
	"github.com/tomz197/springlaunch/internal/physics"
)

func TestClassicVariantMatchesDefaults(t *testing.T) {
	cfg, err := Variant("classic")
	if err != nil {
		t.Fatalf("Variant(classic): %v", err)
	}
	if want := game.DefaultConfig(); !reflect.DeepEqual(cfg, want) {
		t.Fatalf("classic variant = %+v\nwant %+v", cfg, want)
	}
}

func TestVariants(t *testing.T) {
	cases := []struct {
		name  string
		check func(t *testing.T, cfg game.Config)
	}{
		{"bouncy", func(t *testing.T, cfg game.Config) {
			if cfg.FloorPolicy != physics.FloorBounce || cfg.WallPolicy != physics.WallBounce {
				t.Fatalf("policies = %v/%v, want bounce/bounce", cfg.FloorPolicy, cfg.WallPolicy)
			}
			if cfg.MaxAngle != 180 || cfg.TrailEvery != 2 {
				t.Fatalf("max_angle = %v trail_every = %d", cfg.MaxAngle, cfg.TrailEvery)
			}
			// Unset keys keep their defaults.
			if cfg.SpringConstant != 0.03 || cfg.ResetDelay != time.Second {
				t.Fatalf("defaults lost: k=%v delay=%v", cfg.SpringConstant, cfg.ResetDelay)
			}
		}},
		{"vertical", func(t *testing.T, cfg game.Config) {
			if cfg.AngleConvention != physics.FromVertical {
				t.Fatalf("convention = %v, want vertical", cfg.AngleConvention)
			}
			if cfg.WorldWidth != 800 || cfg.FloorY != 500 {
				t.Fatalf("world = %vx%v floor %v", cfg.WorldWidth, cfg.WorldHeight, cfg.FloorY)
			}
			if len(cfg.Targets) != 3 || cfg.Targets[0].Y != 500 {
				t.Fatalf("targets = %+v", cfg.Targets)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Variant(tc.name)
			if err != nil {
				t.Fatalf("Variant(%s): %v", tc.name, err)
			}
			tc.check(t, cfg)
			if _, err := game.NewSession(cfg); err != nil {
				t.Fatalf("NewSession: %v", err)
			}
		})
	}
}

func TestVariantsListed(t *testing.T) {
	got := Variants()
	want := []string{"bouncy", "classic", "vertical"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Variants() = %v, want %v", got, want)
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, err := Variant("moon"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("err = %v, want ErrUnknownVariant", err)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode("gravity = 0.3\nwarp_speed = 9\n")
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestDecodeRejectsBadPolicy(t *testing.T) {
	if _, err := Decode(`floor_policy = "sticky"`); err == nil {
		t.Fatal("expected error for unknown floor policy")
	}
}

func TestDecodeValidates(t *testing.T) {
	if _, err := Decode("damping = 2.0"); !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.toml")
	data := "gravity = 0.1\nreset_delay = \"250ms\"\n\n[[targets]]\nx = 400.0\ny = 550.0\nradius = 30.0\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gravity != 0.1 || cfg.ResetDelay != 250*time.Millisecond {
		t.Fatalf("gravity = %v delay = %v", cfg.Gravity, cfg.ResetDelay)
	}
	if len(cfg.Targets) != 1 || cfg.Targets[0].Radius != 30 || cfg.Targets[0].Color != "" {
		t.Fatalf("targets = %+v, want the single file target", cfg.Targets)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GAME_CONFIG", "")
	t.Setenv("GAME_VARIANT", "bouncy")
	t.Setenv("GAME_RESET_DELAY", "2s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.FloorPolicy != physics.FloorBounce || cfg.ResetDelay != 2*time.Second {
		t.Fatalf("cfg = policy %v delay %v", cfg.FloorPolicy, cfg.ResetDelay)
	}

	t.Setenv("GAME_GRAVITY", "0.5")
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Gravity != 0.5 {
		t.Fatalf("gravity = %v, want 0.5", cfg.Gravity)
	}

	t.Setenv("GAME_GRAVITY", "heavy")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for bad gravity")
	}

	t.Setenv("GAME_GRAVITY", "")
	t.Setenv("GAME_RESET_DELAY", "soon")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for bad duration")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SPRINGLAUNCH_TEST", "value")
	if got := GetEnv("SPRINGLAUNCH_TEST", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("SPRINGLAUNCH_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cases := []struct {
		env  string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"loud", log.InfoLevel},
	}
	for _, tc := range cases {
		t.Setenv("LOG_LEVEL", tc.env)
		if got := NewLogger(io.Discard, "test").GetLevel(); got != tc.want {
			t.Fatalf("LOG_LEVEL=%s: level = %v, want %v", tc.env, got, tc.want)
		}
	}
}

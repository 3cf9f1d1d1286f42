package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tomz197/springlaunch/internal/game"
)

// DefaultVariant is used when neither GAME_CONFIG nor GAME_VARIANT is set.
const DefaultVariant = "classic"

// ErrUnknownVariant is returned for a variant name with no embedded file.
var ErrUnknownVariant = errors.New("unknown variant")

//go:embed variants/*.toml
var variantFS embed.FS

// Variants lists the embedded variant names.
func Variants() []string {
	entries, err := variantFS.ReadDir("variants")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Variant returns the named embedded variant layered on the default config.
func Variant(name string) (game.Config, error) {
	data, err := variantFS.ReadFile(path.Join("variants", name+".toml"))
	if err != nil {
		return game.Config{}, fmt.Errorf("%w %q (have %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return game.Config{}, fmt.Errorf("variant %s: %w", name, err)
	}
	return cfg, nil
}

// Load reads a TOML file layered on the default config.
func Load(filename string) (game.Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return game.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return game.Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Decode parses TOML on top of game.DefaultConfig. Keys that are not set keep
// their defaults; a targets table replaces the default targets entirely.
// Unknown keys are rejected.
func Decode(data string) (game.Config, error) {
	cfg := game.DefaultConfig()
	defaults := cfg.Targets
	cfg.Targets = nil

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return game.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return game.Config{}, fmt.Errorf("%w: unknown keys %s", game.ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if !md.IsDefined("targets") {
		cfg.Targets = defaults
	}

	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// FromEnv resolves the session config: GAME_CONFIG names a TOML file,
// otherwise GAME_VARIANT names an embedded variant. GAME_RESET_DELAY and
// GAME_GRAVITY override the result.
func FromEnv() (game.Config, error) {
	var (
		cfg game.Config
		err error
	)
	if file := GetEnv("GAME_CONFIG", ""); file != "" {
		cfg, err = Load(file)
	} else {
		cfg, err = Variant(GetEnv("GAME_VARIANT", DefaultVariant))
	}
	if err != nil {
		return game.Config{}, err
	}

	cfg.ResetDelay, err = GetEnvDuration("GAME_RESET_DELAY", cfg.ResetDelay)
	if err != nil {
		return game.Config{}, err
	}
	cfg.Gravity, err = GetEnvFloat("GAME_GRAVITY", cfg.Gravity)
	if err != nil {
		return game.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

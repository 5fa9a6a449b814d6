package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server-level configuration: where to listen, how fast the
// clock drives the engine, and which balance preset to play.
type Config struct {
	Addr       string `yaml:"addr" json:"addr"`
	TickMillis int    `yaml:"tick_ms" json:"tick_ms"`
	Difficulty string `yaml:"difficulty" json:"difficulty"`

	// Seed for the engine RNG; 0 means seed from the wall clock.
	Seed int64 `yaml:"seed" json:"seed"`

	// Optional catalog overrides. Empty means the built-in seeds.
	InstitutionsFile string `yaml:"institutions_file" json:"institutions_file"`
	UpgradesFile     string `yaml:"upgrades_file" json:"upgrades_file"`

	Balance Balance `yaml:"balance" json:"balance"`
}

// TickInterval returns the engine tick period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// DefaultConfig returns the server defaults: one engine tick per second,
// matching the cadence the original frontend drove its loop at.
func DefaultConfig() Config {
	return Config{
		Addr:       ":8080",
		TickMillis: 1000,
		Difficulty: "default",
		Balance:    Default(),
	}
}

// LoadFile reads a YAML config file over the defaults. A named difficulty
// preset is applied first so the file's balance keys override it.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	// Resolve the preset before unmarshalling balance overrides.
	var peek struct {
		Difficulty string `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(raw, &peek); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	preset, err := BalanceFor(peek.Difficulty)
	if err != nil {
		return Config{}, err
	}
	cfg.Balance = preset

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TickMillis <= 0 {
		return Config{}, fmt.Errorf("tick_ms must be positive, got %d", cfg.TickMillis)
	}
	return cfg, nil
}

// BalanceFor maps a difficulty name to its preset. An empty name means the
// default preset.
func BalanceFor(difficulty string) (Balance, error) {
	switch difficulty {
	case "", "default":
		return Default(), nil
	case "casual":
		return Casual(), nil
	case "hard":
		return Hard(), nil
	default:
		return Balance{}, fmt.Errorf("unknown difficulty: %q", difficulty)
	}
}

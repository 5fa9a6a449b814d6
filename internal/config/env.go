package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	cfg := Default()

	// Support preset modes first so individual vars override the preset.
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		if preset, err := BalanceFor(mode); err == nil {
			cfg = preset
		}
	}

	if val, ok := getEnvFloat("STARTING_MONEY"); ok {
		cfg.StartingMoney = val
	}
	if val, ok := getEnvFloat("EVENT_BASE_CHANCE"); ok {
		cfg.EventBaseChance = val
	}
	if val, ok := getEnvFloat("EVENT_DEPENDENCY_CHANCE"); ok {
		cfg.EventDependencyChance = val
	}
	if val, ok := getEnvFloat("MISSION_BASE_SPEED"); ok {
		cfg.MissionBaseSpeed = val
	}
	if val, ok := getEnvFloat("MISSION_MIN_SPEED"); ok {
		cfg.MissionMinSpeed = val
	}
	if val, ok := getEnvFloat("SPREAD_RADIUS_GROWTH"); ok {
		cfg.SpreadRadiusGrowth = val
	}
	if val, ok := getEnvFloat("SPREAD_CONTRIBUTION"); ok {
		cfg.SpreadContribution = val
	}
	if val, ok := getEnvFloat("SPREAD_MAX_PER_TICK"); ok {
		cfg.SpreadMaxPerTick = val
	}
	if val, ok := getEnvFloat("FAILURE_PENALTY"); ok {
		cfg.FailurePenalty = val
	}
	if val, ok := getEnvFloat("CANCEL_FEE"); ok {
		cfg.CancelFee = val
	}

	return cfg
}

func getEnvFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

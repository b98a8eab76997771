// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvSeed           = "VALERIS_SEED"
	EnvRooms          = "VALERIS_ROOMS"
	EnvMapRadius      = "VALERIS_MAP_RADIUS"
	EnvDOTPath        = "VALERIS_DOT_PATH"
	EnvPrintLayout    = "VALERIS_PRINT_LAYOUT"
	EnvHoneycombKey   = "HONEYCOMB_VALERIS_API_KEY"
	EnvHoneycombSet   = "HONEYCOMB_VALERIS_DATASET"
	defaultRooms      = 10
	defaultMapRadius  = 2
	defaultDatasetTag = "valeris"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the floor's random source. 0 means seed from the clock.
	Seed int64
	// Rooms is the number of rooms on the floor.
	Rooms int
	// MapRadius is how many rooms the map shows in each direction.
	MapRadius int
	// DOTPath, when set, receives a Graphviz dump of the generated floor.
	DOTPath string
	// PrintLayout prints every room of the floor and exits instead of playing.
	PrintLayout bool

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads .env (when present) and then the process environment.
// A missing .env file is not an error; malformed values are.
func Load(envFiles ...string) (Config, bool, error) {
	loaded := godotenv.Load(envFiles...) == nil

	cfg := Config{
		DOTPath:          os.Getenv(EnvDOTPath),
		HoneycombAPIKey:  os.Getenv(EnvHoneycombKey),
		HoneycombDataset: getEnvWithDefault(EnvHoneycombSet, defaultDatasetTag),
	}

	var err error
	if cfg.Seed, err = getEnvAsInt64(EnvSeed, 0); err != nil {
		return Config{}, loaded, err
	}
	if cfg.Rooms, err = getEnvAsInt(EnvRooms, defaultRooms); err != nil {
		return Config{}, loaded, err
	}
	if cfg.MapRadius, err = getEnvAsInt(EnvMapRadius, defaultMapRadius); err != nil {
		return Config{}, loaded, err
	}
	if cfg.PrintLayout, err = getEnvAsBool(EnvPrintLayout); err != nil {
		return Config{}, loaded, err
	}

	if cfg.Rooms <= 0 {
		return Config{}, loaded, fmt.Errorf("%s must be positive, got %d", EnvRooms, cfg.Rooms)
	}
	if cfg.MapRadius < 0 {
		return Config{}, loaded, fmt.Errorf("%s must not be negative, got %d", EnvMapRadius, cfg.MapRadius)
	}
	return cfg, loaded, nil
}

// EffectiveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsBool(key string) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}

// Package config loads maze generation settings from defaults, an optional
// YAML file, a .env file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"keymaze/pkg/game/generator"
)

// Environment variable names
const (
	EnvRows     = "KEYMAZE_ROWS"
	EnvCols     = "KEYMAZE_COLS"
	EnvSeed     = "KEYMAZE_SEED"
	EnvMaxSteps = "KEYMAZE_MAX_STEPS"
	EnvCount    = "KEYMAZE_COUNT"
	EnvWorkers  = "KEYMAZE_WORKERS"
	EnvLocale   = "KEYMAZE_LOCALE"
	EnvLocales  = "KEYMAZE_LOCALES_DIR"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the maze generation settings.
type Config struct {
	Rows       int    `yaml:"rows"`       // Requested row count, border included
	Cols       int    `yaml:"cols"`       // Requested column count, border included
	Seed       int64  `yaml:"seed"`       // Master seed; 0 picks one from the clock
	MaxSteps   int    `yaml:"maxSteps"`   // Bulldozer step budget; 0 means unbounded
	Count      int    `yaml:"count"`      // Number of mazes to generate
	Workers    int    `yaml:"workers"`    // Concurrent generators for batches
	Locale     string `yaml:"locale"`     // Message locale, e.g. "ru"
	LocalesDir string `yaml:"localesDir"` // Directory holding gettext catalogues
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Rows:       generator.DefaultRows,
		Cols:       generator.DefaultCols,
		Count:      1,
		Workers:    4,
		Locale:     "en",
		LocalesDir: "locales",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then the given .env files (or ".env" when none are
// given), then the process environment.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[Config] .env file not found or could not be loaded: %v", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// LoadFile overlays the settings found in a YAML file
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// ApplyEnv overlays settings from environment variables that are set
func (c *Config) ApplyEnv() error {
	if err := envInt(EnvRows, &c.Rows); err != nil {
		return err
	}
	if err := envInt(EnvCols, &c.Cols); err != nil {
		return err
	}
	if err := envInt(EnvMaxSteps, &c.MaxSteps); err != nil {
		return err
	}
	if err := envInt(EnvCount, &c.Count); err != nil {
		return err
	}
	if err := envInt(EnvWorkers, &c.Workers); err != nil {
		return err
	}
	if value, exists := os.LookupEnv(EnvSeed); exists {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	c.Locale = getEnvWithDefault(EnvLocale, c.Locale)
	c.LocalesDir = getEnvWithDefault(EnvLocales, c.LocalesDir)
	return nil
}

// Validate checks that the settings can produce a maze
func (c Config) Validate() error {
	if c.Rows < generator.MinDimension || c.Cols < generator.MinDimension {
		return fmt.Errorf("%w: maze must be at least %dx%d, got %dx%d", ErrInvalidConfig, generator.MinDimension, generator.MinDimension, c.Rows, c.Cols)
	}
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Count)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: maxSteps must not be negative, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// envInt overwrites *dst with the integer value of key when it is set
func envInt(key string, dst *int) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

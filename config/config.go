// Package config loads the cmeans CLI configuration from TOML.
//
// Example file:
//
//	algorithm = "fuzzy"
//	fuzzifier = 2.0
//	points = 60
//	clusters = 3
//	max_iterations = 25
//	seed = 42
//
//	[bounds]
//	min_x = -100
//	max_x = 100
//	min_y = -100
//	max_y = 100
//
//	[log]
//	level = "debug"
//	json = false
//
// Fixed data can replace the random points and seeds:
//
//	[[data]]
//	x = 0
//	y = 0
//
//	[[centroids]]
//	x = 1
//	y = 1
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/cmeans"
	"github.com/hupe1980/cmeans/model"
)

// ErrInvalidConfig is returned for undecodable or inconsistent configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Config is the complete CLI configuration.
type Config struct {
	Algorithm     string       `toml:"algorithm"`
	Fuzzifier     float64      `toml:"fuzzifier"`
	Epsilon       float64      `toml:"epsilon"`
	Points        int          `toml:"points"`
	Clusters      int          `toml:"clusters"`
	MaxIterations int          `toml:"max_iterations"`
	Restarts      int          `toml:"restarts"`
	Parallelism   int          `toml:"parallelism"`
	Seed          int64        `toml:"seed"`
	Bounds        model.Bounds `toml:"bounds"`
	Chart         string       `toml:"chart"`
	Log           Log          `toml:"log"`

	// Data, when set, replaces the randomly generated points.
	Data model.Points `toml:"data"`
	// Centroids, when set, replaces the sampled seeds.
	Centroids model.Points `toml:"centroids"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm:     cmeans.AlgorithmFuzzy.String(),
		Fuzzifier:     cmeans.DefaultFuzzifier,
		Points:        50,
		Clusters:      3,
		MaxIterations: 20,
		Restarts:      1,
		Seed:          1,
		Bounds:        model.DefaultBounds,
		Log:           Log{Level: "info"},
	}
}

// Load reads path on top of Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return c, finish(c, md)
}

// Parse is like Load for an in-memory document.
func Parse(doc string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(doc, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c, finish(c, md)
}

func finish(c *Config, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return c.Validate()
}

// Validate checks value ranges and cross-field consistency.
func (c *Config) Validate() error {
	if _, err := c.AlgorithmValue(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	switch {
	case math.IsNaN(c.Fuzzifier) || c.Fuzzifier <= 1:
		return fmt.Errorf("%w: fuzzifier must be greater than 1, got %v", ErrInvalidConfig, c.Fuzzifier)
	case math.IsNaN(c.Epsilon) || c.Epsilon < 0:
		return fmt.Errorf("%w: epsilon must be non-negative, got %v", ErrInvalidConfig, c.Epsilon)
	case c.Points < 0:
		return fmt.Errorf("%w: points must be non-negative, got %d", ErrInvalidConfig, c.Points)
	case c.Clusters < 1:
		return fmt.Errorf("%w: clusters must be positive, got %d", ErrInvalidConfig, c.Clusters)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max_iterations must be positive, got %d", ErrInvalidConfig, c.MaxIterations)
	case c.Restarts < 1:
		return fmt.Errorf("%w: restarts must be positive, got %d", ErrInvalidConfig, c.Restarts)
	case c.Parallelism < 0:
		return fmt.Errorf("%w: parallelism must be non-negative, got %d", ErrInvalidConfig, c.Parallelism)
	case !c.Bounds.Valid():
		return fmt.Errorf("%w: bounds %v", ErrInvalidConfig, c.Bounds)
	}

	for _, p := range c.Data {
		if !c.Bounds.Contains(p) {
			return fmt.Errorf("%w: data point %v outside %v", ErrInvalidConfig, p, c.Bounds)
		}
	}
	for _, p := range c.Centroids {
		if !c.Bounds.Contains(p) {
			return fmt.Errorf("%w: centroid %v outside %v", ErrInvalidConfig, p, c.Bounds)
		}
	}
	return nil
}

// AlgorithmValue parses the algorithm name.
func (c *Config) AlgorithmValue() (cmeans.Algorithm, error) {
	return cmeans.ParseAlgorithm(c.Algorithm)
}

// LogLevel parses the log level name ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// Logger builds the configured logger.
func (c *Config) Logger() (*cmeans.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	if c.Log.JSON {
		return cmeans.NewJSONLogger(level), nil
	}
	return cmeans.NewTextLogger(level), nil
}

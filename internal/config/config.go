// Package config holds the settings of the particle benchmark harness.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PARTICLEBENCH"

// Config describes one benchmark run.
type Config struct {
	// Workers is the number of goroutines in the threaded and stack scenarios.
	Workers int `default:"8"`
	// ObjectsPerWorker is the number of stack allocations per worker per frame.
	ObjectsPerWorker int `envconfig:"OBJECTS_PER_WORKER" default:"512"`
	// Frames is the number of simulated frames per scenario.
	Frames int `default:"1024"`
	// ParticlesPerFrame is how many particles each system tries to spawn per frame.
	ParticlesPerFrame int `envconfig:"PARTICLES_PER_FRAME" default:"64"`
	// MaxLifetime is the longest particle lifetime, in frames.
	MaxLifetime int `envconfig:"MAX_LIFETIME" default:"60"`
	// PoolCapacity is the number of slots in each pool.
	PoolCapacity int `envconfig:"POOL_CAPACITY" default:"4096"`
	// Seed feeds the lifetime generator so runs are reproducible.
	Seed int64 `default:"1"`
	// CSVPath is where per-frame samples are written. Empty disables CSV output.
	CSVPath string `envconfig:"CSV_PATH"`
	// LogLevel is a logrus level name.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// NoColor disables coloured console output.
	NoColor bool `envconfig:"NO_COLOR"`
}

// Load reads the configuration from PARTICLEBENCH_* environment variables,
// falling back to the defaults above.
func Load() (*Config, error) {
	conf := &Config{}
	if err := envconfig.Process(EnvPrefix, conf); err != nil {
		return nil, fmt.Errorf("failed to process config env vars: %w", err)
	}
	return conf, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	positive := []struct {
		name  string
		value int
	}{
		{"workers", c.Workers},
		{"objects per worker", c.ObjectsPerWorker},
		{"frames", c.Frames},
		{"particles per frame", c.ParticlesPerFrame},
		{"max lifetime", c.MaxLifetime},
		{"pool capacity", c.PoolCapacity},
	}
	for _, p := range positive {
		if p.value <= 0 {
			result = multierror.Append(result, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		result = multierror.Append(result, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return result.ErrorOrNil()
}

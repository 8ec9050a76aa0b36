package plan

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config tunes the planner.
type Config struct {
	// PruneLessSpecific drops a feasible constructor when another feasible
	// constructor of the same class takes a strict superset of its arguments.
	PruneLessSpecific bool `yaml:"prune_less_specific"`
	// MaxDepth bounds the nesting of a plan. Zero or less means DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth"`
	// Parallelism bounds PlanAll. Zero or less means GOMAXPROCS.
	Parallelism int `yaml:"parallelism"`
	// StrictMode makes Plan return an error for plans that are not injectable.
	StrictMode bool `yaml:"strict_mode"`
}

// DefaultMaxDepth is the nesting limit used when Config.MaxDepth is unset.
const DefaultMaxDepth = 64

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		PruneLessSpecific: true,
		MaxDepth:          DefaultMaxDepth,
		Parallelism:       runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read planner config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse planner config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults replaces out-of-range values.
func applyDefaults(cfg *Config) {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
}

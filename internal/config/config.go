// Package config handles configuration for the modelcheck driver: logging,
// run settings, and per-check parameter overrides.
package config

import (
	"github.com/Faultbox/modelcheck/pkg/checker"
)

// Config holds all driver settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Run     RunConfig     `yaml:"run"`
	// Checks maps check IDs to parameter overrides, e.g.
	// overlapping_vertices: {epsilon: 0.0001}.
	Checks map[string]map[string]any `yaml:"checks"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"MODELCHECK_LOG_LEVEL"`
	LogFile string `yaml:"log_file" env:"MODELCHECK_LOG_FILE"`
}

// RunConfig holds check execution settings.
type RunConfig struct {
	// Selection restricts which checks run; empty means all registered.
	Selection []string `yaml:"selection" env:"MODELCHECK_CHECKS"`
	// Workers caps concurrent checks; zero means one per CPU.
	Workers int `yaml:"workers" env:"MODELCHECK_WORKERS"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Run: RunConfig{
			Selection: nil,
			Workers:   0,
		},
		Checks: map[string]map[string]any{},
	}
}

// Overrides converts the per-check settings into runner parameter overrides.
func (c *Config) Overrides() map[string]checker.Params {
	if len(c.Checks) == 0 {
		return nil
	}
	out := make(map[string]checker.Params, len(c.Checks))
	for id, params := range c.Checks {
		p := make(checker.Params, len(params))
		for k, v := range params {
			p[k] = v
		}
		out[id] = p
	}
	return out
}

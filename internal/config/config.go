// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Bus is the i2creg bus name or number; empty means the first
	// available bus.
	Bus     string `yaml:"bus"`
	Address uint16 `yaml:"address"`

	Poll       PollConfig       `yaml:"poll"`
	Hysteresis HysteresisConfig `yaml:"hysteresis"`
	Sink       SinkConfig       `yaml:"sink"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalS int `yaml:"interval_s"`
}

// ---- HYSTERESIS ----

// Threshold values are in volts. Increase must be positive, Decrease
// negative; FullV is the Stable -> "Full" boundary.
type HysteresisConfig struct {
	IncreaseV float64 `yaml:"increase_v"`
	DecreaseV float64 `yaml:"decrease_v"`
	FullV     float64 `yaml:"full_v"`
}

// ---- SINK ----

type SinkConfig struct {
	Enabled *bool  `yaml:"enabled"` // nil means enabled
	Path    string `yaml:"path"`
}

// IsEnabled reports whether publishing to the sink is on.
func (s SinkConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Load reads and parses a YAML configuration file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}

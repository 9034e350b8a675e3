// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Address == 0 || cfg.Address > 0x7F {
		return fmt.Errorf("config: device address 0x%X outside 7-bit range", cfg.Address)
	}

	if cfg.Poll.IntervalS <= 0 {
		return fmt.Errorf("config: poll interval %ds must be > 0", cfg.Poll.IntervalS)
	}

	if cfg.Hysteresis.IncreaseV <= 0 {
		return fmt.Errorf("config: increase threshold %gV must be > 0", cfg.Hysteresis.IncreaseV)
	}
	if cfg.Hysteresis.DecreaseV >= 0 {
		return fmt.Errorf("config: decrease threshold %gV must be < 0", cfg.Hysteresis.DecreaseV)
	}
	if cfg.Hysteresis.FullV <= 1.0 || cfg.Hysteresis.FullV > 5.0 {
		return fmt.Errorf("config: full threshold %gV outside (1.0, 5.0]", cfg.Hysteresis.FullV)
	}

	if cfg.Sink.IsEnabled() && cfg.Sink.Path == "" {
		return fmt.Errorf("config: sink enabled but no sink path")
	}

	return nil
}

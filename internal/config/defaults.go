// internal/config/defaults.go
package config

// Default configuration values. Thresholds are volts per cycle; the
// deadband they span must exceed measurement noise.
const (
	DefaultAddress uint16 = 0x36

	DefaultIntervalS = 10
	DefaultIncreaseV = 0.010
	DefaultDecreaseV = -0.010
	DefaultFullV     = 4.18

	DefaultSinkPath = "/sys/devices/platform/userspace_battery"
)

// ApplyDefaults fills unset fields. It is allowed to mutate
// configuration and MUST be called before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Address == 0 {
		cfg.Address = DefaultAddress
	}
	if cfg.Poll.IntervalS == 0 {
		cfg.Poll.IntervalS = DefaultIntervalS
	}
	if cfg.Hysteresis.IncreaseV == 0 {
		cfg.Hysteresis.IncreaseV = DefaultIncreaseV
	}
	if cfg.Hysteresis.DecreaseV == 0 {
		cfg.Hysteresis.DecreaseV = DefaultDecreaseV
	}
	if cfg.Hysteresis.FullV == 0 {
		cfg.Hysteresis.FullV = DefaultFullV
	}
	if cfg.Sink.Path == "" {
		cfg.Sink.Path = DefaultSinkPath
	}
}

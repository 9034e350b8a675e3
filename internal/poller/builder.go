// internal/poller/builder.go
package poller

import (
	"time"

	"fuelgauged/internal/charge"
	cfg "fuelgauged/internal/config"
	"fuelgauged/internal/gauge"
	"fuelgauged/internal/writer"
)

// Build converts validated file configuration into a runnable Poller.
// Threshold volts are fixed-pointed once here; nothing on the cycle
// path parses floats.
func Build(c *cfg.Config, bus gauge.ByteReader, sink writer.Sink) (*Poller, error) {
	return New(
		Config{
			Interval: time.Duration(c.Poll.IntervalS) * time.Second,
			Thresholds: charge.Thresholds{
				Increase: gauge.VoltsFromFloat(c.Hysteresis.IncreaseV),
				Decrease: gauge.VoltsFromFloat(c.Hysteresis.DecreaseV),
				Full:     gauge.VoltsFromFloat(c.Hysteresis.FullV),
			},
			Publish: c.Sink.IsEnabled(),
		},
		bus,
		sink,
	)
}

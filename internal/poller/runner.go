// internal/poller/runner.go
package poller

import (
	"context"
	"log"
	"time"
)

// SinkBackoff is the extra sleep applied after a cycle that found the
// publish sink unreachable.
const SinkBackoff = 5 * time.Second

// Run polls until ctx is done. Strictly sequential: one cycle completes
// (or skips) before the next interval starts. No overlap. No retries.
func (p *Poller) Run(ctx context.Context) {
	for {
		res := p.PollOnce()
		logCycle(res)

		delay := p.cfg.Interval
		if res.SinkBackoff {
			delay += SinkBackoff
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// logCycle emits the one human-facing line per cycle: voltage, SOC,
// temperature, status, in that order. The log package supplies the
// timestamp column.
func logCycle(res CycleResult) {
	if res.Skipped {
		log.Printf("cycle skipped: %v", res.Err)
		return
	}

	soc := "N/A"
	if res.Reading.SOCDisplayOK {
		soc = res.Reading.SOCDisplay.String()
	}

	log.Printf("voltage=%sV soc=%s%% temp=%sC status=%s",
		res.Reading.Volts, soc, res.Temp, res.Label)

	if res.Err != nil {
		log.Printf("publish failed: %v", res.Err)
	}
}

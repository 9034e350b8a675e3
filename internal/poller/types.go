// internal/poller/types.go
package poller

import (
	"time"

	"fuelgauged/internal/charge"
	"fuelgauged/internal/gauge"
)

// CycleResult is the snapshot produced by one poll cycle.
type CycleResult struct {
	At time.Time

	// Skipped means a critical fault aborted the cycle before any
	// visible side effect; Err carries the fault.
	Skipped bool
	Err     error

	Reading gauge.Reading
	Temp    string // formatted column: value, "N/A", or "Error"
	Status  charge.Status
	Label   string

	Published   bool
	SinkBackoff bool // sink unreachable; extend the sleep
}

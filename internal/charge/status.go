// internal/charge/status.go
package charge

import "fuelgauged/internal/gauge"

// Status is the classifier's view of the charge trend.
type Status int

const (
	// Initializing is reachable only by external re-initialization and
	// means "no prior status assumption". The classifier never produces
	// it.
	Initializing Status = iota
	Monitoring
	Charging
	Discharging
	Stable
)

func (s Status) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Monitoring:
		return "Monitoring"
	case Charging:
		return "Charging"
	case Discharging:
		return "Discharging"
	case Stable:
		return "Stable"
	default:
		return "Unknown"
	}
}

// Published vocabulary: the exact strings the sink's status endpoint
// parses. Anything else lands on Unknown on the kernel side.
const (
	LabelCharging    = "Charging"
	LabelDischarging = "Discharging"
	LabelFull        = "Full"
	LabelNotCharging = "Not charging"
	LabelUnknown     = "Unknown"
)

// Label maps a status to the published vocabulary. Stable splits on the
// full-voltage threshold: at or above means the pack is being held full,
// below means idle. Pure function, no hidden state.
func Label(s Status, v, full gauge.Volts) string {
	switch s {
	case Charging:
		return LabelCharging
	case Discharging:
		return LabelDischarging
	case Stable:
		if v >= full {
			return LabelFull
		}
		return LabelNotCharging
	default:
		return LabelUnknown
	}
}

// internal/charge/classifier.go
package charge

import "fuelgauged/internal/gauge"

// Plausible single-cell voltage window, both ends exclusive. A sample
// outside it clears the hysteresis memory instead of poisoning the next
// diff.
const (
	minPlausible gauge.Volts = 10000 // 1.0 V
	maxPlausible gauge.Volts = 50000 // 5.0 V
)

// Thresholds hold the per-cycle voltage deltas that arm a transition.
// Increase is positive, Decrease negative; the [Decrease, Increase]
// deadband must exceed expected measurement noise.
type Thresholds struct {
	Increase gauge.Volts
	Decrease gauge.Volts
	Full     gauge.Volts
}

// State persists across cycles. The poller owns the only instance and
// threads it through every call; there are no package globals.
type State struct {
	Status  Status
	Last    gauge.Volts
	HasLast bool
}

// NewState starts in Monitoring with no voltage reference.
func NewState() State {
	return State{Status: Monitoring}
}

// Classify returns the next status for one voltage sample.
func Classify(v gauge.Volts, st State, th Thresholds) Status {
	// No reference voltage: re-establish one before consulting
	// thresholds.
	if !st.HasLast {
		return Monitoring
	}

	diff := v - st.Last

	switch {
	case diff > th.Increase:
		return Charging

	case diff < th.Decrease && st.Status != Charging:
		// Asymmetric: a momentary dip while already Charging is charger
		// ripple, not a discharge.
		return Discharging

	case diff >= th.Decrease && diff <= th.Increase &&
		(st.Status == Initializing || st.Status == Monitoring):
		return Stable

	default:
		return st.Status
	}
}

// Accept stores v as the reference for the next cycle, or clears the
// reference when v falls outside the plausible window, forcing
// Monitoring on the next classification.
func (st *State) Accept(v gauge.Volts) {
	if v > minPlausible && v < maxPlausible {
		st.Last = v
		st.HasLast = true
		return
	}
	st.Last = 0
	st.HasLast = false
}

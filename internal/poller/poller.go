// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"fuelgauged/internal/charge"
	"fuelgauged/internal/gauge"
	"fuelgauged/internal/writer"
)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval   time.Duration
	Thresholds charge.Thresholds
	Publish    bool
}

// Poller is a clock-driven reader. It owns the classifier state; no
// other code mutates it.
type Poller struct {
	cfg   Config
	bus   gauge.ByteReader
	sink  writer.Sink
	state charge.State
}

// New creates a poller with immutable config.
func New(cfg Config, bus gauge.ByteReader, sink writer.Sink) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if bus == nil {
		return nil, errors.New("poller: bus reader required")
	}
	if cfg.Publish && sink == nil {
		return nil, errors.New("poller: publish enabled but no sink")
	}
	return &Poller{cfg: cfg, bus: bus, sink: sink, state: charge.NewState()}, nil
}

// State returns a copy of the persisted classifier state.
func (p *Poller) State() charge.State { return p.state }

// PollOnce performs exactly one cycle. A bus or conversion fault on the
// critical path (VCELL, SOC) skips the cycle and leaves the classifier
// state untouched; temperature faults degrade only their column.
func (p *Poller) PollOnce() CycleResult {
	res := CycleResult{At: time.Now()}

	rawVCell, err := gauge.ReadWord(p.bus, gauge.RegVCell)
	if err != nil {
		res.Skipped, res.Err = true, err
		return res
	}
	rawSOC, err := gauge.ReadWord(p.bus, gauge.RegSOC)
	if err != nil {
		res.Skipped, res.Err = true, err
		return res
	}
	rawTemp, tempErr := gauge.ReadWord(p.bus, gauge.RegTemp)

	rd, err := gauge.Convert(rawVCell, rawSOC)
	if err != nil {
		res.Skipped, res.Err = true, err
		return res
	}
	res.Reading = rd
	res.Temp = tempColumn(rawTemp, tempErr)

	p.state.Status = charge.Classify(rd.Volts, p.state, p.cfg.Thresholds)
	res.Status = p.state.Status
	res.Label = charge.Label(p.state.Status, rd.Volts, p.cfg.Thresholds.Full)

	if p.cfg.Publish {
		if err := p.sink.Publish(rd.Microvolts, rd.Percent, res.Label); err != nil {
			res.Err = err
			res.SinkBackoff = errors.Is(err, writer.ErrSinkUnavailable)
		} else {
			res.Published = true
		}
	}

	// Runs last, publish failure or not: a wild sample still went out,
	// but it must not become the next cycle's reference.
	p.state.Accept(rd.Volts)

	return res
}

func tempColumn(raw uint16, err error) string {
	if err != nil {
		return "Error"
	}
	t, ok := gauge.TempToCentiCelsius(raw)
	if !ok {
		return "N/A"
	}
	return t.String()
}

// internal/poller/poller_test.go
package poller

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"fuelgauged/internal/charge"
	"fuelgauged/internal/gauge"
	"fuelgauged/internal/writer"
)

// ---- fake bus ----

// fakeBus serves 16-bit words as MSB/LSB byte pairs the way the gauge
// does, with per-register fault injection.
type fakeBus struct {
	words map[uint8]uint16
	fail  map[uint8]bool
}

func (f *fakeBus) ReadByte(reg uint8) (uint8, error) {
	if f.fail[reg] {
		return 0, errors.New("nak")
	}
	if w, ok := f.words[reg]; ok {
		return uint8(w >> 8), nil
	}
	if w, ok := f.words[reg-1]; ok {
		return uint8(w), nil
	}
	return 0, fmt.Errorf("unmapped register 0x%02X", reg)
}

func (f *fakeBus) set(vcell, soc, temp uint16) {
	f.words = map[uint8]uint16{
		gauge.RegVCell: vcell,
		gauge.RegSOC:   soc,
		gauge.RegTemp:  temp,
	}
}

// rawVCell converts a voltage in volts to the register word.
func rawVCell(v float64) uint16 {
	return uint16(math.Round(v / 78.125e-6))
}

// ---- fake sink ----

type publishCall struct {
	uv       int64
	capacity int
	status   string
}

type fakeSink struct {
	calls []publishCall
	err   error
}

func (f *fakeSink) Publish(uv int64, capacity int, status string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, publishCall{uv: uv, capacity: capacity, status: status})
	return nil
}

func testPoller(t *testing.T, bus *fakeBus, sink writer.Sink) *Poller {
	t.Helper()
	p, err := New(Config{
		Interval: time.Second,
		Thresholds: charge.Thresholds{
			Increase: 100,
			Decrease: -100,
			Full:     41800,
		},
		Publish: sink != nil,
	}, bus, sink)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return p
}

// ---- tests ----

func TestPollOnce_Success(t *testing.T) {
	bus := &fakeBus{}
	bus.set(rawVCell(4.150), 22272 /* 87% */, 0x1900)
	sink := &fakeSink{}

	p := testPoller(t, bus, sink)
	res := p.PollOnce()

	if res.Skipped || res.Err != nil {
		t.Fatalf("unexpected skip/err: %v", res.Err)
	}
	if res.Status != charge.Monitoring {
		t.Fatalf("first cycle status=%s, want Monitoring", res.Status)
	}
	if res.Label != "Unknown" {
		t.Fatalf("first cycle label=%q, want Unknown", res.Label)
	}
	if res.Temp != "25.00" {
		t.Fatalf("temp column=%q, want 25.00", res.Temp)
	}
	if !res.Published || len(sink.calls) != 1 {
		t.Fatalf("expected exactly one publish, got %d", len(sink.calls))
	}
	call := sink.calls[0]
	if call.uv != 4150000 || call.capacity != 87 || call.status != "Unknown" {
		t.Fatalf("published %+v", call)
	}

	st := p.State()
	if !st.HasLast || st.Last != 41500 {
		t.Fatalf("last voltage not accepted: %+v", st)
	}
}

func TestPollOnce_HysteresisAcrossCycles(t *testing.T) {
	scenarios := []struct {
		name  string
		steps []struct {
			vcell float64
			want  string
		}
	}{
		{
			name: "charger ripple never flips the status",
			steps: []struct {
				vcell float64
				want  string
			}{
				{4.150, "Unknown"},  // no reference yet
				{4.170, "Charging"}, // +0.020 V
				{4.155, "Charging"}, // dip while charging: ripple
				{4.156, "Charging"}, // deadband keeps the state
				{4.140, "Charging"}, // dips while Charging stay masked
			},
		},
		{
			name: "idle pack drains",
			steps: []struct {
				vcell float64
				want  string
			}{
				{4.150, "Unknown"},
				{4.151, "Not charging"}, // deadband from Monitoring -> Stable
				{4.135, "Discharging"},  // -0.016 V
				{4.120, "Discharging"},
			},
		},
	}

	for _, sc := range scenarios {
		bus := &fakeBus{}
		p := testPoller(t, bus, &fakeSink{})

		for i, s := range sc.steps {
			bus.set(rawVCell(s.vcell), 20480, gauge.TempNone)
			res := p.PollOnce()
			if res.Skipped {
				t.Fatalf("%s: cycle %d skipped: %v", sc.name, i+1, res.Err)
			}
			if res.Label != s.want {
				t.Fatalf("%s: cycle %d (%.3f V): label=%q, want %q",
					sc.name, i+1, s.vcell, res.Label, s.want)
			}
		}
	}
}

func TestPollOnce_StableSplitsOnFullThreshold(t *testing.T) {
	for _, tc := range []struct {
		vcell float64
		want  string
	}{
		{4.18, "Full"},
		{4.10, "Not charging"},
	} {
		bus := &fakeBus{}
		sink := &fakeSink{}
		p := testPoller(t, bus, sink)

		// Two identical samples: Monitoring, then deadband -> Stable.
		bus.set(rawVCell(tc.vcell), 20480, gauge.TempNone)
		p.PollOnce()
		res := p.PollOnce()

		if res.Status != charge.Stable {
			t.Fatalf("%.2f V: status=%s, want Stable", tc.vcell, res.Status)
		}
		if res.Label != tc.want {
			t.Fatalf("%.2f V: label=%q, want %q", tc.vcell, res.Label, tc.want)
		}
	}
}

func TestPollOnce_BusFaultSkipsAndKeepsState(t *testing.T) {
	bus := &fakeBus{}
	bus.set(rawVCell(4.150), 22272, 0x1900)
	sink := &fakeSink{}
	p := testPoller(t, bus, sink)

	p.PollOnce()
	before := p.State()

	// SOC register LSB fault: critical, whole cycle skipped.
	bus.fail = map[uint8]bool{gauge.RegSOC + 1: true}
	res := p.PollOnce()

	if !res.Skipped {
		t.Fatal("expected skipped cycle")
	}
	if !errors.Is(res.Err, gauge.ErrBus) {
		t.Fatalf("expected ErrBus, got %v", res.Err)
	}
	if p.State() != before {
		t.Fatalf("classifier state changed on skipped cycle: %+v != %+v", p.State(), before)
	}
	if len(sink.calls) != 1 {
		t.Fatalf("skipped cycle published: %d calls", len(sink.calls))
	}
}

func TestPollOnce_TempFaultDegradesColumnOnly(t *testing.T) {
	bus := &fakeBus{}
	bus.set(rawVCell(4.150), 22272, 0x1900)
	bus.fail = map[uint8]bool{gauge.RegTemp: true}
	sink := &fakeSink{}
	p := testPoller(t, bus, sink)

	res := p.PollOnce()
	if res.Skipped {
		t.Fatalf("temp fault must not skip the cycle: %v", res.Err)
	}
	if res.Temp != "Error" {
		t.Fatalf("temp column=%q, want Error", res.Temp)
	}
	if !res.Published {
		t.Fatal("cycle with temp fault must still publish")
	}
}

func TestPollOnce_TempSentinel(t *testing.T) {
	bus := &fakeBus{}
	bus.set(rawVCell(4.150), 22272, gauge.TempNone)
	p := testPoller(t, bus, nil)

	if res := p.PollOnce(); res.Temp != "N/A" {
		t.Fatalf("temp column=%q, want N/A", res.Temp)
	}
}

func TestPollOnce_SinkUnavailableRequestsBackoff(t *testing.T) {
	bus := &fakeBus{}
	bus.set(rawVCell(4.150), 22272, gauge.TempNone)
	sink := &fakeSink{err: fmt.Errorf("%w: gone", writer.ErrSinkUnavailable)}
	p := testPoller(t, bus, sink)

	res := p.PollOnce()
	if res.Skipped {
		t.Fatal("sink failure must not skip the cycle")
	}
	if res.Published {
		t.Fatal("publish reported despite sink failure")
	}
	if !res.SinkBackoff {
		t.Fatal("expected backoff request for unreachable sink")
	}

	// The voltage reference still advances.
	if st := p.State(); !st.HasLast {
		t.Fatal("last voltage not accepted after sink failure")
	}
}

func TestPollOnce_ImplausibleVoltageClearsReference(t *testing.T) {
	bus := &fakeBus{}
	sink := &fakeSink{}
	p := testPoller(t, bus, sink)

	bus.set(rawVCell(4.150), 22272, gauge.TempNone)
	p.PollOnce()

	// 0 V is outside the plausible window: still published, but the
	// hysteresis memory resets.
	bus.set(0, 22272, gauge.TempNone)
	res := p.PollOnce()
	if !res.Published {
		t.Fatal("out-of-range voltage must still publish")
	}
	if st := p.State(); st.HasLast {
		t.Fatalf("reference kept for implausible voltage: %+v", st)
	}

	// Next good sample re-enters via Monitoring.
	bus.set(rawVCell(4.150), 22272, gauge.TempNone)
	if res := p.PollOnce(); res.Status != charge.Monitoring {
		t.Fatalf("status=%s after reset, want Monitoring", res.Status)
	}
}

func TestNew_Validation(t *testing.T) {
	bus := &fakeBus{}

	if _, err := New(Config{Interval: 0, Publish: false}, bus, nil); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if _, err := New(Config{Interval: time.Second}, nil, nil); err == nil {
		t.Fatal("expected error for nil bus")
	}
	if _, err := New(Config{Interval: time.Second, Publish: true}, bus, nil); err == nil {
		t.Fatal("expected error for publish without sink")
	}
}

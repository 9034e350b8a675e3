// internal/gauge/convert.go
package gauge

import (
	"errors"
	"fmt"
	"math"
)

// ErrConversion marks a derived value that failed its shape check.
var ErrConversion = errors.New("gauge: conversion produced out-of-shape value")

// Volts is a cell voltage in units of 0.1 mV (4 fractional decimal
// digits). All measurement arithmetic is integer and truncates toward
// zero; the register scale factors do not survive float round-trips on
// boundary values.
type Volts int64

// 78.125 uV per LSB at 1e-4 V resolution:
// raw * 78.125e-6 V = raw * 78125 / 1e9 V = raw * 78125 / 1e5 units.
const (
	vcellScaleNum = 78125
	vcellScaleDen = 100000
)

// VCellToVolts converts the raw VCELL word, truncating toward zero.
func VCellToVolts(raw uint16) Volts {
	return Volts(int64(raw) * vcellScaleNum / vcellScaleDen)
}

// VoltsFromFloat converts a configuration value given in volts, rounded
// to the nearest 0.1 mV. Truncation is reserved for register-derived
// measurements; config floats like 4.18 must not land one unit short.
func VoltsFromFloat(f float64) Volts {
	return Volts(math.Round(f * 10000))
}

// Microvolts returns the voltage in whole microvolts.
func (v Volts) Microvolts() int64 { return int64(v) * 100 }

func (v Volts) String() string {
	u := int64(v)
	sign := ""
	if u < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%04d", sign, u/10000, u%10000)
}

// CentiPercent is a state-of-charge percentage in units of 0.01 %.
type CentiPercent int64

// SOCToPercent floors raw/256 and clamps to the 0-100 range the sink
// accepts.
func SOCToPercent(raw uint16) int {
	p := int(raw) / 256
	if p > 100 {
		p = 100
	}
	return p
}

// SOCToCentiPercent keeps two truncated decimals for display.
func SOCToCentiPercent(raw uint16) CentiPercent {
	return CentiPercent(int64(raw) * 100 / 256)
}

func (p CentiPercent) String() string {
	u := int64(p)
	sign := ""
	if u < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%02d", sign, u/100, u%100)
}

// CentiCelsius is a temperature in units of 0.01 degC.
type CentiCelsius int64

// TempToCentiCelsius interprets raw as a signed two's-complement word in
// 1/256 degC steps, truncated toward zero. ok is false for the 0xFFFF
// no-reading sentinel.
func TempToCentiCelsius(raw uint16) (CentiCelsius, bool) {
	if raw == TempNone {
		return 0, false
	}
	return CentiCelsius(int64(int16(raw)) * 100 / 256), true
}

func (t CentiCelsius) String() string {
	u := int64(t)
	sign := ""
	if u < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%02d", sign, u/100, u%100)
}

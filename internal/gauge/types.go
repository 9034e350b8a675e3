// internal/gauge/types.go
package gauge

import "fmt"

// Reading is one converted sample on the critical path. SOCDisplay is
// best-effort: its ok flag drops when the display value cannot be
// derived, without failing the cycle.
type Reading struct {
	Volts      Volts
	Microvolts int64
	Percent    int

	SOCDisplay   CentiPercent
	SOCDisplayOK bool
}

// Convert derives a Reading from the raw VCELL and SOC words. The shape
// checks mirror the sink's own validation and should never fire on
// correct arithmetic; when one does, the cycle is not publishable.
func Convert(rawVCell, rawSOC uint16) (Reading, error) {
	var rd Reading

	rd.Volts = VCellToVolts(rawVCell)
	if rd.Volts < 0 {
		return Reading{}, fmt.Errorf("%w: voltage=%s", ErrConversion, rd.Volts)
	}
	rd.Microvolts = rd.Volts.Microvolts()
	if rd.Microvolts < 0 {
		return Reading{}, fmt.Errorf("%w: microvolts=%d", ErrConversion, rd.Microvolts)
	}
	rd.Percent = SOCToPercent(rawSOC)
	if rd.Percent < 0 || rd.Percent > 100 {
		return Reading{}, fmt.Errorf("%w: percent=%d", ErrConversion, rd.Percent)
	}

	rd.SOCDisplay = SOCToCentiPercent(rawSOC)
	rd.SOCDisplayOK = rd.SOCDisplay >= 0

	return rd, nil
}

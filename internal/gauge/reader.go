// internal/gauge/reader.go
package gauge

import (
	"errors"
	"fmt"
)

// ErrBus marks a failed, short, or malformed register read.
var ErrBus = errors.New("gauge: bus read failed")

// ByteReader is the injected bus primitive: one byte at one register
// address, synchronous, may fail. Real hardware lives behind the i2cdev
// adapter; tests supply fakes.
type ByteReader interface {
	ReadByte(reg uint8) (uint8, error)
}

// ReadWord reads the byte at reg and the byte at reg+1, in that order,
// and combines them MSB-first. No retry here: retry policy belongs to
// the caller, and the caller applies none.
func ReadWord(r ByteReader, reg uint8) (uint16, error) {
	msb, err := r.ReadByte(reg)
	if err != nil {
		return 0, fmt.Errorf("%w: reg=0x%02X: %v", ErrBus, reg, err)
	}
	lsb, err := r.ReadByte(reg + 1)
	if err != nil {
		return 0, fmt.Errorf("%w: reg=0x%02X: %v", ErrBus, reg+1, err)
	}
	return uint16(msb)<<8 | uint16(lsb), nil
}

// internal/gauge/registers.go
package gauge

// MAX17048 register map. Each quantity is a 16-bit word with the MSB at
// the listed address and the LSB at the next address.
const (
	RegVCell uint8 = 0x02 // cell voltage, 78.125 uV per LSB
	RegSOC   uint8 = 0x04 // state of charge, 1/256 % per LSB
	RegTemp  uint8 = 0x16 // temperature, 1/256 degC per LSB, signed
)

// TempNone is the gauge's no-reading sentinel for the temperature word.
const TempNone uint16 = 0xFFFF

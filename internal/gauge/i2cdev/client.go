// internal/gauge/i2cdev/client.go
package i2cdev

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// Client implements gauge.ByteReader over an I2C bus. Geometry only:
// one register-address write, one single-byte read per call.
type Client struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// Config is minimal transport config.
type Config struct {
	Bus     string // i2creg bus name or number; empty selects the first bus
	Address uint16 // 7-bit device address
}

// New opens the bus and binds the device address.
func New(cfg Config) (*Client, error) {
	if cfg.Address == 0 {
		return nil, errors.New("i2cdev: device address required")
	}

	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("i2cdev: open bus %q: %w", cfg.Bus, err)
	}

	return &Client{
		bus: bus,
		dev: &i2c.Dev{Addr: cfg.Address, Bus: bus},
	}, nil
}

// Close closes the underlying bus handle.
func (c *Client) Close() error {
	if c == nil || c.bus == nil {
		return nil
	}
	return c.bus.Close()
}

// ReadByte reads the single byte at reg.
func (c *Client) ReadByte(reg uint8) (uint8, error) {
	var buf [1]byte
	if err := c.dev.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

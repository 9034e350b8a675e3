// internal/writer/sysfs.go
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSinkUnavailable means the battery module's attribute files are
// missing or not writable, usually because the module is not loaded.
var ErrSinkUnavailable = errors.New("writer: publish sink unavailable")

// Attribute names exposed by the userspace_battery platform device.
const (
	attrVoltage  = "set_voltage_uv"
	attrCapacity = "set_capacity"
	attrStatus   = "set_status"
)

// SysfsSink writes telemetry to the module's write-only sysfs
// attributes. It never reads them back.
type SysfsSink struct {
	dir string
}

// NewSysfsSink binds the sink to the platform device directory. The
// directory is probed per publish, not here: the module may load or
// unload while we run.
func NewSysfsSink(dir string) (*SysfsSink, error) {
	if dir == "" {
		return nil, errors.New("writer: sink directory required")
	}
	return &SysfsSink{dir: dir}, nil
}

// Probe checks that all three endpoints exist and carry a write bit.
func (s *SysfsSink) Probe() error {
	for _, name := range []string{attrVoltage, attrCapacity, attrStatus} {
		path := filepath.Join(s.dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSinkUnavailable, path, err)
		}
		if info.Mode().Perm()&0o200 == 0 {
			return fmt.Errorf("%w: %s: not writable", ErrSinkUnavailable, path)
		}
	}
	return nil
}

// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Publish overwrites the three endpoints with plain ASCII-decimal
// values, voltage first, status last. Values the kernel module would
// reject with EINVAL are refused here instead of sent.
//
// Fire and forget: a write failure is reported, never retried, and
// never rolled back. A failure partway through leaves earlier endpoints
// updated.
func (s *SysfsSink) Publish(microvolts int64, capacity int, status string) error {
	if microvolts < 0 {
		return fmt.Errorf("writer: negative voltage %d uV refused", microvolts)
	}
	if capacity < 0 || capacity > 100 {
		return fmt.Errorf("writer: capacity %d out of range 0-100", capacity)
	}

	// All-or-nothing gate: no endpoint is touched unless all three are
	// present and writable.
	if err := s.Probe(); err != nil {
		return err
	}

	writes := []struct {
		attr  string
		value string
	}{
		{attrVoltage, strconv.FormatInt(microvolts, 10)},
		{attrCapacity, strconv.Itoa(capacity)},
		{attrStatus, status},
	}

	var errs []string
	for _, w := range writes {
		path := filepath.Join(s.dir, w.attr)
		if err := os.WriteFile(path, []byte(w.value), 0o200); err != nil {
			errs = append(errs, fmt.Sprintf("writer: %s: %v", path, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}
	return nil
}

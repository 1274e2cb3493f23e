//go:build !linux
// +build !linux

package hardware

import (
	"fmt"
	"runtime"
)

// ErrNotSupported is returned when interface enumeration is attempted on
// non-Linux systems.
var ErrNotSupported = fmt.Errorf("interface enumeration not supported on %s", runtime.GOOS)

// ListInterfaces scans for physical network interfaces (stub for non-Linux).
func ListInterfaces() ([]NetInterface, error) {
	return nil, ErrNotSupported
}

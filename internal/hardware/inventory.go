package hardware

import (
	"fmt"

	"grimm.is/bedrock/internal/logging"
)

// Drive represents one install-candidate storage device. Drives are built
// fresh on each enumeration and never mutated afterwards.
type Drive struct {
	Path       string `json:"path"`
	SizeGB     int64  `json:"size_gb"`
	Model      string `json:"model"`
	Removable  bool   `json:"removable"`
	HasWindows bool   `json:"has_windows"`
}

// String renders the drive for selection UIs: "/dev/nvme0n1 (1000GB - Samsung SSD)".
func (d Drive) String() string {
	if d.Model != "" && d.Model != "Unknown" {
		return fmt.Sprintf("%s (%dGB - %s)", d.Path, d.SizeGB, d.Model)
	}
	return fmt.Sprintf("%s (%dGB)", d.Path, d.SizeGB)
}

// Inventory performs read-only hardware queries. Each call is a fresh read;
// no state survives between calls.
type Inventory struct {
	// DryRun suppresses every external tool invocation, substituting safe
	// defaults. Filesystem reads still go through DevDir/SysDir.
	DryRun bool

	// Runner executes external probe tools (blkid, efibootmgr).
	Runner Runner

	// DevDir and SysDir are the device and sysfs block roots, overridable
	// for tests.
	DevDir string
	SysDir string

	// IsBlockDevice filters enumeration candidates. Overridable for tests,
	// where fixture trees hold regular files.
	IsBlockDevice func(path string) bool

	logger *logging.Logger
}

// NewInventory creates an Inventory against the real system paths.
func NewInventory(logger *logging.Logger, dryRun bool) *Inventory {
	if logger == nil {
		logger = logging.Default()
	}
	return &Inventory{
		DryRun:        dryRun,
		Runner:        &ExecRunner{Timeout: DefaultTimeout},
		DevDir:        "/dev",
		SysDir:        "/sys/block",
		IsBlockDevice: blockDeviceExists,
		logger:        logger.WithComponent("hardware"),
	}
}

// CategorizeDrives partitions drives into those safe to install on and those
// carrying a Windows installation. It relies purely on the HasWindows flag
// computed during enumeration and does not re-query the system.
func CategorizeDrives(drives []Drive) (safe, windows []Drive) {
	for _, d := range drives {
		if d.HasWindows {
			windows = append(windows, d)
		} else {
			safe = append(safe, d)
		}
	}
	return safe, windows
}

package hardware

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// nvmeNameRegex is the NVMe namespace device grammar: nvme<ctrl>n<ns>.
// Partition nodes (nvme0n1p1) do not match.
var nvmeNameRegex = regexp.MustCompile(`^nvme\d+n\d+$`)

// EnumerateDrives discovers every fixed NVMe namespace device under DevDir.
// Removable devices are excluded; devices with unreadable attributes degrade
// to safe defaults rather than failing the enumeration.
func (inv *Inventory) EnumerateDrives(ctx context.Context) []Drive {
	matches, err := filepath.Glob(filepath.Join(inv.DevDir, "nvme*n*"))
	if err != nil {
		inv.logger.Warn("device glob failed", "error", err)
		return nil
	}

	var drives []Drive
	for _, devPath := range matches {
		name := filepath.Base(devPath)
		if !nvmeNameRegex.MatchString(name) {
			continue
		}
		if inv.IsBlockDevice != nil && !inv.IsBlockDevice(devPath) {
			continue
		}

		sysPath := filepath.Join(inv.SysDir, name)
		if _, err := os.Stat(sysPath); err != nil {
			inv.logger.Warn("no sysfs entry for device", "device", name)
			continue
		}

		if inv.readRemovable(sysPath) {
			inv.logger.Debug("skipping removable device", "device", name)
			continue
		}

		drive := Drive{
			Path:       devPath,
			SizeGB:     inv.readSizeGB(sysPath),
			Model:      inv.readModel(sysPath),
			HasWindows: inv.DetectWindows(ctx, devPath),
		}
		drives = append(drives, drive)
	}

	inv.logger.Info("enumerated NVMe drives", "count", len(drives))
	return drives
}

// readRemovable reports whether sysfs marks the device removable. An
// unreadable flag is treated as a fixed disk, not an error.
func (inv *Inventory) readRemovable(sysPath string) bool {
	data, err := os.ReadFile(filepath.Join(sysPath, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// readSizeGB computes the device size in decimal gigabytes from the raw
// sector count (sectors are always 512 bytes in sysfs, regardless of the
// device's logical block size). The decimal 10^9 convention matches what
// drive vendors print on the label; this is deliberate, not binary GiB.
func (inv *Inventory) readSizeGB(sysPath string) int64 {
	data, err := os.ReadFile(filepath.Join(sysPath, "size"))
	if err != nil {
		inv.logger.Warn("unreadable size attribute", "path", sysPath)
		return 0
	}
	sectors, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return sectors * 512 / 1_000_000_000
}

// readModel reads the device model string, stripped of NUL bytes and
// whitespace. Unreadable models degrade to "Unknown".
func (inv *Inventory) readModel(sysPath string) string {
	data, err := os.ReadFile(filepath.Join(sysPath, "device", "model"))
	if err != nil {
		return "Unknown"
	}
	model := strings.ReplaceAll(string(data), "\x00", "")
	model = strings.TrimSpace(model)
	if model == "" {
		return "Unknown"
	}
	return model
}

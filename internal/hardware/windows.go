package hardware

import (
	"context"
	"strings"
)

// DetectWindows reports whether the drive's first partition carries a
// Windows EFI system partition, judged by the filesystem label blkid
// reports for <drive>p1. This is a best-effort heuristic: non-English
// installs or relabeled partitions can evade it, so callers must treat it
// as a warning signal, not a safety guarantee.
//
// In dry-run mode no external tool is invoked and the answer is always
// false. Any probe failure (tool missing, non-zero exit) also counts as
// "no Windows".
func (inv *Inventory) DetectWindows(ctx context.Context, drivePath string) bool {
	if inv.DryRun {
		inv.logger.Debug("dry-run: skipping Windows probe", "drive", drivePath)
		return false
	}

	out, err := inv.Runner.Run(ctx, "blkid", "-o", "value", "-s", "LABEL", drivePath+"p1")
	if err != nil {
		inv.logger.Debug("label probe failed", "drive", drivePath, "error", err)
		return false
	}

	return strings.Contains(out, "EFI") || strings.Contains(out, "SYSTEM")
}

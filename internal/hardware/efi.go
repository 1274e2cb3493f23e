package hardware

import (
	"context"
	"regexp"
	"strings"
)

// EfiEntry represents one firmware boot entry.
type EfiEntry struct {
	BootID     string `json:"boot_id"`
	Name       string `json:"name"`
	DevicePath string `json:"device_path"`
	Drive      string `json:"drive,omitempty"`
}

// efiLineRegex matches efibootmgr output lines:
//
//	Boot0006* KDE neon      HD(1,GPT,88a04cd7-...)/File(\EFI\KDE Neon\shimx64.efi)
//
// The active marker '*' is optional and not retained; the name match is
// non-greedy so trailing whitespace stays out of it.
var efiLineRegex = regexp.MustCompile(`^Boot([0-9A-Fa-f]+)\*?\s+(.+?)\s+(HD\(.*)$`)

// ParseEfiEntry parses one efibootmgr output line. Lines that don't match
// the expected grammar are discarded (ok = false).
func ParseEfiEntry(line string) (EfiEntry, bool) {
	m := efiLineRegex.FindStringSubmatch(line)
	if m == nil {
		return EfiEntry{}, false
	}
	return EfiEntry{
		BootID:     m[1],
		Name:       strings.TrimSpace(m[2]),
		DevicePath: m[3],
	}, true
}

// EfiEntries lists the firmware boot entries that reference a KDE loader
// (matched case-insensitively). A missing or failing efibootmgr is logged
// and treated as "no entries", never as a fatal error. In dry-run mode the
// tool is not invoked at all.
func (inv *Inventory) EfiEntries(ctx context.Context) []EfiEntry {
	if inv.DryRun {
		inv.logger.Debug("dry-run: skipping EFI entry listing")
		return nil
	}

	out, err := inv.Runner.Run(ctx, "efibootmgr")
	if err != nil {
		inv.logger.Warn("efibootmgr not available", "error", err)
		return nil
	}

	var entries []EfiEntry
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToUpper(line), "KDE") {
			continue
		}
		entry, ok := ParseEfiEntry(line)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

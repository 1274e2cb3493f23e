// Package hardware enumerates install-candidate storage and firmware boot
// state on the running machine.
//
// # Overview
//
// The [Inventory] discovers NVMe block devices from the device tree, reads
// their sysfs attributes (size, model, removable flag), detects Windows
// installations via a partition-label probe, and lists EFI boot entries from
// the firmware boot manager. All queries are fresh, read-only, and
// single-threaded; nothing is cached between calls.
//
// # Failure Model
//
// Hardware queries never fail the caller. A missing tool, unreadable sysfs
// attribute, or permission error degrades to a safe default (size 0, model
// "Unknown", no Windows, no EFI entries) and is logged as a warning.
//
// # Dry-Run Mode
//
// With DryRun set, no external process is ever spawned: the Windows probe
// always reports false and the EFI listing is empty. Filesystem reads go
// through injectable dev/sys roots so tests run against a fixture tree.
package hardware

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"grimm.is/bedrock/internal/hardware"
	"grimm.is/bedrock/internal/logging"
	"grimm.is/bedrock/internal/tui"
)

// RunDrives enumerates NVMe install candidates and prints them categorized
// into safe and Windows-carrying drives.
func RunDrives(dryRun, jsonOut bool) error {
	inv := hardware.NewInventory(logging.Default(), dryRun)
	drives := inv.EnumerateDrives(context.Background())
	safe, windows := hardware.CategorizeDrives(drives)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Drives  []hardware.Drive `json:"drives"`
			Safe    []hardware.Drive `json:"safe_drives"`
			Windows []hardware.Drive `json:"windows_drives"`
		}{drives, safe, windows})
	}

	if len(drives) == 0 {
		fmt.Println(tui.StyleStatusWarn.Render("No suitable NVMe drives found"))
		return nil
	}

	fmt.Println(tui.StyleHeader.Render("Drive Selection"))
	fmt.Printf("%s%s%s\n",
		tui.StyleTableHeader.Render("PATH"),
		tui.StyleTableHeader.Render("SIZE"),
		tui.StyleTableHeader.Render("MODEL"))

	for _, d := range drives {
		status := tui.StyleStatusGood.Render("safe")
		if d.HasWindows {
			status = tui.StyleStatusBad.Render("Windows")
		}
		fmt.Printf("%s%s%s  %s\n",
			tui.StyleTableRow.Render(d.Path),
			tui.StyleTableRow.Render(fmt.Sprintf("%dGB", d.SizeGB)),
			tui.StyleTableRow.Render(d.Model),
			status)
	}

	fmt.Println()
	if len(windows) > 0 {
		fmt.Println(tui.StyleStatusWarn.Render(
			fmt.Sprintf("Windows installations detected on %d of %d drives", len(windows), len(drives))))
	} else {
		fmt.Println(tui.StyleStatusGood.Render("No Windows installations detected"))
	}
	return nil
}

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

// RunEfi lists the firmware boot entries that reference a KDE loader.
func RunEfi(dryRun, jsonOut bool) error {
	inv := hardware.NewInventory(logging.Default(), dryRun)
	entries := inv.EfiEntries(context.Background())

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println(tui.StyleMuted.Render("No matching EFI boot entries"))
		return nil
	}

	fmt.Println(tui.StyleHeader.Render("EFI Boot Entries"))
	for _, e := range entries {
		fmt.Printf("  %s  %s\n", tui.StyleTitle.Render("Boot"+e.BootID), e.Name)
		fmt.Printf("        %s\n", tui.StyleMuted.Render(e.DevicePath))
	}
	return nil
}

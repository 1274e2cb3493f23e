package cmd

import (
	"context"
	"fmt"

	"grimm.is/bedrock/internal/config"
	"grimm.is/bedrock/internal/hardware"
	"grimm.is/bedrock/internal/logging"
	"grimm.is/bedrock/internal/tui"
)

// RunWizard walks the operator through drive selection and system settings,
// then validates and writes the install configuration.
func RunWizard(configFile string, dryRun bool) error {
	logger := logging.WithComponent("wizard")

	inv := hardware.NewInventory(logging.Default(), dryRun)
	drives := inv.EnumerateDrives(context.Background())

	ifaces, err := hardware.ListInterfaces()
	if err != nil {
		// The wizard falls back to free-form interface entry.
		logger.Warn("interface enumeration failed", "error", err)
	}

	wizard := tui.NewWizard(drives, ifaces)
	cfg, err := wizard.Run()
	if err != nil {
		return err
	}

	v := config.NewValidator()
	if !dryRun {
		v.DriveExists = hardware.BlockDeviceExists
	}
	if errs := v.ValidateConfig(cfg); errs.HasErrors() {
		printValidationErrors(errs)
		return fmt.Errorf("wizard produced an invalid configuration")
	}

	if err := config.SaveFile(configFile, cfg); err != nil {
		return err
	}

	logger.Audit("config_save", configFile, map[string]any{
		"target_drive": cfg.TargetDrive,
		"network":      cfg.Network.Type,
	})
	fmt.Println(tui.StyleStatusGood.Render("Configuration saved to " + configFile))
	return nil
}

package cmd

import (
	"fmt"

	"grimm.is/bedrock/internal/config"
	"grimm.is/bedrock/internal/hardware"
	"grimm.is/bedrock/internal/tui"
)

// RunCheck validates the configuration file syntax and field rules.
// With strict set, the target drive must also exist as a block device on
// the running machine.
func RunCheck(configFile string, strict bool) error {
	if configFile == "" {
		return fmt.Errorf("usage: bedrock check [-strict] -config <file>")
	}

	result, err := config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	v := config.NewValidator()
	if strict {
		v.DriveExists = hardware.BlockDeviceExists
	}

	errs := v.ValidateConfig(result.Config)
	if errs.HasErrors() {
		printValidationErrors(errs)
		return fmt.Errorf("%d validation error(s)", len(errs))
	}

	fmt.Println(tui.StyleStatusGood.Render("Configuration valid"))
	fmt.Printf("Target drive: %s\n", result.Config.TargetDrive)
	fmt.Printf("Hostname:     %s\n", result.Config.Hostname)
	fmt.Printf("Network:      %s\n", result.Config.Network.Type)
	return nil
}

func printValidationErrors(errs config.ValidationErrors) {
	fmt.Println(tui.StyleStatusBad.Render("Configuration validation failed:"))
	for _, e := range errs {
		fmt.Printf("  %s: %s\n", tui.StyleTitle.Render(e.Field), e.Message)
	}
}

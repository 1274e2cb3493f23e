package main

import (
	"flag"
	"fmt"
	"os"

	"grimm.is/bedrock/cmd"
	"grimm.is/bedrock/internal/brand"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
		configFile := checkFlags.String("config", brand.DefaultConfigFile(), "Configuration file")
		checkFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Configuration file (short)")
		strict := checkFlags.Bool("strict", false, "Verify the target drive exists as a block device")
		checkFlags.Parse(os.Args[2:])

		if err := cmd.RunCheck(*configFile, *strict); err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}

	case "fmt":
		fmtFlags := flag.NewFlagSet("fmt", flag.ExitOnError)
		configFile := fmtFlags.String("config", brand.DefaultConfigFile(), "Configuration file")
		fmtFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Configuration file (short)")
		check := fmtFlags.Bool("check", false, "Print a diff instead of rewriting the file")
		fmtFlags.Parse(os.Args[2:])

		if err := cmd.RunFmt(*configFile, *check); err != nil {
			fmt.Fprintf(os.Stderr, "Format failed: %v\n", err)
			os.Exit(1)
		}

	case "drives":
		driveFlags := flag.NewFlagSet("drives", flag.ExitOnError)
		dryRun := driveFlags.Bool("dry-run", false, "Do not run external tools")
		driveFlags.BoolVar(dryRun, "n", false, "Dry run (short)")
		jsonOut := driveFlags.Bool("json", false, "Output as JSON")
		driveFlags.Parse(os.Args[2:])

		if err := cmd.RunDrives(*dryRun, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "Drive enumeration failed: %v\n", err)
			os.Exit(1)
		}

	case "efi":
		efiFlags := flag.NewFlagSet("efi", flag.ExitOnError)
		dryRun := efiFlags.Bool("dry-run", false, "Do not run external tools")
		efiFlags.BoolVar(dryRun, "n", false, "Dry run (short)")
		jsonOut := efiFlags.Bool("json", false, "Output as JSON")
		efiFlags.Parse(os.Args[2:])

		if err := cmd.RunEfi(*dryRun, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "EFI enumeration failed: %v\n", err)
			os.Exit(1)
		}

	case "wizard":
		wizardFlags := flag.NewFlagSet("wizard", flag.ExitOnError)
		configFile := wizardFlags.String("config", brand.DefaultConfigFile(), "Where to write the configuration")
		wizardFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Where to write the configuration (short)")
		dryRun := wizardFlags.Bool("dry-run", false, "Do not run external tools or check block devices")
		wizardFlags.BoolVar(dryRun, "n", false, "Dry run (short)")
		wizardFlags.Parse(os.Args[2:])

		if err := cmd.RunWizard(*configFile, *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Wizard failed: %v\n", err)
			os.Exit(1)
		}

	case "version", "--version", "-v":
		cmd.RunVersion()

	case "help", "--help", "-h":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - %s

Usage:
  %s <command> [options]

Commands:
  check     Validate an installation configuration file
            Options: --config (-c) <file>, --strict
  fmt       Rewrite a configuration file in canonical form
            Options: --config (-c) <file>, --check
  drives    List internal NVMe drives suitable for installation
            Options: --dry-run (-n), --json
  efi       List EFI boot entries for installed systems
            Options: --dry-run (-n), --json
  wizard    Interactive configuration wizard
            Options: --config (-c) <file>, --dry-run (-n)
  version   Show version information

%s
`, brand.Name, brand.Description, brand.BinaryName, brand.Tagline)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"grimm.is/bedrock/internal/config"
)

// RunFmt rewrites the configuration file in canonical serialized form.
// With check set, it prints a unified diff and fails instead of writing.
func RunFmt(configFile string, check bool) error {
	current, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	canonical := config.Serialize(result.Config)
	if string(current) == canonical {
		fmt.Printf("%s is already canonical\n", configFile)
		return nil
	}

	if check {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(current)),
			B:        difflib.SplitLines(canonical),
			FromFile: configFile,
			ToFile:   configFile + " (canonical)",
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("failed to compute diff: %w", err)
		}
		fmt.Print(diff)
		return fmt.Errorf("%s is not in canonical form", configFile)
	}

	if err := os.WriteFile(configFile, []byte(canonical), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Printf("rewrote %s\n", configFile)
	return nil
}

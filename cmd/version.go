package cmd

import (
	"fmt"

	"grimm.is/bedrock/internal/brand"
)

// RunVersion prints version and build information.
func RunVersion() {
	fmt.Printf("%s %s\n", brand.Name, brand.Version)
	fmt.Printf("  Build time: %s\n", brand.BuildTime)
	fmt.Printf("  Git commit: %s\n", brand.GitCommit)
}

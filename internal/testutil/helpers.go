package testutil

import (
	"os"
	"testing"
)

// RequireHardware skips the test if the BEDROCK_HW_TEST environment variable
// is not set. Tests that probe real /dev and /sys state only make sense on a
// machine set aside for installer testing.
func RequireHardware(t *testing.T) {
	t.Helper()
	if os.Getenv("BEDROCK_HW_TEST") == "" {
		t.Skip("Skipping test: requires BEDROCK_HW_TEST environment")
	}
}

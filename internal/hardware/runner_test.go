package hardware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	r := &ExecRunner{}

	out, err := r.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)

	_, err = r.Run(context.Background(), "definitely-not-a-real-tool-xyz")
	require.Error(t, err)
}

func TestExecRunnerTimeout(t *testing.T) {
	r := &ExecRunner{Timeout: 50 * time.Millisecond}

	start := time.Now()
	_, err := r.Run(context.Background(), "sleep", "5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "hung tool must be bounded by the timeout")
}

func TestRecordingRunner(t *testing.T) {
	r := NewRecordingRunner()
	r.Outputs = map[string]string{"blkid -o value -s LABEL /dev/nvme0n1p1": "EFI\n"}
	r.Errs = map[string]error{"efibootmgr": errors.New("boom")}

	out, err := r.Run(context.Background(), "blkid", "-o", "value", "-s", "LABEL", "/dev/nvme0n1p1")
	require.NoError(t, err)
	assert.Equal(t, "EFI\n", out)

	_, err = r.Run(context.Background(), "efibootmgr")
	require.Error(t, err)

	assert.Equal(t, 2, r.CallCount())
	assert.Equal(t, []string{
		"blkid -o value -s LABEL /dev/nvme0n1p1",
		"efibootmgr",
	}, r.Commands)
}

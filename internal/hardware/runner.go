package hardware

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout bounds external tool invocations. A hung probe tool should
// stall one query, not the whole installer session.
const DefaultTimeout = 10 * time.Second

// Runner executes an external tool and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, arg ...string) (string, error)
}

// ExecRunner runs real commands with a bounded timeout.
type ExecRunner struct {
	Timeout time.Duration
}

// Run executes the command, capping it at the configured timeout.
func (e *ExecRunner) Run(ctx context.Context, name string, arg ...string) (string, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, arg...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

// RecordingRunner implements Runner but only records commands. Used to
// assert the dry-run guarantee and to feed canned tool output in tests.
type RecordingRunner struct {
	mu       sync.Mutex
	Commands []string

	// Outputs maps a full command line ("name arg ...") to canned output.
	Outputs map[string]string

	// Errs maps a full command line to a canned error.
	Errs map[string]error
}

// NewRecordingRunner creates a new recording runner.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		Commands: make([]string, 0),
	}
}

// Run records the command and returns any canned output or error.
func (r *RecordingRunner) Run(ctx context.Context, name string, arg ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := name
	if len(arg) > 0 {
		cmd = fmt.Sprintf("%s %s", name, strings.Join(arg, " "))
	}
	r.Commands = append(r.Commands, cmd)

	if err, ok := r.Errs[cmd]; ok {
		return "", err
	}
	return r.Outputs[cmd], nil
}

// CallCount returns how many commands have been recorded.
func (r *RecordingRunner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Commands)
}

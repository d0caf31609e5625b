package proclaunch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"scriptshim/internal/core/domain/invocation"
	"scriptshim/internal/core/ports"
)

// OSProcessLauncher implements the ProcessLauncher port with the
// operating system's process creation facilities.
type OSProcessLauncher struct{}

// NewOSProcessLauncher creates a new OSProcessLauncher.
func NewOSProcessLauncher() ports.ProcessLauncher {
	return &OSProcessLauncher{}
}

// Launch runs the invocation with the shim's standard streams attached
// and waits for it to finish, returning the child's exit status.
func (l *OSProcessLauncher) Launch(spec invocation.Spec) (int, error) {
	if len(spec.Argv) == 0 {
		return -1, fmt.Errorf("empty argument vector")
	}

	cmd := exec.Command(spec.Argv[0], spec.Argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if !spec.CloseStdin {
		cmd.Stdin = os.Stdin
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("launching '%s': %w", spec.Argv[0], err)
	}
	return 0, nil
}

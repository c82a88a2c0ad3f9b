//go:build !windows

package later

import (
	"errors"
	"os"
	"syscall"
)

// Terminate sends SIGTERM to a process. Already-exited and
// permission-denied cases are reported via the outcome, not as errors.
func Terminate(pid int) (TerminateOutcome, error) {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return ProcessGone, nil
	}

	err = proc.Signal(syscall.SIGTERM)
	switch {
	case err == nil:
		return Terminated, nil
	case errors.Is(err, os.ErrProcessDone), errors.Is(err, syscall.ESRCH):
		return ProcessGone, nil
	case errors.Is(err, syscall.EPERM):
		return PermissionDenied, nil
	default:
		return ProcessGone, err
	}
}

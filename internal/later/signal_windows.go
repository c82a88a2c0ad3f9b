//go:build windows

package later

import (
	"errors"
	"os"
)

// Terminate forcibly terminates a process. Windows has no SIGTERM, so the
// process is killed directly.
func Terminate(pid int) (TerminateOutcome, error) {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return ProcessGone, nil
	}

	err = proc.Kill()
	switch {
	case err == nil:
		return Terminated, nil
	case errors.Is(err, os.ErrProcessDone):
		return ProcessGone, nil
	case errors.Is(err, os.ErrPermission):
		return PermissionDenied, nil
	default:
		return ProcessGone, err
	}
}

//go:build !windows

package later

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// listProcesses runs ps and returns the rows matching the detector's
// filters. Uses `ps aux` (available on macOS and Linux).
func (d *Detector) listProcesses(ctx context.Context) ([]psProcess, error) {
	psCtx, cancel := context.WithTimeout(ctx, psTimeout)
	defer cancel()

	out, err := exec.CommandContext(psCtx, "ps", "aux").Output()
	if err != nil {
		return nil, fmt.Errorf("ps: %w", err)
	}

	var procs []psProcess
	for _, p := range parsePSOutput(out) {
		if d.matches(p) {
			procs = append(procs, p)
		}
	}
	return procs, nil
}

// processCwd returns the current working directory of a process.
// On Linux, reads /proc/PID/cwd. Elsewhere, falls back to lsof.
func processCwd(ctx context.Context, pid int) string {
	pidStr := strconv.Itoa(pid)

	if target, err := os.Readlink("/proc/" + pidStr + "/cwd"); err == nil {
		return target
	}

	lsofCtx, cancel := context.WithTimeout(ctx, lsofTimeout)
	defer cancel()

	out, err := exec.CommandContext(lsofCtx, "lsof", "-a", "-p", pidStr, "-d", "cwd", "-Fn").Output()
	if err != nil {
		return ""
	}
	return parseLsofCwd(out)
}

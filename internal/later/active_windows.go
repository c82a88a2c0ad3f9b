//go:build windows

package later

import "context"

// listProcesses is not implemented on Windows: discovery depends on
// ps/lsof-style process inspection. Detection returns no sessions.
func (d *Detector) listProcesses(ctx context.Context) ([]psProcess, error) {
	return nil, nil
}

// processCwd is not implemented on Windows.
func processCwd(ctx context.Context, pid int) string {
	return ""
}

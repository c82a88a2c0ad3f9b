package later

import (
	"fmt"
	"os/exec"
)

// ResumeInfo describes how to resume (exec into) a saved session's CLI tool.
type ResumeInfo struct {
	Command string   // absolute path to binary
	Args    []string // argv (including argv[0])
	Dir     string   // working directory to run in (empty = current)
}

// ResumeCommand builds the command to resume a Claude Code session.
// claude --resume needs to run from the session's project directory.
func ResumeCommand(processName, sessionID, projectDir string) (*ResumeInfo, error) {
	bin, err := exec.LookPath(processName)
	if err != nil {
		return nil, fmt.Errorf("%s CLI not found: %w", processName, err)
	}

	return &ResumeInfo{
		Command: bin,
		Args:    []string{processName, "--resume", sessionID},
		Dir:     projectDir,
	}, nil
}

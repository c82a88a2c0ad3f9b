// Package later provides the core operations of the later tool: discovering
// live interactive Claude CLI sessions on the local machine and acting on
// them (terminate, resume).
package later

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wethinkt/go-later/internal/claude"
	"github.com/wethinkt/go-later/internal/debuglog"
)

// Subprocess timeouts. A unit that times out is treated as failed and
// dropped, never fatal to the whole scan.
const (
	psTimeout   = 10 * time.Second
	lsofTimeout = 5 * time.Second
)

// ActiveSession is one discovered interactive CLI session.
type ActiveSession struct {
	PID          int                   `json:"pid"`
	CPU          float64               `json:"cpu"`
	Started      string                `json:"started"`
	CWD          string                `json:"cwd"`
	ProjectShort string                `json:"projectShort"`
	SessionID    string                `json:"sessionId,omitempty"`
	Context      claude.SessionContext `json:"context"`
}

// Detector discovers active interactive sessions by inspecting the OS
// process table and correlating each process's working directory to
// Claude's session storage.
type Detector struct {
	processName  string
	cpuThreshold float64
	tailLines    int
	excludePID   int
	claudeDir    string // override for testing; empty = default
}

// NewDetector creates a detector looking for processName with at least
// cpuThreshold CPU usage. tailLines bounds the transcript context window.
func NewDetector(processName string, cpuThreshold float64, tailLines int) *Detector {
	return &Detector{
		processName:  processName,
		cpuThreshold: cpuThreshold,
		tailLines:    tailLines,
	}
}

// SetExcludePID excludes a PID from results (typically the caller's own
// session).
func (d *Detector) SetExcludePID(pid int) {
	d.excludePID = pid
}

// SetClaudeDir overrides the Claude base directory (for testing).
func (d *Detector) SetClaudeDir(dir string) {
	d.claudeDir = dir
}

// Detect scans the process table and returns one record per surviving
// process. A failure of the process-listing step yields an empty result;
// per-process failures drop that process only.
func (d *Detector) Detect(ctx context.Context) []ActiveSession {
	procs, err := d.listProcesses(ctx)
	if err != nil {
		debuglog.Log.Error("process listing failed", "err", err)
		return nil
	}

	baseDir := d.claudeDir
	if baseDir == "" {
		baseDir = claude.BaseDir()
	}
	historyPath := claude.HistoryPath(baseDir)
	projectsDir := claude.ProjectsDir(baseDir)

	var result []ActiveSession
	for _, p := range procs {
		if d.excludePID != 0 && p.pid == d.excludePID {
			continue
		}

		cwd := processCwd(ctx, p.pid)
		if cwd == "" || !filepath.IsAbs(cwd) {
			debuglog.Log.Debug("skipping process without cwd", "pid", p.pid)
			continue
		}

		sessionID := claude.SessionIDForPath(historyPath, cwd)

		var sessCtx claude.SessionContext
		if sessionFile := claude.LatestSessionFile(projectsDir, cwd); sessionFile != "" {
			sessCtx = claude.ExtractSessionContext(sessionFile, d.tailLines)
		}

		result = append(result, ActiveSession{
			PID:          p.pid,
			CPU:          p.cpu,
			Started:      p.started,
			CWD:          cwd,
			ProjectShort: projectShort(cwd),
			SessionID:    sessionID,
			Context:      sessCtx,
		})
	}

	return result
}

// psProcess is one parsed row of `ps aux` output.
type psProcess struct {
	pid     int
	cpu     float64
	tty     string
	state   string
	started string
	command string
}

// parsePSOutput parses `ps aux` fixed-column output:
// USER PID %CPU %MEM VSZ RSS TTY STAT START TIME COMMAND
func parsePSOutput(out []byte) []psProcess {
	var procs []psProcess
	for _, line := range bytes.Split(out, []byte("\n")) {
		fields := strings.Fields(string(line))
		if len(fields) < 11 {
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue // header or garbage
		}
		cpu, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			cpu = 0
		}
		procs = append(procs, psProcess{
			pid:     pid,
			cpu:     cpu,
			tty:     fields[6],
			state:   fields[7],
			started: fields[8],
			command: fields[10],
		})
	}
	return procs
}

// matches reports whether a process row is an interactive foreground
// instance of the target binary. The CPU threshold is a heuristic to skip
// idle child processes.
func (d *Detector) matches(p psProcess) bool {
	if filepath.Base(p.command) != d.processName {
		return false
	}
	// Attached terminal: ps prints "?" (Linux) or "??" (macOS) for none
	if p.tty == "?" || p.tty == "??" || p.tty == "" {
		return false
	}
	// Foreground process group
	if !strings.Contains(p.state, "+") {
		return false
	}
	return p.cpu > d.cpuThreshold
}

// parseLsofCwd extracts the cwd path from `lsof -Fn` field output: lines
// starting with 'f' are FDs, 'n' are names. The name after the "fcwd" FD is
// the working directory.
func parseLsofCwd(out []byte) string {
	foundCwd := false
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if line[0] == 'f' && string(line[1:]) == "cwd" {
			foundCwd = true
			continue
		}
		if foundCwd && line[0] == 'n' {
			return string(line[1:])
		}
	}
	return ""
}

func projectShort(cwd string) string {
	if idx := strings.LastIndex(cwd, "/"); idx >= 0 {
		return cwd[idx+1:]
	}
	return cwd
}

// Package claude reads Claude Code's on-disk session storage: the
// ~/.claude/history.jsonl command log and the per-project JSONL transcript
// files under ~/.claude/projects.
package claude

import (
	"os"
	"path/filepath"
)

// BaseDir returns the Claude base directory.
// Uses the LATER_CLAUDE_HOME environment variable if set, otherwise ~/.claude.
func BaseDir() string {
	if claudeHome := os.Getenv("LATER_CLAUDE_HOME"); claudeHome != "" {
		return claudeHome
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude")
}

// HistoryPath returns the path to history.jsonl inside baseDir.
// If baseDir is empty, BaseDir() is used.
func HistoryPath(baseDir string) string {
	if baseDir == "" {
		baseDir = BaseDir()
	}
	if baseDir == "" {
		return ""
	}
	return filepath.Join(baseDir, "history.jsonl")
}

// ProjectsDir returns the per-project transcript directory inside baseDir.
// If baseDir is empty, BaseDir() is used.
func ProjectsDir(baseDir string) string {
	if baseDir == "" {
		baseDir = BaseDir()
	}
	if baseDir == "" {
		return ""
	}
	return filepath.Join(baseDir, "projects")
}

package claude

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var dirNameEncoder = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// EncodeDirName converts a working directory path to the directory name
// Claude Code uses under ~/.claude/projects. Every character outside
// [A-Za-z0-9-] becomes a hyphen, so length and position are preserved:
//
//	/Users/ph/www/api.type3.audio → -Users-ph-www-api-type3-audio
func EncodeDirName(path string) string {
	return dirNameEncoder.ReplaceAllString(path, "-")
}

// LatestSessionFile returns the most recently modified .jsonl transcript for
// a working directory, looking in projectsDir/<encoded cwd>. Returns "" when
// the project directory or any session file is absent.
func LatestSessionFile(projectsDir, cwd string) string {
	projectDir := filepath.Join(projectsDir, EncodeDirName(cwd))
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return ""
	}

	var bestPath string
	var bestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if bestPath == "" || info.ModTime().After(bestTime) {
			bestTime = info.ModTime()
			bestPath = filepath.Join(projectDir, entry.Name())
		}
	}
	return bestPath
}

package claude

import (
	"encoding/json"
	"os"
)

// historyEntry is one line of history.jsonl. Each line records a prompt
// submitted to the CLI along with the session and project it belongs to.
type historyEntry struct {
	SessionID string `json:"sessionId"`
	Project   string `json:"project"`
	Display   string `json:"display"`
}

// SessionIDForPath returns the most recent session ID recorded in
// historyPath for the given working directory. Later lines win. Returns ""
// when no line matches or the file is absent; malformed lines are skipped.
func SessionIDForPath(historyPath, cwd string) string {
	f, err := os.Open(historyPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	var best string
	scanner := NewLineScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry historyEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		if entry.Project == cwd && entry.SessionID != "" {
			best = entry.SessionID
		}
	}
	return best
}

// FirstPrompt returns the first prompt recorded for a session in
// historyPath, truncated to 120 characters. Returns "" when the session has
// no history or the file is absent.
func FirstPrompt(historyPath, sessionID string) string {
	f, err := os.Open(historyPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := NewLineScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry historyEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		if entry.SessionID == sessionID {
			return TruncateString(entry.Display, 120)
		}
	}
	return ""
}

package claude

import (
	"bufio"
	"io"
)

// Buffer sizes for JSONL line scanners. Individual transcript lines can be
// large (pasted files, tool results), so the default bufio limit is too small.
const (
	defaultBufferSize = 64 * 1024
	maxLineCapacity   = 10 * 1024 * 1024
)

// TruncateString truncates a string to max length, adding "..." if truncated.
// If s is shorter than or equal to max, it returns s unchanged.
// If max is 0 or negative, returns empty string.
func TruncateString(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// NewLineScanner creates a bufio.Scanner sized for reading JSONL files with
// very long lines.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, defaultBufferSize)
	scanner.Buffer(buf, maxLineCapacity)
	return scanner
}

package claude

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
)

// Scan limits for context extraction. The head scan only needs to find the
// opening prompt; the tail window bounds how much recent activity is read.
const (
	headScanLines    = 30
	DefaultTailLines = 80
)

// Truncation limits for extracted text.
const (
	maxPromptLen    = 200
	maxAssistantLen = 400
	maxRecentTools  = 5
)

var systemReminderRe = regexp.MustCompile(`(?s)<system-reminder>.*?</system-reminder>`)

// SessionContext summarizes recent activity in a session transcript.
// It is ephemeral: computed on demand during discovery, never persisted.
type SessionContext struct {
	FirstPrompt           string   `json:"firstPrompt,omitempty"`
	LastUserMessage       string   `json:"lastUserMessage,omitempty"`
	LastAssistantResponse string   `json:"lastAssistantResponse,omitempty"`
	RecentTools           []string `json:"recentTools,omitempty"`
	LastTool              string   `json:"lastTool,omitempty"`
}

// ExtractSessionContext reads a transcript file and extracts the first user
// prompt, the most recent user and assistant messages, and the names of
// recently invoked tools. tailLines bounds the recency window; values <= 0
// use DefaultTailLines. Any read or parse failure yields an empty context.
func ExtractSessionContext(path string, tailLines int) SessionContext {
	if tailLines <= 0 {
		tailLines = DefaultTailLines
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return SessionContext{}
	}
	lines := strings.Split(string(data), "\n")

	var ctx SessionContext

	// Head scan: first user prompt
	head := lines
	if len(head) > headScanLines {
		head = head[:headScanLines]
	}
	for _, line := range head {
		entry := parseLine(line)
		if entry == nil || entry.Type != EntryTypeUser {
			continue
		}
		if text := userText(entry); text != "" {
			ctx.FirstPrompt = TruncateString(text, maxPromptLen)
			break
		}
	}

	// Tail scan: recent user/assistant activity and tool invocations
	tail := lines
	if len(tail) > tailLines {
		tail = tail[len(tail)-tailLines:]
	}
	for _, line := range tail {
		entry := parseLine(line)
		if entry == nil {
			continue
		}

		switch entry.Type {
		case EntryTypeUser:
			if text := userText(entry); text != "" {
				ctx.LastUserMessage = TruncateString(text, maxPromptLen)
			}
		case EntryTypeAssistant:
			msg := entry.AssistantMessage()
			if msg == nil {
				continue
			}
			for _, block := range msg.Content {
				if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
					ctx.LastAssistantResponse = TruncateString(strings.TrimSpace(block.Text), maxAssistantLen)
				}
				if block.Type == "tool_use" {
					ctx.LastTool = block.Name
					ctx.RecentTools = append(ctx.RecentTools, block.Name)
				}
			}
		}
	}

	if len(ctx.RecentTools) > maxRecentTools {
		ctx.RecentTools = ctx.RecentTools[len(ctx.RecentTools)-maxRecentTools:]
	}

	return ctx
}

func parseLine(line string) *Entry {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var entry Entry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return nil
	}
	return &entry
}

// userText extracts display text from a user entry. Command invocations
// (text starting with a <local-command or <command- marker) are discarded,
// and <system-reminder> regions are stripped.
func userText(entry *Entry) string {
	msg := entry.UserMessage()
	if msg == nil {
		return ""
	}

	if msg.Content.Text != "" {
		return cleanUserText(msg.Content.Text)
	}
	for _, block := range msg.Content.Blocks {
		if block.Type != "text" {
			continue
		}
		if text := cleanUserText(block.Text); text != "" {
			return text
		}
	}
	return ""
}

func cleanUserText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if strings.HasPrefix(text, "<local-command") || strings.HasPrefix(text, "<command-") {
		return ""
	}
	return strings.TrimSpace(systemReminderRe.ReplaceAllString(text, ""))
}

package claude

import "encoding/json"

// EntryType identifies the type of transcript entry.
type EntryType string

const (
	EntryTypeUser      EntryType = "user"
	EntryTypeAssistant EntryType = "assistant"
)

// Entry represents a single line in a Claude Code JSONL transcript file.
// Only the fields needed for context extraction are modeled; transcript lines
// carry many more that are ignored here.
type Entry struct {
	Type    EntryType       `json:"type"`
	UUID    string          `json:"uuid,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
}

// UserMessage represents the message field for user entries.
type UserMessage struct {
	Role    string      `json:"role"`
	Content UserContent `json:"content"`
}

// UserContent handles the polymorphic content field in user messages.
// It can be either a plain string or an array of ContentBlock.
type UserContent struct {
	Text   string         // Set when content is a string
	Blocks []ContentBlock // Set when content is an array
}

func (c *UserContent) UnmarshalJSON(data []byte) error {
	// Try string first
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		return nil
	}

	// Try array of content blocks
	var blocks []ContentBlock
	if err := json.Unmarshal(data, &blocks); err == nil {
		c.Blocks = blocks
		return nil
	}

	// Ignore unrecognized content types
	return nil
}

func (c UserContent) MarshalJSON() ([]byte, error) {
	if c.Text != "" {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Blocks)
}

// AssistantMessage represents the message field for assistant entries.
type AssistantMessage struct {
	Role    string         `json:"role"`
	Model   string         `json:"model,omitempty"`
	Content []ContentBlock `json:"content,omitempty"`
}

// ContentBlock represents a content block within a message.
// Different block types populate different fields.
type ContentBlock struct {
	Type string `json:"type"`

	// text block
	Text string `json:"text,omitempty"`

	// tool_use block
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Input any    `json:"input,omitempty"`

	// tool_result block
	ToolUseID string `json:"tool_use_id,omitempty"`
}

// UserMessage parses the message field of a user entry.
// Returns nil for non-user entries or unparseable messages.
func (e *Entry) UserMessage() *UserMessage {
	if e.Type != EntryTypeUser || len(e.Message) == 0 {
		return nil
	}
	var msg UserMessage
	if err := json.Unmarshal(e.Message, &msg); err != nil {
		return nil
	}
	return &msg
}

// AssistantMessage parses the message field of an assistant entry.
// Returns nil for non-assistant entries or unparseable messages.
func (e *Entry) AssistantMessage() *AssistantMessage {
	if e.Type != EntryTypeAssistant || len(e.Message) == 0 {
		return nil
	}
	var msg AssistantMessage
	if err := json.Unmarshal(e.Message, &msg); err != nil {
		return nil
	}
	return &msg
}

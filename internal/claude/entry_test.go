package claude

import (
	"encoding/json"
	"testing"
)

func TestUserContent_String(t *testing.T) {
	var uc UserContent
	if err := json.Unmarshal([]byte(`"hello world"`), &uc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if uc.Text != "hello world" {
		t.Errorf("Text = %q, want %q", uc.Text, "hello world")
	}
}

func TestUserContent_Blocks(t *testing.T) {
	var uc UserContent
	if err := json.Unmarshal([]byte(`[{"type":"text","text":"first"},{"type":"tool_result","tool_use_id":"t"}]`), &uc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(uc.Blocks) != 2 {
		t.Fatalf("Blocks length = %d, want 2", len(uc.Blocks))
	}
	if uc.Blocks[0].Type != "text" || uc.Blocks[0].Text != "first" {
		t.Errorf("Blocks[0] = %+v", uc.Blocks[0])
	}
}

func TestUserContent_UnrecognizedShape(t *testing.T) {
	var uc UserContent
	if err := json.Unmarshal([]byte(`{"weird":true}`), &uc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if uc.Text != "" || uc.Blocks != nil {
		t.Errorf("unrecognized content should be ignored, got %+v", uc)
	}
}

func TestEntry_MessageParsing(t *testing.T) {
	line := `{"type":"user","uuid":"1","message":{"role":"user","content":"hi"}}`
	var entry Entry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	msg := entry.UserMessage()
	if msg == nil {
		t.Fatal("UserMessage() = nil")
	}
	if msg.Content.Text != "hi" {
		t.Errorf("Content.Text = %q, want %q", msg.Content.Text, "hi")
	}
	if entry.AssistantMessage() != nil {
		t.Error("AssistantMessage() on user entry should be nil")
	}
}

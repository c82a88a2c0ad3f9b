package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/wethinkt/go-later/internal/registry"
)

func testRegistry() *registry.Registry {
	saved := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	return &registry.Registry{
		Conversations: []registry.Conversation{
			{ID: 1, SessionID: "s1", Project: "/work/api", Description: "fix auth", SavedAt: saved, Status: registry.StatusActive},
			{ID: 2, SessionID: "s2", Project: "/work/web", Description: "old task", SavedAt: saved, Status: registry.StatusDone},
			{ID: 3, SessionID: "s3", Project: "/work/cli", Description: "dropped", SavedAt: saved, Status: registry.StatusRemoved},
		},
	}
}

func TestFormatList_ActiveOnly(t *testing.T) {
	var buf strings.Builder
	f := NewConversationsFormatter(&buf, false)

	if err := f.FormatList(testRegistry(), false); err != nil {
		t.Fatalf("FormatList() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "## Active") {
		t.Error("missing Active heading")
	}
	if !strings.Contains(out, "#1  fix auth") {
		t.Errorf("missing active entry, got:\n%s", out)
	}
	if !strings.Contains(out, "Project: api  |  Saved: 20 Aug 2026 14:30") {
		t.Errorf("missing project/saved line, got:\n%s", out)
	}
	if !strings.Contains(out, "Resume: claude --resume s1") {
		t.Error("missing resume hint")
	}
	if strings.Contains(out, "old task") || strings.Contains(out, "dropped") {
		t.Errorf("non-active entries in default view:\n%s", out)
	}
}

func TestFormatList_All(t *testing.T) {
	var buf strings.Builder
	f := NewConversationsFormatter(&buf, false)

	if err := f.FormatList(testRegistry(), true); err != nil {
		t.Fatalf("FormatList() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"## Active", "## Completed", "## Removed", "#2  old task (done)", "#3  dropped (removed)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in --all view:\n%s", want, out)
		}
	}
}

func TestFormatList_Empty(t *testing.T) {
	var buf strings.Builder
	f := NewConversationsFormatter(&buf, false)

	if err := f.FormatList(&registry.Registry{}, false); err != nil {
		t.Fatalf("FormatList() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "No saved conversations.") {
		t.Errorf("missing empty message:\n%s", out)
	}
	if !strings.Contains(out, "--all") {
		t.Error("missing --all hint in default empty view")
	}
}

func TestFormatJSON(t *testing.T) {
	var buf strings.Builder
	f := NewConversationsFormatter(&buf, false)

	if err := f.FormatJSON(testRegistry().Conversations); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	var decoded []registry.Conversation
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Errorf("decoded %d conversations, want 3", len(decoded))
	}
}

func TestFormatTemplate(t *testing.T) {
	var buf strings.Builder
	f := NewConversationsFormatter(&buf, false)

	tmpl := `{{range .}}{{.ID}}:{{.SessionID}} {{end}}`
	if err := f.FormatTemplate(testRegistry().Conversations, tmpl); err != nil {
		t.Fatalf("FormatTemplate() error = %v", err)
	}
	if got := buf.String(); got != "1:s1 2:s2 3:s3 " {
		t.Errorf("FormatTemplate() = %q", got)
	}
}

func TestFormatTemplate_ParseError(t *testing.T) {
	var buf strings.Builder
	f := NewConversationsFormatter(&buf, false)

	if err := f.FormatTemplate(nil, "{{broken"); err == nil {
		t.Error("FormatTemplate() expected parse error, got nil")
	}
}

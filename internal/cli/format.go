// Package cli provides CLI output formatting utilities.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/template"

	"charm.land/lipgloss/v2"

	"github.com/wethinkt/go-later/internal/registry"
)

// ConversationsFormatter handles saved-conversation listing output.
type ConversationsFormatter struct {
	w      io.Writer
	styled bool
}

// NewConversationsFormatter creates a formatter. styled enables lipgloss
// heading styles; pass false when stdout is not a terminal.
func NewConversationsFormatter(w io.Writer, styled bool) *ConversationsFormatter {
	return &ConversationsFormatter{w: w, styled: styled}
}

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9d7aff"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func (f *ConversationsFormatter) heading(s string) string {
	if f.styled {
		return headingStyle.Render(s)
	}
	return s
}

func (f *ConversationsFormatter) dim(s string) string {
	if f.styled {
		return dimStyle.Render(s)
	}
	return s
}

// FormatList prints active conversations grouped under a heading; with all
// set, completed and removed conversations get their own sections.
func (f *ConversationsFormatter) FormatList(reg *registry.Registry, all bool) error {
	visible := reg.ByStatus(registry.StatusActive)
	if all {
		visible = reg.Conversations
	}
	if len(visible) == 0 {
		fmt.Fprintln(f.w, "No saved conversations.")
		if !all {
			fmt.Fprintln(f.w, "(Use --all to include completed/removed ones)")
		}
		return nil
	}

	if active := reg.ByStatus(registry.StatusActive); len(active) > 0 {
		fmt.Fprintf(f.w, "%s\n\n", f.heading("## Active"))
		for _, c := range active {
			fmt.Fprintf(f.w, "  #%d  %s\n", c.ID, c.Description)
			fmt.Fprintf(f.w, "      Project: %s  |  Saved: %s\n",
				filepath.Base(c.Project), c.SavedAt.Format("02 Jan 2006 15:04"))
			fmt.Fprintf(f.w, "      Resume: claude --resume %s\n\n", c.SessionID)
		}
	}

	if !all {
		return nil
	}

	if done := reg.ByStatus(registry.StatusDone); len(done) > 0 {
		fmt.Fprintf(f.w, "%s\n\n", f.heading("## Completed"))
		for _, c := range done {
			fmt.Fprintf(f.w, "  #%d  %s %s\n\n", c.ID, c.Description, f.dim("(done)"))
		}
	}

	if removed := reg.ByStatus(registry.StatusRemoved); len(removed) > 0 {
		fmt.Fprintf(f.w, "%s\n\n", f.heading("## Removed"))
		for _, c := range removed {
			fmt.Fprintf(f.w, "  #%d  %s %s\n\n", c.ID, c.Description, f.dim("(removed)"))
		}
	}

	return nil
}

// FormatJSON prints conversations as indented JSON.
func (f *ConversationsFormatter) FormatJSON(convs []registry.Conversation) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(convs)
}

// ListTemplateHelp documents the template variables for --template.
const ListTemplateHelp = `Template variables (the template receives a list):
  {{.ID}}           Conversation ID
  {{.SessionID}}    Session identifier
  {{.Project}}      Project working directory
  {{.Description}}  Saved description
  {{.Status}}       active, done, or removed
  {{.SavedAt}}      Save time (time.Time)`

// FormatTemplate renders conversations through a custom Go text/template.
func (f *ConversationsFormatter) FormatTemplate(convs []registry.Conversation, tmplStr string) error {
	tmpl, err := template.New("conversations").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	return tmpl.Execute(f.w, convs)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-later/internal/claude"
)

// Save command flags
var (
	saveSessionID   string
	saveProject     string
	saveDescription string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a conversation for later",
	Long: `Save a conversation so it can be resumed later.

If no description is given, the first prompt recorded for the session in
Claude's history is used. Saving a session that was previously marked done
or removed reactivates the existing entry instead of creating a duplicate.

Examples:
  later save --session-id 3f2a... --project /work/api
  later save --session-id 3f2a... --project /work/api --description "fix auth"`,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveSessionID, "session-id", "", "session UUID")
	saveCmd.Flags().StringVar(&saveProject, "project", "", "project working directory")
	saveCmd.Flags().StringVar(&saveDescription, "description", "", "brief description of the task")
	saveCmd.MarkFlagRequired("session-id")
	saveCmd.MarkFlagRequired("project")
}

func runSave(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	firstPrompt := claude.FirstPrompt(claude.HistoryPath(""), saveSessionID)

	res, err := store.SaveConversation(saveSessionID, saveProject, saveDescription, firstPrompt)
	if err != nil {
		return err
	}

	conv := res.Conversation
	switch {
	case res.AlreadySaved:
		fmt.Printf("Session already saved as #%d: %s\n", conv.ID, conv.Description)
		return nil
	case res.Reactivated:
		fmt.Printf("Reactivated #%d: %s\n", conv.ID, conv.Description)
		fmt.Printf("  Session: %s\n", conv.SessionID)
	default:
		fmt.Printf("Saved as #%d: %s\n", conv.ID, conv.Description)
		fmt.Printf("  Session: %s\n", conv.SessionID)
		fmt.Printf("  Project: %s\n", conv.Project)
	}

	fmt.Printf("\nResume later with: claude --resume %s\n", conv.SessionID)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-later/internal/claude"
)

var sessionCwd string

var getSessionIDCmd = &cobra.Command{
	Use:   "get-session-id",
	Short: "Resolve the most recent session ID for a working directory",
	Long: `Print the most recent session ID recorded in Claude's history for the
given working directory. Exits nonzero when no session is found.`,
	RunE: runGetSessionID,
}

func init() {
	getSessionIDCmd.Flags().StringVar(&sessionCwd, "cwd", "", "working directory path")
	getSessionIDCmd.MarkFlagRequired("cwd")
}

func runGetSessionID(cmd *cobra.Command, args []string) error {
	sessionID := claude.SessionIDForPath(claude.HistoryPath(""), sessionCwd)
	if sessionID == "" {
		return fmt.Errorf("no session found for %s", sessionCwd)
	}
	fmt.Println(sessionID)
	return nil
}

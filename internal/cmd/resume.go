package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-later/internal/later"
	"github.com/wethinkt/go-later/internal/registry"
)

var resumeID int

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a saved conversation in the claude CLI",
	Long: `Exec claude --resume for a saved conversation, running from the
conversation's project directory.

Examples:
  later resume --id 3`,
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().IntVar(&resumeID, "id", 0, "conversation ID")
	resumeCmd.MarkFlagRequired("id")
}

func runResume(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	reg, err := store.Load()
	if err != nil {
		return err
	}

	conv := reg.FindByID(resumeID)
	if conv == nil {
		return registry.ErrNotFound{ID: resumeID}
	}

	info, err := later.ResumeCommand(cfg.ProcessName, conv.SessionID, conv.Project)
	if err != nil {
		return err
	}

	fmt.Printf("Resuming #%d: %s\n", conv.ID, conv.Description)
	return later.ExecResume(info)
}

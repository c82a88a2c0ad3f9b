package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-later/internal/later"
)

var killPID int

var killCmd = &cobra.Command{
	Use:   "kill",
	Short: "Gracefully terminate a claude process",
	Long: `Send SIGTERM to a claude process. Already-exited and permission-denied
cases are reported but do not fail the command.`,
	RunE: runKill,
}

func init() {
	killCmd.Flags().IntVar(&killPID, "pid", 0, "process ID to terminate")
	killCmd.MarkFlagRequired("pid")
}

func runKill(cmd *cobra.Command, args []string) error {
	outcome, err := later.Terminate(killPID)
	if err != nil {
		return fmt.Errorf("signal PID %d: %w", killPID, err)
	}

	switch outcome {
	case later.Terminated:
		fmt.Printf("Sent SIGTERM to PID %d\n", killPID)
	case later.ProcessGone:
		fmt.Printf("Process %d not found (already exited)\n", killPID)
	case later.PermissionDenied:
		fmt.Printf("Permission denied killing PID %d\n", killPID)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Done/remove command flags
var (
	doneID   int
	removeID int
)

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Mark a conversation as completed",
	RunE:  runDone,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a conversation from the list",
	RunE:  runRemove,
}

func init() {
	doneCmd.Flags().IntVar(&doneID, "id", 0, "conversation ID")
	doneCmd.MarkFlagRequired("id")
	removeCmd.Flags().IntVar(&removeID, "id", 0, "conversation ID")
	removeCmd.MarkFlagRequired("id")
}

func runDone(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	conv, err := store.MarkDone(doneID)
	if err != nil {
		return err
	}

	fmt.Printf("Marked #%d as done: %s\n", conv.ID, conv.Description)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	conv, err := store.MarkRemoved(removeID)
	if err != nil {
		return err
	}

	fmt.Printf("Removed #%d: %s\n", conv.ID, conv.Description)
	return nil
}

// Package cmd provides the CLI commands for later.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-later/internal/config"
	"github.com/wethinkt/go-later/internal/debuglog"
	"github.com/wethinkt/go-later/internal/registry"
)

// global flags
var (
	logPath string
	verbose bool
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "later",
	Short: "Save and manage Claude Code conversations for later resumption",
	Long: `later keeps a small registry of paused Claude Code conversations so you can
resume them later, and can discover other interactive sessions currently
running on this machine.

Commands:
  save            Save a conversation for later
  list            List saved conversations
  done            Mark a conversation as completed
  remove          Remove a conversation from the list
  get-session-id  Resolve the session ID for a working directory
  discover        Discover active claude sessions (JSON output)
  kill            Gracefully terminate a claude process
  resume          Resume a saved conversation (claude --resume)

Examples:
  later save --session-id 3f2a... --project /work/api --description "fix auth"
  later list --all
  later done --id 3
  later discover --exclude-pid $$`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return debuglog.Init(logPath)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")

	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(getSessionIDCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(resumeCmd)
}

// openStore loads the configuration and opens the registry store.
func openStore() (*registry.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	path, err := cfg.RegistryFilePath()
	if err != nil {
		return nil, config.Config{}, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "registry: %s\n", path)
	}
	return registry.NewStore(path), cfg, nil
}

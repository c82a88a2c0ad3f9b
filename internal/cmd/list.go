package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wethinkt/go-later/internal/cli"
	"github.com/wethinkt/go-later/internal/registry"
)

// List command flags
var (
	listAll      bool
	listJSON     bool
	listTemplate string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved conversations",
	Long: `List saved conversations.

By default only active conversations are shown. Use --all to include
completed and removed ones, grouped by status.

Output can be customized with a Go text/template via --template.

` + cli.ListTemplateHelp,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "include completed/removed")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().StringVar(&listTemplate, "template", "", "custom Go text/template for output")
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	reg, err := store.Load()
	if err != nil {
		return err
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	formatter := cli.NewConversationsFormatter(os.Stdout, styled)

	if listJSON || listTemplate != "" {
		convs := reg.ByStatus(registry.StatusActive)
		if listAll {
			convs = reg.Conversations
		}
		if listJSON {
			return formatter.FormatJSON(convs)
		}
		return formatter.FormatTemplate(convs, listTemplate)
	}

	return formatter.FormatList(reg, listAll)
}

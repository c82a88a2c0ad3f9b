package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-later/internal/later"
)

var discoverExcludePID int

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover active claude sessions",
	Long: `Discover interactive claude CLI sessions currently running on this
machine and print them as JSON, including each session's working directory,
session ID, and a short context summary extracted from its transcript.

Use --exclude-pid to omit the calling session.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverExcludePID, "exclude-pid", 0, "PID to exclude (current session)")
}

// discoverResult is the JSON envelope for discover output.
type discoverResult struct {
	Sessions []later.ActiveSession `json:"sessions"`
	Count    int                   `json:"count"`
}

func runDiscover(cmd *cobra.Command, args []string) error {
	_, cfg, err := openStore()
	if err != nil {
		return err
	}

	detector := later.NewDetector(cfg.ProcessName, cfg.CPUThreshold, cfg.TailLines)
	if discoverExcludePID != 0 {
		detector.SetExcludePID(discoverExcludePID)
	}

	sessions := detector.Detect(context.Background())

	result := discoverResult{Sessions: sessions, Count: len(sessions)}
	if result.Sessions == nil {
		result.Sessions = []later.ActiveSession{}
	}

	enc := json.NewEncoder(os.Stdout)
	if len(sessions) > 0 {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

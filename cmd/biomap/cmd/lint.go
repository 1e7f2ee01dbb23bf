package cmd

import (
	"github.com/spf13/cobra"

	"github.com/biopragmatics/biomap/pkg/logging"
)

// lintCmd represents the lint command.
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Rewrite every table in canonical sorted order",
	Long: `Reload and rewrite the true, false, unsure, and predictions tables
in canonical sorted order. Linting normalizes file diffs and is
idempotent: a second run leaves every file byte-identical.

Rows are only reordered, never removed.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(_ *cobra.Command, _ []string) error {
	res, err := newResources()
	if err != nil {
		return err
	}
	if err := res.Lint(); err != nil {
		return err
	}
	logging.Info().Msg("all tables linted")
	return nil
}

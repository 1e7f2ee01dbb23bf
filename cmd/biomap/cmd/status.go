package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/biopragmatics/biomap/pkg/errors"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report row counts for every table",
	Long: `Load every table and print its row count. A missing table file is
reported rather than treated as an error, so status works on a
partially initialized resource directory.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	res, err := newResources()
	if err != nil {
		return err
	}

	title := cases.Title(language.English)
	for _, table := range res.Tables() {
		records, err := table.Load()
		switch {
		case errors.IsNotFound(err):
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s missing (%s)\n", title.String(table.Name()), table.Path())
		case err != nil:
			return err
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d rows\n", title.String(table.Name()), len(records))
		}
	}

	curators, err := res.Curators().Load()
	switch {
	case errors.IsNotFound(err):
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s missing (%s)\n", "Curators", res.Curators().Path())
	case err != nil:
		return err
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d rows\n", "Curators", len(curators))
	}
	return nil
}

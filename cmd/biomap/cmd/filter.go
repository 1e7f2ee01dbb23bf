package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/biopragmatics/biomap/pkg/logging"
	"github.com/biopragmatics/biomap/pkg/resources"
)

var filterRulesFile string

// filterCmd represents the filter command.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Retract predictions matching a rules file",
	Long: `Remove predictions matching an exclusion rules file and rewrite the
predictions table with the survivors in canonical order.

The rules file is YAML nesting source prefix, target prefix, and source
identifier down to the excluded target identifier:

  ns1:
    ns2:
      "0001": "0044"
      "0002": "0191"

This supports bulk retraction of specific proposed target assignments,
for example after discovering a systematically wrong prediction source.`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterRulesFile, "rules", "", "YAML exclusion rules file (required)")
	_ = filterCmd.MarkFlagRequired("rules")
}

func runFilter(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(filterRulesFile)
	if err != nil {
		return fmt.Errorf("reading rules file: %w", err)
	}

	var filter resources.CustomFilter
	if err := yaml.Unmarshal(data, &filter); err != nil {
		return fmt.Errorf("parsing rules file %s: %w", filterRulesFile, err)
	}

	res, err := newResources()
	if err != nil {
		return err
	}
	if err := res.Predictions().Filter(filter); err != nil {
		return err
	}
	logging.Info().Str("rules", filterRulesFile).Msg("predictions filtered")
	return nil
}

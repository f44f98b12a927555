package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/peyote/internal/beads"
	"github.com/dyluth/peyote/internal/printer"
	"github.com/spf13/cobra"
)

var suggestOutputFormat string

var suggestCmd = &cobra.Command{
	Use:   "suggest <beads>",
	Short: "Recommend design elements for a bead count",
	Long: `Evaluate a bead count and print either the design elements and
construction plan it supports, or the nearest usable counts above and below.

Output Formats:
  default - Human-readable output
  json    - The result as a JSON object

Examples:
  # Check a usable count
  peyote suggest 18

  # Find alternatives for an awkward count
  peyote suggest 20

  # Machine-readable output
  peyote suggest 13 --output=json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestOutputFormat, "output", "o", "default", "Output format (default or json)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestOutputFormat != "default" && suggestOutputFormat != "json" {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", suggestOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	result, err := beads.Evaluate(args[0])
	if err != nil {
		var parseErr *beads.ParseError
		if errors.As(err, &parseErr) {
			return printer.Error(
				"invalid bead count",
				fmt.Sprintf("%q is %s.", args[0], parseErr.Reason),
				[]string{"Enter a whole number of beads, e.g. peyote suggest 18"},
			)
		}
		return err
	}

	if suggestOutputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

func formatElements(elements []beads.DesignElement) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printResult(result beads.Result) {
	switch result.Outcome {
	case beads.OutcomeDirect:
		printer.Success("%d beads works\n", result.Beads)
		printer.Println()
		printer.Heading("Design elements (short/long):")
		printer.Info("  %s\n", formatElements(result.Elements))
		printer.Heading("Start with this many beads:")
		printer.Info("  %d\n", result.Plan.StartingNumber)
		printer.Heading("and then add this many beads:")
		printer.Info("  %d\n", result.Plan.BeadsToAdd)

	case beads.OutcomeAlternatives:
		printer.Warning("%s\n", result.Message)
		printer.Println()
		printer.Step("Try %d beads instead: %s\n", result.Higher.Beads, formatElements(result.Higher.Elements))
		if result.Lower != nil {
			printer.Step("Or try %d beads: %s\n", result.Lower.Beads, formatElements(result.Lower.Elements))
		}

	case beads.OutcomeTooFew:
		printer.Warning("%s\n", result.Message)
	}
}

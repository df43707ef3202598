// Package validate handles the schema validation command
package validate

import (
	"github.com/spf13/cobra"

	"fjacquet/capex-csv/cmd/root"
	"fjacquet/capex-csv/internal/logging"
	"fjacquet/capex-csv/internal/report"
	"fjacquet/capex-csv/internal/reporterror"
)

var (
	groupBy     string
	capexColumn string
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate that a CSV file carries the columns a report needs",
	Long: `Validate that a CSV file carries the columns a report needs.

Checks that the capex column and, when given, the group-by column appear
in the input header. Nothing is written.`,
	RunE: validateFunc,
}

func init() {
	Cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "Column name to group by")
	Cmd.Flags().StringVarP(&capexColumn, "capex-column", "c", "", "Name of the CAPEX column (default: capex)")
}

func validateFunc(cmd *cobra.Command, args []string) error {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		return &reporterror.ArgumentError{
			Flag:   "--input",
			Value:  "",
			Reason: "input file is required",
		}
	}

	column := capexColumn
	if column == "" && root.Cfg != nil {
		column = root.Cfg.Report.CapexColumn
	}

	logger.Info("Validate command called",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldColumn, Value: column})

	if err := report.NewGenerator(logger).ValidateSchema(root.SharedFlags.Input, column, groupBy); err != nil {
		return err
	}

	logger.Info("Input schema is valid")
	return nil
}

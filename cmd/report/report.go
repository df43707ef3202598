// Package report handles the report generation command
package report

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
	threshold   string
	rulesFile   string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a CAPEX summary report from a CSV file",
	Long: `Generate a CAPEX summary report from a CSV file.

Each row is classified as CAPEX when its capex column parses as a number
greater than the threshold, or equals a truthy text value (yes, y, true,
t, 1). Rows are optionally grouped by a column, and one summary row per
group is written to the output CSV.`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "Column name to group by (e.g. project, department)")
	Cmd.Flags().StringVarP(&capexColumn, "capex-column", "c", "", "Name of the CAPEX column (default: capex)")
	Cmd.Flags().StringVarP(&threshold, "capex-threshold", "t", "", "Numeric threshold: values > threshold count as CAPEX (default: 0.0)")
	Cmd.Flags().StringVar(&rulesFile, "rules", "", "Optional YAML rules file overriding truthy tokens and threshold")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		return &reporterror.ArgumentError{
			Flag:   "--input",
			Value:  "",
			Reason: "input file is required",
		}
	}

	opts := report.Options{
		Input:        root.SharedFlags.Input,
		Output:       root.SharedFlags.Output,
		GroupBy:      groupBy,
		CapexColumn:  capexColumn,
		Threshold:    threshold,
		ThresholdSet: cmd.Flags().Changed("capex-threshold"),
		RulesFile:    rulesFile,
	}

	// Flags win; the loaded configuration fills whatever was not given.
	if cfg := root.Cfg; cfg != nil {
		if opts.Output == "" {
			opts.Output = cfg.Report.Output
		}
		if opts.CapexColumn == "" {
			opts.CapexColumn = cfg.Report.CapexColumn
		}
		if opts.Threshold == "" {
			opts.Threshold = cfg.Report.Threshold
		}
		if opts.RulesFile == "" {
			opts.RulesFile = cfg.Report.RulesFile
		}
	}

	logger.Info("Report command called",
		logging.Field{Key: logging.FieldInputFile, Value: opts.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: opts.Output})

	result, err := report.NewGenerator(logger).Generate(opts)
	if err != nil {
		return err
	}

	logger.Info("CAPEX report completed",
		logging.Field{Key: logging.FieldCount, Value: result.TotalRows},
		logging.Field{Key: logging.FieldCapexRows, Value: result.CapexRows},
		logging.Field{Key: logging.FieldCapexSum, Value: result.CapexSum.StringFixed(2)},
		logging.Field{Key: logging.FieldOutputFile, Value: opts.Output})

	return nil
}

// Package report orchestrates the read, classify, aggregate and write
// pipeline producing the CAPEX summary.
package report

import (
	"github.com/shopspring/decimal"

	"fjacquet/capex-csv/internal/aggregator"
	"fjacquet/capex-csv/internal/classifier"
	"fjacquet/capex-csv/internal/common"
	"fjacquet/capex-csv/internal/logging"
	"fjacquet/capex-csv/internal/models"
	"fjacquet/capex-csv/internal/reporterror"
	"fjacquet/capex-csv/internal/validation"
)

// Options carries the resolved settings for one report run.
type Options struct {
	Input       string
	Output      string
	GroupBy     string
	CapexColumn string
	// Threshold is the raw flag or config value; ThresholdSet marks that it
	// was given explicitly and must win over a rules-file threshold.
	Threshold    string
	ThresholdSet bool
	RulesFile    string
}

// Result summarizes one completed run.
type Result struct {
	Summaries []models.SummaryRow
	TotalRows int
	CapexRows int
	CapexSum  decimal.Decimal
}

// Generator runs the report pipeline.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator logging through the given logger.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate produces the summary CSV for the given options. The output file
// is only created after the whole aggregate computed cleanly; every failure
// leaves no partial output behind.
func (g *Generator) Generate(opts Options) (*Result, error) {
	if err := validation.RequireCapexColumnName(opts.CapexColumn); err != nil {
		return nil, err
	}

	threshold, err := validation.ParseThreshold(opts.Threshold)
	if err != nil {
		return nil, err
	}

	tokens := classifier.DefaultTruthyTokens
	if opts.RulesFile != "" {
		rules, err := classifier.LoadRules(opts.RulesFile)
		if err != nil {
			return nil, &reporterror.ArgumentError{
				Flag:   "--rules",
				Value:  opts.RulesFile,
				Reason: err.Error(),
			}
		}
		tokens = rules.Tokens()
		if !opts.ThresholdSet {
			threshold = rules.ThresholdOrDefault(threshold)
		}
		g.logger.Info("Loaded classification rules",
			logging.Field{Key: logging.FieldRulesFile, Value: opts.RulesFile})
	}

	header, rows, err := common.ReadRows(opts.Input)
	if err != nil {
		return nil, err
	}

	if err := validation.RequireColumns(opts.Input, header, opts.CapexColumn, opts.GroupBy); err != nil {
		return nil, err
	}

	g.logger.Info("Classifying rows",
		logging.Field{Key: logging.FieldColumn, Value: opts.CapexColumn},
		logging.Field{Key: logging.FieldThreshold, Value: threshold.String()})

	agg := aggregator.New(opts.GroupBy, opts.CapexColumn, g.logger)
	summaries := agg.Aggregate(rows, classifier.NewWithTokens(threshold, tokens))

	result := &Result{
		Summaries: make([]models.SummaryRow, 0, len(summaries)),
		CapexSum:  decimal.Zero,
	}
	for _, summary := range summaries {
		result.Summaries = append(result.Summaries, summary.ToSummaryRow())
		result.TotalRows += summary.TotalRows
		result.CapexRows += summary.CapexRows
		result.CapexSum = result.CapexSum.Add(summary.CapexSum)
	}

	if err := common.WriteSummaryToCSV(result.Summaries, opts.Output); err != nil {
		return nil, err
	}

	g.logger.Info("Report written",
		logging.Field{Key: logging.FieldOutputFile, Value: opts.Output},
		logging.Field{Key: logging.FieldCount, Value: result.TotalRows},
		logging.Field{Key: logging.FieldCapexRows, Value: result.CapexRows},
		logging.Field{Key: logging.FieldCapexSum, Value: result.CapexSum.StringFixed(2)})

	return result, nil
}

// ValidateSchema checks that the input file carries the capex column and,
// when given, the group-by column. It reads the input but writes nothing.
func (g *Generator) ValidateSchema(input, capexColumn, groupBy string) error {
	if err := validation.RequireCapexColumnName(capexColumn); err != nil {
		return err
	}

	header, _, err := common.ReadRows(input)
	if err != nil {
		return err
	}

	return validation.RequireColumns(input, header, capexColumn, groupBy)
}

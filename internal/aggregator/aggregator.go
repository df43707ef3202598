// Package aggregator groups classified rows and computes per-group totals.
package aggregator

import (
	"fjacquet/capex-csv/internal/classifier"
	"fjacquet/capex-csv/internal/logging"
	"fjacquet/capex-csv/internal/models"
)

// Aggregator accumulates group summaries over a single pass of the input.
// Group order follows first appearance of each key in the input, so output
// is stable across runs without sorting.
type Aggregator struct {
	groupBy     string
	capexColumn string
	logger      logging.Logger
}

// New creates an Aggregator classifying the capexColumn cell of each row.
// An empty groupBy puts every row into the reserved models.AllGroup group.
func New(groupBy, capexColumn string, logger logging.Logger) *Aggregator {
	return &Aggregator{
		groupBy:     groupBy,
		capexColumn: capexColumn,
		logger:      logger,
	}
}

// Aggregate classifies every row and folds it into its group summary.
// When no grouping is requested the single ALL group is always present,
// even for an empty input. With grouping, an empty input yields no groups.
func (a *Aggregator) Aggregate(rows []models.Row, c *classifier.Classifier) []*models.GroupSummary {
	summaries := make(map[string]*models.GroupSummary)
	var order []string

	if a.groupBy == "" {
		summaries[models.AllGroup] = models.NewGroupSummary(models.AllGroup)
		order = append(order, models.AllGroup)
	}

	for _, row := range rows {
		key := models.AllGroup
		if a.groupBy != "" {
			key, _ = row.Get(a.groupBy)
		}

		summary, exists := summaries[key]
		if !exists {
			summary = models.NewGroupSummary(key)
			summaries[key] = summary
			order = append(order, key)
		}

		capexCell, _ := row.Get(a.capexColumn)
		isCapex, amount := c.Classify(models.ParseCapexValue(capexCell))
		summary.AddRow(isCapex, amount)
	}

	result := make([]*models.GroupSummary, 0, len(order))
	for _, key := range order {
		result = append(result, summaries[key])
	}

	a.logger.Info("Aggregated rows into groups",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldGroups, Value: len(result)})

	return result
}

// Package validation checks report arguments and input schemas before the
// pipeline runs.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/capex-csv/internal/reporterror"
)

// RequireColumns verifies that every named column appears in the header.
// An empty column name is skipped, so optional columns can be passed
// through unconditionally.
func RequireColumns(filePath string, header []string, columns ...string) error {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}

	for _, column := range columns {
		if column == "" {
			continue
		}
		if _, ok := present[column]; !ok {
			return &reporterror.SchemaError{Path: filePath, Column: column}
		}
	}
	return nil
}

// ParseThreshold validates and parses the capex threshold flag. The
// threshold must be a finite, non-negative number.
func ParseThreshold(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	threshold, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &reporterror.ArgumentError{
			Flag:   "--capex-threshold",
			Value:  raw,
			Reason: "threshold must be a number",
		}
	}
	if threshold.IsNegative() {
		return decimal.Zero, &reporterror.ArgumentError{
			Flag:   "--capex-threshold",
			Value:  raw,
			Reason: "threshold must not be negative",
		}
	}
	return threshold, nil
}

// RequireCapexColumnName rejects an empty capex column name.
func RequireCapexColumnName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &reporterror.ArgumentError{
			Flag:   "--capex-column",
			Value:  name,
			Reason: "column name must not be empty",
		}
	}
	return nil
}

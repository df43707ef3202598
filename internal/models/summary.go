package models

import (
	"github.com/shopspring/decimal"
)

// GroupSummary accumulates the aggregate for one group key. Exactly one
// summary exists per group key during a run.
type GroupSummary struct {
	Group     string
	TotalRows int
	CapexRows int
	CapexSum  decimal.Decimal
}

// NewGroupSummary creates an empty summary for the given group key.
func NewGroupSummary(group string) *GroupSummary {
	return &GroupSummary{
		Group:    group,
		CapexSum: decimal.Zero,
	}
}

// AddRow records one input row in the summary. Amount carries the numeric
// capex value when the row classified as CAPEX through the numeric path;
// textual CAPEX rows pass a nil amount and contribute to the count only.
func (s *GroupSummary) AddRow(isCapex bool, amount *decimal.Decimal) {
	s.TotalRows++
	if !isCapex {
		return
	}
	s.CapexRows++
	if amount != nil {
		s.CapexSum = s.CapexSum.Add(*amount)
	}
}

// SummaryRow is the CSV output record for one group.
type SummaryRow struct {
	Group     string `csv:"group"`
	TotalRows int    `csv:"total_rows"`
	CapexRows int    `csv:"capex_rows"`
	CapexSum  string `csv:"capex_sum"`
}

// ToSummaryRow renders the aggregate as an output record. The sum is always
// written with two decimal places so repeated runs stay byte-identical.
func (s *GroupSummary) ToSummaryRow() SummaryRow {
	return SummaryRow{
		Group:     s.Group,
		TotalRows: s.TotalRows,
		CapexRows: s.CapexRows,
		CapexSum:  s.CapexSum.StringFixed(2),
	}
}

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CapexValueKind discriminates the parsed forms a capex cell can take.
type CapexValueKind int

const (
	// CapexMissing marks an absent or empty cell.
	CapexMissing CapexValueKind = iota
	// CapexNumber marks a cell that parsed as a decimal amount.
	CapexNumber
	// CapexText marks a non-numeric, non-empty cell.
	CapexText
)

// CapexValue is the tagged value a capex cell is parsed into before
// classification. Classification dispatches on Kind rather than inspecting
// the raw string again.
type CapexValue struct {
	Kind   CapexValueKind
	Amount decimal.Decimal // set when Kind == CapexNumber
	Text   string          // trimmed, lowercased; set when Kind == CapexText
}

// ParseCapexValue converts a raw capex cell into a CapexValue. Numeric
// parsing takes precedence over the textual form.
func ParseCapexValue(raw string) CapexValue {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CapexValue{Kind: CapexMissing}
	}

	if amount, err := decimal.NewFromString(trimmed); err == nil {
		return CapexValue{Kind: CapexNumber, Amount: amount}
	}

	return CapexValue{Kind: CapexText, Text: strings.ToLower(trimmed)}
}

// IsNumber reports whether the value parsed as a decimal amount.
func (v CapexValue) IsNumber() bool {
	return v.Kind == CapexNumber
}

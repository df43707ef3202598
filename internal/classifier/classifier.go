// Package classifier decides whether a line item counts as capital
// expenditure.
package classifier

import (
	"github.com/shopspring/decimal"

	"fjacquet/capex-csv/internal/models"
)

// DefaultTruthyTokens are the normalized textual values treated as CAPEX
// when a capex cell does not parse as a number.
var DefaultTruthyTokens = []string{"yes", "y", "true", "t", "1"}

// Classifier applies the CAPEX classification rule to parsed capex values.
type Classifier struct {
	threshold decimal.Decimal
	truthy    map[string]struct{}
}

// New creates a Classifier with the given numeric threshold and the default
// truthy token set.
func New(threshold decimal.Decimal) *Classifier {
	return NewWithTokens(threshold, DefaultTruthyTokens)
}

// NewWithTokens creates a Classifier with the given threshold and truthy
// token set. Tokens are expected to be trimmed and lowercased already.
func NewWithTokens(threshold decimal.Decimal, tokens []string) *Classifier {
	truthy := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		truthy[token] = struct{}{}
	}
	return &Classifier{
		threshold: threshold,
		truthy:    truthy,
	}
}

// Threshold returns the numeric threshold in effect.
func (c *Classifier) Threshold() decimal.Decimal {
	return c.threshold
}

// Classify applies the classification rule to one parsed capex value.
// It returns whether the row is CAPEX and, for numeric CAPEX rows, the
// amount that contributes to the group sum. Textual and missing values
// never carry an amount.
func (c *Classifier) Classify(value models.CapexValue) (bool, *decimal.Decimal) {
	switch value.Kind {
	case models.CapexNumber:
		if value.Amount.GreaterThan(c.threshold) {
			amount := value.Amount
			return true, &amount
		}
		return false, nil
	case models.CapexText:
		_, ok := c.truthy[value.Text]
		return ok, nil
	default:
		return false, nil
	}
}

package classifier

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rules is the optional YAML rules file overriding the built-in
// classification defaults.
//
// Example:
//
//	truthy: [yes, approved, capitalized]
//	threshold: "100.00"
type Rules struct {
	Truthy    []string `yaml:"truthy"`
	Threshold string   `yaml:"threshold"`
}

// LoadRules reads and parses a YAML rules file.
func LoadRules(filePath string) (*Rules, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	for i, token := range rules.Truthy {
		rules.Truthy[i] = strings.ToLower(strings.TrimSpace(token))
	}

	if rules.Threshold != "" {
		if _, err := decimal.NewFromString(rules.Threshold); err != nil {
			return nil, fmt.Errorf("invalid threshold in rules file %s: %w", filePath, err)
		}
	}

	return &rules, nil
}

// Tokens returns the truthy token set from the rules, falling back to the
// defaults when the file does not override them.
func (r *Rules) Tokens() []string {
	if r == nil || len(r.Truthy) == 0 {
		return DefaultTruthyTokens
	}
	return r.Truthy
}

// ThresholdOrDefault returns the threshold from the rules file, or the
// given fallback when the file does not set one.
func (r *Rules) ThresholdOrDefault(fallback decimal.Decimal) decimal.Decimal {
	if r == nil || r.Threshold == "" {
		return fallback
	}
	threshold, err := decimal.NewFromString(r.Threshold)
	if err != nil {
		return fallback
	}
	return threshold
}

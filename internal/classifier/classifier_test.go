package classifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/capex-csv/internal/models"
)

func TestClassify_Numeric(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		threshold string
		isCapex   bool
	}{
		{name: "above threshold", raw: "150", threshold: "0", isCapex: true},
		{name: "equal to threshold is not capex", raw: "100", threshold: "100", isCapex: false},
		{name: "below threshold", raw: "50", threshold: "100", isCapex: false},
		{name: "zero at zero threshold", raw: "0", threshold: "0", isCapex: false},
		{name: "negative amount", raw: "-10", threshold: "0", isCapex: false},
		{name: "decimal above threshold", raw: "100.01", threshold: "100", isCapex: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(decimal.RequireFromString(tt.threshold))
			isCapex, amount := c.Classify(models.ParseCapexValue(tt.raw))
			assert.Equal(t, tt.isCapex, isCapex)
			if tt.isCapex {
				require.NotNil(t, amount)
				assert.True(t, amount.Equal(decimal.RequireFromString(tt.raw)))
			} else {
				assert.Nil(t, amount)
			}
		})
	}
}

func TestClassify_Textual(t *testing.T) {
	tests := []struct {
		raw     string
		isCapex bool
	}{
		{raw: "yes", isCapex: true},
		{raw: "YES", isCapex: true},
		{raw: " true ", isCapex: true},
		{raw: "y", isCapex: true},
		{raw: "t", isCapex: true},
		{raw: "no", isCapex: false},
		{raw: "false", isCapex: false},
		{raw: "operational", isCapex: false},
	}

	c := New(decimal.Zero)
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			isCapex, amount := c.Classify(models.ParseCapexValue(tt.raw))
			assert.Equal(t, tt.isCapex, isCapex)
			// Textual rows never contribute an amount.
			assert.Nil(t, amount)
		})
	}
}

func TestClassify_MissingIsNotCapex(t *testing.T) {
	c := New(decimal.Zero)

	for _, raw := range []string{"", "   "} {
		isCapex, amount := c.Classify(models.ParseCapexValue(raw))
		assert.False(t, isCapex)
		assert.Nil(t, amount)
	}
}

func TestClassify_ThresholdMonotonicity(t *testing.T) {
	// Raising the threshold never increases the CAPEX count.
	values := []string{"10", "50", "100", "yes", "no", "", "250.75"}

	countAt := func(threshold string) int {
		c := New(decimal.RequireFromString(threshold))
		count := 0
		for _, raw := range values {
			if isCapex, _ := c.Classify(models.ParseCapexValue(raw)); isCapex {
				count++
			}
		}
		return count
	}

	thresholds := []string{"0", "10", "50", "100", "1000"}
	for i := 1; i < len(thresholds); i++ {
		assert.GreaterOrEqual(t, countAt(thresholds[i-1]), countAt(thresholds[i]),
			"raising threshold from %s to %s increased the CAPEX count",
			thresholds[i-1], thresholds[i])
	}
}

func TestNewWithTokens_CustomTruthySet(t *testing.T) {
	c := NewWithTokens(decimal.Zero, []string{"approved"})

	isCapex, _ := c.Classify(models.ParseCapexValue("approved"))
	assert.True(t, isCapex)

	isCapex, _ = c.Classify(models.ParseCapexValue("yes"))
	assert.False(t, isCapex)
}

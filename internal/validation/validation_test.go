package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/capex-csv/internal/reporterror"
)

func TestRequireColumns(t *testing.T) {
	header := []string{"date", "project", "capex", "amount"}

	assert.NoError(t, RequireColumns("items.csv", header, "capex"))
	assert.NoError(t, RequireColumns("items.csv", header, "capex", "project"))
	assert.NoError(t, RequireColumns("items.csv", header, "capex", ""), "empty column names are skipped")

	err := RequireColumns("items.csv", header, "capex", "department")
	require.Error(t, err)

	var schemaErr *reporterror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "department", schemaErr.Column)
	assert.Equal(t, "items.csv", schemaErr.Path)
}

func TestRequireColumns_CaseSensitive(t *testing.T) {
	err := RequireColumns("items.csv", []string{"Capex"}, "capex")
	assert.Error(t, err)
}

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "zero", raw: "0", expected: "0"},
		{name: "decimal", raw: "100.50", expected: "100.50"},
		{name: "empty defaults to zero", raw: "", expected: "0"},
		{name: "whitespace tolerated", raw: " 5 ", expected: "5"},
		{name: "negative rejected", raw: "-1", wantErr: true},
		{name: "non-numeric rejected", raw: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threshold, err := ParseThreshold(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var argErr *reporterror.ArgumentError
				assert.True(t, errors.As(err, &argErr))
				return
			}
			require.NoError(t, err)
			assert.True(t, threshold.Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}

func TestRequireCapexColumnName(t *testing.T) {
	assert.NoError(t, RequireCapexColumnName("capex"))
	assert.Error(t, RequireCapexColumnName(""))
	assert.Error(t, RequireCapexColumnName("   "))
}

package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/capex-csv/cmd/report"
	"fjacquet/capex-csv/cmd/root"
	"fjacquet/capex-csv/internal/reporterror"
)

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)
	assert.Contains(t, report.Cmd.Short, "CAPEX summary report")
	assert.NotNil(t, report.Cmd.RunE)
}

func TestReportCommand_Flags(t *testing.T) {
	for flag, shorthand := range map[string]string{
		"group-by":        "g",
		"capex-column":    "c",
		"capex-threshold": "t",
	} {
		f := report.Cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s not registered", flag)
		assert.Equal(t, shorthand, f.Shorthand)
	}
	assert.NotNil(t, report.Cmd.Flags().Lookup("rules"))
}

func TestReportCommand_RequiresInput(t *testing.T) {
	originalInput := root.SharedFlags.Input
	defer func() { root.SharedFlags.Input = originalInput }()

	root.SharedFlags.Input = ""

	err := report.Cmd.RunE(report.Cmd, nil)
	require.Error(t, err)

	var argErr *reporterror.ArgumentError
	assert.True(t, errors.As(err, &argErr))
}

func TestReportCommand_GeneratesReport(t *testing.T) {
	originalFlags := root.SharedFlags
	defer func() {
		root.SharedFlags = originalFlags
		require.NoError(t, report.Cmd.Flags().Set("capex-column", ""))
	}()

	dir := t.TempDir()
	input := filepath.Join(dir, "items.csv")
	output := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(input, []byte("capex\n150\n0\nyes\n"), 0600))

	root.SharedFlags.Input = input
	root.SharedFlags.Output = output
	require.NoError(t, report.Cmd.Flags().Set("capex-column", "capex"))

	require.NoError(t, report.Cmd.RunE(report.Cmd, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "group,total_rows,capex_rows,capex_sum\nALL,3,2,150.00\n", string(data))
}

func TestReportCommand_MissingInputFile(t *testing.T) {
	originalFlags := root.SharedFlags
	defer func() {
		root.SharedFlags = originalFlags
		require.NoError(t, report.Cmd.Flags().Set("capex-column", ""))
	}()

	dir := t.TempDir()
	root.SharedFlags.Input = filepath.Join(dir, "absent.csv")
	root.SharedFlags.Output = filepath.Join(dir, "report.csv")
	require.NoError(t, report.Cmd.Flags().Set("capex-column", "capex"))

	err := report.Cmd.RunE(report.Cmd, nil)
	require.Error(t, err)

	var inputErr *reporterror.InputError
	assert.True(t, errors.As(err, &inputErr))
}

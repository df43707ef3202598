// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/capex-csv/internal/common"
	"fjacquet/capex-csv/internal/config"
	"fjacquet/capex-csv/internal/logging"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to subcommands
	// after PersistentPreRun.
	Cfg *config.Config

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "capex-csv",
		Short: "A CLI tool to generate CAPEX summary reports from CSV files.",
		Long: `capex-csv reads a CSV file of financial line items, classifies rows as
capital expenditure based on a numeric or textual column, optionally groups
them, and writes a summary CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to capex-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			common.SetLogger(Log)

			if delim := cfg.CSV.Delimiter; delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}
)

// Init initializes the root command and its persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file (default: capex_report.csv)")
}

// GetLogger returns the shared logger wrapped in the logging facade.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

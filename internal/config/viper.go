package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Report struct {
		Output      string `mapstructure:"output" yaml:"output"`
		CapexColumn string `mapstructure:"capex_column" yaml:"capex_column"`
		Threshold   string `mapstructure:"threshold" yaml:"threshold"`
		RulesFile   string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config.yaml ($HOME/.capex-csv, .capex-csv or the working
// directory), then CAPEX_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.capex-csv")
	v.AddConfigPath(".capex-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CAPEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars, but surface the problem.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	if err := v.BindEnv("report.rules_file", "CAPEX_RULES_FILE"); err != nil {
		fmt.Printf("Warning: failed to bind CAPEX_RULES_FILE environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("report.output", "capex_report.csv")
	v.SetDefault("report.capex_column", "capex")
	v.SetDefault("report.threshold", "0.0")
	v.SetDefault("report.rules_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if threshold, err := decimal.NewFromString(config.Report.Threshold); err != nil {
		return fmt.Errorf("invalid report threshold: %s", config.Report.Threshold)
	} else if threshold.IsNegative() {
		return fmt.Errorf("report threshold must not be negative, got: %s", config.Report.Threshold)
	}

	if config.Report.CapexColumn == "" {
		return fmt.Errorf("report capex_column must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

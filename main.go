package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/capex-csv/cmd/report"
	"fjacquet/capex-csv/cmd/root"
	"fjacquet/capex-csv/cmd/validate"
)

func init() {
	// Load environment variables silently first, then configure the global
	// log level before any command wiring logs anything.
	loadEnvSilently()
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL so that all
// loggers created during command wiring inherit it.
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

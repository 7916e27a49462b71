// Package main provides the entry point for the apply_bot CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-apply-bot/internal/config"
	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/logging"
)

const moduleName = "apply_bot"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath string
	logLevel   string

	// fileConfig holds the values loaded from --config for the running command.
	fileConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "apply_bot",
	Short: "Job application package generator",
	Long: `apply_bot prepares one application package per job posting: a cover letter
rendered from a template plus an application.json describing the candidate and
the job. Submission is a dry-run review; applying on each site stays manual.

Defaults can be loaded from a JSON or YAML file using --config. Command-line
flags override config file values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOG_LEVEL env var, then warn)")
}

// setupCommand loads the config file, if any, and installs the logger.
func setupCommand(_ *cobra.Command, _ []string) error {
	fileConfig = config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileConfig = *loaded
	}

	level := logLevel
	if level == "" {
		level = fileConfig.LogLevel
	}
	logging.SetDefaultStructuredLoggerWithLevel(moduleName, version, level)

	return nil
}

// logFailure records the code and context of a failed command at debug level.
func logFailure(err error) {
	var se *apperrors.StructuredError
	if !errors.As(err, &se) {
		return
	}
	slog.Debug("command failed", "code", se.Code, "context", se.Context)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		logFailure(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

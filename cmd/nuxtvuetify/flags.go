package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
)

func validateConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", abs)
	}

	return abs, nil
}

// loadOptions reads the user options named by --config, or none when the flag is unset.
func loadOptions(flags *rootFlags) (config.PartialOptions, error) {
	if flags.configPath == "" {
		return config.PartialOptions{}, nil
	}
	path, err := validateConfigPath(flags.configPath)
	if err != nil {
		return config.PartialOptions{}, err
	}
	return config.ParseOptions(path)
}

func newCommandLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Tag:           config.LoggerTag,
		NoColor:       !supportsColor(cmd.ErrOrStderr()),
	})
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

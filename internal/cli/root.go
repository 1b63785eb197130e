package cli

import (
	"context"

	"linkedopt/internal/config"
	"linkedopt/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "linkedopt",
	Short: "A CLI tool for optimizing LinkedIn profiles using AI",
	Long: `Linkedopt turns LinkedIn profile screenshots into an optimization plan.
It extracts profile text from screenshots, scores the content, analyzes
gaps against industry benchmarks for a target role and generates a
complete optimization report with an implementation checklist.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(finetuneCmd)
	rootCmd.AddCommand(telemetryCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

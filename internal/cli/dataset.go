package cli

import (
	"fmt"

	"linkedopt/internal/common"
	"linkedopt/internal/training"

	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and manage the fine-tuning dataset",
	Long: `Inspect and manage the JSONL training dataset collected from
optimization runs and user feedback. The dataset path is taken from
the app.datasetPath configuration setting.`,
}

var datasetStatsConfig common.CommandConfig

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training dataset statistics",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &datasetStatsConfig)
	},
	RunE: runDatasetStats,
}

var (
	datasetExportOutput     string
	datasetExportMinQuality string
)

var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a cleaned dataset for fine-tuning",
	Long: `Export examples rated at or above the minimum quality to a new
JSONL file, keeping only the input and output fields expected by the
fine-tuning API.`,
	Args: cobra.NoArgs,
	RunE: runDatasetExport,
}

var datasetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all collected training examples",
	Args:  cobra.NoArgs,
	RunE:  runDatasetClear,
}

func init() {
	addOutputFlags(datasetStatsCmd, &datasetStatsConfig)

	datasetExportCmd.Flags().StringVarP(&datasetExportOutput, "output", "o", "dataset_clean.jsonl", "Export file path")
	datasetExportCmd.Flags().StringVar(&datasetExportMinQuality, "min-quality", training.FeedbackNeutral, "Minimum feedback quality: positive, neutral or negative")

	datasetCmd.AddCommand(datasetStatsCmd)
	datasetCmd.AddCommand(datasetExportCmd)
	datasetCmd.AddCommand(datasetClearCmd)
}

func datasetLogger(cmd *cobra.Command) (*training.Logger, error) {
	cfg := getConfigFromContext(cmd.Context())
	trainingLogger, err := training.NewLogger(cfg.App.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open training dataset: %w", err)
	}
	return trainingLogger, nil
}

func runDatasetStats(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	trainingLogger, err := datasetLogger(cmd)
	if err != nil {
		return err
	}

	stats, err := trainingLogger.Stats()
	if err != nil {
		return fmt.Errorf("failed to read dataset statistics: %w", err)
	}

	return common.NewOutputHandler(logger).HandleOutput(stats, datasetStatsConfig)
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	trainingLogger, err := datasetLogger(cmd)
	if err != nil {
		return err
	}

	count, err := trainingLogger.Export(datasetExportOutput, datasetExportMinQuality)
	if err != nil {
		return fmt.Errorf("failed to export dataset: %w", err)
	}

	logger.Info("Dataset exported",
		"examples", count,
		"min_quality", datasetExportMinQuality,
		"output", datasetExportOutput)
	fmt.Printf("Exported %d examples to %s\n", count, datasetExportOutput)
	return nil
}

func runDatasetClear(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	trainingLogger, err := datasetLogger(cmd)
	if err != nil {
		return err
	}

	if err := trainingLogger.Clear(); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	logger.Info("Dataset cleared", "path", trainingLogger.Path())
	fmt.Println("Training dataset cleared.")
	return nil
}

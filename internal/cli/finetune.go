package cli

import (
	"fmt"
	"time"

	"linkedopt/internal/common"
	"linkedopt/internal/finetune"

	"github.com/spf13/cobra"
)

var finetuneCmd = &cobra.Command{
	Use:   "finetune",
	Short: "Manage hosted fine-tuning jobs",
	Long: `Manage fine-tuning jobs on the Together AI platform: upload the
collected dataset and start a job, poll job status, wait for
completion, or estimate the cost before starting.`,
}

var finetuneDataset string
var finetuneModel string

var finetuneStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Upload the dataset and start a fine-tuning job",
	Args:  cobra.NoArgs,
	RunE:  runFinetuneStart,
}

var finetuneStatusConfig common.CommandConfig

var finetuneStatusCmd = &cobra.Command{
	Use:   "status [job-id]",
	Short: "Show the status of a fine-tuning job",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &finetuneStatusConfig)
	},
	RunE: runFinetuneStatus,
}

var (
	finetuneWaitConfig   common.CommandConfig
	finetuneWaitInterval time.Duration
	finetuneWaitTimeout  time.Duration
)

var finetuneWaitCmd = &cobra.Command{
	Use:   "wait [job-id]",
	Short: "Wait for a fine-tuning job to finish",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &finetuneWaitConfig)
	},
	RunE: runFinetuneWait,
}

var finetuneEstimateConfig common.CommandConfig

var finetuneEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of fine-tuning on the current dataset",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &finetuneEstimateConfig)
	},
	RunE: runFinetuneEstimate,
}

func init() {
	finetuneCmd.PersistentFlags().StringVar(&finetuneDataset, "dataset", "", "Dataset file path (default from config)")
	finetuneCmd.PersistentFlags().StringVar(&finetuneModel, "model", finetune.BaseModel, "Base model to fine-tune")

	addOutputFlags(finetuneStatusCmd, &finetuneStatusConfig)
	addOutputFlags(finetuneWaitCmd, &finetuneWaitConfig)
	addOutputFlags(finetuneEstimateCmd, &finetuneEstimateConfig)

	finetuneWaitCmd.Flags().DurationVar(&finetuneWaitInterval, "interval", 30*time.Second, "Status poll interval")
	finetuneWaitCmd.Flags().DurationVar(&finetuneWaitTimeout, "timeout", 2*time.Hour, "Maximum time to wait")

	finetuneCmd.AddCommand(finetuneStartCmd)
	finetuneCmd.AddCommand(finetuneStatusCmd)
	finetuneCmd.AddCommand(finetuneWaitCmd)
	finetuneCmd.AddCommand(finetuneEstimateCmd)
}

func finetuneClient(cmd *cobra.Command) (*finetune.Client, error) {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	client, err := finetune.NewClient(cfg.GetTogetherConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create fine-tune client: %w", err)
	}
	return client, nil
}

func finetuneDatasetPath(cmd *cobra.Command) string {
	if finetuneDataset != "" {
		return finetuneDataset
	}
	return getConfigFromContext(cmd.Context()).App.DatasetPath
}

func runFinetuneStart(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	client, err := finetuneClient(cmd)
	if err != nil {
		return err
	}

	jobID, err := client.StartJob(cmd.Context(), finetuneDatasetPath(cmd), finetuneModel)
	if err != nil {
		return fmt.Errorf("failed to start fine-tuning job: %w", err)
	}

	logger.Info("Fine-tuning job started", "job_id", jobID, "model", finetuneModel)
	fmt.Printf("Started fine-tuning job %s\n", jobID)
	return nil
}

func runFinetuneStatus(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	client, err := finetuneClient(cmd)
	if err != nil {
		return err
	}

	job, err := client.JobStatus(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch job status: %w", err)
	}

	return common.NewOutputHandler(logger).HandleOutput(job, finetuneStatusConfig)
}

func runFinetuneWait(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	client, err := finetuneClient(cmd)
	if err != nil {
		return err
	}

	job, err := client.WaitForCompletion(cmd.Context(), args[0], finetuneWaitInterval, finetuneWaitTimeout)
	if err != nil {
		return fmt.Errorf("fine-tuning job did not complete: %w", err)
	}

	return common.NewOutputHandler(logger).HandleOutput(job, finetuneWaitConfig)
}

func runFinetuneEstimate(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	estimate, err := finetune.EstimateCost(finetuneDatasetPath(cmd), finetuneModel)
	if err != nil {
		return fmt.Errorf("failed to estimate fine-tuning cost: %w", err)
	}

	return common.NewOutputHandler(logger).HandleOutput(estimate, finetuneEstimateConfig)
}

package cli

import (
	"fmt"

	"linkedopt/internal/common"
	"linkedopt/internal/telemetry"

	"github.com/spf13/cobra"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Inspect local usage telemetry",
}

var telemetryStatsConfig common.CommandConfig

var telemetryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated usage statistics",
	Long: `Show usage statistics aggregated from the local telemetry event log:
extraction and generation counts, success rates, and model and
industry usage distributions.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &telemetryStatsConfig)
	},
	RunE: runTelemetryStats,
}

func init() {
	addOutputFlags(telemetryStatsCmd, &telemetryStatsConfig)
	telemetryCmd.AddCommand(telemetryStatsCmd)
}

func runTelemetryStats(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	recorder := telemetry.NewRecorder(cfg.App.TelemetryPath, logger)
	stats := recorder.UsageStats()

	if stats.TotalEvents == 0 {
		fmt.Println("No telemetry events recorded yet.")
		return nil
	}

	return common.NewOutputHandler(logger).HandleOutput(stats, telemetryStatsConfig)
}

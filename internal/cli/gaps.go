package cli

import (
	"context"
	"fmt"

	"linkedopt/internal/ai"
	"linkedopt/internal/common"
	"linkedopt/internal/errors"
	"linkedopt/internal/gaps"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps [profile-file]",
	Short: "Analyze gaps against the benchmark for a target role",
	Long: `Compare a profile to the hand-authored benchmark for the target
industry and role. The analysis lists prioritized gaps with effort
levels and impact scores, a completeness score, quick wins and an
implementation roadmap.

Use --format markdown to render the full perfect-profile report.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &gapsConfig)
	},
	RunE: runGaps,
}

var (
	gapsConfig    common.CommandConfig
	gapsIndustry  string
	gapsRole      string
	gapsSessionID string
)

func init() {
	addOutputFlags(gapsCmd, &gapsConfig)
	gapsCmd.Flags().StringVar(&gapsIndustry, "industry", "", "Target industry")
	gapsCmd.Flags().StringVar(&gapsRole, "role", "", "Target role")
	gapsCmd.Flags().StringVar(&gapsSessionID, "session", "", "Session ID to load the profile from")
}

func runGaps(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	if gapsIndustry == "" || gapsRole == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Target --industry and --role are required for gap analysis", nil)
	}

	profile, sess, err := resolveProfile(cfg, logger, gapsSessionID, args)
	if err != nil {
		return err
	}

	target := types.Target{Industry: gapsIndustry, Role: gapsRole}

	logDetails := func(profile types.Profile, cmdConfig common.CommandConfig) {
		logger.Info("Starting gap analysis",
			"industry", target.Industry,
			"role", target.Role,
			"output_format", cmdConfig.OutputFormat)
	}

	gapsOperation := func(ctx context.Context, profile types.Profile) (types.GapAnalysis, *ai.TokenUsage, error) {
		analysis := gaps.NewAnalyzer().Analyze(profile, target)
		if sess != nil {
			sess.SetGapAnalysis(analysis)
			saveSession(cfg, logger, sess)
		}
		return analysis, nil, nil
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		gapsConfig,
		profile,
		gapsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze gaps: %w", err)
	}
	return nil
}

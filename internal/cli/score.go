package cli

import (
	"context"
	"fmt"

	"linkedopt/internal/ai"
	"linkedopt/internal/common"
	"linkedopt/internal/errors"
	"linkedopt/internal/scoring"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [profile-file]",
	Short: "Score profile quality against industry benchmarks",
	Long: `Score each profile section (headline, about, experience, skills)
against heuristic quality benchmarks for the target industry and role,
producing per-section feedback and a weighted overall score.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &scoreConfig)
	},
	RunE: runScore,
}

var (
	scoreConfig    common.CommandConfig
	scoreIndustry  string
	scoreRole      string
	scoreSessionID string
)

func init() {
	addOutputFlags(scoreCmd, &scoreConfig)
	scoreCmd.Flags().StringVar(&scoreIndustry, "industry", "", "Target industry (default: Technology)")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Target role")
	scoreCmd.Flags().StringVar(&scoreSessionID, "session", "", "Session ID to load the profile from")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	profile, sess, err := resolveProfile(cfg, logger, scoreSessionID, args)
	if err != nil {
		return err
	}
	if profile.IsEmpty() {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Profile has no content to score", nil)
	}

	target := types.Target{Industry: scoreIndustry, Role: scoreRole}

	logDetails := func(profile types.Profile, cmdConfig common.CommandConfig) {
		logger.Info("Starting profile scoring",
			"industry", target.Industry,
			"role", target.Role,
			"output_format", cmdConfig.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, profile types.Profile) (types.ProfileQuality, *ai.TokenUsage, error) {
		quality := scoring.NewScorer().Score(profile, target)
		if sess != nil {
			sess.SetQuality(quality)
			saveSession(cfg, logger, sess)
		}
		return quality, nil, nil
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		profile,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score profile: %w", err)
	}
	return nil
}

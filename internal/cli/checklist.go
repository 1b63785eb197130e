package cli

import (
	"context"
	"fmt"

	"linkedopt/internal/ai"
	"linkedopt/internal/checklist"
	"linkedopt/internal/common"
	"linkedopt/internal/errors"
	"linkedopt/internal/scoring"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist [profile-file]",
	Short: "Generate a personalized implementation checklist",
	Long: `Generate a prioritized implementation checklist from a profile and
its quality scores, with per-task time estimates and a total effort
estimate. When loading from a session, previously computed scores are
reused; otherwise the profile is scored first.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &checklistConfig)
	},
	RunE: runChecklist,
}

var (
	checklistConfig    common.CommandConfig
	checklistIndustry  string
	checklistRole      string
	checklistSessionID string
)

func init() {
	addOutputFlags(checklistCmd, &checklistConfig)
	checklistCmd.Flags().StringVar(&checklistIndustry, "industry", "", "Target industry (default: Technology)")
	checklistCmd.Flags().StringVar(&checklistRole, "role", "", "Target role")
	checklistCmd.Flags().StringVar(&checklistSessionID, "session", "", "Session ID to load the profile from")
}

func runChecklist(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	profile, sess, err := resolveProfile(cfg, logger, checklistSessionID, args)
	if err != nil {
		return err
	}
	if profile.IsEmpty() {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Profile has no content to build a checklist from", nil)
	}

	target := types.Target{Industry: checklistIndustry, Role: checklistRole}
	if sess != nil && sess.Target != nil && checklistIndustry == "" && checklistRole == "" {
		target = *sess.Target
	}

	logDetails := func(profile types.Profile, cmdConfig common.CommandConfig) {
		logger.Info("Generating implementation checklist",
			"industry", target.Industry,
			"role", target.Role,
			"output_format", cmdConfig.OutputFormat)
	}

	checklistOperation := func(ctx context.Context, profile types.Profile) (types.Checklist, *ai.TokenUsage, error) {
		var quality types.ProfileQuality
		if sess != nil && sess.Quality != nil {
			quality = *sess.Quality
		} else {
			quality = scoring.NewScorer().Score(profile, target)
		}

		result := checklist.NewGenerator().Generate(profile, quality, target)
		if sess != nil {
			sess.SetChecklist(result)
			saveSession(cfg, logger, sess)
		}
		return result, nil, nil
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		checklistConfig,
		profile,
		checklistOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate checklist: %w", err)
	}
	return nil
}

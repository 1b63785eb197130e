package cli

import (
	"context"
	"fmt"

	"linkedopt/internal/ai"
	"linkedopt/internal/common"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Check an extracted profile for missing sections",
	Long: `Validate an extracted profile and report which sections are missing
or incomplete. Validation never blocks use of the profile; it only
annotates what the screenshots did not capture.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &validateConfig)
	},
	RunE: runValidate,
}

var (
	validateConfig    common.CommandConfig
	validateSessionID string
)

func init() {
	addOutputFlags(validateCmd, &validateConfig)
	validateCmd.Flags().StringVar(&validateSessionID, "session", "", "Session ID to load the profile from")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	profile, _, err := resolveProfile(cfg, logger, validateSessionID, args)
	if err != nil {
		return err
	}

	logDetails := func(profile types.Profile, cmdConfig common.CommandConfig) {
		logger.Info("Starting profile validation",
			"experience_entries", len(profile.Experience),
			"skills", len(profile.Skills),
			"output_format", cmdConfig.OutputFormat)
	}

	validateOperation := func(ctx context.Context, profile types.Profile) (types.ExtractionValidation, *ai.TokenUsage, error) {
		return ai.ValidateExtraction(profile), nil, nil
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		validateConfig,
		profile,
		validateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to validate profile: %w", err)
	}
	return nil
}

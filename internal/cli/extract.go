package cli

import (
	"context"
	"fmt"

	"linkedopt/internal/ai"
	"linkedopt/internal/common"
	"linkedopt/internal/images"
	"linkedopt/internal/session"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [screenshot...]",
	Short: "Extract profile content from LinkedIn screenshots",
	Long: `Extract structured profile content from one or more LinkedIn profile
screenshots using the vision model. Only text visible in the screenshots
is transcribed; sections that are not captured stay empty.

The extracted profile is saved into a new session so that later commands
(score, gaps, optimize, checklist) can reuse it with --session instead
of a profile file.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &extractConfig)
	},
	RunE: runExtract,
}

var (
	extractConfig    common.CommandConfig
	extractNoSession bool
)

func init() {
	addOutputFlags(extractCmd, &extractConfig)
	extractCmd.Flags().BoolVar(&extractNoSession, "no-session", false, "Do not save the extraction into a session")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	raw, err := common.NewFileProcessor(logger).ReadImageFiles(args...)
	if err != nil {
		return err
	}

	prepared := make([][]byte, len(raw))
	for i, data := range raw {
		img, err := images.Prepare(data, cfg.App.MaxImageWidth)
		if err != nil {
			return fmt.Errorf("failed to prepare image %s: %w", args[i], err)
		}
		prepared[i] = img
	}

	aiService, err := newAIService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer closeAIService(aiService, logger)

	logDetails := func(imgs [][]byte, cmdConfig common.CommandConfig) {
		logger.Info("Starting profile extraction",
			"images", len(imgs),
			"output_format", cmdConfig.OutputFormat)
	}

	extractOperation := func(ctx context.Context, imgs [][]byte) (types.Profile, *ai.TokenUsage, error) {
		profile, validation, err := aiService.ExtractProfile(ctx, imgs)
		if err != nil {
			return types.Profile{}, nil, err
		}

		for _, warning := range validation.Warnings {
			logger.Warn("Extraction warning", "warning", warning)
		}

		if !extractNoSession {
			sess := session.New()
			sess.SetProfile(profile, validation)
			if _, err := sessionStore(cfg, logger).Save(sess); err != nil {
				logger.Warn("Failed to save session", "error", err)
			} else {
				logger.Info("Session saved", "session_id", sess.ID)
			}
		}

		return profile, nil, nil
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		extractConfig,
		prepared,
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract profile: %w", err)
	}
	logger.Info("Profile extraction completed successfully")
	return nil
}

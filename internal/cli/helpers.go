package cli

import (
	"fmt"

	"linkedopt/internal/ai"
	"linkedopt/internal/common"
	"linkedopt/internal/config"
	"linkedopt/internal/errors"
	"linkedopt/internal/session"
	"linkedopt/internal/telemetry"
	"linkedopt/internal/training"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

// newAIService wires an AI service with telemetry and training capture
// the same way the HTTP server does.
func newAIService(cfg *config.Config, logger *errors.Logger) (*ai.Service, error) {
	extractCfg := cfg.GetExtractConfig()
	optimizeCfg := cfg.GetOptimizeConfig()

	var trainingLogger *training.Logger
	if cfg.App.DatasetPath != "" {
		var err error
		trainingLogger, err = training.NewLogger(cfg.App.DatasetPath)
		if err != nil {
			logger.Warn("Training dataset logging disabled", "error", err)
			trainingLogger = nil
		}
	}

	return ai.NewService(ai.ServiceOptions{
		Extract:  &extractCfg,
		Optimize: &optimizeCfg,
		Together: cfg.GetTogetherConfig(),
		Recorder: telemetry.NewRecorder(cfg.App.TelemetryPath, logger),
		Training: trainingLogger,
	}, logger)
}

func closeAIService(svc *ai.Service, logger *errors.Logger) {
	if err := svc.Close(); err != nil {
		logger.Warn("Failed to close AI service", "error", err)
	}
}

func sessionStore(cfg *config.Config, logger *errors.Logger) *session.Store {
	return session.NewStore(cfg.App.SessionDir, logger)
}

// resolveProfile loads the working profile either from a saved session
// or from a profile JSON file argument.
func resolveProfile(cfg *config.Config, logger *errors.Logger, sessionID string, args []string) (types.Profile, *session.Session, error) {
	if sessionID != "" {
		sess, err := sessionStore(cfg, logger).Load(sessionID)
		if err != nil {
			return types.Profile{}, nil, err
		}
		if !sess.HasProfile() {
			return types.Profile{}, nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("Session %s has no extracted profile", sessionID), nil)
		}
		return *sess.Profile, sess, nil
	}

	if len(args) != 1 {
		return types.Profile{}, nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"A profile file argument is required unless --session is given", nil)
	}

	profile, err := common.NewFileProcessor(logger).ReadProfile(args[0])
	if err != nil {
		return types.Profile{}, nil, err
	}
	return profile, nil, nil
}

// saveSession persists session updates; a nil session is a no-op.
func saveSession(cfg *config.Config, logger *errors.Logger, sess *session.Session) {
	if sess == nil {
		return
	}
	if _, err := sessionStore(cfg, logger).Save(sess); err != nil {
		logger.Warn("Failed to save session", "session_id", sess.ID, "error", err)
	}
}

// addOutputFlags wires the shared output flags and format completion.
func addOutputFlags(cmd *cobra.Command, cmdConfig *common.CommandConfig) {
	cmd.Flags().StringVarP(&cmdConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&cmdConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// applyDefaultFormat fills in the configured default format and
// validates the result. Intended for use from PreRunE.
func applyDefaultFormat(cmd *cobra.Command, cmdConfig *common.CommandConfig) error {
	cfg := getConfigFromContext(cmd.Context())
	if cmdConfig.OutputFormat == "" {
		cmdConfig.OutputFormat = cfg.App.DefaultFormat
	}
	return common.ValidateOutputFormat(cmdConfig.OutputFormat, cfg.App.SupportedFormats)
}

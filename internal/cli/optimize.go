package cli

import (
	"fmt"
	"strings"

	"linkedopt/internal/common"
	"linkedopt/internal/errors"
	"linkedopt/internal/report"
	"linkedopt/internal/types"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [profile-file]",
	Short: "Generate a complete profile optimization report",
	Long: `Generate a full optimization report for the target industry and role,
covering headline options, an about section rewrite, experience
enhancements, skills strategy and an engagement plan.

Use --section to print a single copy-ready section instead of the full
report, and --validate to run the content quality check on the
generated report.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyDefaultFormat(cmd, &optimizeConfig)
	},
	RunE: runOptimize,
}

var (
	optimizeConfig    common.CommandConfig
	optimizeIndustry  string
	optimizeRole      string
	optimizeModel     string
	optimizeContext   string
	optimizeSection   string
	optimizeValidate  bool
	optimizeSessionID string
)

// Section keys the report slicer can extract.
var optimizeSections = []string{"headline", "about", "experience", "skills"}

func init() {
	addOutputFlags(optimizeCmd, &optimizeConfig)
	optimizeCmd.Flags().StringVar(&optimizeIndustry, "industry", "", "Target industry")
	optimizeCmd.Flags().StringVar(&optimizeRole, "role", "", "Target role")
	optimizeCmd.Flags().StringVar(&optimizeModel, "model", "", "Generation model: gemini or llama3_custom (default from config)")
	optimizeCmd.Flags().StringVar(&optimizeContext, "context", "", "Additional context or clarifications for the strategist")
	optimizeCmd.Flags().StringVar(&optimizeSection, "section", "", "Print one copy-ready section: headline, about, experience or skills")
	optimizeCmd.Flags().BoolVar(&optimizeValidate, "validate", false, "Run the content quality check on the generated report")
	optimizeCmd.Flags().StringVar(&optimizeSessionID, "session", "", "Session ID to load the profile from")

	_ = optimizeCmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return optimizeSections, cobra.ShellCompDirectiveNoFileComp
	})
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	if optimizeIndustry == "" || optimizeRole == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Target --industry and --role are required for optimization", nil)
	}

	profile, sess, err := resolveProfile(cfg, logger, optimizeSessionID, args)
	if err != nil {
		return err
	}

	modelChoice := optimizeModel
	if modelChoice == "" {
		modelChoice = cfg.AI.DefaultModelChoice
	}

	aiService, err := newAIService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer closeAIService(aiService, logger)

	req := types.OptimizationRequest{
		Profile:           profile,
		Target:            types.Target{Industry: optimizeIndustry, Role: optimizeRole},
		ModelChoice:       modelChoice,
		AdditionalContext: optimizeContext,
	}

	logger.Info("Starting profile optimization",
		"industry", req.Target.Industry,
		"role", req.Target.Role,
		"model_choice", req.ModelChoice,
		"estimated_tokens", aiService.EstimateTokens(profile, req.Target),
		"output_format", optimizeConfig.OutputFormat)

	result, err := aiService.Optimize(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to generate optimization report: %w", err)
	}
	logger.Info("AI token usage",
		"input_tokens", result.InputTokens,
		"output_tokens", result.OutputTokens,
		"total_tokens", result.InputTokens+result.OutputTokens)

	var validation types.ContentValidation
	if optimizeValidate {
		validation = aiService.ValidateReport(result.Report, req.Target)
		logger.Info("Content validation",
			"score", validation.Score,
			"high_quality", validation.IsHighQuality)
		for _, item := range validation.Feedback {
			logger.Info("Validation feedback", "feedback", item)
		}
	}

	if sess != nil {
		sess.SetTarget(req.Target, req.ModelChoice)
		sess.SetReport(result, validation)
		saveSession(cfg, logger, sess)
	}

	if optimizeSection != "" {
		return writeSection(logger, result.Report, optimizeSection, optimizeConfig.OutputFile)
	}

	err = common.NewOutputHandler(logger).HandleOutput(result, optimizeConfig)
	if err != nil {
		return err
	}
	logger.Info("Profile optimization completed successfully")
	return nil
}

// writeSection prints one copy-ready section of the report. Sections
// are plain text for direct pasting, so the format flag does not apply.
func writeSection(logger *errors.Logger, reportText, name, outputFile string) error {
	sections := report.ExtractSections(reportText)
	section, ok := sections[name]
	if !ok {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Section %q not found in report (expected one of: %s)",
				name, strings.Join(optimizeSections, ", ")), nil)
	}

	check := report.ValidateLength(name, section.FormattedContent)
	if !check.Valid {
		logger.Warn("Section length outside platform limits",
			"section", name,
			"detail", check.Message)
	}

	if outputFile != "" {
		return common.NewFileProcessor(logger).WriteFile(outputFile, section.FormattedContent)
	}
	fmt.Println(section.FormattedContent)
	return nil
}

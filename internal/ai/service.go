package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"linkedopt/internal/config"
	"linkedopt/internal/errors"
	"linkedopt/internal/report"
	"linkedopt/internal/scoring"
	"linkedopt/internal/telemetry"
	"linkedopt/internal/training"
	"linkedopt/internal/types"
)

// ServiceOptions carries everything the AI service needs: per-operation
// provider configuration plus the optional telemetry and training sinks.
type ServiceOptions struct {
	Extract  *config.OperationAIConfig
	Optimize *config.OperationAIConfig
	Together config.TogetherConfig
	Recorder *telemetry.Recorder
	Training *training.Logger
}

// Service coordinates profile extraction and optimization report
// generation across the configured model providers.
type Service struct {
	extractor Extractor
	gemini    ReportGenerator
	together  ReportGenerator
	optimize  *config.OperationAIConfig
	recorder  *telemetry.Recorder
	training  *training.Logger
	logger    *errors.Logger
}

// NewService creates the AI service with one provider per operation.
// The Together provider is only constructed when both its API key and
// model name are configured; without it the custom Llama 3 model choice
// is reported as unavailable rather than failing startup.
func NewService(opts ServiceOptions, logger *errors.Logger) (*Service, error) {
	logger.Debug("Initializing AI service",
		"extract_provider", opts.Extract.Provider,
		"extract_model", opts.Extract.Model,
		"optimize_provider", opts.Optimize.Provider,
		"optimize_model", opts.Optimize.Model,
		"together_configured", opts.Together.APIKey != "" && opts.Together.Model != "")

	extractor, err := newExtractor(opts.Extract, logger)
	if err != nil {
		return nil, err
	}

	gemini, err := newGenerator(opts.Optimize, logger)
	if err != nil {
		return nil, err
	}

	var together ReportGenerator
	if opts.Together.APIKey != "" && opts.Together.Model != "" {
		together, err = NewTogetherProvider(opts.Together, logger)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		extractor: extractor,
		gemini:    gemini,
		together:  together,
		optimize:  opts.Optimize,
		recorder:  opts.Recorder,
		training:  opts.Training,
		logger:    logger,
	}, nil
}

func newExtractor(cfg *config.OperationAIConfig, logger *errors.Logger) (Extractor, error) {
	switch cfg.Provider {
	case "gemini":
		provider, err := NewGeminiProvider(cfg, "Extract", logger)
		if err != nil {
			return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
				"Failed to create extraction provider", err)
		}
		return provider, nil
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
}

func newGenerator(cfg *config.OperationAIConfig, logger *errors.Logger) (ReportGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		provider, err := NewGeminiProvider(cfg, "Optimize", logger)
		if err != nil {
			return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
				"Failed to create optimization provider", err)
		}
		return provider, nil
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
}

// ExtractProfile runs vision extraction over the prepared screenshots
// and annotates the result with section-level validation warnings.
func (s *Service) ExtractProfile(ctx context.Context, images [][]byte) (types.Profile, types.ExtractionValidation, error) {
	start := time.Now()
	profile, usage, err := s.extractor.ExtractProfile(ctx, images)
	elapsed := time.Since(start)

	if err != nil {
		s.recordVision(len(images), elapsed, false, err.Error())
		return types.Profile{}, types.ExtractionValidation{}, err
	}
	s.recordVision(len(images), elapsed, true, "")

	if usage != nil {
		s.logger.Debug("Vision extraction token usage",
			"input_tokens", usage.InputTokens,
			"output_tokens", usage.OutputTokens)
	}

	return profile, ValidateExtraction(profile), nil
}

// Optimize generates the full optimization report for a profile. A
// non-empty AdditionalContext turns the request into a follow-up: the
// context replaces the profile serialization as user content.
func (s *Service) Optimize(ctx context.Context, req types.OptimizationRequest) (types.OptimizationReport, error) {
	systemPrompt := s.systemPromptFor(req.Target)

	var userContent string
	if req.AdditionalContext != "" {
		userContent = FormatFollowup(req.AdditionalContext)
	} else {
		userContent = FormatProfilePrompt(req.Profile, req.Target)
	}

	return s.generate(ctx, req.ModelChoice, systemPrompt, userContent, req.Target)
}

// OptimizeToPerfect generates a report that closes the distance between
// the current profile and the industry's perfect-profile template.
func (s *Service) OptimizeToPerfect(ctx context.Context, profile types.Profile, tmpl types.PerfectTemplate, gaps []types.Gap, target types.Target, modelChoice string) (types.OptimizationReport, error) {
	systemPrompt := s.systemPromptFor(target)
	userContent := FormatPerfectProfilePrompt(profile, tmpl, gaps, target)
	return s.generate(ctx, modelChoice, systemPrompt, userContent, target)
}

// OptimizeFromGaps generates a prioritized action plan from a completed
// gap analysis.
func (s *Service) OptimizeFromGaps(ctx context.Context, analysis types.GapAnalysis, modelChoice string) (types.OptimizationReport, error) {
	systemPrompt := s.systemPromptFor(analysis.Target)
	userContent := FormatGapAnalysisPrompt(analysis, analysis.Target)
	return s.generate(ctx, modelChoice, systemPrompt, userContent, analysis.Target)
}

// generate dispatches to the provider selected by model choice and
// records the strategy generation event either way.
func (s *Service) generate(ctx context.Context, modelChoice, systemPrompt, userContent string, target types.Target) (types.OptimizationReport, error) {
	generator, choice, err := s.generatorFor(modelChoice)
	if err != nil {
		return types.OptimizationReport{}, err
	}

	start := time.Now()
	reportText, usage, err := generator.GenerateReport(ctx, systemPrompt, userContent)
	elapsed := time.Since(start)

	if err != nil {
		s.recordStrategy(choice, target, nil, elapsed, false, err.Error())
		return types.OptimizationReport{}, err
	}
	s.recordStrategy(choice, target, usage, elapsed, true, "")

	result := types.OptimizationReport{
		Report:      reportText,
		ModelChoice: choice,
	}
	if usage != nil {
		result.InputTokens = int(usage.InputTokens)
		result.OutputTokens = int(usage.OutputTokens)
	}
	return result, nil
}

// generatorFor resolves a model choice to a report generator. An empty
// choice defaults to Gemini.
func (s *Service) generatorFor(modelChoice string) (ReportGenerator, string, error) {
	switch modelChoice {
	case "", ModelChoiceGemini:
		return s.gemini, ModelChoiceGemini, nil
	case ModelChoiceLlama3:
		if s.together == nil {
			return nil, "", errors.NewAIError(errors.ErrCodeModelUnavailable,
				"Custom Llama 3 model not configured", nil)
		}
		return s.together, ModelChoiceLlama3, nil
	default:
		return nil, "", errors.NewValidationError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Unknown model choice: %s", modelChoice), nil)
	}
}

// systemPromptFor resolves the optimization system prompt: a loaded
// prompt file wins, then a config override, then the built-in
// strategist prompt interpolated for the target.
func (s *Service) systemPromptFor(target types.Target) string {
	loadedPrompts := config.GetPromptsForOperation("optimize")
	return resolvePrompt(
		loadedPrompts.SystemPrompts.Optimize,
		s.optimize.CustomPrompts.SystemPrompts.Optimize,
		SystemPrompt(target),
	)
}

// AvailableModels lists the model choices the service can dispatch to.
func (s *Service) AvailableModels() []string {
	models := []string{ModelChoiceGemini}
	if s.together != nil {
		models = append(models, ModelChoiceLlama3)
	}
	return models
}

// EstimateTokens gives a rough pre-flight token estimate for an
// optimization request, at four characters per token.
func (s *Service) EstimateTokens(profile types.Profile, target types.Target) int {
	userContent := FormatProfilePrompt(profile, target)
	systemPrompt := s.systemPromptFor(target)
	return (len(userContent) + len(systemPrompt)) / 4
}

// SectionFeedback is a user's verdict on one recommended section.
type SectionFeedback struct {
	SectionName       string `json:"sectionName"`
	CurrentText       string `json:"currentText"`
	RecommendedText   string `json:"recommendedText"`
	Industry          string `json:"industry"`
	Role              string `json:"role"`
	FeedbackType      string `json:"feedbackType"` // "positive" or "negative"
	ModelChoice       string `json:"modelChoice"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// RecordFeedback stores section feedback in the telemetry log and as a
// fine-tuning training example.
func (s *Service) RecordFeedback(fb SectionFeedback) error {
	if s.recorder != nil {
		s.recorder.RecordUserFeedback(fb.SectionName, fb.FeedbackType, fb.ModelChoice, fb.AdditionalContext)
	}
	if s.training == nil {
		return nil
	}
	return s.training.LogSectionFeedback(fb.SectionName, fb.CurrentText, fb.RecommendedText,
		fb.Industry, fb.Role, fb.FeedbackType, fb.ModelChoice)
}

// ValidateReport parses the implementable sections back out of a
// generated report and scores them against the target's industry and
// role expectations.
func (s *Service) ValidateReport(reportText string, target types.Target) types.ContentValidation {
	content := parseGeneratedContent(reportText)
	return scoring.NewValidator().Validate(content, target)
}

// parseGeneratedContent maps extracted report sections onto the
// generated-content shape the validator scores.
func parseGeneratedContent(reportText string) scoring.GeneratedContent {
	sections := report.ExtractSections(reportText)
	content := scoring.GeneratedContent{}

	if sec, ok := sections["headline"]; ok {
		// First headline option stands in for the whole set.
		content.Headline = strings.TrimSpace(strings.SplitN(sec.Content, "\n", 2)[0])
	}
	if sec, ok := sections["about"]; ok {
		content.About = sec.Content
	}
	if sec, ok := sections["experience"]; ok {
		content.Experience = []types.ExperienceEntry{{Description: sec.Content}}
	}
	if sec, ok := sections["skills"]; ok {
		for _, line := range strings.Split(sec.Content, "\n") {
			if skill := strings.TrimSpace(line); skill != "" {
				content.Skills = append(content.Skills, skill)
			}
		}
	}
	return content
}

// GetModelInfo returns availability information for the extraction
// model, for health checks.
func (s *Service) GetModelInfo(ctx context.Context) *ModelInfo {
	return s.extractor.GetModelInfo(ctx)
}

// GetCircuitBreakerStats aggregates breaker statistics across providers.
func (s *Service) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{}
	if provider, ok := s.extractor.(*GeminiProvider); ok {
		stats["extract"] = provider.GetCircuitBreakerStats()
	}
	if provider, ok := s.gemini.(*GeminiProvider); ok {
		stats["optimize"] = provider.GetCircuitBreakerStats()
	}
	if provider, ok := s.together.(*TogetherProvider); ok {
		stats["together"] = provider.GetCircuitBreakerStats()
	}
	return stats
}

// Close releases all provider resources.
func (s *Service) Close() error {
	var firstErr error
	if err := s.extractor.Close(); err != nil {
		firstErr = err
	}
	if err := s.gemini.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if s.together != nil {
		if err := s.together.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Service) recordVision(numImages int, elapsed time.Duration, success bool, errMessage string) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordVisionExtraction(numImages, elapsed, success, errMessage)
}

func (s *Service) recordStrategy(choice string, target types.Target, usage *TokenUsage, elapsed time.Duration, success bool, errMessage string) {
	if s.recorder == nil {
		return
	}
	inputTokens, outputTokens := 0, 0
	if usage != nil {
		inputTokens = int(usage.InputTokens)
		outputTokens = int(usage.OutputTokens)
	}
	s.recorder.RecordStrategyGeneration(choice, target.Industry, target.Role,
		inputTokens, outputTokens, elapsed, success, errMessage)
}

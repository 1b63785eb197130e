package ai

import (
	"context"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"linkedopt/internal/config"
	"linkedopt/internal/errors"
	"linkedopt/internal/telemetry"
	"linkedopt/internal/training"
	"linkedopt/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelDebug)

// fakeGenerator records the prompts it receives and replies with a
// canned report.
type fakeGenerator struct {
	name         string
	systemPrompt string
	userContent  string
	reply        string
	err          error
	calls        int
}

func (f *fakeGenerator) GenerateReport(_ context.Context, systemPrompt, userContent string) (string, *TokenUsage, error) {
	f.calls++
	f.systemPrompt = systemPrompt
	f.userContent = userContent
	if f.err != nil {
		return "", nil, f.err
	}
	return f.reply, &TokenUsage{InputTokens: 100, OutputTokens: 200, TotalTokens: 300}, nil
}

func (f *fakeGenerator) Close() error { return nil }

type fakeExtractor struct {
	profile types.Profile
	err     error
}

func (f *fakeExtractor) ExtractProfile(context.Context, [][]byte) (types.Profile, *TokenUsage, error) {
	if f.err != nil {
		return types.Profile{}, nil, f.err
	}
	return f.profile, &TokenUsage{InputTokens: 50, OutputTokens: 80}, nil
}

func (f *fakeExtractor) GetModelInfo(context.Context) *ModelInfo {
	return &ModelInfo{Name: "fake-model", Available: true}
}

func (f *fakeExtractor) Close() error { return nil }

func newTestService(t *testing.T, withTogether bool) (*Service, *fakeGenerator, *fakeGenerator) {
	t.Helper()

	gemini := &fakeGenerator{name: "gemini", reply: "gemini report"}
	together := &fakeGenerator{name: "together", reply: "llama report"}

	svc := &Service{
		extractor: &fakeExtractor{profile: sampleProfile()},
		gemini:    gemini,
		optimize:  &config.OperationAIConfig{},
		recorder:  telemetry.NewRecorder(filepath.Join(t.TempDir(), "telemetry.json"), testLogger),
		logger:    testLogger,
	}
	if withTogether {
		svc.together = together
	}
	return svc, gemini, together
}

func sampleProfile() types.Profile {
	return types.Profile{
		Headline: "Senior Software Engineer at Acme",
		About:    "Engineer with 10 years of experience building distributed systems.",
		Experience: []types.ExperienceEntry{
			{Title: "Senior Software Engineer", Company: "Acme", Dates: "2019 - Present", Description: "Led platform team."},
		},
		Skills: []string{"Go", "Kubernetes", "PostgreSQL"},
	}
}

func TestOptimizeDispatch(t *testing.T) {
	target := types.Target{Industry: "Technology", Role: "Software Engineer"}

	tests := []struct {
		name         string
		modelChoice  string
		withTogether bool
		wantChoice   string
		wantErrCode  string
	}{
		{name: "default is gemini", modelChoice: "", withTogether: false, wantChoice: ModelChoiceGemini},
		{name: "explicit gemini", modelChoice: ModelChoiceGemini, withTogether: false, wantChoice: ModelChoiceGemini},
		{name: "llama3 configured", modelChoice: ModelChoiceLlama3, withTogether: true, wantChoice: ModelChoiceLlama3},
		{name: "llama3 not configured", modelChoice: ModelChoiceLlama3, withTogether: false, wantErrCode: errors.ErrCodeModelUnavailable},
		{name: "unknown model", modelChoice: "gpt-9", withTogether: true, wantErrCode: errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gemini, together := newTestService(t, tt.withTogether)

			result, err := svc.Optimize(context.Background(), types.OptimizationRequest{
				Profile:     sampleProfile(),
				Target:      target,
				ModelChoice: tt.modelChoice,
			})

			if tt.wantErrCode != "" {
				var appErr *errors.AppError
				if !stderrors.As(err, &appErr) {
					t.Fatalf("Expected AppError, got %v", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Errorf("Expected error code %s, got %s", tt.wantErrCode, appErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("Optimize failed: %v", err)
			}
			if result.ModelChoice != tt.wantChoice {
				t.Errorf("Expected model choice %s, got %s", tt.wantChoice, result.ModelChoice)
			}
			if result.InputTokens != 100 || result.OutputTokens != 200 {
				t.Errorf("Expected token counts 100/200, got %d/%d", result.InputTokens, result.OutputTokens)
			}

			switch tt.wantChoice {
			case ModelChoiceGemini:
				if gemini.calls != 1 {
					t.Errorf("Expected gemini to be called once, got %d", gemini.calls)
				}
			case ModelChoiceLlama3:
				if together.calls != 1 {
					t.Errorf("Expected together to be called once, got %d", together.calls)
				}
			}
		})
	}
}

func TestOptimizePromptContent(t *testing.T) {
	svc, gemini, _ := newTestService(t, false)
	target := types.Target{Industry: "Technology", Role: "Software Engineer"}

	t.Run("profile serialization", func(t *testing.T) {
		_, err := svc.Optimize(context.Background(), types.OptimizationRequest{
			Profile: sampleProfile(),
			Target:  target,
		})
		if err != nil {
			t.Fatalf("Optimize failed: %v", err)
		}
		if !strings.Contains(gemini.userContent, "Senior Software Engineer at Acme") {
			t.Error("User content should contain the profile headline")
		}
		if !strings.Contains(gemini.systemPrompt, "Technology") {
			t.Error("System prompt should be interpolated for the target industry")
		}
	})

	t.Run("additional context replaces profile", func(t *testing.T) {
		_, err := svc.Optimize(context.Background(), types.OptimizationRequest{
			Profile:           sampleProfile(),
			Target:            target,
			AdditionalContext: "I am open to relocation",
		})
		if err != nil {
			t.Fatalf("Optimize failed: %v", err)
		}
		if !strings.Contains(gemini.userContent, "I am open to relocation") {
			t.Error("User content should carry the additional context")
		}
		if strings.Contains(gemini.userContent, "Senior Software Engineer at Acme") {
			t.Error("Follow-up content should not repeat the full profile")
		}
	})
}

func TestExtractProfileValidation(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	profile, validation, err := svc.ExtractProfile(context.Background(), [][]byte{{0xff, 0xd8}})
	if err != nil {
		t.Fatalf("ExtractProfile failed: %v", err)
	}
	if profile.Headline == "" {
		t.Error("Expected extracted profile to have a headline")
	}
	if !validation.IsValid {
		t.Errorf("Complete profile should validate, got warnings: %v", validation.Warnings)
	}

	svc.extractor = &fakeExtractor{profile: types.Profile{Skills: []string{"Go"}}}
	_, validation, err = svc.ExtractProfile(context.Background(), [][]byte{{0xff, 0xd8}})
	if err != nil {
		t.Fatalf("ExtractProfile failed: %v", err)
	}
	if validation.IsValid {
		t.Error("Profile missing headline, about and experience should not validate")
	}
	for _, want := range []string{"headline", "about", "experience"} {
		found := false
		for _, section := range validation.MissingSections {
			if section == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %s in missing sections, got %v", want, validation.MissingSections)
		}
	}
}

func TestAvailableModels(t *testing.T) {
	svc, _, _ := newTestService(t, false)
	models := svc.AvailableModels()
	if len(models) != 1 || models[0] != ModelChoiceGemini {
		t.Errorf("Expected only gemini, got %v", models)
	}

	svc, _, _ = newTestService(t, true)
	models = svc.AvailableModels()
	if len(models) != 2 || models[1] != ModelChoiceLlama3 {
		t.Errorf("Expected gemini and llama3_custom, got %v", models)
	}
}

func TestEstimateTokens(t *testing.T) {
	svc, _, _ := newTestService(t, false)
	target := types.Target{Industry: "Technology", Role: "Software Engineer"}

	estimate := svc.EstimateTokens(sampleProfile(), target)
	if estimate <= 0 {
		t.Fatalf("Expected positive token estimate, got %d", estimate)
	}

	// Four characters per token over the combined prompt text.
	userContent := FormatProfilePrompt(sampleProfile(), target)
	systemPrompt := svc.systemPromptFor(target)
	if want := (len(userContent) + len(systemPrompt)) / 4; estimate != want {
		t.Errorf("Expected estimate %d, got %d", want, estimate)
	}
}

func TestRecordFeedback(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	trainingLogger, err := training.NewLogger(filepath.Join(t.TempDir(), "dataset.jsonl"))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	svc.training = trainingLogger

	err = svc.RecordFeedback(SectionFeedback{
		SectionName:     "headline",
		CurrentText:     "Software Engineer",
		RecommendedText: "Senior Software Engineer | Cloud Platforms | 10+ Years",
		Industry:        "Technology",
		Role:            "Software Engineer",
		FeedbackType:    "positive",
		ModelChoice:     ModelChoiceGemini,
	})
	if err != nil {
		t.Fatalf("RecordFeedback failed: %v", err)
	}

	examples, err := trainingLogger.Examples()
	if err != nil {
		t.Fatalf("Examples failed: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("Expected 1 training example, got %d", len(examples))
	}
	if examples[0].Input.SectionName != "headline" {
		t.Errorf("Expected section name 'headline', got '%s'", examples[0].Input.SectionName)
	}
}

func TestValidateReport(t *testing.T) {
	svc, _, _ := newTestService(t, false)
	target := types.Target{Industry: "Technology", Role: "Software Engineer"}

	reportText := `1. OVERALL PROFILE REVIEW
Strong technical profile.

2. HEADLINE OPTIMIZATION
1. Senior Software Engineer | Cloud Architecture | Reduced Costs 40%
2. Platform Engineering Lead | Kubernetes at Scale | 10 years

3. ABOUT SECTION COMPLETE REWRITE
Recommended Version
Led development of cloud platforms serving 5 million users. Reduced infrastructure
costs 40% while improving reliability. 10 years of software engineering experience
across agile teams, specializing in scalability and devops automation.

4. EXPERIENCE SECTION ENHANCEMENT
- Led migration to Kubernetes, reduced deployments from 2 hours to 10 minutes
- Managed a team of 8 people across 3 projects
- Achieved 99.99% uptime over 2 years

5. SKILLS STRATEGY
1. Go
2. Kubernetes
3. PostgreSQL
4. System Design
5. Cloud Architecture`

	validation := svc.ValidateReport(reportText, target)

	if validation.Score <= 0 {
		t.Errorf("Expected positive score, got %d", validation.Score)
	}
	if validation.Score > 100 {
		t.Errorf("Score should be capped at 100, got %d", validation.Score)
	}
	if len(validation.Feedback) == 0 {
		t.Error("Short generated content should produce feedback")
	}
}

func TestGetCircuitBreakerStats(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	// Fakes are not concrete providers, so no per-provider entries appear.
	stats := svc.GetCircuitBreakerStats()
	if len(stats) != 0 {
		t.Errorf("Expected no stats for fake providers, got %v", stats)
	}
}

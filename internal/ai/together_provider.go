package ai

import (
	"context"
	"fmt"

	"linkedopt/internal/config"
	linkedoptErrors "linkedopt/internal/errors"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// TogetherProvider generates optimization reports through a fine-tuned
// Llama 3 completion model hosted on Together AI. Unlike the chat-style
// Gemini provider, Together serves a raw completion endpoint, so the
// system prompt and user content are wrapped into the Llama 3 chat
// template before sending.
type TogetherProvider struct {
	client  *resty.Client
	config  config.TogetherConfig
	breaker *CompletionCircuitBreaker
	logger  *linkedoptErrors.Logger
}

var _ ReportGenerator = (*TogetherProvider)(nil)

// NewTogetherProvider creates a provider for the custom Llama 3 model.
func NewTogetherProvider(cfg config.TogetherConfig, logger *linkedoptErrors.Logger) (*TogetherProvider, error) {
	if cfg.APIKey == "" {
		return nil, linkedoptErrors.NewConfigError(linkedoptErrors.ErrCodeMissingAPIKey,
			"Together API key is not configured", nil)
	}
	if cfg.Model == "" {
		return nil, linkedoptErrors.NewConfigError(linkedoptErrors.ErrCodeModelUnavailable,
			"Custom Llama 3 model name is not configured", nil)
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &TogetherProvider{
		client:  client,
		config:  cfg,
		breaker: NewCompletionCircuitBreaker("Together", cfg.CircuitBreaker, logger),
		logger:  logger,
	}, nil
}

// GenerateReport wraps the prompts into the Llama 3 template, calls the
// completions endpoint, and returns the generated text.
func (t *TogetherProvider) GenerateReport(ctx context.Context, systemPrompt, userContent string) (string, *TokenUsage, error) {
	tracer := otel.Tracer("linkedopt.ai.together")
	ctx, span := tracer.Start(ctx, "together.generate_report")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "together"),
		attribute.String("ai.model", t.config.Model),
		attribute.Int("input.prompt_length", len(userContent)),
	)

	prompt := FormatLlama3Prompt(systemPrompt, userContent)

	body, err := t.breaker.Execute(func() (string, error) {
		return t.complete(ctx, prompt)
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, err
	}

	report := gjson.Get(body, "choices.0.text").String()
	if report == "" {
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeMalformedReply,
			"Completion response contained no generated text", nil)
	}

	tokenUsage := togetherTokenUsage(body)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("output.report_length", len(report)),
	)
	return report, tokenUsage, nil
}

// complete issues a single completions request and returns the raw body.
func (t *TogetherProvider) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       t.config.Model,
			"prompt":      prompt,
			"max_tokens":  t.config.MaxTokens,
			"temperature": t.config.Temperature,
			"stop":        []string{Llama3StopToken},
		}).
		Post("/completions")
	if err != nil {
		return "", linkedoptErrors.NewNetworkError(linkedoptErrors.ErrCodeNetworkTimeout,
			"Together completion request failed", err)
	}

	if resp.IsError() {
		t.logger.Warn("Together API returned an error status",
			"model", t.config.Model,
			"status", resp.StatusCode(),
			"body", resp.String())
		return "", linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeAIServiceFailed,
			fmt.Sprintf("Together API returned status %d", resp.StatusCode()), nil)
	}

	return resp.String(), nil
}

// togetherTokenUsage reads the usage block from a completion response.
func togetherTokenUsage(body string) *TokenUsage {
	usage := gjson.Get(body, "usage")
	if !usage.Exists() {
		return nil
	}
	return &TokenUsage{
		InputTokens:  usage.Get("prompt_tokens").Int(),
		OutputTokens: usage.Get("completion_tokens").Int(),
		TotalTokens:  usage.Get("total_tokens").Int(),
	}
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (t *TogetherProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"completion_operations": t.breaker.GetStats(),
	}
	stats["overall_healthy"] = t.breaker.IsHealthy()
	return stats
}

// Close implements the ReportGenerator interface
func (t *TogetherProvider) Close() error {
	return nil
}

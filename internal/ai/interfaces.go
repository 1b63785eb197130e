package ai

import (
	"context"

	"linkedopt/internal/types"
)

// Model choices accepted by the report generation dispatch.
const (
	ModelChoiceGemini = "gemini"
	ModelChoiceLlama3 = "llama3_custom"
)

// Extractor turns profile screenshots into structured profile data.
// Implementations must only transcribe what is visible; absent sections
// stay empty.
type Extractor interface {
	ExtractProfile(ctx context.Context, images [][]byte) (types.Profile, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// ReportGenerator produces the free-form optimization report from a
// system instruction and user content. The reply is returned verbatim.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, systemPrompt, userContent string) (string, *TokenUsage, error)
	Close() error
}

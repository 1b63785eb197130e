package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"linkedopt/internal/gaps"
	"linkedopt/internal/telemetry"
	"linkedopt/internal/training"
	"linkedopt/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Profile", &ProfileTextFormatter{})
	registry.RegisterFormatter("markdown", "Profile", &ProfileMarkdownFormatter{})
	registry.RegisterFormatter("text", "ExtractionValidation", &ValidationTextFormatter{})
	registry.RegisterFormatter("markdown", "ExtractionValidation", &ValidationMarkdownFormatter{})
	registry.RegisterFormatter("text", "ProfileQuality", &QualityTextFormatter{})
	registry.RegisterFormatter("markdown", "ProfileQuality", &QualityMarkdownFormatter{})
	registry.RegisterFormatter("text", "GapAnalysis", &GapAnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "GapAnalysis", &GapAnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "OptimizationReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "OptimizationReport", &ReportMarkdownFormatter{})
	registry.RegisterFormatter("text", "Checklist", &ChecklistTextFormatter{})
	registry.RegisterFormatter("markdown", "Checklist", &ChecklistMarkdownFormatter{})
	registry.RegisterFormatter("text", "DatasetStats", &DatasetStatsTextFormatter{})
	registry.RegisterFormatter("text", "UsageStats", &UsageStatsTextFormatter{})
	registry.RegisterFormatter("text", "FineTuneJob", &FineTuneJobTextFormatter{})
	registry.RegisterFormatter("text", "FineTuneEstimate", &FineTuneEstimateTextFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.Profile:
		return "Profile"
	case types.ExtractionValidation:
		return "ExtractionValidation"
	case types.ProfileQuality:
		return "ProfileQuality"
	case types.GapAnalysis:
		return "GapAnalysis"
	case types.OptimizationReport:
		return "OptimizationReport"
	case types.Checklist:
		return "Checklist"
	case training.DatasetStats:
		return "DatasetStats"
	case telemetry.UsageStats:
		return "UsageStats"
	case types.FineTuneJob:
		return "FineTuneJob"
	case types.FineTuneEstimate:
		return "FineTuneEstimate"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ProfileTextFormatter handles text formatting for extracted profiles
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	profile, ok := data.(types.Profile)
	if !ok {
		return "", fmt.Errorf("expected Profile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED PROFILE ===\n\n")
	output.WriteString("Headline:\n")
	output.WriteString(orPlaceholder(profile.Headline))
	output.WriteString("\n\n")
	output.WriteString("About:\n")
	output.WriteString(orPlaceholder(profile.About))
	output.WriteString("\n\n")

	output.WriteString("Experience:\n")
	if len(profile.Experience) == 0 {
		output.WriteString("(none)\n")
	}
	for _, entry := range profile.Experience {
		output.WriteString(fmt.Sprintf("- %s at %s (%s)\n", entry.Title, entry.Company, entry.Dates))
		if entry.Description != "" {
			output.WriteString("  ")
			output.WriteString(entry.Description)
			output.WriteString("\n")
		}
	}
	output.WriteString("\n")

	output.WriteString("Skills:\n")
	if len(profile.Skills) == 0 {
		output.WriteString("(none)\n")
	} else {
		output.WriteString(strings.Join(profile.Skills, ", "))
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return "Profile"
}

// ProfileMarkdownFormatter handles markdown formatting for extracted profiles
type ProfileMarkdownFormatter struct{}

func (pmf *ProfileMarkdownFormatter) Format(data any) (string, error) {
	profile, ok := data.(types.Profile)
	if !ok {
		return "", fmt.Errorf("expected Profile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Profile\n\n")
	output.WriteString("## Headline\n\n")
	output.WriteString(orPlaceholder(profile.Headline))
	output.WriteString("\n\n")
	output.WriteString("## About\n\n")
	output.WriteString(orPlaceholder(profile.About))
	output.WriteString("\n\n")

	output.WriteString("## Experience\n\n")
	if len(profile.Experience) == 0 {
		output.WriteString("(none)\n")
	}
	for _, entry := range profile.Experience {
		output.WriteString(fmt.Sprintf("### %s at %s\n\n", entry.Title, entry.Company))
		if entry.Dates != "" {
			output.WriteString(fmt.Sprintf("**Dates:** %s\n\n", entry.Dates))
		}
		if entry.Description != "" {
			output.WriteString(entry.Description)
			output.WriteString("\n\n")
		}
	}

	output.WriteString("## Skills\n\n")
	if len(profile.Skills) == 0 {
		output.WriteString("(none)\n")
	}
	for _, skill := range profile.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (pmf *ProfileMarkdownFormatter) SupportedType() string {
	return "Profile"
}

// ValidationTextFormatter handles text formatting for extraction validation
type ValidationTextFormatter struct{}

func (vtf *ValidationTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractionValidation)
	if !ok {
		return "", fmt.Errorf("expected ExtractionValidation, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTION VALIDATION ===\n\n")
	if result.IsValid {
		output.WriteString("Status: valid\n\n")
	} else {
		output.WriteString("Status: incomplete\n\n")
	}

	if len(result.MissingSections) > 0 {
		output.WriteString("Missing Sections:\n")
		for _, section := range result.MissingSections {
			output.WriteString(fmt.Sprintf("- %s\n", section))
		}
		output.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		output.WriteString("Warnings:\n")
		for _, warning := range result.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	} else {
		output.WriteString("No warnings.\n")
	}

	return output.String(), nil
}

func (vtf *ValidationTextFormatter) SupportedType() string {
	return "ExtractionValidation"
}

// ValidationMarkdownFormatter handles markdown formatting for extraction validation
type ValidationMarkdownFormatter struct{}

func (vmf *ValidationMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractionValidation)
	if !ok {
		return "", fmt.Errorf("expected ExtractionValidation, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extraction Validation\n\n")
	if result.IsValid {
		output.WriteString("**Status:** valid\n\n")
	} else {
		output.WriteString("**Status:** incomplete\n\n")
	}

	if len(result.MissingSections) > 0 {
		output.WriteString("## Missing Sections\n\n")
		for _, section := range result.MissingSections {
			output.WriteString(fmt.Sprintf("- %s\n", section))
		}
		output.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		output.WriteString("## Warnings\n\n")
		for _, warning := range result.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	} else {
		output.WriteString("## No Warnings\n\nAll profile sections were captured.\n")
	}

	return output.String(), nil
}

func (vmf *ValidationMarkdownFormatter) SupportedType() string {
	return "ExtractionValidation"
}

// QualityTextFormatter handles text formatting for quality scores
type QualityTextFormatter struct{}

func (qtf *QualityTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ProfileQuality)
	if !ok {
		return "", fmt.Errorf("expected ProfileQuality, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PROFILE QUALITY ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/%d\n\n", result.Overall.Score, result.Overall.MaxScore))

	sections := []struct {
		name    string
		metrics types.QualityMetrics
	}{
		{"HEADLINE", result.Headline},
		{"ABOUT", result.About},
		{"EXPERIENCE", result.Experience},
		{"SKILLS", result.Skills},
	}

	for _, section := range sections {
		output.WriteString(fmt.Sprintf("=== %s ===\n", section.name))
		output.WriteString(fmt.Sprintf("Score: %d/%d\n", section.metrics.Score, section.metrics.MaxScore))
		writeItemList(&output, "Feedback:", section.metrics.Feedback)
		writeItemList(&output, "Suggestions:", section.metrics.Suggestions)
		output.WriteString("\n")
	}

	writeItemList(&output, "Overall Feedback:", result.Overall.Feedback)
	writeItemList(&output, "Overall Suggestions:", result.Overall.Suggestions)

	return output.String(), nil
}

func (qtf *QualityTextFormatter) SupportedType() string {
	return "ProfileQuality"
}

// QualityMarkdownFormatter handles markdown formatting for quality scores
type QualityMarkdownFormatter struct{}

func (qmf *QualityMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ProfileQuality)
	if !ok {
		return "", fmt.Errorf("expected ProfileQuality, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Profile Quality\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/%d\n\n", result.Overall.Score, result.Overall.MaxScore))

	sections := []struct {
		name    string
		metrics types.QualityMetrics
	}{
		{"Headline", result.Headline},
		{"About", result.About},
		{"Experience", result.Experience},
		{"Skills", result.Skills},
	}

	for _, section := range sections {
		output.WriteString(fmt.Sprintf("## %s\n\n", section.name))
		output.WriteString(fmt.Sprintf("**Score:** %d/%d\n\n", section.metrics.Score, section.metrics.MaxScore))
		writeMarkdownList(&output, "Feedback", section.metrics.Feedback)
		writeMarkdownList(&output, "Suggestions", section.metrics.Suggestions)
	}

	output.WriteString("## Overall\n\n")
	writeMarkdownList(&output, "Feedback", result.Overall.Feedback)
	writeMarkdownList(&output, "Suggestions", result.Overall.Suggestions)

	return output.String(), nil
}

func (qmf *QualityMarkdownFormatter) SupportedType() string {
	return "ProfileQuality"
}

// GapAnalysisTextFormatter handles text formatting for gap analysis results
type GapAnalysisTextFormatter struct{}

func (gtf *GapAnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.GapAnalysis)
	if !ok {
		return "", fmt.Errorf("expected GapAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== GAP ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Target: %s / %s (matched role: %s)\n", result.Target.Industry, result.Target.Role, result.MatchedRole))
	output.WriteString(fmt.Sprintf("Completeness Score: %d/100\n\n", result.CompletenessScore))

	if len(result.Gaps) > 0 {
		output.WriteString("=== GAPS ===\n\n")
		for i, gap := range result.Gaps {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, strings.ToUpper(gap.Priority), gap.Description))
			output.WriteString(fmt.Sprintf("   Action: %s\n", gap.ActionRequired))
			output.WriteString(fmt.Sprintf("   Effort: %s, impact %d/10\n\n", gap.EffortLevel, gap.ImpactScore))
		}
	} else {
		output.WriteString("No gaps found.\n\n")
	}

	if len(result.QuickWins) > 0 {
		output.WriteString("=== QUICK WINS ===\n")
		for _, gap := range result.QuickWins {
			output.WriteString(fmt.Sprintf("- %s\n", gap.ActionRequired))
		}
		output.WriteString("\n")
	}

	if len(result.Roadmap) > 0 {
		output.WriteString("=== ROADMAP ===\n")
		for _, phase := range result.Roadmap {
			output.WriteString(fmt.Sprintf("%s (%s):\n", phase.Phase, phase.TimeFrame))
			for _, action := range phase.Actions {
				output.WriteString(fmt.Sprintf("- %s\n", action))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (gtf *GapAnalysisTextFormatter) SupportedType() string {
	return "GapAnalysis"
}

// GapAnalysisMarkdownFormatter renders the full perfect-profile report
type GapAnalysisMarkdownFormatter struct{}

func (gmf *GapAnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.GapAnalysis)
	if !ok {
		return "", fmt.Errorf("expected GapAnalysis, got %T", data)
	}
	return gaps.RenderReport(result), nil
}

func (gmf *GapAnalysisMarkdownFormatter) SupportedType() string {
	return "GapAnalysis"
}

// ReportTextFormatter handles text formatting for optimization reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.OptimizationReport)
	if !ok {
		return "", fmt.Errorf("expected OptimizationReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== OPTIMIZATION REPORT ===\n\n")
	output.WriteString(result.Report)
	output.WriteString("\n\n")
	output.WriteString(fmt.Sprintf("Model: %s\n", result.ModelChoice))
	if result.InputTokens > 0 || result.OutputTokens > 0 {
		output.WriteString(fmt.Sprintf("Tokens: %d in, %d out\n", result.InputTokens, result.OutputTokens))
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "OptimizationReport"
}

// ReportMarkdownFormatter handles markdown formatting for optimization reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.OptimizationReport)
	if !ok {
		return "", fmt.Errorf("expected OptimizationReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Optimization Report\n\n")
	output.WriteString(result.Report)
	output.WriteString("\n\n---\n\n")
	output.WriteString(fmt.Sprintf("**Model:** %s\n", result.ModelChoice))
	if result.InputTokens > 0 || result.OutputTokens > 0 {
		output.WriteString(fmt.Sprintf("**Tokens:** %d in, %d out\n", result.InputTokens, result.OutputTokens))
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "OptimizationReport"
}

// ChecklistTextFormatter handles text formatting for implementation checklists
type ChecklistTextFormatter struct{}

func (ctf *ChecklistTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Checklist)
	if !ok {
		return "", fmt.Errorf("expected Checklist, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== IMPLEMENTATION CHECKLIST ===\n\n")
	for i, task := range result.Tasks {
		marker := "[ ]"
		if task.Completed {
			marker = "[x]"
		}
		output.WriteString(fmt.Sprintf("%s %d. %s (%s, %s)\n", marker, i+1, task.Title, task.Priority, task.EstimatedTime))
		output.WriteString(fmt.Sprintf("    %s\n", task.Description))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Estimated total: %s\n", result.Estimate.FormattedTime))
	for priority, minutes := range result.Estimate.PriorityBreakdown {
		output.WriteString(fmt.Sprintf("- %s: %d min\n", priority, minutes))
	}

	return output.String(), nil
}

func (ctf *ChecklistTextFormatter) SupportedType() string {
	return "Checklist"
}

// ChecklistMarkdownFormatter handles markdown formatting for implementation checklists
type ChecklistMarkdownFormatter struct{}

func (cmf *ChecklistMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Checklist)
	if !ok {
		return "", fmt.Errorf("expected Checklist, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Implementation Checklist\n\n")
	for _, task := range result.Tasks {
		marker := "[ ]"
		if task.Completed {
			marker = "[x]"
		}
		output.WriteString(fmt.Sprintf("- %s **%s** (%s, %s)\n", marker, task.Title, task.Priority, task.EstimatedTime))
		output.WriteString(fmt.Sprintf("  %s\n", task.Description))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("**Estimated total:** %s\n", result.Estimate.FormattedTime))

	return output.String(), nil
}

func (cmf *ChecklistMarkdownFormatter) SupportedType() string {
	return "Checklist"
}

// DatasetStatsTextFormatter handles text formatting for dataset statistics
type DatasetStatsTextFormatter struct{}

func (dtf *DatasetStatsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(training.DatasetStats)
	if !ok {
		return "", fmt.Errorf("expected DatasetStats, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== TRAINING DATASET ===\n\n")
	output.WriteString(fmt.Sprintf("Total examples: %d\n", result.TotalExamples))
	output.WriteString(fmt.Sprintf("Positive: %d, Negative: %d, Neutral: %d\n", result.PositiveExamples, result.NegativeExamples, result.NeutralExamples))
	output.WriteString(fmt.Sprintf("Avg input length: %.0f chars, avg output length: %.0f chars\n\n", result.AvgInputLength, result.AvgOutputLength))

	writeCountMap(&output, "Sections:", result.Sections)
	writeCountMap(&output, "Industries:", result.Industries)
	writeCountMap(&output, "Roles:", result.Roles)
	writeCountMap(&output, "Models:", result.Models)

	return output.String(), nil
}

func (dtf *DatasetStatsTextFormatter) SupportedType() string {
	return "DatasetStats"
}

// UsageStatsTextFormatter handles text formatting for telemetry usage stats
type UsageStatsTextFormatter struct{}

func (utf *UsageStatsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(telemetry.UsageStats)
	if !ok {
		return "", fmt.Errorf("expected UsageStats, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== USAGE STATISTICS ===\n\n")
	output.WriteString(fmt.Sprintf("Total events: %d\n", result.TotalEvents))
	output.WriteString(fmt.Sprintf("Vision extractions: %d (%.1f%% success)\n", result.VisionExtractions, result.SuccessRate.Vision))
	output.WriteString(fmt.Sprintf("Strategy generations: %d (%.1f%% success)\n", result.StrategyGenerations, result.SuccessRate.Strategy))
	output.WriteString(fmt.Sprintf("User feedback events: %d\n\n", result.UserFeedback))

	writeCountMap(&output, "Model usage:", result.ModelUsage)
	writeCountMap(&output, "Industry usage:", result.IndustryUsage)

	return output.String(), nil
}

func (utf *UsageStatsTextFormatter) SupportedType() string {
	return "UsageStats"
}

// FineTuneJobTextFormatter handles text formatting for fine-tune job status
type FineTuneJobTextFormatter struct{}

func (ftf *FineTuneJobTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.FineTuneJob)
	if !ok {
		return "", fmt.Errorf("expected FineTuneJob, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("Job:    %s\n", result.ID))
	output.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	output.WriteString(fmt.Sprintf("Model:  %s\n", result.Model))
	if result.FineTunedModel != "" {
		output.WriteString(fmt.Sprintf("Fine-tuned model: %s\n", result.FineTunedModel))
	}
	if result.TotalEpochs > 0 {
		output.WriteString(fmt.Sprintf("Epochs: %d/%d\n", result.TrainedEpochs, result.TotalEpochs))
	}
	if result.Error != "" {
		output.WriteString(fmt.Sprintf("Error:  %s\n", result.Error))
	}

	return output.String(), nil
}

func (ftf *FineTuneJobTextFormatter) SupportedType() string {
	return "FineTuneJob"
}

// FineTuneEstimateTextFormatter handles text formatting for cost estimates
type FineTuneEstimateTextFormatter struct{}

func (fef *FineTuneEstimateTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.FineTuneEstimate)
	if !ok {
		return "", fmt.Errorf("expected FineTuneEstimate, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("Examples:         %d\n", result.NumExamples))
	output.WriteString(fmt.Sprintf("Estimated tokens: %d\n", result.EstimatedTokens))
	output.WriteString(fmt.Sprintf("Model:            %s\n", result.Model))
	output.WriteString(fmt.Sprintf("Epochs:           %d\n", result.Epochs))
	output.WriteString(fmt.Sprintf("Estimated cost:   $%.2f\n", result.EstimatedCostUSD))

	return output.String(), nil
}

func (fef *FineTuneEstimateTextFormatter) SupportedType() string {
	return "FineTuneEstimate"
}

func orPlaceholder(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

func writeItemList(output *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(label)
	output.WriteString("\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
}

func writeMarkdownList(output *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("### %s\n\n", heading))
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

func writeCountMap(output *strings.Builder, label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	output.WriteString(label)
	output.WriteString("\n")
	for key, count := range counts {
		output.WriteString(fmt.Sprintf("- %s: %d\n", key, count))
	}
	output.WriteString("\n")
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()

package formatters

import (
	"strings"
	"testing"

	"linkedopt/internal/types"
)

func sampleQuality() types.ProfileQuality {
	return types.ProfileQuality{
		Headline: types.QualityMetrics{Score: 70, MaxScore: 100, Feedback: []string{"Includes target role"}},
		About:    types.QualityMetrics{Score: 55, MaxScore: 100, Suggestions: []string{"Add quantified results"}},
		Overall:  types.QualityMetrics{Score: 62, MaxScore: 100},
	}
}

func TestFormatRouting(t *testing.T) {
	registry := NewFormatterRegistry()

	tests := []struct {
		name     string
		data     any
		format   string
		contains string
	}{
		{
			name:     "profile as json",
			data:     types.Profile{Headline: "Data Engineer"},
			format:   "json",
			contains: `"headline": "Data Engineer"`,
		},
		{
			name:     "profile as text",
			data:     types.Profile{Headline: "Data Engineer", Skills: []string{"Python", "SQL"}},
			format:   "text",
			contains: "Python, SQL",
		},
		{
			name:     "quality as text",
			data:     sampleQuality(),
			format:   "text",
			contains: "Overall Score: 62/100",
		},
		{
			name:     "quality as markdown",
			data:     sampleQuality(),
			format:   "markdown",
			contains: "**Overall Score:** 62/100",
		},
		{
			name:     "validation as text",
			data:     types.ExtractionValidation{IsValid: false, MissingSections: []string{"about"}},
			format:   "text",
			contains: "Status: incomplete",
		},
		{
			name: "report as markdown",
			data: types.OptimizationReport{
				Report:      "HEADLINE OPTIMIZATION\n1. Senior Data Engineer",
				ModelChoice: "gemini",
			},
			format:   "markdown",
			contains: "**Model:** gemini",
		},
		{
			name: "checklist as text",
			data: types.Checklist{
				Tasks:    []types.ChecklistTask{{Title: "Rewrite headline", Priority: "high", EstimatedTime: "15 minutes"}},
				Estimate: types.ChecklistEstimate{FormattedTime: "1.5 hours"},
			},
			format:   "text",
			contains: "[ ] 1. Rewrite headline",
		},
		{
			name:     "unregistered type falls back to json",
			data:     42,
			format:   "json",
			contains: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Format(tt.data, tt.format)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Format() output missing %q:\n%s", tt.contains, got)
			}
		})
	}
}

func TestFormatUnknownCombination(t *testing.T) {
	registry := NewFormatterRegistry()

	// No text formatter registered for plain ints and no text fallback.
	if _, err := registry.Format(42, "text"); err == nil {
		t.Error("Format() expected error for unregistered text type")
	}

	if _, err := registry.Format(types.Profile{}, "yaml"); err == nil {
		t.Error("Format() expected error for unknown format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	registry := NewFormatterRegistry()

	formats := registry.GetSupportedFormats()
	want := map[string]bool{"json": false, "text": false, "markdown": false}
	for _, format := range formats {
		if _, ok := want[format]; ok {
			want[format] = true
		}
	}
	for format, seen := range want {
		if !seen {
			t.Errorf("GetSupportedFormats() missing %q", format)
		}
	}
}

func TestChecklistMarksCompletedTasks(t *testing.T) {
	registry := NewFormatterRegistry()

	data := types.Checklist{
		Tasks: []types.ChecklistTask{
			{Title: "Rewrite headline", Completed: true},
			{Title: "Add skills", Completed: false},
		},
	}

	got, err := registry.Format(data, "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(got, "[x] **Rewrite headline**") {
		t.Errorf("completed task not marked:\n%s", got)
	}
	if !strings.Contains(got, "[ ] **Add skills**") {
		t.Errorf("open task not marked:\n%s", got)
	}
}

package training

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	l, err := NewLogger(filepath.Join(t.TempDir(), "dataset.jsonl"))
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return l
}

func TestLogExampleRoundTrip(t *testing.T) {
	l := newTestLogger(t)

	err := l.LogExample("profile text", "Technology", "Software Engineer", "optimized report", "gemini", FeedbackPositive, "focus on cloud")
	if err != nil {
		t.Fatalf("LogExample: %v", err)
	}

	examples, err := l.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(examples))
	}
	ex := examples[0]
	if ex.Input.ProfileData != "profile text" || ex.Input.TargetRole != "Software Engineer" {
		t.Errorf("unexpected input: %+v", ex.Input)
	}
	if ex.Output != "optimized report" {
		t.Errorf("output = %q", ex.Output)
	}
	if ex.Metadata.InputLength != len("profile text") || ex.Metadata.OutputLength != len("optimized report") {
		t.Errorf("unexpected lengths: %+v", ex.Metadata)
	}
	if ex.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestLogSectionFeedback(t *testing.T) {
	l := newTestLogger(t)

	err := l.LogSectionFeedback("headline", "old headline", "new headline", "Finance", "Financial Analyst", FeedbackNegative, "llama3_custom")
	if err != nil {
		t.Fatalf("LogSectionFeedback: %v", err)
	}

	examples, err := l.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}
	ex := examples[0]
	if ex.Type != TypeSectionOptimization {
		t.Errorf("type = %q, want %q", ex.Type, TypeSectionOptimization)
	}
	if ex.Input.SectionName != "headline" || ex.Input.CurrentText != "old headline" {
		t.Errorf("unexpected input: %+v", ex.Input)
	}
	if ex.Metadata.FeedbackType != FeedbackNegative {
		t.Errorf("feedback type = %q", ex.Metadata.FeedbackType)
	}
}

func TestExamplesSkipsMalformedLines(t *testing.T) {
	l := newTestLogger(t)
	if err := l.LogExample("in", "Technology", "CTO", "out", "gemini", "", ""); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("{not valid json\n\n")
	f.Close()
	if err := l.LogExample("in2", "Technology", "CTO", "out2", "gemini", "", ""); err != nil {
		t.Fatal(err)
	}

	examples, err := l.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}
	if len(examples) != 2 {
		t.Errorf("got %d examples, want 2", len(examples))
	}
}

func TestStats(t *testing.T) {
	l := newTestLogger(t)
	l.LogExample("a", "Technology", "Software Engineer", "bbbb", "gemini", FeedbackPositive, "")
	l.LogExample("aa", "Technology", "Data Scientist", "bb", "gemini", FeedbackNegative, "")
	l.LogExample("aaa", "Finance", "Financial Analyst", "bbb", "llama3_custom", "", "")
	l.LogSectionFeedback("about", "cur", "rec", "Technology", "Software Engineer", FeedbackPositive, "gemini")

	stats, err := l.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalExamples != 4 {
		t.Errorf("TotalExamples = %d, want 4", stats.TotalExamples)
	}
	if stats.PositiveExamples != 1 || stats.NegativeExamples != 1 || stats.NeutralExamples != 2 {
		t.Errorf("feedback counts: %+v", stats)
	}
	if stats.Sections["about"] != 1 {
		t.Errorf("sections: %v", stats.Sections)
	}
	if stats.Industries["Technology"] != 3 || stats.Industries["Finance"] != 1 {
		t.Errorf("industries: %v", stats.Industries)
	}
	if stats.Models["gemini"] != 3 || stats.Models["llama3_custom"] != 1 {
		t.Errorf("models: %v", stats.Models)
	}
	wantAvgIn := (1.0 + 2 + 3 + 3) / 4.0
	if stats.AvgInputLength != wantAvgIn {
		t.Errorf("AvgInputLength = %v, want %v", stats.AvgInputLength, wantAvgIn)
	}
}

func TestExportFiltersByQuality(t *testing.T) {
	l := newTestLogger(t)
	l.LogExample("p1", "Technology", "CTO", "o1", "gemini", FeedbackPositive, "")
	l.LogExample("p2", "Technology", "CTO", "o2", "gemini", FeedbackNegative, "")
	l.LogExample("p3", "Technology", "CTO", "o3", "gemini", "", "")

	tests := []struct {
		name       string
		minQuality string
		want       int
	}{
		{"positive only", FeedbackPositive, 1},
		{"neutral and up", FeedbackNeutral, 2},
		{"everything", FeedbackNegative, 3},
		{"unknown label acts as neutral", "bogus", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "clean.jsonl")
			n, err := l.Export(out, tt.minQuality)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if n != tt.want {
				t.Errorf("exported %d examples, want %d", n, tt.want)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Contains(string(data), "metadata") {
				t.Error("exported examples kept metadata")
			}
		})
	}
}

func TestClear(t *testing.T) {
	l := newTestLogger(t)
	l.LogExample("p", "Technology", "CTO", "o", "gemini", "", "")
	if err := l.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	examples, err := l.Examples()
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) != 0 {
		t.Errorf("got %d examples after clear", len(examples))
	}
	stats, err := l.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalExamples != 0 {
		t.Errorf("stats not reset: %+v", stats)
	}
}

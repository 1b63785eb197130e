package telemetry

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	return NewRecorder(filepath.Join(t.TempDir(), "telemetry.jsonl"), nil)
}

func TestRecordAssignsIdentity(t *testing.T) {
	r := newTestRecorder(t)
	r.RecordVisionExtraction(3, 2*time.Second, true, "")

	events := r.Recent(0)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.ID == "" {
		t.Error("event ID not assigned")
	}
	if ev.Timestamp.IsZero() {
		t.Error("timestamp not assigned")
	}
	if ev.EventType != EventVisionExtraction || ev.NumImages != 3 || ev.ExtractionTime != 2.0 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestRingDropsOldestBeyondCapacity(t *testing.T) {
	r := newTestRecorder(t)
	r.path = "" // skip file writes for speed

	for i := 0; i < MaxEvents+1; i++ {
		r.RecordUserFeedback("headline", "positive", "gemini", "")
	}
	r.RecordVisionExtraction(1, time.Second, true, "")

	events := r.Recent(0)
	if len(events) != MaxEvents {
		t.Fatalf("got %d events, want %d", len(events), MaxEvents)
	}
	if events[len(events)-1].EventType != EventVisionExtraction {
		t.Error("newest event missing from ring")
	}
	if events[0].EventType != EventUserFeedback {
		t.Errorf("unexpected oldest event: %+v", events[0])
	}
}

func TestRecentLimit(t *testing.T) {
	r := newTestRecorder(t)
	r.path = ""
	for i := 0; i < 10; i++ {
		r.RecordUserFeedback("about", "negative", "llama3_custom", "")
	}

	if got := len(r.Recent(3)); got != 3 {
		t.Errorf("Recent(3) returned %d events", got)
	}
	if got := len(r.Recent(100)); got != 10 {
		t.Errorf("Recent(100) returned %d events", got)
	}
}

func TestPersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.jsonl")

	r := NewRecorder(path, nil)
	r.RecordStrategyGeneration("gemini", "Technology", "Software Engineer", 1200, 800, 5*time.Second, true, "")
	r.RecordVisionExtraction(2, time.Second, false, "decode failed")

	reloaded := NewRecorder(path, nil)
	events := reloaded.Recent(0)
	if len(events) != 2 {
		t.Fatalf("got %d events after reload, want 2", len(events))
	}
	if events[0].EventType != EventStrategyGeneration || events[0].InputTokens != 1200 {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Success || events[1].ErrorMessage != "decode failed" {
		t.Errorf("unexpected second event: %+v", events[1])
	}

	status := reloaded.Status()
	if status.EventCount != 2 || !status.FileExists {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	r := NewRecorder(filepath.Join(t.TempDir(), "missing.jsonl"), nil)
	if got := len(r.Recent(0)); got != 0 {
		t.Errorf("got %d events, want 0", got)
	}
}

func TestUsageStats(t *testing.T) {
	r := newTestRecorder(t)
	r.path = ""

	r.RecordVisionExtraction(1, time.Second, true, "")
	r.RecordVisionExtraction(1, time.Second, false, "bad image")
	r.RecordStrategyGeneration("gemini", "Technology", "Software Engineer", 10, 20, time.Second, true, "")
	r.RecordStrategyGeneration("llama3_custom", "Finance", "Financial Analyst", 10, 20, time.Second, true, "")
	r.RecordStrategyGeneration("gemini", "Technology", "Data Scientist", 10, 20, time.Second, false, "timeout")
	r.RecordUserFeedback("headline", "positive", "gemini", "")

	stats := r.UsageStats()
	if stats.TotalEvents != 6 {
		t.Errorf("TotalEvents = %d, want 6", stats.TotalEvents)
	}
	if stats.VisionExtractions != 2 || stats.StrategyGenerations != 3 || stats.UserFeedback != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.ModelUsage["gemini"] != 2 || stats.ModelUsage["llama3_custom"] != 1 {
		t.Errorf("unexpected model usage: %v", stats.ModelUsage)
	}
	if stats.IndustryUsage["Technology"] != 2 || stats.IndustryUsage["Finance"] != 1 {
		t.Errorf("unexpected industry usage: %v", stats.IndustryUsage)
	}
	if stats.SuccessRate.Vision != 0.5 {
		t.Errorf("vision success rate = %v, want 0.5", stats.SuccessRate.Vision)
	}
	if want := 2.0 / 3.0; stats.SuccessRate.Strategy != want {
		t.Errorf("strategy success rate = %v, want %v", stats.SuccessRate.Strategy, want)
	}
}

func TestUsageStatsEmpty(t *testing.T) {
	r := newTestRecorder(t)
	stats := r.UsageStats()
	if stats.TotalEvents != 0 || stats.SuccessRate.Vision != 0 || stats.SuccessRate.Strategy != 0 {
		t.Errorf("unexpected stats for empty ring: %+v", stats)
	}
}

// Package telemetry records pipeline events to a bounded in-memory
// ring backed by a JSON lines file. Recording never fails the calling
// operation; persistence problems are logged and swallowed.
package telemetry

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"linkedopt/internal/errors"
)

// MaxEvents bounds the ring; the oldest events are dropped first.
const MaxEvents = 1000

// Event types recorded by the pipeline.
const (
	EventVisionExtraction   = "vision_extraction"
	EventStrategyGeneration = "strategy_generation"
	EventUserFeedback       = "user_feedback"
)

// Event is one telemetry record. Fields are populated per event type.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"eventType"`

	// vision_extraction
	NumImages      int     `json:"numImages,omitempty"`
	ExtractionTime float64 `json:"extractionTime,omitempty"`

	// strategy_generation
	ModelChoice    string  `json:"modelChoice,omitempty"`
	TargetIndustry string  `json:"targetIndustry,omitempty"`
	TargetRole     string  `json:"targetRole,omitempty"`
	InputTokens    int     `json:"inputTokens,omitempty"`
	OutputTokens   int     `json:"outputTokens,omitempty"`
	GenerationTime float64 `json:"generationTime,omitempty"`

	// user_feedback
	SectionName       string `json:"sectionName,omitempty"`
	FeedbackType      string `json:"feedbackType,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`

	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Recorder appends events to the ring and persists it after every
// write. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	path   string
	logger *errors.Logger
	now    func() time.Time
}

// NewRecorder loads any previously persisted events from path. A load
// failure starts an empty ring rather than returning an error.
func NewRecorder(path string, logger *errors.Logger) *Recorder {
	if logger == nil {
		logger = errors.NewLogger(slog.LevelInfo)
	}
	r := &Recorder{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
	r.load()
	return r
}

func (r *Recorder) load() {
	f, err := os.Open(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("could not load telemetry events", "path", r.path, "error", err)
		}
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			r.logger.Warn("skipping malformed telemetry line", "error", err)
			continue
		}
		r.events = append(r.events, ev)
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("could not read telemetry events", "path", r.path, "error", err)
	}
	if len(r.events) > MaxEvents {
		r.events = r.events[len(r.events)-MaxEvents:]
	}
}

// record appends an event, trims the ring and rewrites the file.
func (r *Recorder) record(ev Event) {
	ev.ID = uuid.NewString()
	ev.Timestamp = r.now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev)
	if len(r.events) > MaxEvents {
		r.events = r.events[len(r.events)-MaxEvents:]
	}
	r.persist()
}

func (r *Recorder) persist() {
	if r.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		r.logger.Warn("could not create telemetry directory", "error", err)
		return
	}

	tmp := r.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		r.logger.Warn("could not persist telemetry events", "error", err)
		return
	}
	enc := json.NewEncoder(f)
	for _, ev := range r.events {
		if err := enc.Encode(ev); err != nil {
			r.logger.Warn("could not encode telemetry event", "error", err)
			f.Close()
			os.Remove(tmp)
			return
		}
	}
	if err := f.Close(); err != nil {
		r.logger.Warn("could not persist telemetry events", "error", err)
		os.Remove(tmp)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.logger.Warn("could not persist telemetry events", "error", err)
	}
}

// RecordVisionExtraction logs one extraction attempt.
func (r *Recorder) RecordVisionExtraction(numImages int, elapsed time.Duration, success bool, errMessage string) {
	r.record(Event{
		EventType:      EventVisionExtraction,
		NumImages:      numImages,
		ExtractionTime: elapsed.Seconds(),
		Success:        success,
		ErrorMessage:   errMessage,
	})
}

// RecordStrategyGeneration logs one report generation attempt.
func (r *Recorder) RecordStrategyGeneration(modelChoice, industry, role string, inputTokens, outputTokens int, elapsed time.Duration, success bool, errMessage string) {
	r.record(Event{
		EventType:      EventStrategyGeneration,
		ModelChoice:    modelChoice,
		TargetIndustry: industry,
		TargetRole:     role,
		InputTokens:    inputTokens,
		OutputTokens:   outputTokens,
		GenerationTime: elapsed.Seconds(),
		Success:        success,
		ErrorMessage:   errMessage,
	})
}

// RecordUserFeedback logs a thumbs up or down on generated content.
func (r *Recorder) RecordUserFeedback(sectionName, feedbackType, modelChoice, additionalContext string) {
	r.record(Event{
		EventType:         EventUserFeedback,
		SectionName:       sectionName,
		FeedbackType:      feedbackType,
		ModelChoice:       modelChoice,
		AdditionalContext: additionalContext,
		Success:           true,
	})
}

// Recent returns up to limit events, newest last.
func (r *Recorder) Recent(limit int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]Event, limit)
	copy(out, r.events[len(r.events)-limit:])
	return out
}

// Status describes the recorder for diagnostics endpoints.
type Status struct {
	EventCount int    `json:"eventCount"`
	Path       string `json:"path"`
	FileExists bool   `json:"fileExists"`
}

func (r *Recorder) Status() Status {
	r.mu.Lock()
	count := len(r.events)
	r.mu.Unlock()

	_, err := os.Stat(r.path)
	return Status{
		EventCount: count,
		Path:       r.path,
		FileExists: err == nil,
	}
}

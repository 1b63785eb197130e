// Package training collects optimization runs and user feedback as a
// JSON lines dataset used for fine-tuning custom models.
package training

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"linkedopt/internal/errors"
)

// Feedback scores attached to logged examples.
const (
	FeedbackPositive = "positive"
	FeedbackNegative = "negative"
	FeedbackNeutral  = "neutral"
)

// TypeSectionOptimization marks examples produced by per-section
// feedback rather than full report runs.
const TypeSectionOptimization = "section_optimization"

// ExampleInput is the prompt side of a training example. Full-report
// examples carry profile data; section examples carry the section
// name and its current text.
type ExampleInput struct {
	ProfileData       string `json:"profile_data,omitempty"`
	SectionName       string `json:"section_name,omitempty"`
	CurrentText       string `json:"current_text,omitempty"`
	TargetIndustry    string `json:"target_industry"`
	TargetRole        string `json:"target_role"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// ExampleMetadata describes how the output was produced and rated.
type ExampleMetadata struct {
	ModelChoice   string `json:"model_choice"`
	FeedbackScore string `json:"feedback_score,omitempty"`
	FeedbackType  string `json:"feedback_type,omitempty"`
	InputLength   int    `json:"input_length"`
	OutputLength  int    `json:"output_length"`
}

// Example is one line of the training dataset.
type Example struct {
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type,omitempty"`
	Input     ExampleInput    `json:"input"`
	Output    string          `json:"output"`
	Metadata  ExampleMetadata `json:"metadata"`
}

// Logger appends examples to the dataset file.
type Logger struct {
	path string
	now  func() time.Time
}

// NewLogger creates the dataset file (and its directory) if missing.
func NewLogger(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeDatasetFailed, "could not create dataset directory", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeDatasetFailed, "could not open dataset file", err)
	}
	f.Close()
	return &Logger{path: path, now: time.Now}, nil
}

// Path returns the dataset file location.
func (l *Logger) Path() string {
	return l.path
}

func (l *Logger) append(example Example) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeDatasetFailed, "could not open dataset file", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(example); err != nil {
		return errors.NewIOError(errors.ErrCodeDatasetFailed, "could not write training example", err)
	}
	return nil
}

// LogExample records a full optimization run.
func (l *Logger) LogExample(inputText, industry, role, outputText, modelChoice, feedbackScore, additionalContext string) error {
	return l.append(Example{
		Timestamp: l.now().UTC(),
		Input: ExampleInput{
			ProfileData:       inputText,
			TargetIndustry:    industry,
			TargetRole:        role,
			AdditionalContext: additionalContext,
		},
		Output: outputText,
		Metadata: ExampleMetadata{
			ModelChoice:   modelChoice,
			FeedbackScore: feedbackScore,
			InputLength:   len(inputText),
			OutputLength:  len(outputText),
		},
	})
}

// LogSectionFeedback records user feedback on one rewritten section.
func (l *Logger) LogSectionFeedback(sectionName, currentText, recommendedText, industry, role, feedbackType, modelChoice string) error {
	return l.append(Example{
		Timestamp: l.now().UTC(),
		Type:      TypeSectionOptimization,
		Input: ExampleInput{
			SectionName:    sectionName,
			CurrentText:    currentText,
			TargetIndustry: industry,
			TargetRole:     role,
		},
		Output: recommendedText,
		Metadata: ExampleMetadata{
			ModelChoice:  modelChoice,
			FeedbackType: feedbackType,
			InputLength:  len(currentText),
			OutputLength: len(recommendedText),
		},
	})
}

// Examples reads the full dataset, skipping malformed lines.
func (l *Logger) Examples() ([]Example, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOError(errors.ErrCodeDatasetFailed, "could not read dataset file", err)
	}
	defer f.Close()

	var examples []Example
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ex Example
		if err := json.Unmarshal(line, &ex); err != nil {
			continue
		}
		examples = append(examples, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeDatasetFailed, "could not read dataset file", err)
	}
	return examples, nil
}

// Clear truncates the dataset file.
func (l *Logger) Clear() error {
	if err := os.Truncate(l.path, 0); err != nil {
		return errors.NewIOError(errors.ErrCodeDatasetFailed, "could not clear dataset", err)
	}
	return nil
}

package training

import (
	"encoding/json"
	"os"

	"linkedopt/internal/errors"
)

// DatasetStats summarizes the collected examples.
type DatasetStats struct {
	TotalExamples    int            `json:"totalExamples"`
	PositiveExamples int            `json:"positiveExamples"`
	NegativeExamples int            `json:"negativeExamples"`
	NeutralExamples  int            `json:"neutralExamples"`
	Sections         map[string]int `json:"sections"`
	Industries       map[string]int `json:"industries"`
	Roles            map[string]int `json:"roles"`
	Models           map[string]int `json:"models"`
	AvgInputLength   float64        `json:"avgInputLength"`
	AvgOutputLength  float64        `json:"avgOutputLength"`
}

// Stats tallies feedback, section, industry, role and model
// distributions plus average lengths over the whole dataset.
func (l *Logger) Stats() (DatasetStats, error) {
	examples, err := l.Examples()
	if err != nil {
		return DatasetStats{}, err
	}

	stats := DatasetStats{
		TotalExamples: len(examples),
		Sections:      make(map[string]int),
		Industries:    make(map[string]int),
		Roles:         make(map[string]int),
		Models:        make(map[string]int),
	}

	var totalInput, totalOutput int
	for _, ex := range examples {
		switch ex.Metadata.FeedbackScore {
		case FeedbackPositive:
			stats.PositiveExamples++
		case FeedbackNegative:
			stats.NegativeExamples++
		default:
			stats.NeutralExamples++
		}

		if ex.Type == TypeSectionOptimization {
			section := ex.Input.SectionName
			if section == "" {
				section = "unknown"
			}
			stats.Sections[section]++
		}

		industry := ex.Input.TargetIndustry
		if industry == "" {
			industry = "unknown"
		}
		stats.Industries[industry]++

		role := ex.Input.TargetRole
		if role == "" {
			role = "unknown"
		}
		stats.Roles[role]++

		model := ex.Metadata.ModelChoice
		if model == "" {
			model = "unknown"
		}
		stats.Models[model]++

		totalInput += ex.Metadata.InputLength
		totalOutput += ex.Metadata.OutputLength
	}

	if len(examples) > 0 {
		stats.AvgInputLength = float64(totalInput) / float64(len(examples))
		stats.AvgOutputLength = float64(totalOutput) / float64(len(examples))
	}
	return stats, nil
}

// cleanExample is the stripped-down record written by Export.
type cleanExample struct {
	Input  ExampleInput `json:"input"`
	Output string       `json:"output"`
}

var qualityOrder = map[string]int{
	FeedbackPositive: 3,
	FeedbackNeutral:  2,
	FeedbackNegative: 1,
}

// Export writes examples rated at or above minQuality to outputPath,
// keeping only the input and output fields. Unknown quality labels
// are treated as neutral. Returns the number of exported examples.
func (l *Logger) Export(outputPath, minQuality string) (int, error) {
	examples, err := l.Examples()
	if err != nil {
		return 0, err
	}

	minScore, ok := qualityOrder[minQuality]
	if !ok {
		minScore = qualityOrder[FeedbackNeutral]
	}

	var clean []cleanExample
	for _, ex := range examples {
		score, ok := qualityOrder[ex.Metadata.FeedbackScore]
		if !ok {
			score = qualityOrder[FeedbackNeutral]
		}
		if score >= minScore {
			clean = append(clean, cleanExample{Input: ex.Input, Output: ex.Output})
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, errors.NewIOError(errors.ErrCodeDatasetFailed, "could not create export file", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, ex := range clean {
		if err := enc.Encode(ex); err != nil {
			return 0, errors.NewIOError(errors.ErrCodeDatasetFailed, "could not write export file", err)
		}
	}
	return len(clean), nil
}

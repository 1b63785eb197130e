// Package session carries the pipeline state for one user interaction.
// A Session is created per request flow and passed explicitly to every
// handler that needs it; nothing in this package is ambient or global.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"linkedopt/internal/errors"
	"linkedopt/internal/types"
)

// Message roles for the follow-up history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one follow-up exchange entry.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds everything produced so far for one profile: the
// extracted content, scores, gap analysis, generated report and the
// implementation checklist, plus the follow-up history used when
// content is regenerated. Pointer fields are nil until the pipeline
// stage that produces them has run.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Profile     *types.Profile              `json:"profile,omitempty"`
	Extraction  *types.ExtractionValidation `json:"extraction,omitempty"`
	Quality     *types.ProfileQuality       `json:"quality,omitempty"`
	Target      *types.Target               `json:"target,omitempty"`
	ModelChoice string                      `json:"modelChoice,omitempty"`
	GapAnalysis *types.GapAnalysis          `json:"gapAnalysis,omitempty"`
	Report      *types.OptimizationReport   `json:"report,omitempty"`
	Validation  *types.ContentValidation    `json:"validation,omitempty"`
	Checklist   *types.Checklist            `json:"checklist,omitempty"`
	History     []Message                   `json:"history,omitempty"`
}

// New returns an empty session with a fresh ID.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// SetProfile stores the extraction result and clears every downstream
// stage, since scores and reports computed for a previous profile no
// longer apply.
func (s *Session) SetProfile(profile types.Profile, validation types.ExtractionValidation) {
	s.Profile = &profile
	s.Extraction = &validation
	s.Quality = nil
	s.GapAnalysis = nil
	s.Report = nil
	s.Validation = nil
	s.Checklist = nil
	s.History = nil
	s.touch()
}

// SetQuality stores the heuristic section scores.
func (s *Session) SetQuality(quality types.ProfileQuality) {
	s.Quality = &quality
	s.touch()
}

// SetTarget records the industry/role the user is optimizing for and
// the model they picked.
func (s *Session) SetTarget(target types.Target, modelChoice string) {
	s.Target = &target
	s.ModelChoice = modelChoice
	s.touch()
}

// SetGapAnalysis stores the benchmark comparison result.
func (s *Session) SetGapAnalysis(analysis types.GapAnalysis) {
	s.GapAnalysis = &analysis
	s.touch()
}

// SetReport stores the generated report together with its post-hoc
// content validation.
func (s *Session) SetReport(report types.OptimizationReport, validation types.ContentValidation) {
	s.Report = &report
	s.Validation = &validation
	s.touch()
}

// SetChecklist stores the personalized implementation checklist.
func (s *Session) SetChecklist(checklist types.Checklist) {
	s.Checklist = &checklist
	s.touch()
}

// Append records one follow-up history entry.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	s.touch()
}

// LastFollowUp returns the most recent user message, or "" when the
// user has not asked for any revision yet. Regeneration passes this as
// the additional context for the next report.
func (s *Session) LastFollowUp() string {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleUser {
			return s.History[i].Content
		}
	}
	return ""
}

// ToggleTask flips the completion state of one checklist task and
// returns the new state.
func (s *Session) ToggleTask(taskID string) (bool, error) {
	if s.Checklist == nil {
		return false, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"session has no checklist", nil)
	}
	for i := range s.Checklist.Tasks {
		if s.Checklist.Tasks[i].ID == taskID {
			s.Checklist.Tasks[i].Completed = !s.Checklist.Tasks[i].Completed
			s.touch()
			return s.Checklist.Tasks[i].Completed, nil
		}
	}
	return false, errors.NewValidationError(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("unknown checklist task %q", taskID), nil)
}

// Progress reports completed and total checklist tasks.
func (s *Session) Progress() (completed, total int) {
	if s.Checklist == nil {
		return 0, 0
	}
	for _, task := range s.Checklist.Tasks {
		if task.Completed {
			completed++
		}
	}
	return completed, len(s.Checklist.Tasks)
}

// HasProfile reports whether extraction has run. Downstream handlers
// use this to reject score/gap/optimize calls on an empty session.
func (s *Session) HasProfile() bool {
	return s.Profile != nil
}

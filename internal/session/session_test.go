package session

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"linkedopt/internal/errors"
	"linkedopt/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelDebug)

func sampleChecklist() types.Checklist {
	return types.Checklist{
		Tasks: []types.ChecklistTask{
			{ID: "headline-1", Title: "Rewrite headline", Priority: types.PriorityHigh, Section: "headline"},
			{ID: "about-1", Title: "Add an about hook", Priority: types.PriorityMedium, Section: "about"},
			{ID: "skills-1", Title: "Add missing skills", Priority: types.PriorityLow, Section: "skills"},
		},
		Estimate: types.ChecklistEstimate{TotalMinutes: 75},
	}
}

func TestNewSession(t *testing.T) {
	sess := New()

	if sess.ID == "" {
		t.Error("expected a generated session ID")
	}
	if sess.CreatedAt.IsZero() || sess.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if sess.HasProfile() {
		t.Error("new session should not report a profile")
	}
	if got := sess.LastFollowUp(); got != "" {
		t.Errorf("expected empty follow-up, got %q", got)
	}
}

func TestSetProfileClearsDownstreamState(t *testing.T) {
	sess := New()
	sess.SetQuality(types.ProfileQuality{})
	sess.SetGapAnalysis(types.GapAnalysis{})
	sess.SetReport(types.OptimizationReport{Report: "old"}, types.ContentValidation{Score: 80})
	sess.SetChecklist(sampleChecklist())
	sess.Append(RoleUser, "make it shorter")

	sess.SetProfile(types.Profile{Headline: "Platform Engineer"}, types.ExtractionValidation{IsValid: true})

	if !sess.HasProfile() {
		t.Fatal("expected profile to be set")
	}
	if sess.Profile.Headline != "Platform Engineer" {
		t.Errorf("unexpected headline %q", sess.Profile.Headline)
	}
	if sess.Quality != nil || sess.GapAnalysis != nil || sess.Report != nil {
		t.Error("expected scores and report to be cleared on re-extraction")
	}
	if sess.Checklist != nil || len(sess.History) != 0 {
		t.Error("expected checklist and history to be cleared on re-extraction")
	}
}

func TestToggleTask(t *testing.T) {
	sess := New()
	sess.SetChecklist(sampleChecklist())

	done, err := sess.ToggleTask("about-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Error("expected task to toggle on")
	}

	done, err = sess.ToggleTask("about-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		t.Error("expected task to toggle back off")
	}
}

func TestToggleTaskErrors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Session)
		taskID  string
	}{
		{
			name:    "no checklist",
			prepare: func(*Session) {},
			taskID:  "headline-1",
		},
		{
			name:    "unknown task",
			prepare: func(s *Session) { s.SetChecklist(sampleChecklist()) },
			taskID:  "nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := New()
			tt.prepare(sess)

			_, err := sess.ToggleTask(tt.taskID)
			if err == nil {
				t.Fatal("expected an error")
			}
			var appErr *errors.AppError
			if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeInvalidRequest {
				t.Errorf("expected %s, got %v", errors.ErrCodeInvalidRequest, err)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	sess := New()

	completed, total := sess.Progress()
	if completed != 0 || total != 0 {
		t.Errorf("expected 0/0 without a checklist, got %d/%d", completed, total)
	}

	sess.SetChecklist(sampleChecklist())
	if _, err := sess.ToggleTask("headline-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sess.ToggleTask("skills-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	completed, total = sess.Progress()
	if completed != 2 || total != 3 {
		t.Errorf("expected 2/3, got %d/%d", completed, total)
	}
}

func TestLastFollowUp(t *testing.T) {
	sess := New()
	sess.Append(RoleUser, "emphasize leadership")
	sess.Append(RoleAssistant, "regenerated report")
	sess.Append(RoleUser, "make the about section shorter")
	sess.Append(RoleAssistant, "regenerated report")

	if got := sess.LastFollowUp(); got != "make the about section shorter" {
		t.Errorf("expected last user message, got %q", got)
	}
	if len(sess.History) != 4 {
		t.Errorf("expected 4 history entries, got %d", len(sess.History))
	}
}

func TestStoreSaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testLogger)

	sess := New()
	sess.SetProfile(types.Profile{
		Headline: "Data Engineer",
		Skills:   []string{"Python", "Spark"},
	}, types.ExtractionValidation{IsValid: true})
	sess.SetTarget(types.Target{Industry: "tech", Role: "Data Engineer"}, "gemini")
	sess.SetChecklist(sampleChecklist())
	if _, err := sess.ToggleTask("about-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := store.Save(sess)
	if err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("expected save under %s, got %s", dir, path)
	}

	loaded, err := store.Load(sess.ID)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.ID != sess.ID {
		t.Errorf("expected ID %s, got %s", sess.ID, loaded.ID)
	}
	if loaded.Profile == nil || loaded.Profile.Headline != "Data Engineer" {
		t.Error("profile did not survive the round trip")
	}
	if loaded.ModelChoice != "gemini" {
		t.Errorf("expected model choice gemini, got %q", loaded.ModelChoice)
	}

	completed, total := loaded.Progress()
	if completed != 1 || total != 3 {
		t.Errorf("expected progress 1/3, got %d/%d", completed, total)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir(), testLogger)

	_, err := store.Load("does-not-exist")
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeFileNotFound {
		t.Errorf("expected %s, got %v", errors.ErrCodeFileNotFound, err)
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testLogger)
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load("bad")
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeInvalidFormat {
		t.Errorf("expected %s, got %v", errors.ErrCodeInvalidFormat, err)
	}
}

func TestStoreListAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testLogger)

	ids, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty listing, got %v", ids)
	}

	first := New()
	second := New()
	for _, sess := range []*Session{first, second} {
		if _, err := store.Save(sess); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}
	}

	ids, err = store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 sessions, got %v", ids)
	}

	if err := store.Delete(first.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := store.Delete(first.ID); err != nil {
		t.Errorf("deleting twice should not error, got %v", err)
	}

	ids, err = store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != second.ID {
		t.Errorf("expected only %s, got %v", second.ID, ids)
	}
}

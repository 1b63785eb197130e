package ai

import (
	stderrors "errors"
	"testing"

	"linkedopt/internal/errors"
)

const validProfileJSON = `{
	"headline": "Senior Software Engineer",
	"about": "Builds distributed systems.",
	"experience": [
		{"title": "Engineer", "company": "Acme", "dates": "2020 - Present", "description": "Platform work."}
	],
	"skills": ["Go", "Kubernetes"]
}`

func TestParseProfileReply(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		wantHeadline string
		wantSkills   int
		wantErr      bool
	}{
		{
			name:         "valid json",
			reply:        validProfileJSON,
			wantHeadline: "Senior Software Engineer",
			wantSkills:   2,
		},
		{
			name:         "json code fence",
			reply:        "```json\n" + validProfileJSON + "\n```",
			wantHeadline: "Senior Software Engineer",
			wantSkills:   2,
		},
		{
			name:         "bare code fence",
			reply:        "```\n" + validProfileJSON + "\n```",
			wantHeadline: "Senior Software Engineer",
			wantSkills:   2,
		},
		{
			name:         "surrounded by prose",
			reply:        "Here is the extracted profile:\n" + validProfileJSON + "\nLet me know if you need anything else.",
			wantHeadline: "Senior Software Engineer",
			wantSkills:   2,
		},
		{
			name:         "trailing commas",
			reply:        `{"headline": "Engineer", "about": "Text.", "experience": [], "skills": ["Go",],}`,
			wantHeadline: "Engineer",
			wantSkills:   1,
		},
		{
			name:         "braces inside string values",
			reply:        `Sure: {"headline": "Engineer {Platform}", "about": "Uses {} a lot", "experience": [], "skills": []}`,
			wantHeadline: "Engineer {Platform}",
		},
		{
			name:         "salvage headline and about only",
			reply:        `{"headline": "Engineer", "about": "Text.", "experience": [{"title": broken`,
			wantHeadline: "Engineer",
			wantSkills:   0,
		},
		{
			name:    "no json at all",
			reply:   "I could not read the screenshots, please upload clearer images.",
			wantErr: true,
		},
		{
			name:    "empty reply",
			reply:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := ParseProfileReply(tt.reply)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				var appErr *errors.AppError
				if !stderrors.As(err, &appErr) {
					t.Fatalf("Expected AppError, got %v", err)
				}
				if appErr.Code != errors.ErrCodeMalformedReply {
					t.Errorf("Expected error code %s, got %s", errors.ErrCodeMalformedReply, appErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseProfileReply failed: %v", err)
			}
			if profile.Headline != tt.wantHeadline {
				t.Errorf("Expected headline '%s', got '%s'", tt.wantHeadline, profile.Headline)
			}
			if len(profile.Skills) != tt.wantSkills {
				t.Errorf("Expected %d skills, got %d", tt.wantSkills, len(profile.Skills))
			}
		})
	}
}

func TestParseProfileReplySalvageLeavesStructuredSectionsEmpty(t *testing.T) {
	profile, err := ParseProfileReply(`{"headline": "Engineer", "about": "Text.", "experience": [{"title": broken`)
	if err != nil {
		t.Fatalf("ParseProfileReply failed: %v", err)
	}
	if len(profile.Experience) != 0 {
		t.Errorf("Salvage should not invent experience entries, got %d", len(profile.Experience))
	}
	if len(profile.Skills) != 0 {
		t.Errorf("Salvage should not invent skills, got %d", len(profile.Skills))
	}
}

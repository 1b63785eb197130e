package scoring

import (
	"strings"
	"testing"

	"linkedopt/internal/types"
)

func TestValidateSection(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		contentType string
		wantValid   bool
		wantWarning string
	}{
		{
			name:        "headline below minimum",
			content:     "Engineer",
			contentType: "headline",
			wantValid:   false,
			wantWarning: "Too short - minimum 60 characters",
		},
		{
			name:        "about over maximum warns but stays valid",
			content:     strings.Repeat("led delivery of measurable results ", 20),
			contentType: "about",
			wantValid:   true,
			wantWarning: "Quite long - consider reducing to 500 characters",
		},
		{
			name:        "passive language flagged",
			content:     "Experienced developer looking for the next role, led several launches and achieved steady growth results",
			contentType: "experience",
			wantValid:   true,
			wantWarning: "Avoid passive language like 'looking for'",
		},
		{
			name:        "unknown type skips limits",
			content:     "ok",
			contentType: "summary",
			wantValid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSection(tt.content, tt.contentType)
			if got.IsValid != tt.wantValid {
				t.Errorf("ValidateSection() valid = %v, want %v", got.IsValid, tt.wantValid)
			}
			if tt.wantWarning != "" {
				found := false
				for _, w := range got.Warnings {
					if w == tt.wantWarning {
						found = true
					}
				}
				if !found {
					t.Errorf("ValidateSection() warnings = %v, want to contain %q", got.Warnings, tt.wantWarning)
				}
			}
		})
	}
}

func TestValidateEmptyContent(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate(GeneratedContent{}, types.Target{Industry: "Technology", Role: "Software Engineer"})

	if result.IsHighQuality {
		t.Error("empty content must not be high quality")
	}
	found := false
	for _, f := range result.Feedback {
		if strings.Contains(f, "Missing required sections") {
			found = true
		}
	}
	if !found {
		t.Errorf("feedback = %v, want missing-sections entry", result.Feedback)
	}
}

func TestValidateStrongContent(t *testing.T) {
	validator := NewValidator()

	desc := "- Led migration to AWS cloud computing, cutting costs by 35% and $400K over 2 years\n" +
		"- Managed a team of 8 people delivering microservices on Kubernetes\n" +
		"- Improved API performance by 60% across 12 projects"

	about := strings.Repeat("I build Python services on AWS with Docker and Kubernetes, applying Agile and DevOps practice. ", 4) +
		"Increased reliability by 45%, saved $1M over 3 years, and mentored 6 people."

	content := GeneratedContent{
		Headline: "Software Engineer | AWS & Kubernetes | Cut infrastructure costs 35%",
		About:    about,
		Experience: []types.ExperienceEntry{
			{Title: "Senior Engineer", Company: "Acme", Description: desc},
			{Title: "Engineer", Company: "Beta", Description: desc},
			{Title: "Engineer", Company: "Gamma", Description: desc},
		},
		Skills: []string{
			"Python", "JavaScript", "React", "Node.js", "AWS", "Docker",
			"Kubernetes", "Leadership", "Communication", "Agile", "SQL", "Terraform",
		},
	}

	result := validator.Validate(content, types.Target{Industry: "Technology", Role: "Software Engineer"})

	if !result.IsHighQuality {
		t.Errorf("score = %d, want >= %d (feedback: %v)", result.Score, HighQualityThreshold, result.Feedback)
	}
	if len(result.Suggestions) == 0 {
		t.Error("suggestions must never be empty")
	}
}

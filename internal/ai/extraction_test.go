package ai

import (
	"strings"
	"testing"

	"linkedopt/internal/types"
)

func TestValidateExtraction(t *testing.T) {
	tests := []struct {
		name         string
		profile      types.Profile
		wantValid    bool
		wantMissing  []string
		wantWarnings []string
	}{
		{
			name: "complete profile",
			profile: types.Profile{
				Headline: "Engineer",
				About:    "About text.",
				Experience: []types.ExperienceEntry{
					{Title: "Engineer", Company: "Acme"},
				},
				Skills: []string{"Go"},
			},
			wantValid: true,
		},
		{
			name:        "empty profile",
			profile:     types.Profile{},
			wantValid:   false,
			wantMissing: []string{"headline", "about", "experience", "skills"},
			wantWarnings: []string{
				"No headline found",
				"No about section found",
				"No experience entries found",
				"No skills found",
			},
		},
		{
			name: "whitespace counts as missing",
			profile: types.Profile{
				Headline: "   ",
				About:    "About text.",
				Experience: []types.ExperienceEntry{
					{Title: "Engineer", Company: "Acme"},
				},
				Skills: []string{"Go"},
			},
			wantValid:    false,
			wantMissing:  []string{"headline"},
			wantWarnings: []string{"No headline found"},
		},
		{
			name: "incomplete experience entries",
			profile: types.Profile{
				Headline: "Engineer",
				About:    "About text.",
				Experience: []types.ExperienceEntry{
					{Title: "Engineer"},
					{Title: "Developer", Company: "Acme"},
					{Company: "Initech"},
				},
				Skills: []string{"Go"},
			},
			wantValid:    true,
			wantWarnings: []string{"Incomplete experience entries: Experience 1, Experience 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validation := ValidateExtraction(tt.profile)

			if validation.IsValid != tt.wantValid {
				t.Errorf("Expected IsValid=%v, got %v", tt.wantValid, validation.IsValid)
			}
			if len(validation.MissingSections) != len(tt.wantMissing) {
				t.Errorf("Expected missing sections %v, got %v", tt.wantMissing, validation.MissingSections)
			}
			for i, want := range tt.wantMissing {
				if i < len(validation.MissingSections) && validation.MissingSections[i] != want {
					t.Errorf("Expected missing section '%s' at %d, got '%s'", want, i, validation.MissingSections[i])
				}
			}
			for _, want := range tt.wantWarnings {
				found := false
				for _, warning := range validation.Warnings {
					if strings.Contains(warning, want) {
						found = true
					}
				}
				if !found {
					t.Errorf("Expected warning containing '%s', got %v", want, validation.Warnings)
				}
			}
		})
	}
}

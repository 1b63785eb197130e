package ai

import (
	"fmt"
	"strings"

	"linkedopt/internal/types"
)

// ValidateExtraction checks an extracted profile for missing or incomplete
// sections. The result is advisory: a profile with warnings is still usable
// for scoring and optimization.
func ValidateExtraction(profile types.Profile) types.ExtractionValidation {
	validation := types.ExtractionValidation{
		IsValid:         true,
		Warnings:        []string{},
		MissingSections: []string{},
	}

	if strings.TrimSpace(profile.Headline) == "" {
		validation.MissingSections = append(validation.MissingSections, "headline")
		validation.Warnings = append(validation.Warnings, "No headline found")
	}
	if strings.TrimSpace(profile.About) == "" {
		validation.MissingSections = append(validation.MissingSections, "about")
		validation.Warnings = append(validation.Warnings, "No about section found")
	}
	if len(profile.Experience) == 0 {
		validation.MissingSections = append(validation.MissingSections, "experience")
		validation.Warnings = append(validation.Warnings, "No experience entries found")
	}
	if len(profile.Skills) == 0 {
		validation.MissingSections = append(validation.MissingSections, "skills")
		validation.Warnings = append(validation.Warnings, "No skills found")
	}

	var incomplete []string
	for i, entry := range profile.Experience {
		if strings.TrimSpace(entry.Title) == "" || strings.TrimSpace(entry.Company) == "" {
			incomplete = append(incomplete, fmt.Sprintf("Experience %d", i+1))
		}
	}
	if len(incomplete) > 0 {
		validation.Warnings = append(validation.Warnings,
			"Incomplete experience entries: "+strings.Join(incomplete, ", "))
	}

	if len(validation.MissingSections) > 0 {
		validation.IsValid = false
	}

	return validation
}

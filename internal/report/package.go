package report

import "strings"

// implementationOrder is the order sections should be applied to a
// profile.
var implementationOrder = []string{"headline", "about", "experience", "skills"}

// Package bundles extracted sections with validation results and
// aggregate counts, ready for one-click implementation.
type Package struct {
	Sections          map[string]Section     `json:"sections"`
	ValidationResults map[string]LengthCheck `json:"validationResults"`
	Order             []string               `json:"implementationOrder"`
	TotalContent      string                 `json:"totalContent"`
	WordCount         int                    `json:"wordCount"`
	CharacterCount    int                    `json:"characterCount"`
}

// BuildPackage validates every extracted section and aggregates the
// copy-ready content.
func BuildPackage(sections map[string]Section) Package {
	pkg := Package{
		Sections:          sections,
		ValidationResults: make(map[string]LengthCheck, len(sections)),
		Order:             implementationOrder,
	}

	var total strings.Builder
	for _, name := range implementationOrder {
		section, ok := sections[name]
		if !ok {
			continue
		}
		pkg.ValidationResults[name] = ValidateLength(name, section.FormattedContent)
		total.WriteString(section.FormattedContent)
		total.WriteString("\n\n")
		pkg.WordCount += section.WordCount
		pkg.CharacterCount += section.CharacterCount
	}
	pkg.TotalContent = total.String()

	return pkg
}

// CopyText renders one section as paste-ready text with a header.
func CopyText(sections map[string]Section, name string) string {
	section, ok := sections[name]
	if !ok {
		return ""
	}
	return "=== " + strings.ToUpper(section.Title) + " ===\n\n" + section.FormattedContent
}

// BatchCopyText renders all sections in implementation order.
func BatchCopyText(sections map[string]Section) string {
	var b strings.Builder
	b.WriteString("LINKEDIN PROFILE OPTIMIZATION - READY TO IMPLEMENT\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, name := range implementationOrder {
		section, ok := sections[name]
		if !ok {
			continue
		}
		b.WriteString("=== " + strings.ToUpper(section.Title) + " ===\n\n")
		b.WriteString(section.FormattedContent + "\n\n")
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
	}
	return b.String()
}

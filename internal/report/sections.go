// Package report slices generated optimization reports into
// copy-ready profile sections. Reports are structured by a fixed set
// of uppercase headings; everything between two headings belongs to
// the earlier one.
package report

import (
	"regexp"
	"strings"
	"unicode"
)

// Headings every optimization report is built around, in report order.
const (
	HeadingOverview        = "OVERALL PROFILE REVIEW"
	HeadingHeadline        = "HEADLINE OPTIMIZATION"
	HeadingAbout           = "ABOUT SECTION COMPLETE REWRITE"
	HeadingExperience      = "EXPERIENCE SECTION ENHANCEMENT"
	HeadingSkills          = "SKILLS STRATEGY"
	HeadingRecommendations = "RECOMMENDATIONS STRATEGY"
	HeadingEngagement      = "CONTENT & ENGAGEMENT PLAN"
)

// SectionHeadings lists all report headings in canonical order.
var SectionHeadings = []string{
	HeadingOverview,
	HeadingHeadline,
	HeadingAbout,
	HeadingExperience,
	HeadingSkills,
	HeadingRecommendations,
	HeadingEngagement,
}

// Section is one extracted, formatted block of profile content.
type Section struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	FormattedContent string `json:"formattedContent"`
	CharacterCount   int    `json:"characterCount"`
	WordCount        int    `json:"wordCount"`
}

var (
	numberedRe     = regexp.MustCompile(`^\d+\.`)
	numberBulletRe = regexp.MustCompile(`^\d+\.\s*|•\s*`)
	listPrefixRe   = regexp.MustCompile(`^\d+\.\s*|•\s*|-\s*`)
	upperHeaderRe  = regexp.MustCompile(`\n[A-Z]+ [A-Z]+`)
)

// ExtractSections pulls the implementable profile sections out of a
// report. Sections whose content cannot be located are omitted.
func ExtractSections(report string) map[string]Section {
	sections := make(map[string]Section)

	if content := extractHeadlines(report); content != "" {
		sections["headline"] = newSection("Headline Options", content, formatHeadlines(content))
	}
	if content := extractAbout(report); content != "" {
		sections["about"] = newSection("About Section", content, formatAbout(content))
	}
	if content := extractExperience(report); content != "" {
		sections["experience"] = newSection("Experience Section", content, formatExperience(content))
	}
	if content := extractSkills(report); content != "" {
		sections["skills"] = newSection("Skills Section", content, formatSkills(content))
	}

	return sections
}

func newSection(title, content, formatted string) Section {
	return Section{
		Title:            title,
		Content:          content,
		FormattedContent: formatted,
		CharacterCount:   len(content),
		WordCount:        len(strings.Fields(content)),
	}
}

// FindSection returns the report slice starting at the named heading
// and ending at the nearest subsequent heading, or the end of the
// report when no heading follows. Returns "" for absent headings.
func FindSection(report, heading string) string {
	start := strings.Index(report, heading)
	if start == -1 {
		return ""
	}

	end := len(report)
	for _, other := range SectionHeadings {
		if other == heading {
			continue
		}
		pos := strings.Index(report, other)
		if pos > start && pos < end {
			end = pos
		}
	}
	return report[start:end]
}

// extractHeadlines keeps numbered or bulleted lines long enough to be
// real headline candidates.
func extractHeadlines(report string) string {
	section := FindSection(report, HeadingHeadline)
	if section == "" {
		return ""
	}

	var headlines []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if numberedRe.MatchString(line) || strings.HasPrefix(line, "•") {
			clean := strings.TrimSpace(numberBulletRe.ReplaceAllString(line, ""))
			if len(clean) > 20 {
				headlines = append(headlines, clean)
			}
		}
	}
	return strings.Join(headlines, "\n")
}

// extractAbout prefers the text after a "Recommended Version" marker,
// trimmed at the next uppercase header.
func extractAbout(report string) string {
	section := FindSection(report, HeadingAbout)
	if section == "" {
		return ""
	}

	if _, after, found := strings.Cut(section, "Recommended Version"); found {
		content := strings.TrimSpace(after)
		if loc := upperHeaderRe.FindStringIndex(content); loc != nil {
			content = strings.TrimSpace(content[:loc[0]])
		}
		return content
	}
	return strings.TrimSpace(section)
}

// extractExperience drops headers and marker lines, keeping only the
// rewritten entry content.
func extractExperience(report string) string {
	section := FindSection(report, HeadingExperience)
	if section == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(section), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isUpperLine(line) ||
			strings.HasPrefix(line, "CURRENT") || strings.HasPrefix(line, "RECOMMENDED") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// extractSkills keeps numbered, bulleted or dashed list entries.
func extractSkills(report string) string {
	section := FindSection(report, HeadingSkills)
	if section == "" {
		return ""
	}

	var skills []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if numberedRe.MatchString(line) || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
			clean := strings.TrimSpace(listPrefixRe.ReplaceAllString(line, ""))
			if len(clean) > 2 {
				skills = append(skills, clean)
			}
		}
	}
	return strings.Join(skills, "\n")
}

// isUpperLine reports whether a line has letters and none lowercase.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

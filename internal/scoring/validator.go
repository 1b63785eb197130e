package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"linkedopt/internal/types"
)

// GeneratedContent is optimized content parsed back out of a model
// report. It mirrors the profile shape but is kept as a separate type:
// generated text must never flow into a types.Profile.
type GeneratedContent struct {
	Headline   string                  `json:"headline"`
	About      string                  `json:"about"`
	Experience []types.ExperienceEntry `json:"experience"`
	Skills     []string                `json:"skills"`
}

// HighQualityThreshold marks generated content as ready to implement.
const HighQualityThreshold = 80

var (
	headlineMetricRe = regexp.MustCompile(`\d+%|\$\d+|\d+ years?`)
	metricRe         = regexp.MustCompile(`\d+%|\$\d+|\d+ (?:years?|months?|people|projects|teams)`)
	bulletSplitRe    = regexp.MustCompile(`[-•*]\s*`)
	actionVerbRe     = regexp.MustCompile(`(?i)\b(led|managed|developed|created|implemented|optimized|achieved|increased|reduced|improved)\b`)
)

// Content length requirements applied to generated sections.
const (
	aboutMinChars        = 300
	aboutMaxChars        = 500
	headlineMaxChars     = 220
	minQuantifiableTotal = 8
)

// Validator scores generated optimization content against the same
// industry reference data the prompts are built from.
type Validator struct{}

// NewValidator creates a content quality validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate scores generated content out of 100 and reports what is
// missing. It is a post-hoc check over model output, not over the
// user's extracted profile.
func (v *Validator) Validate(content GeneratedContent, target types.Target) types.ContentValidation {
	info := IndustryProfileFor(target.Industry)
	role := RoleProfileFor(target.Industry, target.Role)

	score := 0
	var feedback []string

	addScore := func(points int, ok bool, msg string) {
		if ok {
			score += points
		} else {
			feedback = append(feedback, msg)
		}
	}

	// Headline
	addScore(10, len(content.Headline) <= headlineMaxChars,
		fmt.Sprintf("Headline too long (%d chars). Max: %d", len(content.Headline), headlineMaxChars))
	addScore(10, keywordHits(content.Headline, info.Keywords) >= 1,
		"Headline should include at least 1 industry keyword")
	addScore(10, headlineMetricRe.MatchString(content.Headline),
		"Headline should include a quantifiable achievement (%, $, or numbers)")

	// About
	switch n := len(content.About); {
	case n >= aboutMinChars && n <= aboutMaxChars:
		score += 15
	case n < aboutMinChars:
		feedback = append(feedback, fmt.Sprintf("About section too short (%d chars). Min: %d", n, aboutMinChars))
	default:
		feedback = append(feedback, fmt.Sprintf("About section too long (%d chars). Max: %d", n, aboutMaxChars))
	}
	aboutKeywords := keywordHits(content.About, info.Keywords)
	addScore(10, aboutKeywords >= 3,
		fmt.Sprintf("About section should include at least 3 industry keywords (found: %d)", aboutKeywords))
	aboutSkills := keywordHits(content.About, role.Skills)
	addScore(10, aboutSkills >= 2,
		fmt.Sprintf("About section should include at least 2 role-specific skills (found: %d)", aboutSkills))
	aboutMetrics := len(metricRe.FindAllString(content.About, -1))
	addScore(15, aboutMetrics >= 3,
		fmt.Sprintf("About section should include at least 3 quantifiable achievements (found: %d)", aboutMetrics))

	// Experience
	totalBullets := 0
	totalMetrics := 0
	for i, exp := range content.Experience {
		bullets := 0
		for _, part := range bulletSplitRe.Split(exp.Description, -1) {
			if strings.TrimSpace(part) != "" {
				bullets++
			}
		}
		metrics := len(metricRe.FindAllString(exp.Description, -1))
		totalBullets += bullets
		totalMetrics += metrics

		addScore(5, bullets >= 3,
			fmt.Sprintf("Experience %d should have at least 3 bullet points (found: %d)", i+1, bullets))
		addScore(5, metrics >= 2,
			fmt.Sprintf("Experience %d should include at least 2 metrics (found: %d)", i+1, metrics))
	}
	addScore(10, totalBullets >= len(content.Experience)*3,
		"Each experience should have at least 3 bullet points")
	addScore(10, totalMetrics >= minQuantifiableTotal,
		fmt.Sprintf("Total quantifiable metrics should be at least %d (found: %d)", minQuantifiableTotal, totalMetrics))

	// Skills
	roleSkillHits := 0
	for _, want := range role.Skills {
		for _, have := range content.Skills {
			if have == want {
				roleSkillHits++
				break
			}
		}
	}
	addScore(15, roleSkillHits >= 3,
		fmt.Sprintf("Skills section should include at least 3 role-specific skills (found: %d)", roleSkillHits))
	addScore(10, len(content.Skills) >= 10,
		fmt.Sprintf("Skills section should include at least 10 skills (found: %d)", len(content.Skills)))
	technical := 0
	for _, skill := range content.Skills {
		if containsAny(strings.ToLower(skill), technicalIndicators) {
			technical++
		}
	}
	addScore(5, technical >= 3, "Include more technical skills")

	// Overall completeness and tone
	var missing []string
	if content.Headline == "" {
		missing = append(missing, "headline")
	}
	if content.About == "" {
		missing = append(missing, "about")
	}
	if len(content.Experience) == 0 {
		missing = append(missing, "experience")
	}
	if len(content.Skills) == 0 {
		missing = append(missing, "skills")
	}
	addScore(10, len(missing) == 0,
		fmt.Sprintf("Missing required sections: %s", strings.Join(missing, ", ")))

	var allText strings.Builder
	allText.WriteString(content.Headline)
	allText.WriteString(" ")
	allText.WriteString(content.About)
	for _, exp := range content.Experience {
		allText.WriteString(" ")
		allText.WriteString(exp.Description)
	}
	verbs := len(actionVerbRe.FindAllString(allText.String(), -1))
	addScore(10, verbs >= 5, fmt.Sprintf("Include more action verbs (found: %d)", verbs))

	unprofessional := findAny(strings.ToLower(allText.String()),
		[]string{"awesome", "cool", "stuff", "things", "etc", "blah", "lol"})
	addScore(10, len(unprofessional) == 0,
		fmt.Sprintf("Remove unprofessional language: %s", strings.Join(unprofessional, ", ")))

	if score > 100 {
		score = 100
	}

	return types.ContentValidation{
		Score:         score,
		IsHighQuality: score >= HighQualityThreshold,
		Feedback:      feedback,
		Suggestions:   v.suggestions(feedback, target),
	}
}

// suggestions turns section-level feedback into concrete next steps.
func (v *Validator) suggestions(feedback []string, target types.Target) []string {
	joined := strings.Join(feedback, " ")
	if joined == "" {
		return []string{"Content quality is excellent! Ready for implementation."}
	}

	info := IndustryProfileFor(target.Industry)
	role := RoleProfileFor(target.Industry, target.Role)

	var out []string
	if strings.Contains(joined, "Headline") {
		out = append(out, fmt.Sprintf("Headline: add a quantifiable achievement and industry keywords such as %s",
			strings.Join(firstN(info.Keywords, 3), ", ")))
	}
	if strings.Contains(joined, "About section") {
		out = append(out, "About: add 3+ specific achievements with metrics (%, $, numbers) and industry keywords")
	}
	if strings.Contains(joined, "Experience") {
		out = append(out, "Experience: rewrite bullet points in the 'Achieved X% improvement' format")
	}
	if strings.Contains(joined, "Skills section") {
		out = append(out, fmt.Sprintf("Skills: add role-specific skills such as %s",
			strings.Join(firstN(role.Skills, 5), ", ")))
	}
	return out
}

// ValidateSection performs real-time validation of a single section's
// text against its character limits and common wording issues.
func ValidateSection(content, contentType string) types.ExtractionValidation {
	result := types.ExtractionValidation{IsValid: true}

	limits := map[string][2]int{
		"headline":   {60, 120},
		"about":      {300, 500},
		"experience": {50, 300},
	}

	if limit, ok := limits[contentType]; ok {
		switch n := len(content); {
		case n < limit[0]:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Too short - minimum %d characters", limit[0]))
			result.IsValid = false
		case n > limit[1]:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Quite long - consider reducing to %d characters", limit[1]))
		}
	}

	lower := strings.ToLower(content)
	if strings.Contains(lower, "looking for") {
		result.Warnings = append(result.Warnings, "Avoid passive language like 'looking for'")
	}
	if strings.Count(content, "!") > 2 {
		result.Warnings = append(result.Warnings, "Too many exclamation marks")
	}
	if !containsAny(lower, actionVerbs) {
		result.Warnings = append(result.Warnings, "Add more action verbs")
	}

	return result
}

func keywordHits(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

func findAny(haystack string, needles []string) []string {
	var found []string
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			found = append(found, n)
		}
	}
	return found
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

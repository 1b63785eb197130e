// Package scoring computes deterministic content quality scores for
// profile sections using keyword and length heuristics. All thresholds,
// keyword lists, and weights are fixed constants; the only inputs are
// the profile and the target industry/role.
package scoring

import (
	"fmt"
	"strings"

	"linkedopt/internal/types"
)

// DefaultIndustry is used when the target industry has no keyword list.
const DefaultIndustry = "Technology"

var industryKeywords = map[string][]string{
	"Technology": {"software", "development", "programming", "coding", "tech", "digital", "data", "ai", "ml"},
	"Finance":    {"financial", "investment", "banking", "trading", "risk", "compliance", "fintech"},
	"Healthcare": {"healthcare", "medical", "clinical", "patient", "health", "wellness", "pharmaceutical"},
	"Marketing":  {"marketing", "brand", "digital", "social", "content", "campaign", "analytics"},
	"Sales":      {"sales", "revenue", "growth", "client", "business", "account", "relationship"},
}

var actionVerbs = []string{
	"led", "managed", "developed", "created", "implemented", "launched",
	"grew", "increased", "reduced", "improved", "optimized", "achieved",
}

var quantifiableIndicators = []string{
	"%", "$", "number", "count", "increase", "decrease", "growth", "reduction",
	"million", "billion", "thousand", "hundred", "times", "fold",
}

var (
	valueWords       = []string{"helping", "driving", "delivering", "creating", "solving", "scaling", "building"}
	passiveWords     = []string{"looking", "seeking", "unemployed"}
	storyIndicators  = []string{"journey", "passion", "mission", "vision", "story"}
	ctaIndicators    = []string{"connect", "reach out", "contact", "opportunity", "collaborate"}
	impactIndicators = []string{"resulted in", "led to", "achieved", "improved", "increased"}

	technicalIndicators = []string{"python", "java", "javascript", "sql", "aws", "docker", "kubernetes"}
	softIndicators      = []string{"leadership", "communication", "teamwork", "management", "strategy"}
)

// Section weights for the overall score.
var sectionWeights = map[string]float64{
	"headline":   0.2,
	"about":      0.3,
	"experience": 0.35,
	"skills":     0.15,
}

// Scorer computes section and overall quality metrics.
type Scorer struct{}

// NewScorer creates a content quality scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// IndustryKeywords returns the keyword list for an industry, falling
// back to the default industry when the key is unknown.
func IndustryKeywords(industry string) []string {
	if kws, ok := industryKeywords[industry]; ok {
		return kws
	}
	return industryKeywords[DefaultIndustry]
}

// Score computes quality metrics for every section plus the weighted
// overall score.
func (s *Scorer) Score(profile types.Profile, target types.Target) types.ProfileQuality {
	quality := types.ProfileQuality{
		Headline:   s.scoreHeadline(profile.Headline, target.Role),
		About:      s.scoreAbout(profile.About, target.Industry),
		Experience: s.scoreExperience(profile.Experience),
		Skills:     s.scoreSkills(profile.Skills, target.Industry),
	}
	quality.Overall = s.scoreOverall(quality)
	return quality
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func countMatches(haystack string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			count++
		}
	}
	return count
}

// matchesRole reports whether the headline names the target role,
// either verbatim or by any of the role's words.
func matchesRole(headline, role string) bool {
	if role == "" {
		return false
	}
	if strings.Contains(headline, strings.ToLower(role)) {
		return true
	}
	for _, word := range strings.Fields(strings.ToLower(role)) {
		if strings.Contains(headline, word) {
			return true
		}
	}
	return false
}

func (s *Scorer) scoreHeadline(headline, targetRole string) types.QualityMetrics {
	m := types.QualityMetrics{MaxScore: 100}
	lower := strings.ToLower(headline)

	if n := len(headline); n >= 60 && n <= 120 {
		m.Score += 25
	} else {
		m.Feedback = append(m.Feedback, "Headline length is not optimal")
		m.Suggestions = append(m.Suggestions, "Aim for 60-120 characters for maximum impact")
	}

	if containsAny(lower, valueWords) {
		m.Score += 25
	} else {
		m.Feedback = append(m.Feedback, "Missing clear value proposition")
		m.Suggestions = append(m.Suggestions, "Include what value you provide to employers")
	}

	if matchesRole(lower, targetRole) {
		m.Score += 25
	} else {
		m.Feedback = append(m.Feedback, "Target role not mentioned")
		m.Suggestions = append(m.Suggestions, fmt.Sprintf("Include '%s' in your headline", targetRole))
	}

	if !containsAny(lower, passiveWords) {
		m.Score += 25
	} else {
		m.Feedback = append(m.Feedback, "Avoid passive language")
		m.Suggestions = append(m.Suggestions, "Use active, confident language")
	}

	return m
}

func (s *Scorer) scoreAbout(about, targetIndustry string) types.QualityMetrics {
	m := types.QualityMetrics{MaxScore: 100}
	lower := strings.ToLower(about)

	wordCount := len(strings.Fields(about))
	if wordCount >= 300 && wordCount <= 500 {
		m.Score += 20
	} else {
		m.Feedback = append(m.Feedback, fmt.Sprintf("About section is %d words (ideal: 300-500)", wordCount))
		m.Suggestions = append(m.Suggestions, "Expand your about section to 300-500 words")
	}

	if containsAny(lower, storyIndicators) {
		m.Score += 20
	} else {
		m.Feedback = append(m.Feedback, "Missing storytelling elements")
		m.Suggestions = append(m.Suggestions, "Add your career story and passion")
	}

	keywordCount := countMatches(lower, IndustryKeywords(targetIndustry))
	if keywordCount >= 3 {
		m.Score += 20
	} else {
		m.Feedback = append(m.Feedback, fmt.Sprintf("Only %d industry keywords found", keywordCount))
		m.Suggestions = append(m.Suggestions, fmt.Sprintf("Include more %s industry keywords", targetIndustry))
	}

	if countMatches(lower, quantifiableIndicators) >= 2 {
		m.Score += 20
	} else {
		m.Feedback = append(m.Feedback, "Missing quantifiable achievements")
		m.Suggestions = append(m.Suggestions, "Add specific numbers and metrics")
	}

	if containsAny(lower, ctaIndicators) {
		m.Score += 20
	} else {
		m.Feedback = append(m.Feedback, "Missing call to action")
		m.Suggestions = append(m.Suggestions, "Add a clear call to action for recruiters")
	}

	return m
}

func (s *Scorer) scoreExperience(experiences []types.ExperienceEntry) types.QualityMetrics {
	m := types.QualityMetrics{MaxScore: 100}

	if len(experiences) == 0 {
		m.Feedback = append(m.Feedback, "No experience entries found")
		m.Suggestions = append(m.Suggestions, "Add your work experience")
		return m
	}

	// Each entry is worth up to 25 points (8 + 9 + 8); the sum is
	// normalized to a 0-100 scale.
	totalPossible := len(experiences) * 25
	actual := 0

	for _, exp := range experiences {
		lower := strings.ToLower(exp.Description)
		title := exp.Title
		if title == "" {
			title = "Unknown"
		}

		if countMatches(lower, actionVerbs) >= 2 {
			actual += 8
		} else {
			m.Feedback = append(m.Feedback, fmt.Sprintf("Experience '%s' lacks action verbs", title))
			m.Suggestions = append(m.Suggestions, "Start bullet points with action verbs")
		}

		if countMatches(lower, quantifiableIndicators) >= 1 {
			actual += 9
		} else {
			m.Feedback = append(m.Feedback, fmt.Sprintf("Experience '%s' lacks metrics", title))
			m.Suggestions = append(m.Suggestions, "Add specific numbers and results")
		}

		if containsAny(lower, impactIndicators) {
			actual += 8
		} else {
			m.Feedback = append(m.Feedback, fmt.Sprintf("Experience '%s' lacks impact statements", title))
			m.Suggestions = append(m.Suggestions, "Show the impact of your work")
		}
	}

	m.Score = actual * 100 / totalPossible
	return m
}

func (s *Scorer) scoreSkills(skills []string, targetIndustry string) types.QualityMetrics {
	m := types.QualityMetrics{MaxScore: 100}

	if len(skills) == 0 {
		m.Feedback = append(m.Feedback, "No skills listed")
		m.Suggestions = append(m.Suggestions, "Add your relevant skills")
		return m
	}

	if n := len(skills); n >= 10 && n <= 15 {
		m.Score += 30
	} else {
		m.Feedback = append(m.Feedback, fmt.Sprintf("Skills count: %d (ideal: 10-15)", len(skills)))
		m.Suggestions = append(m.Suggestions, "Aim for 10-15 relevant skills")
	}

	keywords := IndustryKeywords(targetIndustry)
	relevant := 0
	technical := false
	soft := false
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if containsAny(lower, keywords) {
			relevant++
		}
		if containsAny(lower, technicalIndicators) {
			technical = true
		}
		if containsAny(lower, softIndicators) {
			soft = true
		}
	}

	if relevant >= 5 {
		m.Score += 40
	} else {
		m.Feedback = append(m.Feedback, fmt.Sprintf("Only %d industry-relevant skills", relevant))
		m.Suggestions = append(m.Suggestions, fmt.Sprintf("Add more %s specific skills", targetIndustry))
	}

	if technical && soft {
		m.Score += 30
	} else {
		m.Feedback = append(m.Feedback, "Balance technical and soft skills")
		m.Suggestions = append(m.Suggestions, "Include both technical and soft skills")
	}

	return m
}

func (s *Scorer) scoreOverall(quality types.ProfileQuality) types.QualityMetrics {
	m := types.QualityMetrics{MaxScore: 100}

	sections := map[string]types.QualityMetrics{
		"headline":   quality.Headline,
		"about":      quality.About,
		"experience": quality.Experience,
		"skills":     quality.Skills,
	}

	total := 0.0
	// Fixed iteration order keeps feedback concatenation deterministic.
	for _, name := range []string{"headline", "about", "experience", "skills"} {
		sec := sections[name]
		total += float64(sec.Score) * sectionWeights[name]
		m.Feedback = append(m.Feedback, sec.Feedback...)
		m.Suggestions = append(m.Suggestions, sec.Suggestions...)
	}

	m.Score = int(total)
	return m
}

// Recommendations collects feedback from every section scoring below
// 70% of its maximum, deduplicated while preserving first-seen order.
func (s *Scorer) Recommendations(quality types.ProfileQuality) []string {
	var recommendations []string
	seen := make(map[string]bool)

	for _, sec := range []types.QualityMetrics{quality.Headline, quality.About, quality.Experience, quality.Skills, quality.Overall} {
		if sec.MaxScore == 0 || sec.Score*10 >= sec.MaxScore*7 {
			continue
		}
		for _, f := range sec.Feedback {
			if !seen[f] {
				seen[f] = true
				recommendations = append(recommendations, f)
			}
		}
	}

	return recommendations
}

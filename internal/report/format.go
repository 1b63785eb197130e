package report

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	spaceRe       = regexp.MustCompile(`\s+`)
	leadBulletRe  = regexp.MustCompile(`^\s*[•\-\*]\s*`)
	sentenceCapRe = regexp.MustCompile(`[.!?]\s+[a-z]`)
)

type lengthLimit struct {
	min, max int
}

var lengthLimits = map[string]lengthLimit{
	"headline":   {min: 60, max: 120},
	"about":      {min: 300, max: 500},
	"experience": {min: 50, max: 300},
}

// LengthCheck is the result of validating a section against platform
// character limits.
type LengthCheck struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidateLength checks formatted content against the character limits
// for the named section. Sections without limits always pass.
func ValidateLength(section, content string) LengthCheck {
	limit, ok := lengthLimits[section]
	if !ok {
		return LengthCheck{Valid: true, Message: "No limits defined for this section"}
	}

	n := len(content)
	switch {
	case n < limit.min:
		return LengthCheck{
			Valid:   false,
			Message: fmt.Sprintf("Too short - minimum %d characters (currently %d)", limit.min, n),
			Type:    "too_short",
		}
	case n > limit.max:
		return LengthCheck{
			Valid:   false,
			Message: fmt.Sprintf("Too long - maximum %d characters (currently %d)", limit.max, n),
			Type:    "too_long",
		}
	default:
		return LengthCheck{
			Valid:   true,
			Message: fmt.Sprintf("Good length - %d characters", n),
			Type:    "good",
		}
	}
}

func formatHeadlines(content string) string {
	var out []string
	for _, headline := range strings.Split(content, "\n") {
		headline = strings.TrimSpace(headline)
		if headline == "" {
			continue
		}
		headline = capitalizeSentences(headline)
		headline = spaceRe.ReplaceAllString(headline, " ")
		out = append(out, headline)
	}
	return strings.Join(out, "\n\n")
}

func formatAbout(content string) string {
	var out []string
	for _, paragraph := range strings.Split(content, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		paragraph = leadBulletRe.ReplaceAllString(paragraph, "")
		paragraph = spaceRe.ReplaceAllString(paragraph, " ")
		paragraph = capitalizeSentences(paragraph)
		out = append(out, paragraph)
	}
	return strings.Join(out, "\n\n")
}

func formatExperience(content string) string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if numberedRe.MatchString(line) || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
			clean := strings.TrimSpace(listPrefixRe.ReplaceAllString(line, ""))
			out = append(out, "• "+capitalizeSentences(clean))
		} else {
			out = append(out, capitalizeSentences(line))
		}
	}
	return strings.Join(out, "\n")
}

func formatSkills(content string) string {
	var out []string
	for _, skill := range strings.Split(content, "\n") {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		clean := strings.TrimSpace(listPrefixRe.ReplaceAllString(skill, ""))
		if clean != "" {
			out = append(out, clean)
		}
	}
	return strings.Join(out, ", ")
}

// capitalizeSentences uppercases the first letter of the text and of
// every sentence within it.
func capitalizeSentences(text string) string {
	if text == "" {
		return text
	}
	text = sentenceCapRe.ReplaceAllStringFunc(text, func(m string) string {
		return m[:len(m)-1] + strings.ToUpper(m[len(m)-1:])
	})
	if text[0] >= 'a' && text[0] <= 'z' {
		text = strings.ToUpper(text[:1]) + text[1:]
	}
	return text
}

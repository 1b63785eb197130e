package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"linkedopt/internal/errors"
	"linkedopt/internal/types"

	"github.com/tidwall/gjson"
)

// trailingCommaRe matches a comma immediately before a closing brace or
// bracket, the most common defect in raw-completion JSON replies.
var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// ParseProfileReply turns a model reply into a Profile. Structured-output
// replies are valid JSON and parse on the first attempt; replies from
// raw-completion models go through a repair ladder: markdown fence
// stripping, brace-matched substring extraction, trailing-comma removal,
// and finally a tolerant field salvage that recovers headline and about
// while leaving experience and skills empty rather than guessing.
//
// Valid JSON input always yields the same Profile as a direct unmarshal.
func ParseProfileReply(reply string) (types.Profile, error) {
	text := stripFences(strings.TrimSpace(reply))

	var profile types.Profile
	if err := json.Unmarshal([]byte(text), &profile); err == nil {
		return profile, nil
	}

	if body := braceMatch(text); body != "" {
		if err := json.Unmarshal([]byte(body), &profile); err == nil {
			return profile, nil
		}
		text = body
	}

	cleaned := trailingCommaRe.ReplaceAllString(text, "$1")
	if err := json.Unmarshal([]byte(cleaned), &profile); err == nil {
		return profile, nil
	}

	if salvaged, ok := salvageProfile(cleaned); ok {
		return salvaged, nil
	}

	return types.Profile{}, errors.NewAIError(errors.ErrCodeMalformedReply,
		"Model reply could not be parsed as profile JSON", nil)
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// braceMatch extracts the first balanced {...} object from text,
// tracking string literals and escapes so braces inside values do not
// end the match. Returns "" when no balanced object exists.
func braceMatch(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}

// salvageProfile pulls whatever fields a tolerant scan can still find.
// Only headline and about are recovered; fabricating experience entries
// or skills from broken JSON is worse than reporting them missing.
func salvageProfile(text string) (types.Profile, bool) {
	headline := gjson.Get(text, "headline")
	about := gjson.Get(text, "about")

	profile := types.Profile{}
	if headline.Type == gjson.String {
		profile.Headline = headline.String()
	}
	if about.Type == gjson.String {
		profile.About = about.String()
	}

	return profile, profile.Headline != "" || profile.About != ""
}

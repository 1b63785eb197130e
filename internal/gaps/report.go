package gaps

import (
	"fmt"
	"strings"

	"linkedopt/internal/types"
)

// RenderReport formats a gap analysis as a markdown document suitable
// for terminal or web display.
func RenderReport(analysis types.GapAnalysis) string {
	var b strings.Builder

	b.WriteString("# Perfect Profile Analysis Report\n\n")

	score := analysis.CompletenessScore
	fmt.Fprintf(&b, "## Profile Completeness Score: %d/100\n", score)
	switch {
	case score >= 90:
		b.WriteString("Excellent! Your profile is nearly perfect.\n")
	case score >= 70:
		b.WriteString("Good foundation. Some improvements needed.\n")
	case score >= 50:
		b.WriteString("Needs work. Several gaps to address.\n")
	default:
		b.WriteString("Significant improvements required.\n")
	}
	b.WriteString("\n")

	tpl := analysis.Template
	b.WriteString("## Your Perfect Profile Template\n\n")

	b.WriteString("### Ideal Headline\n")
	fmt.Fprintf(&b, "**Template:** %s\n", tpl.Headline.IdealTemplate)
	fmt.Fprintf(&b, "**Example:** %s\n", tpl.Headline.Example)
	b.WriteString("**Must Include:**\n")
	for _, item := range tpl.Headline.MustHaves {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	b.WriteString("\n")

	b.WriteString("### Ideal About Section\n")
	fmt.Fprintf(&b, "**Ideal Length:** %s\n", tpl.About.IdealLength)
	b.WriteString("**Structure:**\n")
	for i, item := range tpl.About.Structure {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, item)
	}
	b.WriteString("\n")

	b.WriteString("### Ideal Experience\n")
	for _, item := range tpl.Experience.MustHaves {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	b.WriteString("**Power Action Verbs:**\n")
	verbs := tpl.Experience.ActionVerbs
	if len(verbs) > 10 {
		verbs = verbs[:10]
	}
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(verbs, ", "))

	b.WriteString("### Must-Have Skills\n")
	if len(tpl.Skills.MustHave) > 0 {
		fmt.Fprintf(&b, "  %s\n", strings.Join(tpl.Skills.MustHave, ", "))
	}
	b.WriteString("\n")

	b.WriteString("### Recommended Certifications\n")
	for _, cert := range tpl.Certifications.Recommended {
		fmt.Fprintf(&b, "  - %s\n", cert)
	}
	b.WriteString("\n")

	b.WriteString("## Gap Analysis: What's Missing\n")
	for _, category := range gapCategories {
		items := analysis.MissingToPerfect[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n", strings.ToUpper(category))
		for _, item := range items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	b.WriteString("\n")

	if len(analysis.QuickWins) > 0 {
		b.WriteString("## Quick Wins (Do These First)\n")
		for i, gap := range analysis.QuickWins {
			fmt.Fprintf(&b, "%d. %s\n", i+1, gap.ActionRequired)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Improvement Roadmap\n")
	for _, phase := range analysis.Roadmap {
		fmt.Fprintf(&b, "\n### %s (%s)\n", phase.Phase, phase.TimeFrame)
		fmt.Fprintf(&b, "**Expected Impact:** %s\n", phase.ExpectedImpact)
		for _, action := range phase.Actions {
			fmt.Fprintf(&b, "  - %s\n", action)
		}
	}
	b.WriteString("\n")

	return b.String()
}

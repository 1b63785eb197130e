// Package gaps compares an extracted profile against curated role
// benchmarks and produces a prioritized list of gaps, a completeness
// score and a phased improvement roadmap. All benchmark data is static.
package gaps

import (
	"fmt"
	"sort"
	"strings"

	"linkedopt/internal/types"
)

// fallbackIndustry is used when the requested industry has no benchmarks.
const fallbackIndustry = "Technology"

// gapCategories is the fixed category set, in report order.
var gapCategories = []string{"headline", "about", "experience", "skills", "certifications"}

var priorityRank = map[string]int{
	types.PriorityCritical: 0,
	types.PriorityHigh:     1,
	types.PriorityMedium:   2,
	types.PriorityLow:      3,
}

var ctaKeywords = []string{"connect", "reach out", "contact", "discuss", "collaborate", "email", "message"}

var certKeywords = []string{"certified", "certification", "certificate", "cfa", "cpa", "pmp", "aws", "azure", "gcp"}

// Analyzer evaluates profiles against the benchmark tables.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Template returns the ideal-profile template for the given target,
// along with the name of the benchmark role it resolved to.
func (a *Analyzer) Template(target types.Target) (types.PerfectTemplate, string) {
	industry := target.Industry
	if _, ok := benchmarks[industry]; !ok {
		industry = fallbackIndustry
	}

	matched, bm := matchRole(target.Role, industry)
	if matched == "" {
		matched = GenericRoleName
		bm = genericBenchmark(target.Role)
	}
	return buildTemplate(target.Industry, target.Role, matched, bm), matched
}

// Analyze compares the profile with the ideal template for the target
// and returns the scored, prioritized gap analysis.
func (a *Analyzer) Analyze(profile types.Profile, target types.Target) types.GapAnalysis {
	template, matched := a.Template(target)

	var gaps []types.Gap
	gaps = append(gaps, headlineGaps(profile.Headline, target.Role)...)
	gaps = append(gaps, aboutGaps(profile.About)...)
	gaps = append(gaps, experienceGaps(profile.Experience)...)
	gaps = append(gaps, skillsGaps(profile.Skills, template.Skills.MustHave)...)
	gaps = append(gaps, certificationGaps(profile.Skills, profile.About, template.Certifications.Recommended)...)

	prioritize(gaps)

	return types.GapAnalysis{
		Target:            target,
		MatchedRole:       matched,
		CompletenessScore: completeness(gaps),
		Gaps:              gaps,
		QuickWins:         topByEffort(gaps, types.EffortQuickWin, 5),
		HighImpact:        topByPriority(gaps, 5),
		MissingToPerfect:  missingByCategory(gaps),
		Roadmap:           roadmap(gaps),
		Template:          template,
	}
}

// matchRole resolves a free-form role string to a curated benchmark.
// Tries an exact name match, then a word overlap with benchmark role
// names, then the keyword table. Returns "" when nothing fits.
func matchRole(role, industry string) (string, RoleBenchmark) {
	roleLower := strings.ToLower(role)
	industryRoles := benchmarks[industry]
	names := roleOrder[industry]

	for _, name := range names {
		if strings.ToLower(name) == roleLower {
			return name, industryRoles[name]
		}
	}

	for _, name := range names {
		for _, word := range strings.Fields(strings.ToLower(name)) {
			if strings.Contains(roleLower, word) {
				return name, industryRoles[name]
			}
		}
	}

	for _, kw := range roleKeywords {
		if strings.Contains(roleLower, kw.keyword) {
			if bm, ok := industryRoles[kw.role]; ok {
				return kw.role, bm
			}
		}
	}

	return "", RoleBenchmark{}
}

func headlineGaps(headline, role string) []types.Gap {
	if headline == "" {
		return []types.Gap{{
			Category:       "headline",
			GapType:        "missing",
			Description:    "No headline found",
			Priority:       types.PriorityCritical,
			ActionRequired: fmt.Sprintf("Add a compelling headline like: %q", role+" | [Specialty] | [Key Achievement]"),
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    10,
		}}
	}

	var gaps []types.Gap
	if !strings.Contains(headline, "|") {
		gaps = append(gaps, types.Gap{
			Category:       "headline",
			GapType:        "incomplete",
			Description:    "Headline lacks structure (use | to separate key elements)",
			Priority:       types.PriorityHigh,
			ActionRequired: `Restructure headline with format: "Role | Specialty | Achievement"`,
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    8,
		})
	}
	if len(headline) < 50 {
		gaps = append(gaps, types.Gap{
			Category:       "headline",
			GapType:        "weak",
			Description:    fmt.Sprintf("Headline is too short (%d chars). Ideal: 100-200 characters", len(headline)),
			Priority:       types.PriorityMedium,
			ActionRequired: "Expand headline with more specific details about your expertise and impact",
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    6,
		})
	}
	if !containsDigit(headline) {
		gaps = append(gaps, types.Gap{
			Category:       "headline",
			GapType:        "incomplete",
			Description:    "Headline lacks quantification (e.g., years of experience, team size)",
			Priority:       types.PriorityMedium,
			ActionRequired: `Add a metric to your headline (e.g., "10+ Years Experience" or "Leading Team of 20+")`,
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    5,
		})
	}
	return gaps
}

func aboutGaps(about string) []types.Gap {
	if about == "" {
		return []types.Gap{{
			Category:       "about",
			GapType:        "missing",
			Description:    "No about section found",
			Priority:       types.PriorityCritical,
			ActionRequired: "Write a compelling 200-300 word about section highlighting your expertise and achievements",
			EffortLevel:    types.EffortModerate,
			ImpactScore:    10,
		}}
	}

	var gaps []types.Gap
	if words := len(strings.Fields(about)); words < 100 {
		gaps = append(gaps, types.Gap{
			Category:       "about",
			GapType:        "weak",
			Description:    fmt.Sprintf("About section too short (%d words). Ideal: 200-300 words", words),
			Priority:       types.PriorityHigh,
			ActionRequired: "Expand your about section with more details about achievements, expertise, and value proposition",
			EffortLevel:    types.EffortModerate,
			ImpactScore:    8,
		})
	}
	if !containsDigit(about) {
		gaps = append(gaps, types.Gap{
			Category:       "about",
			GapType:        "incomplete",
			Description:    "About section lacks quantified achievements",
			Priority:       types.PriorityHigh,
			ActionRequired: `Add specific metrics (e.g., "increased revenue by 40%", "led team of 15")`,
			EffortLevel:    types.EffortModerate,
			ImpactScore:    9,
		})
	}
	aboutLower := strings.ToLower(about)
	hasCTA := false
	for _, kw := range ctaKeywords {
		if strings.Contains(aboutLower, kw) {
			hasCTA = true
			break
		}
	}
	if !hasCTA {
		gaps = append(gaps, types.Gap{
			Category:       "about",
			GapType:        "incomplete",
			Description:    "About section lacks call to action",
			Priority:       types.PriorityMedium,
			ActionRequired: `Add a call to action at the end (e.g., "Let's connect to discuss...")`,
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    5,
		})
	}
	return gaps
}

func experienceGaps(entries []types.ExperienceEntry) []types.Gap {
	if len(entries) == 0 {
		return []types.Gap{{
			Category:       "experience",
			GapType:        "missing",
			Description:    "No experience entries found",
			Priority:       types.PriorityCritical,
			ActionRequired: "Add your work experience with detailed descriptions and achievements",
			EffortLevel:    types.EffortSignificant,
			ImpactScore:    10,
		}}
	}

	var gaps []types.Gap
	for i, exp := range entries {
		title := exp.Title
		if title == "" {
			title = fmt.Sprintf("Position %d", i+1)
		}
		switch {
		case len(exp.Description) < 50:
			gaps = append(gaps, types.Gap{
				Category:       "experience",
				GapType:        "incomplete",
				Description:    fmt.Sprintf("Experience %q lacks detailed description", title),
				Priority:       types.PriorityHigh,
				ActionRequired: fmt.Sprintf("Add 3-5 bullet points with achievements for %q", title),
				EffortLevel:    types.EffortModerate,
				ImpactScore:    8,
			})
		case !containsDigit(exp.Description):
			gaps = append(gaps, types.Gap{
				Category:       "experience",
				GapType:        "weak",
				Description:    fmt.Sprintf("Experience %q lacks quantified achievements", title),
				Priority:       types.PriorityHigh,
				ActionRequired: fmt.Sprintf("Add metrics to %q (e.g., percentages, dollar amounts, team sizes)", title),
				EffortLevel:    types.EffortModerate,
				ImpactScore:    7,
			})
		}
	}
	return gaps
}

func skillsGaps(skills, mustHave []string) []types.Gap {
	var gaps []types.Gap

	switch count := len(skills); {
	case count < 20:
		gaps = append(gaps, types.Gap{
			Category:       "skills",
			GapType:        "incomplete",
			Description:    fmt.Sprintf("Only %d skills listed. Ideal: 50-100 skills", count),
			Priority:       types.PriorityHigh,
			ActionRequired: "Add more skills including technical, soft skills, and tools",
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    7,
		})
	case count < 50:
		gaps = append(gaps, types.Gap{
			Category:       "skills",
			GapType:        "weak",
			Description:    fmt.Sprintf("%d skills listed. Consider adding more for better visibility", count),
			Priority:       types.PriorityMedium,
			ActionRequired: "Add industry-specific and emerging technology skills",
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    5,
		})
	}

	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = true
	}
	var missing []string
	for _, s := range mustHave {
		if !have[strings.ToLower(s)] {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		head := missing
		if len(head) > 5 {
			head = head[:5]
		}
		gaps = append(gaps, types.Gap{
			Category:       "skills",
			GapType:        "missing",
			Description:    "Missing critical skills: " + strings.Join(head, ", "),
			Priority:       types.PriorityHigh,
			ActionRequired: "Add these must-have skills: " + strings.Join(missing, ", "),
			EffortLevel:    types.EffortQuickWin,
			ImpactScore:    8,
		})
	}
	return gaps
}

// certificationGaps scans skills and about together since certifications
// are usually listed in one of the two.
func certificationGaps(skills []string, about string, recommended []string) []types.Gap {
	combined := strings.ToLower(strings.Join(skills, " ") + " " + about)
	for _, kw := range certKeywords {
		if strings.Contains(combined, kw) {
			return nil
		}
	}

	action := "Add relevant industry certifications"
	if len(recommended) > 0 {
		head := recommended
		if len(head) > 3 {
			head = head[:3]
		}
		action = "Consider obtaining: " + strings.Join(head, ", ")
	}
	return []types.Gap{{
		Category:       "certifications",
		GapType:        "missing",
		Description:    "No certifications detected in profile",
		Priority:       types.PriorityMedium,
		ActionRequired: action,
		EffortLevel:    types.EffortSignificant,
		ImpactScore:    6,
	}}
}

// prioritize orders gaps by priority rank, then by impact descending.
// The sort is stable so equal gaps keep their category order.
func prioritize(gaps []types.Gap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		ri, ok := priorityRank[gaps[i].Priority]
		if !ok {
			ri = 4
		}
		rj, ok := priorityRank[gaps[j].Priority]
		if !ok {
			rj = 4
		}
		if ri != rj {
			return ri < rj
		}
		return gaps[i].ImpactScore > gaps[j].ImpactScore
	})
}

// completeness maps accumulated gap impact to a 30-95 score. A profile
// with no gaps caps at 95, never 100.
func completeness(gaps []types.Gap) int {
	if len(gaps) == 0 {
		return 95
	}
	total := 0
	for _, g := range gaps {
		total += g.ImpactScore
	}
	maxImpact := len(gaps) * 10
	deduction := int(float64(total) / float64(maxImpact) * 50)
	if deduction > 50 {
		deduction = 50
	}
	score := 95 - deduction
	if score < 30 {
		score = 30
	}
	return score
}

func topByEffort(gaps []types.Gap, effort string, n int) []types.Gap {
	var out []types.Gap
	for _, g := range gaps {
		if g.EffortLevel == effort {
			out = append(out, g)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

func topByPriority(gaps []types.Gap, n int) []types.Gap {
	var out []types.Gap
	for _, g := range gaps {
		if g.Priority == types.PriorityCritical || g.Priority == types.PriorityHigh {
			out = append(out, g)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

func missingByCategory(gaps []types.Gap) map[string][]string {
	missing := make(map[string][]string, len(gapCategories))
	for _, c := range gapCategories {
		missing[c] = []string{}
	}
	for _, g := range gaps {
		if _, ok := missing[g.Category]; ok {
			missing[g.Category] = append(missing[g.Category], g.ActionRequired)
		}
	}
	return missing
}

// roadmap groups gap actions into three fixed phases by effort level.
// Phases with no actions are omitted; each phase lists at most five.
func roadmap(gaps []types.Gap) []types.RoadmapPhase {
	phases := []struct {
		effort    string
		phase     string
		timeFrame string
		impact    string
	}{
		{types.EffortQuickWin, "Phase 1: Quick Wins", "1-2 hours", "Immediate visibility improvement"},
		{types.EffortModerate, "Phase 2: Content Enhancement", "1-2 days", "Significant profile strength increase"},
		{types.EffortSignificant, "Phase 3: Long-term Development", "1-4 weeks", "Complete profile transformation"},
	}

	var out []types.RoadmapPhase
	for _, p := range phases {
		var actions []string
		for _, g := range gaps {
			if g.EffortLevel == p.effort {
				actions = append(actions, g.ActionRequired)
				if len(actions) == 5 {
					break
				}
			}
		}
		if len(actions) > 0 {
			out = append(out, types.RoadmapPhase{
				Phase:          p.phase,
				TimeFrame:      p.timeFrame,
				Actions:        actions,
				ExpectedImpact: p.impact,
			})
		}
	}
	return out
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

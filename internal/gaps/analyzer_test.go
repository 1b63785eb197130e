package gaps

import (
	"strings"
	"testing"

	"linkedopt/internal/types"
)

func strongProfile() types.Profile {
	skills := []string{
		"Python", "JavaScript", "SQL", "Git", "AWS/Azure/GCP",
		"REST APIs", "Agile/Scrum", "CI/CD", "Docker",
	}
	filler := []string{
		"Kubernetes", "Terraform", "Go", "PostgreSQL", "Redis", "Kafka", "gRPC",
		"GraphQL", "React", "TypeScript", "Linux", "Bash", "Monitoring", "Grafana",
		"Prometheus", "Microservices", "System Design", "Distributed Systems",
		"Performance Tuning", "Code Review", "Mentoring", "Technical Writing",
		"Incident Response", "Load Testing", "API Design", "Event Sourcing",
		"Message Queues", "Service Mesh", "Observability", "Capacity Planning",
		"Team Leadership", "Communication", "Problem Solving", "Estimation",
		"Security", "OAuth", "Networking", "Caching", "Sharding", "Data Modeling",
		"Testing",
	}
	skills = append(skills, filler...)

	about := strings.Repeat("Delivered measurable outcomes across large distributed platforms every quarter this year. ", 12)
	about += "Improved reliability by 45% while cutting infrastructure spend. Let's connect to discuss opportunities."

	return types.Profile{
		Headline: "Senior Software Engineer | Cloud Platforms | 10+ Years Building Distributed Systems",
		About:    about,
		Experience: []types.ExperienceEntry{
			{
				Title:       "Senior Software Engineer",
				Company:     "Acme",
				Dates:       "2019 - Present",
				Description: "Led migration of 12 services to Kubernetes, cutting deploy time by 60% and paging volume in half.",
			},
		},
		Skills: skills,
	}
}

func TestAnalyzeMatchedRole(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name     string
		industry string
		role     string
		want     string
	}{
		{"exact match", "Technology", "Software Engineer", "Software Engineer"},
		{"exact match ignores case", "Technology", "software engineer", "Software Engineer"},
		{"partial word match", "Technology", "Staff Engineer", "Software Engineer"},
		{"keyword match", "Technology", "Backend Developer", "Software Engineer"},
		{"partial before keyword", "Technology", "VP of Data", "Data Scientist"},
		{"finance partial", "Finance", "Investment Professional", "Investment Banker"},
		{"unknown role synthesized", "Technology", "Growth Hacker", GenericRoleName},
		{"unknown industry falls back", "Retail", "Software Engineer", "Software Engineer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(types.Profile{}, types.Target{Industry: tt.industry, Role: tt.role})
			if got.MatchedRole != tt.want {
				t.Errorf("MatchedRole = %q, want %q", got.MatchedRole, tt.want)
			}
		})
	}
}

func TestAnalyzeEmptyProfile(t *testing.T) {
	analyzer := NewAnalyzer()
	got := analyzer.Analyze(types.Profile{}, types.Target{Industry: "Technology", Role: "Software Engineer"})

	if len(got.Gaps) != 6 {
		t.Fatalf("got %d gaps, want 6: %+v", len(got.Gaps), got.Gaps)
	}
	for i := 0; i < 3; i++ {
		if got.Gaps[i].Priority != types.PriorityCritical {
			t.Errorf("gap %d priority = %q, want critical", i, got.Gaps[i].Priority)
		}
	}
	// Within the high band the impact-8 skills gap outranks the impact-7 one.
	if got.Gaps[3].ImpactScore != 8 || got.Gaps[4].ImpactScore != 7 {
		t.Errorf("high gaps ordered %d, %d, want 8, 7", got.Gaps[3].ImpactScore, got.Gaps[4].ImpactScore)
	}
	if got.Gaps[5].Priority != types.PriorityMedium {
		t.Errorf("last gap priority = %q, want medium", got.Gaps[5].Priority)
	}

	if got.CompletenessScore != 53 {
		t.Errorf("CompletenessScore = %d, want 53", got.CompletenessScore)
	}

	for _, g := range got.QuickWins {
		if g.EffortLevel != types.EffortQuickWin {
			t.Errorf("quick win has effort %q", g.EffortLevel)
		}
	}
	if len(got.HighImpact) != 5 {
		t.Errorf("got %d high impact gaps, want 5", len(got.HighImpact))
	}
	for _, g := range got.HighImpact {
		if g.Priority != types.PriorityCritical && g.Priority != types.PriorityHigh {
			t.Errorf("high impact gap has priority %q", g.Priority)
		}
	}

	if len(got.Roadmap) != 3 {
		t.Fatalf("got %d roadmap phases, want 3", len(got.Roadmap))
	}
	if got.Roadmap[0].Phase != "Phase 1: Quick Wins" || got.Roadmap[0].TimeFrame != "1-2 hours" {
		t.Errorf("unexpected first phase: %+v", got.Roadmap[0])
	}
	if got.Roadmap[2].Phase != "Phase 3: Long-term Development" {
		t.Errorf("unexpected last phase: %+v", got.Roadmap[2])
	}
}

func TestAnalyzeStrongProfile(t *testing.T) {
	analyzer := NewAnalyzer()
	got := analyzer.Analyze(strongProfile(), types.Target{Industry: "Technology", Role: "Software Engineer"})

	if len(got.Gaps) != 0 {
		t.Fatalf("got %d gaps, want 0: %+v", len(got.Gaps), got.Gaps)
	}
	if got.CompletenessScore != 95 {
		t.Errorf("CompletenessScore = %d, want 95", got.CompletenessScore)
	}
	if len(got.Roadmap) != 0 {
		t.Errorf("got %d roadmap phases, want 0", len(got.Roadmap))
	}
}

func TestAnalyzeGapOrdering(t *testing.T) {
	// Headline present but weak, everything else missing, so the result
	// mixes every priority band.
	profile := types.Profile{Headline: "Engineer"}
	analyzer := NewAnalyzer()
	got := analyzer.Analyze(profile, types.Target{Industry: "Technology", Role: "Software Engineer"})

	for i := 1; i < len(got.Gaps); i++ {
		prev, cur := got.Gaps[i-1], got.Gaps[i]
		if priorityRank[prev.Priority] > priorityRank[cur.Priority] {
			t.Errorf("gap %d priority %q sorted after %q", i, cur.Priority, prev.Priority)
		}
		if prev.Priority == cur.Priority && prev.ImpactScore < cur.ImpactScore {
			t.Errorf("gap %d impact %d sorted after %d within %q", i, cur.ImpactScore, prev.ImpactScore, cur.Priority)
		}
	}
}

func TestCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		impacts []int
		want    int
	}{
		{"no gaps", nil, 95},
		{"single max impact", []int{10}, 45},
		{"half impact", []int{5, 5}, 70},
		{"mixed", []int{10, 10, 10, 7, 8, 6}, 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gaps []types.Gap
			for _, impact := range tt.impacts {
				gaps = append(gaps, types.Gap{ImpactScore: impact})
			}
			if got := completeness(gaps); got != tt.want {
				t.Errorf("completeness = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompletenessNeverRisesWithMaxImpactGap(t *testing.T) {
	gaps := []types.Gap{{ImpactScore: 3}, {ImpactScore: 6}}
	before := completeness(gaps)
	after := completeness(append(gaps, types.Gap{ImpactScore: 10}))
	if after > before {
		t.Errorf("score rose from %d to %d after adding a max impact gap", before, after)
	}
}

func TestMissingToPerfectCategories(t *testing.T) {
	analyzer := NewAnalyzer()
	got := analyzer.Analyze(types.Profile{}, types.Target{Industry: "Technology", Role: "Software Engineer"})

	for _, category := range gapCategories {
		if _, ok := got.MissingToPerfect[category]; !ok {
			t.Errorf("missing category %q", category)
		}
	}
	if len(got.MissingToPerfect["headline"]) == 0 {
		t.Error("expected headline actions for an empty profile")
	}
	if len(got.MissingToPerfect["skills"]) != 2 {
		t.Errorf("got %d skills actions, want 2", len(got.MissingToPerfect["skills"]))
	}
}

func TestTemplateContents(t *testing.T) {
	analyzer := NewAnalyzer()
	tpl, matched := analyzer.Template(types.Target{Industry: "Finance", Role: "Financial Analyst"})

	if matched != "Financial Analyst" {
		t.Fatalf("matched = %q, want Financial Analyst", matched)
	}
	if tpl.Headline.MaxLength != 220 {
		t.Errorf("MaxLength = %d, want 220", tpl.Headline.MaxLength)
	}
	if tpl.TargetScore != 95 {
		t.Errorf("TargetScore = %d, want 95", tpl.TargetScore)
	}
	found := false
	for _, s := range tpl.Skills.MustHave {
		if s == "Financial Modeling" {
			found = true
		}
	}
	if !found {
		t.Error("expected Financial Modeling in must-have skills")
	}
	if len(tpl.Experience.ActionVerbs) != 14 {
		t.Errorf("got %d action verbs, want 14", len(tpl.Experience.ActionVerbs))
	}
}

func TestRenderReport(t *testing.T) {
	analyzer := NewAnalyzer()
	analysis := analyzer.Analyze(types.Profile{}, types.Target{Industry: "Technology", Role: "Software Engineer"})
	report := RenderReport(analysis)

	for _, want := range []string{
		"# Perfect Profile Analysis Report",
		"## Profile Completeness Score: 53/100",
		"## Your Perfect Profile Template",
		"## Quick Wins (Do These First)",
		"### Phase 1: Quick Wins (1-2 hours)",
		"### HEADLINE",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

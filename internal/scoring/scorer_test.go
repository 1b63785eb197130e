package scoring

import (
	"strings"
	"testing"

	"linkedopt/internal/types"
)

func TestScoreHeadline(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name     string
		headline string
		role     string
		want     int
	}{
		{
			name:     "all checks pass",
			headline: "Software Engineer helping startups build reliable cloud data platforms",
			role:     "Software Engineer",
			want:     100,
		},
		{
			name:     "empty headline only scores professional tone",
			headline: "",
			role:     "Software Engineer",
			want:     25,
		},
		{
			name:     "passive language loses tone points",
			headline: "Software Engineer helping teams, currently looking for new opportunities now",
			role:     "Software Engineer",
			want:     75,
		},
		{
			name:     "role word match without full role string",
			headline: "Senior Backend Engineer | Payments | Scaling to 10M users",
			role:     "Software Engineer",
			want:     75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.scoreHeadline(tt.headline, tt.role)
			if got.Score != tt.want {
				t.Errorf("scoreHeadline() score = %d, want %d (feedback: %v)", got.Score, tt.want, got.Feedback)
			}
			if got.Score < 100 && len(got.Feedback) == 0 {
				t.Error("scoreHeadline() imperfect score must carry feedback")
			}
		})
	}
}

func TestScoreEmptySections(t *testing.T) {
	scorer := NewScorer()
	quality := scorer.Score(types.Profile{Headline: "x"}, types.Target{Industry: "Technology", Role: "Software Engineer"})

	if quality.Experience.Score != 0 {
		t.Errorf("empty experience score = %d, want 0", quality.Experience.Score)
	}
	if len(quality.Experience.Feedback) == 0 {
		t.Error("empty experience must carry feedback")
	}
	if quality.Skills.Score != 0 {
		t.Errorf("empty skills score = %d, want 0", quality.Skills.Score)
	}
	if len(quality.Skills.Feedback) == 0 {
		t.Error("empty skills must carry feedback")
	}
}

// buildAbout assembles an about section of roughly 320 words with
// story, keyword, quantifiable, and call-to-action signals present.
func buildAbout() string {
	var b strings.Builder
	b.WriteString("My journey in software began with a passion for data and tech platforms. ")
	b.WriteString("I have delivered a 40% improvement and saved $2M for my clients. ")
	b.WriteString("Feel free to connect if you want to collaborate. ")
	for i := 0; i < 40; i++ {
		b.WriteString("steady measurable outcomes across every release cycle ")
	}
	return b.String()
}

func TestScoreRoundTrip(t *testing.T) {
	scorer := NewScorer()

	profile := types.Profile{
		Headline: "Senior Backend Engineer | Payments | Scaling to 10M users",
		About:    buildAbout(),
		Experience: []types.ExperienceEntry{
			{
				Title:       "Backend Engineer",
				Company:     "Paystack",
				Dates:       "2019 - Present",
				Description: "Led the payments team and improved checkout conversion by 18% across mobile clients",
			},
		},
		Skills: []string{
			"Software Design", "Data Analysis", "Programming", "Coding Standards",
			"Digital Strategy", "AI Research", "Leadership", "Python", "SQL",
			"Communication", "Project Planning", "Mentoring",
		},
	}
	target := types.Target{Industry: "Technology", Role: "Software Engineer"}

	quality := scorer.Score(profile, target)

	if quality.Headline.Score < 75 {
		t.Errorf("headline score = %d, want >= 75 (feedback: %v)", quality.Headline.Score, quality.Headline.Feedback)
	}
	if quality.About.Score < 80 {
		t.Errorf("about score = %d, want >= 80 (feedback: %v)", quality.About.Score, quality.About.Feedback)
	}
	if quality.Skills.Score < 70 {
		t.Errorf("skills score = %d, want >= 70 (feedback: %v)", quality.Skills.Score, quality.Skills.Feedback)
	}
	if quality.Experience.Score != 100 {
		t.Errorf("experience score = %d, want 100", quality.Experience.Score)
	}
	if quality.Overall.Score <= 0 || quality.Overall.Score > 100 {
		t.Errorf("overall score = %d, out of range", quality.Overall.Score)
	}
}

func TestScoreExperienceNormalization(t *testing.T) {
	scorer := NewScorer()

	strong := "Led and managed rollouts that improved uptime by 30%"
	weak := "Responsible for various duties"

	tests := []struct {
		name        string
		experiences []types.ExperienceEntry
		want        int
	}{
		{
			name:        "single strong entry",
			experiences: []types.ExperienceEntry{{Title: "SRE", Description: strong}},
			want:        100,
		},
		{
			name: "strong and weak entries average out",
			experiences: []types.ExperienceEntry{
				{Title: "SRE", Description: strong},
				{Title: "Intern", Description: weak},
			},
			want: 50,
		},
		{
			name:        "single weak entry",
			experiences: []types.ExperienceEntry{{Title: "Intern", Description: weak}},
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.scoreExperience(tt.experiences)
			if got.Score != tt.want {
				t.Errorf("scoreExperience() = %d, want %d", got.Score, tt.want)
			}
		})
	}
}

func TestScoreSkillsIndustryFallback(t *testing.T) {
	scorer := NewScorer()

	// Unknown industries score against the Technology keyword list.
	skills := []string{"Software Design", "Data Pipelines", "Tech Writing", "Coding", "AI Tooling", "Python", "Leadership", "Delivery", "Planning", "Research"}
	got := scorer.scoreSkills(skills, "Aerospace")
	want := scorer.scoreSkills(skills, "Technology")
	if got.Score != want.Score {
		t.Errorf("unknown industry score = %d, want %d (Technology fallback)", got.Score, want.Score)
	}
}

func TestRecommendationsDeduplicate(t *testing.T) {
	scorer := NewScorer()

	profile := types.Profile{
		Experience: []types.ExperienceEntry{
			{Title: "Dev", Description: "wrote code"},
			{Title: "Dev", Description: "wrote more code"},
		},
	}
	quality := scorer.Score(profile, types.Target{Industry: "Technology", Role: "Software Engineer"})

	recs := scorer.Recommendations(quality)
	if len(recs) == 0 {
		t.Fatal("expected recommendations for a weak profile")
	}
	seen := make(map[string]bool)
	for _, r := range recs {
		if seen[r] {
			t.Errorf("duplicate recommendation: %q", r)
		}
		seen[r] = true
	}
}

func TestScoreOverallWeights(t *testing.T) {
	scorer := NewScorer()

	quality := types.ProfileQuality{
		Headline:   types.QualityMetrics{Score: 100, MaxScore: 100},
		About:      types.QualityMetrics{Score: 100, MaxScore: 100},
		Experience: types.QualityMetrics{Score: 0, MaxScore: 100, Feedback: []string{"No experience entries found"}},
		Skills:     types.QualityMetrics{Score: 0, MaxScore: 100, Feedback: []string{"No skills listed"}},
	}

	overall := scorer.scoreOverall(quality)
	// 100*0.2 + 100*0.3 = 50
	if overall.Score != 50 {
		t.Errorf("overall score = %d, want 50", overall.Score)
	}
	if len(overall.Feedback) != 2 {
		t.Errorf("overall feedback length = %d, want 2", len(overall.Feedback))
	}
}

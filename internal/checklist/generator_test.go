package checklist

import (
	"strings"
	"testing"

	"linkedopt/internal/types"
)

func TestGenerateEmptyProfile(t *testing.T) {
	g := NewGenerator()
	quality := types.ProfileQuality{
		Headline:   types.QualityMetrics{Score: 25, MaxScore: 100, Feedback: []string{"Missing clear value proposition"}},
		About:      types.QualityMetrics{Score: 0, MaxScore: 100, Feedback: []string{"Missing storytelling elements", "Missing quantifiable achievements"}},
		Experience: types.QualityMetrics{Score: 0, MaxScore: 100, Feedback: []string{"No experience entries found"}},
		Skills:     types.QualityMetrics{Score: 0, MaxScore: 100, Feedback: []string{"No skills listed"}},
	}

	got := g.Generate(types.Profile{}, quality, types.Target{Industry: "Technology", Role: "Software Engineer"})

	titles := make(map[string]bool)
	for _, task := range got.Tasks {
		titles[task.Title] = true
	}
	for _, want := range []string{
		"Create Compelling Headline",
		"Add Value Proposition",
		"Expand About Section",
		"Add Career Story",
		"Add Measurable Achievements",
		"Add Experience Entries",
		"Add More Skills",
		"Get Recommendations",
		"Plan Content Strategy",
	} {
		if !titles[want] {
			t.Errorf("missing task %q", want)
		}
	}

	// IDs are sequential after sorting.
	for i, task := range got.Tasks {
		if want := "task_" + string(rune('1'+i)); i < 9 && task.ID != want {
			t.Errorf("task %d ID = %q, want %q", i, task.ID, want)
		}
	}
}

func TestGenerateTaskOrdering(t *testing.T) {
	g := NewGenerator()
	got := g.Generate(types.Profile{}, types.ProfileQuality{}, types.Target{Industry: "Technology", Role: "CTO"})

	for i := 1; i < len(got.Tasks); i++ {
		prev, ok := priorityRank[got.Tasks[i-1].Priority]
		if !ok {
			t.Fatalf("unknown priority %q", got.Tasks[i-1].Priority)
		}
		cur := priorityRank[got.Tasks[i].Priority]
		if prev > cur {
			t.Errorf("task %d priority %q sorted after %q", i, got.Tasks[i].Priority, got.Tasks[i-1].Priority)
		}
	}
	last := got.Tasks[len(got.Tasks)-1]
	if last.Title != "Plan Content Strategy" {
		t.Errorf("low priority task not last: %q", last.Title)
	}
}

func TestGenerateQuantifiedExperienceSkipsMetricTasks(t *testing.T) {
	g := NewGenerator()
	profile := types.Profile{
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Description: "Increased throughput by 40% across services"},
			{Title: "Analyst", Description: "Wrote reports and attended meetings"},
		},
	}
	got := g.Generate(profile, types.ProfileQuality{}, types.Target{Industry: "Technology", Role: "Engineer"})

	var metricTasks []string
	for _, task := range got.Tasks {
		if strings.HasPrefix(task.Title, "Add Metrics to ") {
			metricTasks = append(metricTasks, task.Title)
		}
	}
	if len(metricTasks) != 1 || metricTasks[0] != "Add Metrics to Analyst" {
		t.Errorf("metric tasks = %v, want only the Analyst entry", metricTasks)
	}
}

func TestGenerateStrongProfileMinimalTasks(t *testing.T) {
	g := NewGenerator()
	about := strings.Repeat("A detailed professional story with measurable wins shared openly here today. ", 30)
	profile := types.Profile{
		Headline: strings.Repeat("a", 80),
		About:    about,
		Experience: []types.ExperienceEntry{
			{Title: "Lead", Description: "Increased revenue by $2M"},
		},
		Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
	}
	quality := types.ProfileQuality{
		Headline:   types.QualityMetrics{Score: 100, MaxScore: 100},
		About:      types.QualityMetrics{Score: 100, MaxScore: 100},
		Experience: types.QualityMetrics{Score: 100, MaxScore: 100},
		Skills:     types.QualityMetrics{Score: 100, MaxScore: 100},
	}

	got := g.Generate(profile, quality, types.Target{Industry: "Technology", Role: "Lead"})
	if len(got.Tasks) != 2 {
		t.Fatalf("got %d tasks, want only the 2 general ones: %+v", len(got.Tasks), got.Tasks)
	}
	for _, task := range got.Tasks {
		if task.Section != "General" {
			t.Errorf("unexpected task: %+v", task)
		}
	}
}

func TestEstimateCompletion(t *testing.T) {
	tasks := []types.ChecklistTask{
		{Priority: types.PriorityHigh, EstimatedTime: "10 min"},
		{Priority: types.PriorityHigh, EstimatedTime: "20 min"},
		{Priority: types.PriorityMedium, EstimatedTime: "20 min"},
		{Priority: types.PriorityLow, EstimatedTime: "30 min"},
	}

	got := EstimateCompletion(tasks)
	if got.TotalMinutes != 80 {
		t.Errorf("TotalMinutes = %d, want 80", got.TotalMinutes)
	}
	if got.TotalHours != 1.3 {
		t.Errorf("TotalHours = %v, want 1.3", got.TotalHours)
	}
	if got.PriorityBreakdown[types.PriorityHigh] != 30 || got.PriorityBreakdown[types.PriorityLow] != 30 {
		t.Errorf("breakdown: %v", got.PriorityBreakdown)
	}
	if got.FormattedTime != "1 hour 20 minutes" {
		t.Errorf("FormattedTime = %q", got.FormattedTime)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45 minutes"},
		{60, "1 hour 0 minutes"},
		{119, "1 hour 59 minutes"},
		{120, "2 hours 0 minutes"},
		{185, "3 hours 5 minutes"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

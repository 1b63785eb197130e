// Package checklist turns scoring results into a personalized list of
// profile improvement tasks with time estimates.
package checklist

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"linkedopt/internal/types"
)

// Impact labels attached to tasks.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

var minutesRe = regexp.MustCompile(`\d+`)

var priorityRank = map[string]int{
	types.PriorityHigh:   0,
	types.PriorityMedium: 1,
	types.PriorityLow:    2,
}

var impactRank = map[string]int{
	ImpactHigh:   0,
	ImpactMedium: 1,
	ImpactLow:    2,
}

// metricIndicators mark an experience description as quantified.
var metricIndicators = []string{"%", "$", "number", "increased", "decreased"}

// Generator builds checklists from profiles and their quality scores.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces the full task list, ordered by priority then
// impact, with sequential task IDs assigned after sorting.
func (g *Generator) Generate(profile types.Profile, quality types.ProfileQuality, target types.Target) types.Checklist {
	var tasks []types.ChecklistTask
	tasks = append(tasks, headlineTasks(profile.Headline, quality.Headline)...)
	tasks = append(tasks, aboutTasks(profile.About, quality.About)...)
	tasks = append(tasks, experienceTasks(profile.Experience, quality.Experience)...)
	tasks = append(tasks, skillsTasks(profile.Skills, quality.Skills, target.Industry)...)
	tasks = append(tasks, generalTasks()...)

	sortTasks(tasks)
	for i := range tasks {
		tasks[i].ID = fmt.Sprintf("task_%d", i+1)
	}

	return types.Checklist{
		Tasks:    tasks,
		Estimate: EstimateCompletion(tasks),
	}
}

func headlineTasks(headline string, score types.QualityMetrics) []types.ChecklistTask {
	var tasks []types.ChecklistTask

	if len(headline) < 60 {
		tasks = append(tasks, types.ChecklistTask{
			Title:         "Create Compelling Headline",
			Description:   "Write a headline that's 60-120 characters and includes your value proposition",
			Priority:      types.PriorityHigh,
			EstimatedTime: "10 min",
			ImpactLevel:   ImpactHigh,
			Section:       "Headline",
		})
	}
	if score.Score < 80 && feedbackMentions(score.Feedback, "value proposition") {
		tasks = append(tasks, types.ChecklistTask{
			Title:         "Add Value Proposition",
			Description:   "Include what value you bring to potential employers",
			Priority:      types.PriorityHigh,
			EstimatedTime: "5 min",
			ImpactLevel:   ImpactHigh,
			Section:       "Headline",
		})
	}
	return tasks
}

func aboutTasks(about string, score types.QualityMetrics) []types.ChecklistTask {
	var tasks []types.ChecklistTask

	words := len(strings.Fields(about))
	if words < 300 {
		tasks = append(tasks, types.ChecklistTask{
			Title:         "Expand About Section",
			Description:   fmt.Sprintf("Expand from %d to 300-500 words with more detail", words),
			Priority:      types.PriorityHigh,
			EstimatedTime: "20 min",
			ImpactLevel:   ImpactHigh,
			Section:       "About",
		})
	}
	if score.Score < 70 {
		if feedbackMentions(score.Feedback, "storytelling") {
			tasks = append(tasks, types.ChecklistTask{
				Title:         "Add Career Story",
				Description:   "Add your professional journey and passion narrative",
				Priority:      types.PriorityMedium,
				EstimatedTime: "15 min",
				ImpactLevel:   ImpactMedium,
				Section:       "About",
			})
		}
		if feedbackMentions(score.Feedback, "quantifiable") {
			tasks = append(tasks, types.ChecklistTask{
				Title:         "Add Measurable Achievements",
				Description:   "Include specific numbers and achievements in your story",
				Priority:      types.PriorityHigh,
				EstimatedTime: "10 min",
				ImpactLevel:   ImpactHigh,
				Section:       "About",
			})
		}
	}
	return tasks
}

func experienceTasks(entries []types.ExperienceEntry, score types.QualityMetrics) []types.ChecklistTask {
	if len(entries) == 0 {
		return []types.ChecklistTask{{
			Title:         "Add Experience Entries",
			Description:   "Add your work experience with detailed descriptions",
			Priority:      types.PriorityHigh,
			EstimatedTime: "30 min",
			ImpactLevel:   ImpactHigh,
			Section:       "Experience",
		}}
	}

	var tasks []types.ChecklistTask
	for _, exp := range entries {
		title := exp.Title
		if title == "" {
			title = "Experience"
		}
		desc := strings.ToLower(exp.Description)
		quantified := false
		for _, indicator := range metricIndicators {
			if strings.Contains(desc, indicator) {
				quantified = true
				break
			}
		}
		if !quantified {
			tasks = append(tasks, types.ChecklistTask{
				Title:         "Add Metrics to " + title,
				Description:   "Add specific numbers and results to this experience",
				Priority:      types.PriorityHigh,
				EstimatedTime: "10 min",
				ImpactLevel:   ImpactHigh,
				Section:       "Experience",
			})
		}
	}

	if score.Score < 70 && feedbackMentions(score.Feedback, "action verbs") {
		tasks = append(tasks, types.ChecklistTask{
			Title:         "Add Action Verbs",
			Description:   "Start bullet points with strong action verbs",
			Priority:      types.PriorityHigh,
			EstimatedTime: "15 min",
			ImpactLevel:   ImpactHigh,
			Section:       "Experience",
		})
	}
	return tasks
}

func skillsTasks(skills []string, score types.QualityMetrics, industry string) []types.ChecklistTask {
	var tasks []types.ChecklistTask

	if len(skills) < 10 {
		tasks = append(tasks, types.ChecklistTask{
			Title:         "Add More Skills",
			Description:   fmt.Sprintf("Add %d more relevant skills to reach optimal count", 10-len(skills)),
			Priority:      types.PriorityHigh,
			EstimatedTime: "10 min",
			ImpactLevel:   ImpactHigh,
			Section:       "Skills",
		})
	}
	if score.Score < 70 && feedbackMentions(score.Feedback, "industry-relevant") {
		tasks = append(tasks, types.ChecklistTask{
			Title:         "Add Industry-Specific Skills",
			Description:   fmt.Sprintf("Add more %s specific skills", industry),
			Priority:      types.PriorityHigh,
			EstimatedTime: "15 min",
			ImpactLevel:   ImpactHigh,
			Section:       "Skills",
		})
	}
	return tasks
}

// generalTasks apply to every profile regardless of scores.
func generalTasks() []types.ChecklistTask {
	return []types.ChecklistTask{
		{
			Title:         "Get Recommendations",
			Description:   "Request recommendations from managers and colleagues",
			Priority:      types.PriorityMedium,
			EstimatedTime: "20 min",
			ImpactLevel:   ImpactMedium,
			Section:       "General",
		},
		{
			Title:         "Plan Content Strategy",
			Description:   "Create 30-day content and engagement plan",
			Priority:      types.PriorityLow,
			EstimatedTime: "30 min",
			ImpactLevel:   ImpactLow,
			Section:       "General",
		},
	}
}

// sortTasks orders by priority, then impact, keeping insertion order
// for ties.
func sortTasks(tasks []types.ChecklistTask) {
	rank := func(t types.ChecklistTask) (int, int) {
		p, ok := priorityRank[t.Priority]
		if !ok {
			p = 3
		}
		i, ok := impactRank[t.ImpactLevel]
		if !ok {
			i = 3
		}
		return p, i
	}
	sort.SliceStable(tasks, func(a, b int) bool {
		pa, ia := rank(tasks[a])
		pb, ib := rank(tasks[b])
		if pa != pb {
			return pa < pb
		}
		return ia < ib
	})
}

// EstimateCompletion totals the task time estimates and breaks them
// down by priority.
func EstimateCompletion(tasks []types.ChecklistTask) types.ChecklistEstimate {
	estimate := types.ChecklistEstimate{
		PriorityBreakdown: map[string]int{
			types.PriorityHigh:   0,
			types.PriorityMedium: 0,
			types.PriorityLow:    0,
		},
	}

	for _, task := range tasks {
		m := minutesRe.FindString(task.EstimatedTime)
		if m == "" {
			continue
		}
		var minutes int
		fmt.Sscanf(m, "%d", &minutes)
		estimate.TotalMinutes += minutes
		if _, ok := estimate.PriorityBreakdown[task.Priority]; ok {
			estimate.PriorityBreakdown[task.Priority] += minutes
		}
	}

	estimate.TotalHours = math.Round(float64(estimate.TotalMinutes)/60*10) / 10
	estimate.FormattedTime = formatMinutes(estimate.TotalMinutes)
	return estimate
}

func formatMinutes(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes < 120:
		return fmt.Sprintf("1 hour %d minutes", minutes-60)
	default:
		return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
	}
}

func feedbackMentions(feedback []string, phrase string) bool {
	for _, f := range feedback {
		if strings.Contains(strings.ToLower(f), phrase) {
			return true
		}
	}
	return false
}

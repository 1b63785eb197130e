package telemetry

// SuccessRates holds per-pipeline success ratios in [0, 1].
type SuccessRates struct {
	Vision   float64 `json:"vision"`
	Strategy float64 `json:"strategy"`
}

// UsageStats aggregates the current ring contents.
type UsageStats struct {
	TotalEvents         int            `json:"totalEvents"`
	VisionExtractions   int            `json:"visionExtractions"`
	StrategyGenerations int            `json:"strategyGenerations"`
	UserFeedback        int            `json:"userFeedback"`
	ModelUsage          map[string]int `json:"modelUsage"`
	IndustryUsage       map[string]int `json:"industryUsage"`
	SuccessRate         SuccessRates   `json:"successRate"`
}

// UsageStats scans the ring and tallies event counts, model and
// industry usage and success rates.
func (r *Recorder) UsageStats() UsageStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := UsageStats{
		TotalEvents:   len(r.events),
		ModelUsage:    make(map[string]int),
		IndustryUsage: make(map[string]int),
	}

	var visionOK, strategyOK int
	for _, ev := range r.events {
		switch ev.EventType {
		case EventVisionExtraction:
			stats.VisionExtractions++
			if ev.Success {
				visionOK++
			}
		case EventStrategyGeneration:
			stats.StrategyGenerations++
			if ev.Success {
				strategyOK++
			}
			model := ev.ModelChoice
			if model == "" {
				model = "unknown"
			}
			stats.ModelUsage[model]++
			industry := ev.TargetIndustry
			if industry == "" {
				industry = "unknown"
			}
			stats.IndustryUsage[industry]++
		case EventUserFeedback:
			stats.UserFeedback++
		}
	}

	if stats.VisionExtractions > 0 {
		stats.SuccessRate.Vision = float64(visionOK) / float64(stats.VisionExtractions)
	}
	if stats.StrategyGenerations > 0 {
		stats.SuccessRate.Strategy = float64(strategyOK) / float64(stats.StrategyGenerations)
	}
	return stats
}

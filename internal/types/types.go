package types

// ExperienceEntry represents one position on a profile
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

// Profile represents the extracted LinkedIn profile content.
// Fields are populated only from extractor output; sections not
// visible in the source images stay empty rather than being inferred.
type Profile struct {
	Headline   string            `json:"headline"`
	About      string            `json:"about"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
}

// IsEmpty reports whether no section carries any content.
func (p Profile) IsEmpty() bool {
	return p.Headline == "" && p.About == "" && len(p.Experience) == 0 && len(p.Skills) == 0
}

// ExtractionValidation annotates an extracted profile with missing or
// incomplete sections. It never blocks use of the profile.
type ExtractionValidation struct {
	IsValid         bool     `json:"isValid"`
	Warnings        []string `json:"warnings"`
	MissingSections []string `json:"missingSections"`
}

// QualityMetrics is the per-section heuristic score
type QualityMetrics struct {
	Score       int      `json:"score"`    // 0-100
	MaxScore    int      `json:"maxScore"` // always 100
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// ProfileQuality bundles the section scores and the weighted overall score
type ProfileQuality struct {
	Headline   QualityMetrics `json:"headline"`
	About      QualityMetrics `json:"about"`
	Experience QualityMetrics `json:"experience"`
	Skills     QualityMetrics `json:"skills"`
	Overall    QualityMetrics `json:"overall"`
}

// Target identifies the industry and role the optimization aims at
type Target struct {
	Industry string `json:"industry"`
	Role     string `json:"role"`
}

// Gap priorities, ordered critical < high < medium < low for sorting
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Gap effort levels
const (
	EffortQuickWin    = "quick_win"
	EffortModerate    = "moderate"
	EffortSignificant = "significant"
)

// Gap represents one difference between the current profile and the
// benchmark for the target industry/role
type Gap struct {
	Category       string `json:"category"`
	GapType        string `json:"gapType"`
	Description    string `json:"description"`
	Priority       string `json:"priority"` // critical|high|medium|low
	ActionRequired string `json:"actionRequired"`
	EffortLevel    string `json:"effortLevel"` // quick_win|moderate|significant
	ImpactScore    int    `json:"impactScore"` // 1-10
}

// RoadmapPhase groups gap actions by effort level with a fixed time frame
type RoadmapPhase struct {
	Phase          string   `json:"phase"`
	TimeFrame      string   `json:"timeFrame"`
	Actions        []string `json:"actions"`
	ExpectedImpact string   `json:"expectedImpact"`
}

// TemplateHeadline describes the ideal headline for a role
type TemplateHeadline struct {
	IdealTemplate string   `json:"idealTemplate"`
	Patterns      []string `json:"patterns"`
	MustHaves     []string `json:"mustHaves"`
	Example       string   `json:"example"`
	MaxLength     int      `json:"maxLength"`
}

// TemplateAbout describes the ideal about section for a role
type TemplateAbout struct {
	Structure    []string `json:"structure"`
	IdealLength  string   `json:"idealLength"`
	MustInclude  []string `json:"mustInclude"`
	ExampleHooks []string `json:"exampleHooks"`
}

// TemplateExperience describes the ideal experience entries for a role
type TemplateExperience struct {
	BulletCount     string   `json:"bulletCount"`
	Quantification  string   `json:"quantification"`
	IdealIndicators []string `json:"idealIndicators"`
	MustHaves       []string `json:"mustHaves"`
	ActionVerbs     []string `json:"actionVerbs"`
}

// TemplateSkills describes the ideal skills inventory for a role
type TemplateSkills struct {
	MustHave         []string `json:"mustHave"`
	RecommendedCount string   `json:"recommendedCount"`
	Categories       []string `json:"categories"`
}

// TemplateCertifications describes the ideal certifications for a role
type TemplateCertifications struct {
	Recommended   []string `json:"recommended"`
	IdealCount    string   `json:"idealCount"`
	PriorityOrder []string `json:"priorityOrder"`
}

// TemplateRecommendations describes ideal endorsements for a role
type TemplateRecommendations struct {
	IdealCount    string   `json:"idealCount"`
	ShouldInclude []string `json:"shouldInclude"`
}

// PerfectTemplate is the hand-authored ideal profile for an
// industry/role pair. Read-only reference data, never user state.
type PerfectTemplate struct {
	Industry           string                  `json:"industry"`
	Role               string                  `json:"role"`
	Headline           TemplateHeadline        `json:"headline"`
	About              TemplateAbout           `json:"about"`
	Experience         TemplateExperience      `json:"experience"`
	Skills             TemplateSkills          `json:"skills"`
	Certifications     TemplateCertifications  `json:"certifications"`
	Recommendations    TemplateRecommendations `json:"recommendations"`
	TargetScore        int                     `json:"targetScore"`
	KeyDifferentiators []string                `json:"keyDifferentiators"`
}

// GapAnalysis is the full result of comparing a profile to its benchmark
type GapAnalysis struct {
	Target            Target              `json:"target"`
	MatchedRole       string              `json:"matchedRole"`
	CompletenessScore int                 `json:"completenessScore"` // 0-100
	Gaps              []Gap               `json:"gaps"`
	QuickWins         []Gap               `json:"quickWins"`  // top 5 quick-win gaps
	HighImpact        []Gap               `json:"highImpact"` // top 5 critical/high gaps
	MissingToPerfect  map[string][]string `json:"missingToPerfect"`
	Roadmap           []RoadmapPhase      `json:"roadmap"`
	Template          PerfectTemplate     `json:"template"`
}

// OptimizationRequest is the strategy engine input
type OptimizationRequest struct {
	Profile           Profile `json:"profile"`
	Target            Target  `json:"target"`
	ModelChoice       string  `json:"modelChoice"` // "gemini" or "llama3_custom"
	AdditionalContext string  `json:"additionalContext,omitempty"`
}

// OptimizationReport wraps the verbatim model report with usage data
type OptimizationReport struct {
	Report       string `json:"report"`
	ModelChoice  string `json:"modelChoice"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
}

// ContentValidation is the secondary post-hoc quality check run
// against generated content
type ContentValidation struct {
	Score         int      `json:"score"` // 0-100
	IsHighQuality bool     `json:"isHighQuality"`
	Feedback      []string `json:"feedback"`
	Suggestions   []string `json:"suggestions"`
}

// ChecklistTask is one personalized implementation step
type ChecklistTask struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"` // high|medium|low
	EstimatedTime string `json:"estimatedTime"`
	ImpactLevel   string `json:"impactLevel"`
	Section       string `json:"section"`
	Completed     bool   `json:"completed"`
}

// ChecklistEstimate summarizes expected completion effort
type ChecklistEstimate struct {
	TotalMinutes      int            `json:"totalMinutes"`
	TotalHours        float64        `json:"totalHours"`
	PriorityBreakdown map[string]int `json:"priorityBreakdown"`
	FormattedTime     string         `json:"formattedTime"`
}

// Checklist bundles tasks with the effort estimate
type Checklist struct {
	Tasks    []ChecklistTask   `json:"tasks"`
	Estimate ChecklistEstimate `json:"estimate"`
}

// FineTuneJob reports the state of a hosted fine-tuning job
type FineTuneJob struct {
	ID             string `json:"id"`
	Status         string `json:"status"` // queued|running|completed|failed
	Model          string `json:"model"`
	FineTunedModel string `json:"fineTunedModel,omitempty"`
	TrainedEpochs  int    `json:"trainedEpochs,omitempty"`
	TotalEpochs    int    `json:"totalEpochs,omitempty"`
	Error          string `json:"error,omitempty"`
}

// FineTuneEstimate is a rough pre-flight cost projection
type FineTuneEstimate struct {
	NumExamples      int     `json:"numExamples"`
	EstimatedTokens  int     `json:"estimatedTokens"`
	EstimatedCostUSD float64 `json:"estimatedCostUsd"`
	Model            string  `json:"model"`
	Epochs           int     `json:"epochs"`
}

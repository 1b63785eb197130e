package scoring

// RoleProfile carries the skills and metrics a role is expected to
// demonstrate. Used by the content validator and the prompt builders.
type RoleProfile struct {
	Skills  []string
	Metrics []string
}

// IndustryProfile is the hand-authored reference data for an industry:
// recruiter-facing keywords, quantified achievement sentence patterns,
// and per-role skill expectations.
type IndustryProfile struct {
	Keywords            []string
	AchievementPatterns []string
	Roles               map[string]RoleProfile
}

var industryData = map[string]IndustryProfile{
	"Technology": {
		Keywords: []string{
			"Agile", "Scrum", "DevOps", "CI/CD", "Cloud Computing",
			"Microservices", "Kubernetes", "Docker", "AWS", "Azure",
			"Machine Learning", "AI", "Data Science", "Python", "JavaScript",
			"React", "Node.js", "Full-Stack", "Backend", "Frontend",
		},
		AchievementPatterns: []string{
			"Reduced {metric} by {percentage}% through {technology} implementation",
			"Increased {metric} by {percentage}% using {approach}",
			"Led team of {number} engineers to deliver {project} {timeframe}",
			"Improved {process} efficiency by {percentage}%",
			"Managed budget of ${amount} for {project} initiative",
			"Scaled {system} to handle {number} concurrent users",
			"Decreased infrastructure costs by ${amount} via {optimization}",
			"Accelerated development timeline by {percentage}% with {methodology}",
		},
		Roles: map[string]RoleProfile{
			"Software Engineer": {
				Skills:  []string{"Python", "JavaScript", "React", "Node.js", "AWS", "Docker", "Kubernetes"},
				Metrics: []string{"performance", "reliability", "scalability", "user experience", "code quality"},
			},
			"Data Scientist": {
				Skills:  []string{"Python", "R", "Machine Learning", "Statistics", "SQL", "TensorFlow", "PyTorch"},
				Metrics: []string{"accuracy", "insights", "predictions", "data quality", "model performance"},
			},
			"Product Manager": {
				Skills:  []string{"Product Strategy", "Agile", "User Research", "Analytics", "Roadmapping", "Stakeholder Management"},
				Metrics: []string{"user engagement", "revenue", "market share", "customer satisfaction", "time to market"},
			},
		},
	},
	"Finance": {
		Keywords: []string{
			"Financial Analysis", "Risk Management", "Investment Banking",
			"Portfolio Management", "M&A", "Valuation", "Financial Modeling",
			"Compliance", "Audit", "Treasury", "Capital Markets",
		},
		AchievementPatterns: []string{
			"Managed portfolio of ${amount} with {return}% annual return",
			"Reduced risk exposure by {percentage}% through {strategy}",
			"Identified ${amount} in cost savings via {analysis}",
			"Led ${amount} merger/acquisition deal",
			"Improved financial reporting efficiency by {percentage}%",
			"Compliance rate of {percentage}% maintained through {system}",
		},
		Roles: map[string]RoleProfile{
			"Financial Analyst": {
				Skills:  []string{"Financial Modeling", "Excel", "Valuation", "Risk Analysis", "Due Diligence"},
				Metrics: []string{"ROI", "risk reduction", "cost savings", "accuracy", "efficiency"},
			},
		},
	},
	"Healthcare": {
		Keywords: []string{
			"Healthcare Management", "Clinical Operations", "Patient Care",
			"Medical Technology", "Healthcare IT", "Regulatory Compliance",
			"Quality Improvement", "Patient Safety", "Healthcare Analytics",
		},
		AchievementPatterns: []string{
			"Improved patient satisfaction by {percentage}%",
			"Reduced readmission rates by {percentage}%",
			"Managed budget of ${amount} for {department}",
			"Implemented {system} serving {number} patients",
			"Achieved {percentage}% compliance rate",
		},
		Roles: map[string]RoleProfile{
			"Healthcare Administrator": {
				Skills:  []string{"Healthcare Management", "Budget Management", "Regulatory Compliance", "Quality Improvement"},
				Metrics: []string{"patient satisfaction", "cost reduction", "compliance", "efficiency", "quality scores"},
			},
		},
	},
}

// IndustryProfileFor returns the reference data for an industry,
// falling back to the default industry when unknown.
func IndustryProfileFor(industry string) IndustryProfile {
	if info, ok := industryData[industry]; ok {
		return info
	}
	return industryData[DefaultIndustry]
}

// RoleProfileFor returns the role expectations for an industry/role
// pair. Unknown roles fall back to the default industry's
// "Software Engineer" entry so callers always get a populated profile.
func RoleProfileFor(industry, role string) RoleProfile {
	info := IndustryProfileFor(industry)
	if rp, ok := info.Roles[role]; ok {
		return rp
	}
	return industryData[DefaultIndustry].Roles["Software Engineer"]
}

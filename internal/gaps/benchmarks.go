package gaps

import (
	"strings"

	"linkedopt/internal/types"
)

// RoleBenchmark is the hand-authored ideal for one industry/role pair.
type RoleBenchmark struct {
	HeadlinePatterns  []string
	HeadlineMustHaves []string
	AboutStructure    []string
	AboutLength       string
	BulletCount       string
	Quantification    string
	MustHaveSkills    []string
	RecommendedCerts  []string
	ExperienceSignals []string
}

// benchmarks holds curated role benchmarks keyed by industry, then role.
// Unknown industries fall back to Technology, unknown roles to a generic
// benchmark synthesized from the role string.
var benchmarks = map[string]map[string]RoleBenchmark{
	"Technology": {
		"Software Engineer": {
			HeadlinePatterns: []string{
				"{Role} | {Specialty} | {Tech Stack}",
				"Senior {Role} at {Company} | {Impact Statement}",
				"{Role} | Building {Product Type} | {Key Tech}",
			},
			HeadlineMustHaves: []string{"Current role", "Key specialty", "1-2 technologies"},
			AboutStructure: []string{
				"Hook statement", "Years of experience", "Key achievements (quantified)",
				"Technical expertise", "Passion/mission", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "3-5 per role",
			Quantification: "80% of bullets should have metrics",
			MustHaveSkills: []string{
				"Python", "JavaScript", "SQL", "Git", "AWS/Azure/GCP",
				"REST APIs", "Agile/Scrum", "CI/CD", "Docker",
			},
			RecommendedCerts: []string{
				"AWS Solutions Architect", "Google Cloud Professional",
				"Kubernetes Administrator", "Scrum Master",
			},
			ExperienceSignals: []string{
				"Led/managed projects", "Reduced costs by X%", "Improved performance by X%",
				"Built systems serving X users", "Mentored X developers",
			},
		},
		"Product Manager": {
			HeadlinePatterns: []string{
				"Product Manager | {Industry} | {Impact}",
				"Senior PM at {Company} | {Product Area}",
				"Product Leader | {Methodology} | {Outcome}",
			},
			HeadlineMustHaves: []string{"Product Manager title", "Industry/domain", "Key achievement or focus"},
			AboutStructure: []string{
				"Vision statement", "Experience summary", "Product wins",
				"Cross-functional leadership", "User-centric approach", "Call to action",
			},
			AboutLength:    "250-350 words",
			BulletCount:    "4-6 per role",
			Quantification: "90% should have metrics",
			MustHaveSkills: []string{
				"Product Strategy", "Roadmap Planning", "User Research", "A/B Testing",
				"Agile/Scrum", "Data Analysis", "Stakeholder Management", "SQL",
			},
			RecommendedCerts: []string{
				"Product Management Certificate", "Scrum Product Owner",
				"Google Analytics", "Design Thinking",
			},
			ExperienceSignals: []string{
				"Launched X products", "Grew revenue by X%", "Increased user engagement by X%",
				"Managed $X budget", "Led cross-functional team of X",
			},
		},
		"Data Scientist": {
			HeadlinePatterns: []string{
				"Data Scientist | {Specialty} | {Industry}",
				"Senior Data Scientist | ML/AI | {Impact}",
				"Data Science Lead | {Company} | {Focus Area}",
			},
			HeadlineMustHaves: []string{"Data Scientist title", "ML/AI specialty", "Industry or impact"},
			AboutStructure: []string{
				"Impact statement", "Technical expertise", "Business value delivered",
				"Research/publications", "Tools mastery", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "3-5 per role",
			Quantification: "85% should have metrics",
			MustHaveSkills: []string{
				"Python", "Machine Learning", "Deep Learning", "SQL", "TensorFlow/PyTorch",
				"Statistics", "Data Visualization", "NLP", "Computer Vision",
			},
			RecommendedCerts: []string{
				"AWS Machine Learning Specialty", "Google Professional ML Engineer",
				"TensorFlow Developer Certificate", "IBM Data Science Professional",
			},
			ExperienceSignals: []string{
				"Built models with X% accuracy", "Processed X TB of data",
				"Reduced prediction error by X%", "Saved $X through automation",
			},
		},
		"Engineering Manager": {
			HeadlinePatterns: []string{
				"Engineering Manager | {Team Size} Engineers | {Company}",
				"VP Engineering | {Specialty} | {Impact}",
				"Director of Engineering | Building {Product} at {Company}",
			},
			HeadlineMustHaves: []string{"Leadership title", "Team scope", "Company or impact"},
			AboutStructure: []string{
				"Leadership philosophy", "Team achievements", "Technical background",
				"Scaling experience", "Culture building", "Call to action",
			},
			AboutLength:    "250-350 words",
			BulletCount:    "4-6 per role",
			Quantification: "90% should have metrics",
			MustHaveSkills: []string{
				"Team Leadership", "Technical Architecture", "Agile/Scrum", "Hiring",
				"Performance Management", "Strategic Planning", "Budget Management",
			},
			RecommendedCerts: []string{
				"Engineering Management Certificate", "Leadership Development",
				"AWS Solutions Architect", "Scrum Master",
			},
			ExperienceSignals: []string{
				"Grew team from X to Y", "Delivered X projects on time",
				"Reduced attrition by X%", "Hired X engineers", "Managed $X budget",
			},
		},
		"DevOps Engineer": {
			HeadlinePatterns: []string{
				"DevOps Engineer | {Cloud Platform} | {Specialty}",
				"Senior DevOps | CI/CD | {Impact}",
				"Site Reliability Engineer | {Company} | {Scale}",
			},
			HeadlineMustHaves: []string{"DevOps/SRE title", "Cloud platform", "Key specialty"},
			AboutStructure: []string{
				"Automation philosophy", "Infrastructure scale", "Reliability achievements",
				"Tool expertise", "Security focus", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "3-5 per role",
			Quantification: "85% should have metrics",
			MustHaveSkills: []string{
				"AWS/Azure/GCP", "Kubernetes", "Docker", "Terraform", "CI/CD",
				"Linux", "Python/Bash", "Monitoring", "Security",
			},
			RecommendedCerts: []string{
				"AWS DevOps Professional", "Kubernetes Administrator",
				"HashiCorp Terraform Associate", "Google Cloud DevOps Engineer",
			},
			ExperienceSignals: []string{
				"Achieved X% uptime", "Reduced deployment time by X%",
				"Automated X% of infrastructure", "Managed X servers/containers",
			},
		},
		"CTO": {
			HeadlinePatterns: []string{
				"CTO | {Company} | {Industry Focus}",
				"Chief Technology Officer | Scaling {Product Type}",
				"CTO & Co-Founder | {Mission Statement}",
			},
			HeadlineMustHaves: []string{"CTO title", "Company or scope", "Strategic focus"},
			AboutStructure: []string{
				"Vision statement", "Track record", "Technical leadership",
				"Business impact", "Innovation focus", "Board/advisory roles",
			},
			AboutLength:    "300-400 words",
			BulletCount:    "4-6 per role",
			Quantification: "95% should have metrics",
			MustHaveSkills: []string{
				"Technical Strategy", "Team Building", "Architecture", "Fundraising",
				"Board Presentations", "Vendor Management", "Security", "Compliance",
			},
			RecommendedCerts: []string{
				"Executive Leadership Program", "AWS Solutions Architect Professional",
				"CISSP", "Board Governance",
			},
			ExperienceSignals: []string{
				"Scaled engineering from X to Y", "Raised $X funding",
				"Launched X products", "Achieved $X ARR", "Led M&A technical due diligence",
			},
		},
		"CSO": {
			HeadlinePatterns: []string{
				"CSO | {Company} | {Strategic Focus}",
				"Chief Strategy Officer | {Industry} | {Transformation Focus}",
				"CSO & Technology Innovator | {Impact Statement}",
			},
			HeadlineMustHaves: []string{"CSO/Strategy title", "Industry or company", "Strategic impact"},
			AboutStructure: []string{
				"Strategic vision", "Transformation track record", "Cross-functional leadership",
				"Market capture achievements", "Innovation philosophy", "Advisory/board roles",
			},
			AboutLength:    "300-400 words",
			BulletCount:    "4-6 per role",
			Quantification: "95% should have metrics",
			MustHaveSkills: []string{
				"Strategic Planning", "Market Analysis", "Business Development", "M&A",
				"Digital Transformation", "Automation", "Sales Strategy", "Operations",
			},
			RecommendedCerts: []string{
				"Executive Strategy Program", "Digital Transformation Certificate",
				"Six Sigma Black Belt", "Change Management",
			},
			ExperienceSignals: []string{
				"Drove X% revenue growth", "Captured X market share",
				"Led $X digital transformation", "Optimized operations saving $X",
			},
		},
	},
	"Finance": {
		"Financial Analyst": {
			HeadlinePatterns: []string{
				"Financial Analyst | {Specialty} | {Company}",
				"Senior Financial Analyst | FP&A | {Industry}",
				"Finance Professional | {Certification} | {Focus}",
			},
			HeadlineMustHaves: []string{"Analyst title", "Specialty area", "Certification if applicable"},
			AboutStructure: []string{
				"Financial expertise", "Analytical achievements", "Tool proficiency",
				"Industry knowledge", "Value delivered", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "3-5 per role",
			Quantification: "90% should have metrics",
			MustHaveSkills: []string{
				"Financial Modeling", "Excel", "SQL", "Tableau/Power BI", "FP&A",
				"Budgeting", "Forecasting", "Variance Analysis", "ERP Systems",
			},
			RecommendedCerts: []string{
				"CFA", "CPA", "Financial Modeling Certification",
				"Excel Expert", "Tableau Certification",
			},
			ExperienceSignals: []string{
				"Managed $X budget", "Improved forecast accuracy by X%",
				"Identified $X in cost savings", "Built models used by X stakeholders",
			},
		},
		"Investment Banker": {
			HeadlinePatterns: []string{
				"Investment Banker | {Coverage Area} | {Bank}",
				"VP Investment Banking | M&A | {Industry}",
				"Investment Banking Associate | {Specialty}",
			},
			HeadlineMustHaves: []string{"IB title", "Coverage/product area", "Bank or deal experience"},
			AboutStructure: []string{
				"Deal experience", "Industry expertise", "Analytical skills",
				"Client relationships", "Transaction highlights", "Call to action",
			},
			AboutLength:    "250-350 words",
			BulletCount:    "4-6 per role",
			Quantification: "95% should have deal values",
			MustHaveSkills: []string{
				"Financial Modeling", "Valuation", "M&A", "DCF Analysis", "LBO Modeling",
				"Pitch Books", "Due Diligence", "Client Management", "Capital Markets",
			},
			RecommendedCerts: []string{
				"CFA", "Series 79", "Financial Modeling Certificate", "M&A Certificate",
			},
			ExperienceSignals: []string{
				"Executed $X in transactions", "Advised on X deals",
				"Built models for $X deals", "Managed X client relationships",
			},
		},
	},
	"Healthcare": {
		"Healthcare Administrator": {
			HeadlinePatterns: []string{
				"Healthcare Administrator | {Facility Type} | {Focus}",
				"Hospital Administrator | {Specialty} | {Impact}",
				"Healthcare Executive | {Organization} | {Achievements}",
			},
			HeadlineMustHaves: []string{"Administrator title", "Healthcare setting", "Key focus area"},
			AboutStructure: []string{
				"Healthcare mission", "Operational achievements", "Patient outcomes",
				"Team leadership", "Regulatory expertise", "Call to action",
			},
			AboutLength:    "250-350 words",
			BulletCount:    "4-6 per role",
			Quantification: "85% should have metrics",
			MustHaveSkills: []string{
				"Healthcare Operations", "Budget Management", "Regulatory Compliance",
				"Quality Improvement", "Staff Management", "EHR Systems", "Patient Safety",
			},
			RecommendedCerts: []string{
				"FACHE", "Lean Six Sigma Healthcare", "Healthcare Compliance",
				"Project Management Professional",
			},
			ExperienceSignals: []string{
				"Managed X-bed facility", "Improved patient satisfaction by X%",
				"Reduced costs by $X", "Led team of X healthcare professionals",
			},
		},
	},
	"Marketing": {
		"Marketing Manager": {
			HeadlinePatterns: []string{
				"Marketing Manager | {Specialty} | {Industry}",
				"Digital Marketing Manager | {Channel} | {Impact}",
				"Senior Marketing Manager | {Brand} | {Achievements}",
			},
			HeadlineMustHaves: []string{"Marketing title", "Specialty area", "Results or industry"},
			AboutStructure: []string{
				"Marketing philosophy", "Campaign highlights", "Channel expertise",
				"Data-driven approach", "Brand building", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "4-5 per role",
			Quantification: "90% should have metrics",
			MustHaveSkills: []string{
				"Digital Marketing", "SEO/SEM", "Content Marketing", "Social Media",
				"Marketing Analytics", "Campaign Management", "Brand Strategy", "CRM",
			},
			RecommendedCerts: []string{
				"Google Analytics", "HubSpot Marketing", "Facebook Blueprint",
				"Content Marketing Institute",
			},
			ExperienceSignals: []string{
				"Generated X leads", "Achieved X% conversion rate",
				"Grew social following by X%", "Managed $X marketing budget",
			},
		},
	},
	"Sales": {
		"Sales Manager": {
			HeadlinePatterns: []string{
				"Sales Manager | {Industry} | {Quota Achievement}",
				"Regional Sales Director | {Territory} | {Revenue}",
				"VP Sales | {Company} | {Growth Metrics}",
			},
			HeadlineMustHaves: []string{"Sales title", "Industry or territory", "Revenue/quota metrics"},
			AboutStructure: []string{
				"Sales philosophy", "Revenue achievements", "Team leadership",
				"Client relationships", "Sales methodology", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "4-5 per role",
			Quantification: "95% should have revenue metrics",
			MustHaveSkills: []string{
				"Sales Strategy", "Account Management", "Negotiation", "CRM (Salesforce)",
				"Pipeline Management", "Forecasting", "Team Leadership", "Enterprise Sales",
			},
			RecommendedCerts: []string{
				"Salesforce Administrator", "Sandler Sales Training",
				"Miller Heiman Strategic Selling", "SPIN Selling",
			},
			ExperienceSignals: []string{
				"Exceeded quota by X%", "Generated $X in revenue",
				"Grew territory by X%", "Led team achieving $X",
			},
		},
	},
	"Operations": {
		"Operations Manager": {
			HeadlinePatterns: []string{
				"Operations Manager | {Industry} | {Efficiency Gains}",
				"Director of Operations | {Company} | {Scale}",
				"VP Operations | {Focus Area} | {Impact}",
			},
			HeadlineMustHaves: []string{"Operations title", "Industry", "Key achievement"},
			AboutStructure: []string{
				"Operations philosophy", "Efficiency achievements", "Process improvement",
				"Team leadership", "Technology adoption", "Call to action",
			},
			AboutLength:    "200-300 words",
			BulletCount:    "4-5 per role",
			Quantification: "90% should have metrics",
			MustHaveSkills: []string{
				"Process Improvement", "Lean/Six Sigma", "Supply Chain", "Budget Management",
				"Team Leadership", "Vendor Management", "ERP Systems", "Quality Control",
			},
			RecommendedCerts: []string{
				"Six Sigma Black Belt", "PMP", "Lean Certification",
				"Supply Chain Management",
			},
			ExperienceSignals: []string{
				"Reduced costs by X%", "Improved efficiency by X%",
				"Managed operations with $X budget", "Led team of X",
			},
		},
	},
}

// roleOrder fixes the lookup order for partial role matching, since
// more specific roles must be tried before broader ones.
var roleOrder = map[string][]string{
	"Technology": {
		"Software Engineer", "Product Manager", "Data Scientist",
		"Engineering Manager", "DevOps Engineer", "CTO", "CSO",
	},
	"Finance":    {"Financial Analyst", "Investment Banker"},
	"Healthcare": {"Healthcare Administrator"},
	"Marketing":  {"Marketing Manager"},
	"Sales":      {"Sales Manager"},
	"Operations": {"Operations Manager"},
}

// roleKeywords maps a lowercase keyword found in a free-form role string
// to a curated benchmark role. Checked in this order.
var roleKeywords = []struct {
	keyword string
	role    string
}{
	{"engineer", "Software Engineer"},
	{"developer", "Software Engineer"},
	{"product", "Product Manager"},
	{"data", "Data Scientist"},
	{"devops", "DevOps Engineer"},
	{"sre", "DevOps Engineer"},
	{"manager", "Engineering Manager"},
	{"director", "Engineering Manager"},
	{"vp", "Engineering Manager"},
	{"cto", "CTO"},
	{"cso", "CSO"},
	{"chief", "CTO"},
}

// GenericRoleName is the matched-role label when no curated benchmark fits.
const GenericRoleName = "generic"

// genericBenchmark synthesizes a benchmark for roles outside the curated set.
func genericBenchmark(role string) RoleBenchmark {
	return RoleBenchmark{
		HeadlinePatterns: []string{
			role + " | {Specialty} | {Company}",
			"Senior " + role + " | {Industry} | {Impact}",
			role + " | {Key Achievement}",
		},
		HeadlineMustHaves: []string{"Current title", "Industry/specialty", "Key differentiator"},
		AboutStructure: []string{
			"Hook statement", "Experience summary", "Key achievements",
			"Expertise areas", "Call to action",
		},
		AboutLength:    "200-300 words",
		BulletCount:    "3-5 per role",
		Quantification: "80% should have metrics",
		ExperienceSignals: []string{
			"Led/managed X", "Improved X by Y%", "Delivered X projects", "Generated $X",
		},
	}
}

// powerActionVerbs is the curated verb list embedded in every template.
var powerActionVerbs = []string{
	"Led", "Delivered", "Transformed", "Optimized", "Launched",
	"Grew", "Reduced", "Improved", "Built", "Managed",
	"Spearheaded", "Architected", "Pioneered", "Streamlined",
}

// buildTemplate materializes the full ideal-profile template from a benchmark.
func buildTemplate(industry, role, matchedRole string, bm RoleBenchmark) types.PerfectTemplate {
	ideal := role + " | [Specialty] | [Impact]"
	if len(bm.HeadlinePatterns) > 0 {
		ideal = bm.HeadlinePatterns[0]
	}
	return types.PerfectTemplate{
		Industry: industry,
		Role:     matchedRole,
		Headline: types.TemplateHeadline{
			IdealTemplate: ideal,
			Patterns:      bm.HeadlinePatterns,
			MustHaves:     bm.HeadlineMustHaves,
			Example:       role + " | " + industry + " Expert | Driving Innovation & Growth",
			MaxLength:     220,
		},
		About: types.TemplateAbout{
			Structure:   bm.AboutStructure,
			IdealLength: bm.AboutLength,
			MustInclude: []string{
				"Quantified achievements",
				"Years of experience",
				"Key expertise areas",
				"Call to action",
			},
			ExampleHooks: []string{
				"Passionate " + role + " with X+ years driving " + strings.ToLower(industry) + " innovation.",
				"Results-driven " + role + " transforming businesses through strategic execution.",
				industry + " leader specializing in [specialty] with proven track record.",
			},
		},
		Experience: types.TemplateExperience{
			BulletCount:     bm.BulletCount,
			Quantification:  bm.Quantification,
			IdealIndicators: bm.ExperienceSignals,
			MustHaves: []string{
				"3-5 bullet points per role",
				"80%+ bullets with quantified metrics",
				"Strong action verbs",
				"Clear impact statements",
			},
			ActionVerbs: powerActionVerbs,
		},
		Skills: types.TemplateSkills{
			MustHave:         bm.MustHaveSkills,
			RecommendedCount: "50-100 skills",
			Categories: []string{
				"Technical/Hard Skills",
				"Leadership/Soft Skills",
				"Tools & Technologies",
				"Industry-Specific Skills",
			},
		},
		Certifications: types.TemplateCertifications{
			Recommended: bm.RecommendedCerts,
			IdealCount:  "3-5 relevant certifications",
			PriorityOrder: []string{
				"Industry-recognized certifications",
				"Technology-specific certifications",
				"Leadership/management certifications",
			},
		},
		Recommendations: types.TemplateRecommendations{
			IdealCount: "5-10 recommendations",
			ShouldInclude: []string{
				"From direct managers",
				"From cross-functional partners",
				"From direct reports (if applicable)",
				"From clients/customers",
			},
		},
		TargetScore: 95,
		KeyDifferentiators: []string{
			"Clear positioning as " + role + " in " + industry,
			"Quantified achievements throughout",
			"Complete skills inventory",
			"Relevant certifications",
			"Strong recommendations",
		},
	}
}

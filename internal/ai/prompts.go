package ai

import (
	"fmt"
	"strings"

	"linkedopt/internal/scoring"
	"linkedopt/internal/types"
)

// Llama3StopToken terminates raw-text completions from Llama 3 Instruct
// models.
const Llama3StopToken = "<|eot_id|>"

// defaultExtractionPrompt instructs the vision model to transcribe,
// never invent. It pairs with the structured-output schema but also
// works on models that only return prose-wrapped JSON.
const defaultExtractionPrompt = `Please transcribe all visible LinkedIn profile text from these screenshots into structured JSON.

Extract the following sections:
1. Headline - the main professional title under the name
2. About - the summary section
3. Experience - list of work experiences with title, company, dates, and description for each
4. Skills - list of skills shown

Requirements:
- Return ONLY valid JSON, no other text
- Do not invent information - only transcribe what's visible
- If a section is not visible, use empty string for text fields or empty list for arrays
- Normalize text formatting but preserve all content
- Include all experience entries that are visible

Use this exact JSON structure:
{
    "headline": "...",
    "about": "...",
    "experience": [
        {
            "title": "...",
            "company": "...",
            "dates": "...",
            "description": "..."
        }
    ],
    "skills": ["...", "..."]
}`

const systemPromptTemplate = `You are an elite LinkedIn profile optimization strategist with deep expertise in personal branding,
recruitment, and professional networking. Your task is to analyze a LinkedIn profile and
create a comprehensive optimization plan that improves visibility, keyword relevance, and
personal brand impact for the {industry} industry, specifically targeting {role} roles.

INDUSTRY-SPECIFIC EXPERTISE:
Target Industry: {industry}
Target Role: {role}
Key Industry Keywords: {keywords}
Essential Skills: {role_skills}
Critical Metrics: {role_metrics}

ACHIEVEMENT PATTERNS FOR {industry}:
Use these specific patterns for quantifying achievements:
{patterns}

CRITICAL REQUIREMENTS - NON-NEGOTIABLE:
1. ANALYZE USER'S ACTUAL PROFILE DATA - Use only the real headline, about, experience, skills provided
2. ENHANCE REAL ACHIEVEMENTS - Quantify the user's actual experience with specific metrics
3. PROVIDE COMPLETE REWRITES - Give full, ready-to-use text based on their real background
4. INCLUDE SPECIFIC METRICS - Add concrete numbers to the user's actual accomplishments
5. USE INDUSTRY KEYWORDS - Naturally incorporate keywords relevant to their real experience
6. CREATE ACTIONABLE CHECKLISTS - Provide step-by-step implementation guides

CONTENT QUALITY STANDARDS:
- Every bullet point must enhance the user's REAL achievements with quantifiable results
- Use the achievement patterns provided above but apply to USER'S ACTUAL EXPERIENCE
- Include specific numbers (%, $, count, timeframe) based on their real work
- Make content sound authentic to the user's actual background, not generic
- Ensure all content is LinkedIn-optimized and professional

SECTION-SPECIFIC WORKFLOWS:

1. OVERALL PROFILE REVIEW
- Analyze the user's ACTUAL current headline, about, experience, skills
- Identify the 5 biggest issues in THEIR REAL profile limiting reach and engagement
- Assess gaps in THEIR ACTUAL profile completeness and professionalism
- Evaluate keyword density in THEIR CURRENT content for {industry}/{role}
- Provide complete strategy based on THEIR REAL BACKGROUND

2. HEADLINE OPTIMIZATION
- Analyze the user's ACTUAL current headline
- Generate 3 complete, ready-to-use headlines based on THEIR REAL experience
- Each headline must include: their actual role + their key achievement + industry keyword
- Use quantifiable results from THEIR REAL work (%, $, numbers)
- Focus on results-oriented language from THEIR ACTUAL accomplishments

3. ABOUT SECTION COMPLETE REWRITE
- Provide a complete, ready-to-use About section (300-500 words) based on THEIR REAL career
- Include storytelling elements from THEIR ACTUAL professional journey
- Add 3-5 quantified milestones from THEIR REAL experience with metrics
- Incorporate {keywords} naturally throughout THEIR ACTUAL background
- Include strong call-to-action relevant to THEIR REAL career goals
- Structure: Hook, THEIR Story, THEIR Achievements, THEIR Future Goals, CTA

4. EXPERIENCE SECTION ENHANCEMENT
- Extract ALL job descriptions from the user's ACTUAL experience
- Rewrite each of THEIR REAL experiences with 3-5 bullet points that include:
  • Specific achievement from THEIR ACTUAL work using the patterns above
  • Quantifiable results from THEIR REAL accomplishments (%, $, numbers, timeframe)
  • Industry keywords relevant to THEIR ACTUAL experience
  • Action verbs and impact-oriented language based on THEIR REAL impact
- Make each bullet point impressive but authentic to THEIR REAL background

5. SKILLS STRATEGY
- Extract ALL skills from the user's ACTUAL profile
- Add missing high-value skills for {role} that complement THEIR REAL experience
- Categorize THEIR ACTUAL skills: Technical, Business, Leadership
- Prioritize skills most valued by {industry} recruiters that match THEIR BACKGROUND

FINAL OUTPUT REQUIREMENTS:
- Provide complete, ready-to-use text based on USER'S ACTUAL PROFILE
- Include at least 5 industry keywords relevant to THEIR REAL experience
- Add 3+ quantified achievements per experience based on THEIR ACTUAL work
- Create implementation checklists for each section
- Ensure all content is authentic to THEIR REAL background and personalized
- Add "Profile Update Checklist" at the end for step-by-step execution

SUCCESS METRICS:
Your output should be so impressive that:
- Recruiters immediately understand the user's ACTUAL value from THEIR REAL experience
- Profile ranks in top results for {role} searches based on THEIR REAL qualifications
- Content feels authentic and personal to THEIR ACTUAL background, not generic
- Every section has specific, quantified achievements from THEIR REAL work

REMEMBER: You are optimizing THE USER'S ACTUAL LINKEDIN PROFILE, not creating a generic template.
Every recommendation must be based on and enhance THEIR REAL EXPERIENCE, SKILLS, AND BACKGROUND!`

const userContentTemplate = `USER'S ACTUAL LINKEDIN PROFILE DATA - ANALYZE THIS EXACT CONTENT:

CURRENT HEADLINE:
{headline}

CURRENT ABOUT SECTION:
{about}

CURRENT EXPERIENCE:
{experience}

CURRENT SKILLS:
{skills}

TARGET INDUSTRY: {industry}
TARGET ROLE: {role}

CRITICAL INSTRUCTIONS:
1. ANALYZE THE USER'S ACTUAL CURRENT PROFILE DATA ABOVE
2. DO NOT USE TEMPLATE CONTENT - USE ONLY THE USER'S REAL DATA
3. IDENTIFY SPECIFIC GAPS IN THE USER'S CURRENT PROFILE
4. PROVIDE COMPLETE REWRITES BASED ON THEIR ACTUAL EXPERIENCE
5. ENHANCE THEIR REAL ACHIEVEMENTS WITH QUANTIFIABLE METRICS

The user wants optimization of THEIR ACTUAL PROFILE, not generic templates.
Base all recommendations on their real experience, skills, and background.`

const followupTemplate = `ADDITIONAL CONTEXT/CLARIFICATIONS:
{additional_context}

Please update your optimization recommendations based on this additional information, maintaining the same Current / Recommended / Missing / Quick Fixes format for any sections that need updates.`

// SystemPrompt builds the strategist system instruction for a target,
// interpolating the industry's keyword list, the role's skill and
// metric expectations, and the top achievement patterns.
func SystemPrompt(target types.Target) string {
	info := scoring.IndustryProfileFor(target.Industry)
	role := scoring.RoleProfileFor(target.Industry, target.Role)

	keywords := strings.Join(firstN(info.Keywords, 10), ", ")
	patterns := firstN(info.AchievementPatterns, 5)
	patternLines := make([]string, len(patterns))
	for i, p := range patterns {
		patternLines[i] = "- " + p
	}

	return strings.NewReplacer(
		"{industry}", target.Industry,
		"{role}", target.Role,
		"{keywords}", keywords,
		"{role_skills}", strings.Join(role.Skills, ", "),
		"{role_metrics}", strings.Join(role.Metrics, ", "),
		"{patterns}", strings.Join(patternLines, "\n"),
	).Replace(systemPromptTemplate)
}

// FormatProfilePrompt serializes a profile into the user content block,
// labeling missing sections explicitly so the model cannot substitute
// template text for absent data.
func FormatProfilePrompt(profile types.Profile, target types.Target) string {
	var experience string
	if len(profile.Experience) > 0 {
		var b strings.Builder
		for i, exp := range profile.Experience {
			fmt.Fprintf(&b, "EXPERIENCE %d:\n", i+1)
			fmt.Fprintf(&b, "  Title: %s\n", orLabel(exp.Title, "No Title"))
			fmt.Fprintf(&b, "  Company: %s\n", orLabel(exp.Company, "No Company"))
			fmt.Fprintf(&b, "  Dates: %s\n", orLabel(exp.Dates, "No dates"))
			fmt.Fprintf(&b, "  Current Description: %s\n\n", orLabel(exp.Description, "No description"))
		}
		experience = strings.TrimSpace(b.String())
	} else {
		experience = "NO EXPERIENCE DATA FOUND - User has not provided any experience information"
	}

	var skills string
	if len(profile.Skills) > 0 {
		skills = "USER'S CURRENT SKILLS: " + strings.Join(profile.Skills, ", ")
	} else {
		skills = "NO SKILLS DATA FOUND - User has not provided any skills information"
	}

	return strings.NewReplacer(
		"{headline}", orLabel(profile.Headline, "NO HEADLINE FOUND - User has not provided a headline"),
		"{about}", orLabel(profile.About, "NO ABOUT SECTION FOUND - User has not provided an about section"),
		"{experience}", experience,
		"{skills}", skills,
		"{industry}", target.Industry,
		"{role}", target.Role,
	).Replace(userContentTemplate)
}

// FormatFollowup builds the user content for a follow-up turn carrying
// additional context instead of the full profile.
func FormatFollowup(additionalContext string) string {
	return strings.Replace(followupTemplate, "{additional_context}", additionalContext, 1)
}

// FormatPerfectProfilePrompt builds the comprehensive optimization
// prompt combining the current profile, the perfect-profile template
// and the identified gaps.
func FormatPerfectProfilePrompt(profile types.Profile, tmpl types.PerfectTemplate, gaps []types.Gap, target types.Target) string {
	var exp strings.Builder
	for i, e := range profile.Experience {
		fmt.Fprintf(&exp, "  %d. %s at %s\n", i+1, orLabel(e.Title, "No Title"), orLabel(e.Company, "No Company"))
		fmt.Fprintf(&exp, "     %s...\n", truncate(orLabel(e.Description, "No description"), 200))
	}

	var gapText strings.Builder
	for _, g := range firstGaps(gaps, 10) {
		fmt.Fprintf(&gapText, "  • %s: %s\n", strings.ToUpper(g.Category), g.ActionRequired)
	}

	idealHeadline := tmpl.Headline.IdealTemplate
	if idealHeadline == "" {
		idealHeadline = "Role | Specialty | Impact"
	}

	var aboutStructure strings.Builder
	for i, item := range tmpl.About.Structure {
		fmt.Fprintf(&aboutStructure, "  %d. %s\n", i+1, item)
	}

	var expFormat strings.Builder
	for _, item := range tmpl.Experience.MustHaves {
		fmt.Fprintf(&expFormat, "  • %s\n", item)
	}

	return fmt.Sprintf(`=== COMPREHENSIVE LINKEDIN PROFILE OPTIMIZATION ===

TARGET ROLE: %s in %s

=== CURRENT PROFILE ANALYSIS ===
HEADLINE: %q
ABOUT: "%s..."
EXPERIENCE:
%s
SKILLS: %s

=== PERFECT PROFILE TEMPLATE ===
IDEAL HEADLINE FORMAT: %s
IDEAL ABOUT STRUCTURE:
%s
IDEAL EXPERIENCE FORMAT:
%s
IDEAL SKILLS: %s

=== IDENTIFIED GAPS (Top 10) ===
%s
=== YOUR TASK ===
Generate a COMPLETE, POLISHED LinkedIn profile optimization that:

1. **PROVIDES SPECIFIC, ACTIONABLE IMPROVEMENTS** for each section based on the gaps identified
2. **CREATES A PERFECT EXAMPLE PROFILE** that fills in all template blanks with realistic, compelling content
3. **MAINTAINS THE USER'S AUTHENTIC EXPERIENCE** while enhancing it with industry best practices
4. **INCLUDES QUANTIFIABLE METRICS** and specific achievements
5. **FOLLOWS THE PERFECT TEMPLATE STRUCTURE** exactly

=== REQUIRED OUTPUT FORMAT ===

## OPTIMIZED HEADLINE
[Provide 3 polished headline options that follow the ideal template and incorporate user's real experience]

## OPTIMIZED ABOUT SECTION
[Write a complete, polished about section (200-300 words) that follows the ideal structure and enhances the user's real experience]

## OPTIMIZED EXPERIENCE
[For each current experience, provide 3-5 enhanced bullet points with quantified metrics and strong action verbs]

## OPTIMIZED SKILLS SECTION
[List 50-100 optimized skills including current skills plus recommended ones, organized by category]

## PERFECT PROFILE EXAMPLE
[Create a complete example of what the user's PERFECT LinkedIn profile should look like, filling in all template blanks with compelling, realistic content that matches their background]

## IMPLEMENTATION CHECKLIST
[Provide a step-by-step checklist for implementing these optimizations]

=== CRITICAL REQUIREMENTS ===
- NO GENERIC TEMPLATES - All content must be tailored to the user's actual experience
- INCLUDE SPECIFIC METRICS (percentages, dollar amounts, team sizes, etc.)
- MAINTAIN AUTHENTICITY while enhancing impact
- FOLLOW INDUSTRY BEST PRACTICES for %s in %s
- MAKE THE PERFECT EXAMPLE INSPIRING AND ACHIEVABLE

Generate this comprehensive optimization now.`,
		target.Role, target.Industry,
		orLabel(profile.Headline, "No headline"),
		truncate(orLabel(profile.About, "No about section"), 300),
		exp.String(),
		joinLimited(profile.Skills, 20),
		idealHeadline,
		aboutStructure.String(),
		expFormat.String(),
		joinLimited(tmpl.Skills.MustHave, 10),
		gapText.String(),
		target.Role, target.Industry)
}

// FormatGapAnalysisPrompt builds the prompt that turns a gap analysis
// into a polished, filled-in optimization plan.
func FormatGapAnalysisPrompt(analysis types.GapAnalysis, target types.Target) string {
	var quickWins strings.Builder
	for _, g := range firstGaps(analysis.QuickWins, 5) {
		fmt.Fprintf(&quickWins, "  • %s\n", g.ActionRequired)
	}

	var highImpact strings.Builder
	for _, g := range firstGaps(analysis.HighImpact, 5) {
		fmt.Fprintf(&highImpact, "  • %s\n", g.ActionRequired)
	}

	var missing strings.Builder
	for _, category := range []string{"headline", "about", "experience", "skills", "certifications"} {
		items := analysis.MissingToPerfect[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&missing, "\n%s:\n", strings.ToUpper(category))
		for _, item := range firstN(items, 3) {
			fmt.Fprintf(&missing, "  • %s\n", item)
		}
	}

	return fmt.Sprintf(`=== POLISHED GAP ANALYSIS & PROFILE OPTIMIZATION ===

TARGET: %s in %s
CURRENT COMPLETENESS SCORE: %d/100

=== QUICK WINS (Immediate Improvements) ===
%s
=== HIGH IMPACT GAPS (Priority Focus) ===
%s
=== MISSING FOR PERFECT PROFILE ===
%s
=== YOUR TASK ===
Generate a POLISHED, ACTIONABLE optimization plan that:

1. **TRANSFORMS GAPS INTO SPECIFIC ACTIONS** - Convert each gap into a concrete, implementable improvement
2. **PROVIDES FILLED-IN EXAMPLES** - Show exactly what each section should look like with real content
3. **CREATES A COMPLETE PERFECT PROFILE** - Write the full optimized profile as if the user implemented everything
4. **MAINTAINS AUTHENTICITY** - Enhance the user's real experience, don't replace it with generic content

=== REQUIRED OUTPUT ===

## IMMEDIATE ACTION PLAN
[Convert quick wins into step-by-step actions with specific examples]

## PRIORITY IMPROVEMENTS
[Transform high-impact gaps into detailed improvements with filled-in examples]

## COMPLETE OPTIMIZATION ROADMAP
[Provide a comprehensive roadmap with timelines and specific content examples]

## PERFECT PROFILE SHOWCASE
[Write the complete, polished LinkedIn profile that incorporates all improvements]
- Headline: 3 optimized options
- About: Complete polished version
- Experience: Enhanced bullet points for each role
- Skills: Comprehensive optimized list

## IMPLEMENTATION GUIDE
[Provide specific, copy-paste ready content for each section]

=== QUALITY STANDARDS ===
- All content must be polished and professional
- Include specific metrics and achievements
- Follow %s best practices in %s
- Make content inspiring yet achievable
- No generic templates or placeholders

Generate this polished optimization now.`,
		target.Role, target.Industry,
		analysis.CompletenessScore,
		quickWins.String(),
		highImpact.String(),
		missing.String(),
		target.Role, target.Industry)
}

// FormatLlama3Prompt wraps a system prompt and user content in the
// Llama 3 Instruct special-token format for raw-text completion APIs.
func FormatLlama3Prompt(systemPrompt, userContent string) string {
	return "<|begin_of_text|>" +
		"<|start_header_id|>system<|end_header_id|>\n" +
		systemPrompt +
		Llama3StopToken +
		"<|start_header_id|>user<|end_header_id|>\n" +
		userContent +
		Llama3StopToken +
		"<|start_header_id|>assistant<|end_header_id|>"
}

func orLabel(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func joinLimited(items []string, n int) string {
	joined := strings.Join(firstN(items, n), ", ")
	if len(items) > n {
		joined += "..."
	}
	return joined
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func firstGaps(gaps []types.Gap, n int) []types.Gap {
	if len(gaps) > n {
		return gaps[:n]
	}
	return gaps
}

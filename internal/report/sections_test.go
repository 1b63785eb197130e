package report

import (
	"strings"
	"testing"
)

const sampleReport = `OVERALL PROFILE REVIEW
Solid profile with room to grow.

HEADLINE OPTIMIZATION
Recommended options:
1. Senior Software Engineer | Cloud Platforms | 10+ Years
2. Short one
• Data Platform Engineer | Streaming Systems at Scale
Not a list line.

ABOUT SECTION COMPLETE REWRITE
Current version is weak.
Recommended Version
I build cloud platforms that serve millions of users. my teams ship reliably.

Let's connect to talk platforms.

EXPERIENCE SECTION ENHANCEMENT
CURRENT ENTRY
RECOMMENDED VERSION
• led migration of 12 services to Kubernetes
- reduced deploy time by 60%
Regular impact line here.

SKILLS STRATEGY
Add these skills:
1. Kubernetes
2. Golang
• System Design
- SQL
x skipped

RECOMMENDATIONS STRATEGY
Ask managers.

CONTENT & ENGAGEMENT PLAN
Post weekly.`

func TestFindSection(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		heading string
		want    string
	}{
		{
			name:    "slice ends at next heading",
			report:  sampleReport,
			heading: HeadingOverview,
			want:    "OVERALL PROFILE REVIEW\nSolid profile with room to grow.\n\n",
		},
		{
			name:    "last heading runs to end",
			report:  sampleReport,
			heading: HeadingEngagement,
			want:    "CONTENT & ENGAGEMENT PLAN\nPost weekly.",
		},
		{
			name:    "skips absent middle headings",
			report:  "HEADLINE OPTIMIZATION\n1. One\nSKILLS STRATEGY\n- SQL",
			heading: HeadingHeadline,
			want:    "HEADLINE OPTIMIZATION\n1. One\n",
		},
		{
			name:    "absent heading",
			report:  "no headings here",
			heading: HeadingAbout,
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindSection(tt.report, tt.heading); got != tt.want {
				t.Errorf("FindSection = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSections(t *testing.T) {
	sections := ExtractSections(sampleReport)

	headline, ok := sections["headline"]
	if !ok {
		t.Fatal("missing headline section")
	}
	wantHeadlines := "Senior Software Engineer | Cloud Platforms | 10+ Years\nData Platform Engineer | Streaming Systems at Scale"
	if headline.Content != wantHeadlines {
		t.Errorf("headline content = %q, want %q", headline.Content, wantHeadlines)
	}

	about, ok := sections["about"]
	if !ok {
		t.Fatal("missing about section")
	}
	if strings.Contains(about.Content, "Current version is weak") {
		t.Error("about content kept text before the recommended marker")
	}
	if !strings.Contains(about.FormattedContent, "My teams ship reliably.") {
		t.Errorf("about formatting did not capitalize sentences: %q", about.FormattedContent)
	}

	experience, ok := sections["experience"]
	if !ok {
		t.Fatal("missing experience section")
	}
	if strings.Contains(experience.Content, "CURRENT ENTRY") || strings.Contains(experience.Content, "RECOMMENDED VERSION") {
		t.Errorf("experience content kept marker lines: %q", experience.Content)
	}
	if !strings.Contains(experience.FormattedContent, "• Led migration of 12 services to Kubernetes") {
		t.Errorf("experience bullets not normalized: %q", experience.FormattedContent)
	}

	skills, ok := sections["skills"]
	if !ok {
		t.Fatal("missing skills section")
	}
	if want := "Kubernetes, Golang, System Design, SQL"; skills.FormattedContent != want {
		t.Errorf("skills formatted = %q, want %q", skills.FormattedContent, want)
	}

	if headline.WordCount == 0 || headline.CharacterCount != len(headline.Content) {
		t.Errorf("bad counts: words=%d chars=%d", headline.WordCount, headline.CharacterCount)
	}
}

func TestExtractSectionsEmptyReport(t *testing.T) {
	if got := ExtractSections("nothing structured at all"); len(got) != 0 {
		t.Errorf("got %d sections, want 0", len(got))
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		content  string
		valid    bool
		wantType string
	}{
		{"headline too short", "headline", strings.Repeat("a", 59), false, "too_short"},
		{"headline in range", "headline", strings.Repeat("a", 60), true, "good"},
		{"headline too long", "headline", strings.Repeat("a", 121), false, "too_long"},
		{"about in range", "about", strings.Repeat("a", 400), true, "good"},
		{"unlimited section", "skills", "anything", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLength(tt.section, tt.content)
			if got.Valid != tt.valid || got.Type != tt.wantType {
				t.Errorf("ValidateLength = %+v, want valid=%v type=%q", got, tt.valid, tt.wantType)
			}
		})
	}
}

func TestCapitalizeSentences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"already Fine. next", "Already Fine. Next"},
		{"what? yes! go. now", "What? Yes! Go. Now"},
	}
	for _, tt := range tests {
		if got := capitalizeSentences(tt.in); got != tt.want {
			t.Errorf("capitalizeSentences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildPackage(t *testing.T) {
	sections := ExtractSections(sampleReport)
	pkg := BuildPackage(sections)

	if len(pkg.ValidationResults) != len(sections) {
		t.Errorf("got %d validation results, want %d", len(pkg.ValidationResults), len(sections))
	}
	if pkg.TotalContent == "" || pkg.WordCount == 0 || pkg.CharacterCount == 0 {
		t.Errorf("empty aggregates: %+v", pkg)
	}
	if len(pkg.Order) != 4 || pkg.Order[0] != "headline" {
		t.Errorf("unexpected order: %v", pkg.Order)
	}
}

func TestCopyText(t *testing.T) {
	sections := ExtractSections(sampleReport)

	text := CopyText(sections, "headline")
	if !strings.HasPrefix(text, "=== HEADLINE OPTIONS ===\n\n") {
		t.Errorf("missing header: %q", text)
	}
	if CopyText(sections, "nope") != "" {
		t.Error("expected empty text for unknown section")
	}

	batch := BatchCopyText(sections)
	for _, want := range []string{
		"LINKEDIN PROFILE OPTIMIZATION - READY TO IMPLEMENT",
		"=== ABOUT SECTION ===",
		"=== SKILLS SECTION ===",
	} {
		if !strings.Contains(batch, want) {
			t.Errorf("batch text missing %q", want)
		}
	}
}

package resume

import (
	"strings"
	"testing"
)

var strongResume = strings.TrimSpace(`
John Doe
Software Engineer

Experience
• Developed a Go microservice platform serving 2M users, cutting infra costs and growing revenue by 30%
• Led a team of 8 engineers building SQL pipelines, improved query latency by 45%
• Implemented Docker and Kubernetes deployments across 12 services

Acme Corp, 2019 - 2022
Widget Inc, 2015 - 2019

Education
• BSc Computer Science, State University
`) + "\n\n" + strings.Repeat("additional detail about systems design delivery and mentoring ", 25)

func TestAnalyzeStrongResume(t *testing.T) {
	t.Parallel()

	kw := Keywords{
		Relevant:  []string{"Go", "SQL", "Docker", "Kubernetes"},
		Essential: []string{"Go", "SQL"},
	}
	a := Analyze(strongResume, kw)

	if a.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", a.OverallScore)
	}
	if len(a.Feedback) != 0 {
		t.Errorf("Feedback = %+v, want none", a.Feedback)
	}
	if len(a.MissingKeywords) != 0 {
		t.Errorf("MissingKeywords = %v, want none", a.MissingKeywords)
	}
	if a.SkillCoveragePercentage != 100 {
		t.Errorf("SkillCoveragePercentage = %d, want 100", a.SkillCoveragePercentage)
	}
	s := a.AnalysisSummary
	if !s.HasQuantifiableAchievements || !s.UsesActionVerbs || !s.FormattingConsistent {
		t.Errorf("summary flags = %+v, want all true", s)
	}
}

func TestAnalyzeWeakResume(t *testing.T) {
	t.Parallel()

	kw := Keywords{
		Relevant:  []string{"Go", "SQL", "Docker", "Kubernetes"},
		Essential: []string{"Go", "SQL"},
	}
	// Short, no numbers, no action verbs, no bullets, no keywords.
	a := Analyze("I am a hard worker looking for software jobs.", kw)

	// Two High findings (keywords, achievements) and three Medium/Low
	// (too brief, action verbs, formatting): 100 - 40 - 30 = 30.
	if a.OverallScore != 30 {
		t.Errorf("OverallScore = %d, want 30", a.OverallScore)
	}
	if a.SkillCoveragePercentage != 0 {
		t.Errorf("SkillCoveragePercentage = %d, want 0", a.SkillCoveragePercentage)
	}
	if len(a.MissingKeywords) != 2 {
		t.Errorf("MissingKeywords = %v, want both essentials", a.MissingKeywords)
	}
}

func TestAnalyzeFeedbackSortedByPriority(t *testing.T) {
	t.Parallel()

	a := Analyze("I am a hard worker looking for software jobs.", Keywords{
		Relevant:  []string{"Go"},
		Essential: []string{"Go"},
	})

	last := -1
	for _, f := range a.Feedback {
		rank := priorityOrder[f.Priority]
		if rank < last {
			t.Fatalf("feedback not sorted by priority: %+v", a.Feedback)
		}
		last = rank
	}
}

func TestAnalyzeScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	a := Analyze("x", Keywords{Essential: []string{"go"}, Relevant: []string{"go"}})
	if a.OverallScore < 0 {
		t.Fatalf("OverallScore = %d, must not go negative", a.OverallScore)
	}
}

func TestAnalyzeWordCountBands(t *testing.T) {
	t.Parallel()

	hasIssue := func(a Analysis, issue string) bool {
		for _, f := range a.Feedback {
			if f.Issue == issue {
				return true
			}
		}
		return false
	}

	short := Analyze(strings.Repeat("word ", 150), Keywords{})
	if !hasIssue(short, "Resume appears too brief") {
		t.Error("150 words: want too-brief feedback")
	}

	long := Analyze(strings.Repeat("word ", 900), Keywords{})
	if !hasIssue(long, "Resume may be too lengthy") {
		t.Error("900 words: want too-lengthy feedback")
	}

	mid := Analyze(strings.Repeat("word ", 400), Keywords{})
	if hasIssue(mid, "Resume appears too brief") || hasIssue(mid, "Resume may be too lengthy") {
		t.Error("400 words: want no length feedback")
	}
}

func TestQuantifiableNeedsBothSignals(t *testing.T) {
	t.Parallel()

	onlyNumbers := Analyze("Worked on 12 projects over 3 years", Keywords{})
	if onlyNumbers.AnalysisSummary.HasQuantifiableAchievements {
		t.Error("numbers without metric words should not count as quantifiable")
	}

	onlyMetrics := Analyze("Drove revenue and user growth", Keywords{})
	if onlyMetrics.AnalysisSummary.HasQuantifiableAchievements {
		t.Error("metric words without numbers should not count as quantifiable")
	}

	both := Analyze("Grew revenue by 30% year over year", Keywords{})
	if !both.AnalysisSummary.HasQuantifiableAchievements {
		t.Error("numbers plus metric words should count as quantifiable")
	}
}

func TestCheckFormattingConsistency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"bullets and year ranges", "• one\nAcme 2019 - 2022\nInc 2015 - 2019", true},
		{"bullets, single date", "• one\nAcme 2019 - 2022", false},
		{"dates without bullets", "Acme 2019 - 2022\nInc 2015 - 2019", false},
		{"dash bullets with month dates", "- one\nJanuary 2020\nMarch 2022", true},
		{"empty", "", false},
	}
	for _, tc := range cases {
		if got := checkFormattingConsistency(tc.text); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeKeywords(t *testing.T) {
	t.Parallel()

	got := normalizeKeywords([]string{"Go", "go", " SQL ", "", "sql", "Docker"})
	want := []string{"go", "sql", "docker"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMissingKeywordsCapped(t *testing.T) {
	t.Parallel()

	var essentials []string
	for _, s := range strings.Split("abcdefghijklmn", "") {
		essentials = append(essentials, "skill-"+s)
	}
	a := Analyze("nothing relevant here", Keywords{Essential: essentials, Relevant: essentials})
	if len(a.MissingKeywords) != 10 {
		t.Fatalf("MissingKeywords len = %d, want cap of 10", len(a.MissingKeywords))
	}
}

package resume

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Feedback categories and priorities.
const (
	CategoryContent      = "Content"
	CategoryFormatting   = "Formatting"
	CategoryKeywords     = "Keywords"
	CategoryAchievements = "Achievements"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var priorityOrder = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

type Feedback struct {
	Category   string   `json:"category"`
	Priority   string   `json:"priority"`
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Examples   []string `json:"examples,omitempty"`
}

type Summary struct {
	WordCount                   int  `json:"word_count"`
	HasQuantifiableAchievements bool `json:"has_quantifiable_achievements"`
	UsesActionVerbs             bool `json:"uses_action_verbs"`
	FormattingConsistent        bool `json:"formatting_consistent"`
}

type Analysis struct {
	OverallScore            int        `json:"overall_score"`
	SkillCoveragePercentage int        `json:"skill_coverage_percentage"`
	Feedback                []Feedback `json:"feedback"`
	MissingKeywords         []string   `json:"missing_keywords"`
	RelevantSkillsFound     []string   `json:"relevant_skills_found"`
	AnalysisSummary         Summary    `json:"analysis_summary"`
}

// Keywords is the skill vocabulary for the target role: every skill attached
// to a matching career, and the subset flagged essential by at least one of
// those careers.
type Keywords struct {
	Relevant  []string
	Essential []string
}

var (
	digitRe  = regexp.MustCompile(`\d+`)
	metricRe = regexp.MustCompile(`(?i)\$|revenue|sales|users|customers|growth|increase|decrease|improve`)
	bulletRe = regexp.MustCompile(`^[•\-\*]`)

	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}\s*-\s*\d{4}`), // 2020 - 2023
		regexp.MustCompile(`\d{1,2}/\d{4}`),     // 01/2020
		regexp.MustCompile(`\w+\s+\d{4}`),       // January 2020
	}

	actionVerbs = []string{
		"achieved", "built", "created", "developed", "implemented",
		"improved", "led", "managed", "optimized", "reduced",
	}
)

// Analyze runs the deterministic resume checks and produces the canonical
// analysis. It is pure: the model-backed path, when configured, must conform
// to the same shape or be discarded in favor of this output.
func Analyze(resumeText string, kw Keywords) Analysis {
	lower := strings.ToLower(resumeText)

	relevant := normalizeKeywords(kw.Relevant)
	essential := normalizeKeywords(kw.Essential)

	var missing []string
	for _, skill := range essential {
		if !strings.Contains(lower, skill) {
			missing = append(missing, skill)
		}
	}

	var found []string
	for _, skill := range relevant {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}

	hasNumbers := digitRe.MatchString(resumeText)
	hasMetrics := metricRe.MatchString(resumeText)
	quantifiable := hasNumbers && hasMetrics

	usesActionVerbs := false
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			usesActionVerbs = true
			break
		}
	}

	wordCount := len(strings.Fields(resumeText))
	formattingConsistent := checkFormattingConsistency(resumeText)

	var feedback []Feedback
	if len(missing) > 0 {
		feedback = append(feedback, Feedback{
			Category:   CategoryKeywords,
			Priority:   PriorityHigh,
			Issue:      "Missing essential keywords for the target role",
			Suggestion: fmt.Sprintf("Consider adding these essential skills to your resume: %s", strings.Join(capped(missing, 5), ", ")),
			Examples:   capped(missing, 3),
		})
	}
	if !quantifiable {
		feedback = append(feedback, Feedback{
			Category:   CategoryAchievements,
			Priority:   PriorityHigh,
			Issue:      "Lack of quantifiable achievements",
			Suggestion: "Add specific numbers, percentages, and metrics to demonstrate your impact",
			Examples: []string{
				"Increased team productivity by 25%",
				"Managed a budget of $500K",
				"Led a team of 8 developers",
			},
		})
	}
	if wordCount < 200 {
		feedback = append(feedback, Feedback{
			Category:   CategoryContent,
			Priority:   PriorityMedium,
			Issue:      "Resume appears too brief",
			Suggestion: "Consider expanding on your experiences and achievements. Aim for 300-600 words.",
		})
	} else if wordCount > 800 {
		feedback = append(feedback, Feedback{
			Category:   CategoryContent,
			Priority:   PriorityMedium,
			Issue:      "Resume may be too lengthy",
			Suggestion: "Consider condensing your content. Focus on the most relevant and impactful experiences.",
		})
	}
	if !usesActionVerbs {
		feedback = append(feedback, Feedback{
			Category:   CategoryContent,
			Priority:   PriorityMedium,
			Issue:      "Limited use of strong action verbs",
			Suggestion: "Start bullet points with powerful action verbs to make your achievements more impactful",
			Examples:   []string{"Developed", "Implemented", "Led", "Optimized", "Achieved"},
		})
	}
	if !formattingConsistent {
		feedback = append(feedback, Feedback{
			Category:   CategoryFormatting,
			Priority:   PriorityLow,
			Issue:      "Inconsistent formatting detected",
			Suggestion: "Ensure consistent formatting for dates, bullet points, and section headers",
		})
	}

	sort.SliceStable(feedback, func(i, j int) bool {
		return priorityOrder[feedback[i].Priority] < priorityOrder[feedback[j].Priority]
	})

	high := 0
	for _, f := range feedback {
		if f.Priority == PriorityHigh {
			high++
		}
	}
	score := 100 - high*20 - (len(feedback)-high)*10
	if score < 0 {
		score = 0
	}

	coverage := 0
	denominator := len(relevant)
	if denominator < 1 {
		denominator = 1
	}
	coverage = int(float64(len(found))/float64(denominator)*100 + 0.5)

	return Analysis{
		OverallScore:            score,
		SkillCoveragePercentage: coverage,
		Feedback:                feedback,
		MissingKeywords:         capped(missing, 10),
		RelevantSkillsFound:     found,
		AnalysisSummary: Summary{
			WordCount:                   wordCount,
			HasQuantifiableAchievements: quantifiable,
			UsesActionVerbs:             usesActionVerbs,
			FormattingConsistent:        formattingConsistent,
		},
	}
}

// checkFormattingConsistency wants at least one bullet-marker line and two
// matches of any one date pattern.
func checkFormattingConsistency(text string) bool {
	hasBullets := false
	for _, line := range strings.Split(text, "\n") {
		if bulletRe.MatchString(strings.TrimSpace(line)) {
			hasBullets = true
			break
		}
	}
	if !hasBullets {
		return false
	}
	for _, re := range dateRes {
		if len(re.FindAllString(text, -1)) >= 2 {
			return true
		}
	}
	return false
}

// normalizeKeywords lowercases and dedupes, keeping first-seen order so the
// output is stable for a given catalog ordering.
func normalizeKeywords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func capped(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[:n]
}

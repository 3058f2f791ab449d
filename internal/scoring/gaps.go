package scoring

import (
	"sort"

	"github.com/google/uuid"
)

// Gap severities, from most to least urgent.
const (
	SeverityCritical   = "Critical"
	SeverityImportant  = "Important"
	SeverityNiceToHave = "Nice to Have"
)

var severityOrder = map[string]int{
	SeverityCritical:   0,
	SeverityImportant:  1,
	SeverityNiceToHave: 2,
}

type SkillGap struct {
	SkillID             uuid.UUID    `json:"skill_id"`
	SkillName           string       `json:"skill_name"`
	SkillCategory       string       `json:"skill_category"`
	IsEssential         bool         `json:"is_essential"`
	RequiredProficiency Proficiency  `json:"required_proficiency"`
	CurrentProficiency  *Proficiency `json:"current_proficiency"`
	GapSeverity         string       `json:"gap_severity"`
}

type GapSummary struct {
	TotalSkillsRequired    int     `json:"total_skills_required"`
	SkillsYouHave          int     `json:"skills_you_have"`
	CriticalGaps           int     `json:"critical_gaps"`
	ImportantGaps          int     `json:"important_gaps"`
	NiceToHaveGaps         int     `json:"nice_to_have_gaps"`
	EstimatedLearningHours float64 `json:"estimated_learning_time"`
}

// AnalyzeGaps emits one gap per requirement the user does not satisfy: either
// no recorded skill, or a recorded proficiency ranking strictly below the
// required one. An essential requirement always gaps as Critical; otherwise
// severity follows the required level. Gaps come back sorted by severity,
// stable in requirement order within a severity.
func AnalyzeGaps(userSkills map[uuid.UUID]UserSkill, requirements []Requirement) []SkillGap {
	gaps := make([]SkillGap, 0, len(requirements))
	for _, req := range requirements {
		us, has := userSkills[req.SkillID]
		if has && us.Level.Rank() >= req.RequiredLevel.Rank() {
			continue
		}

		var current *Proficiency
		if has {
			level := us.Level
			current = &level
		}

		gaps = append(gaps, SkillGap{
			SkillID:             req.SkillID,
			SkillName:           req.SkillName,
			SkillCategory:       req.SkillCategory,
			IsEssential:         req.IsEssential,
			RequiredProficiency: req.RequiredLevel,
			CurrentProficiency:  current,
			GapSeverity:         severity(req),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return severityOrder[gaps[i].GapSeverity] < severityOrder[gaps[j].GapSeverity]
	})
	return gaps
}

func severity(req Requirement) string {
	if req.IsEssential {
		return SeverityCritical
	}
	if req.RequiredLevel == Advanced {
		return SeverityImportant
	}
	return SeverityNiceToHave
}

// Summarize derives the headline counts for a gap analysis. The estimated
// learning hours come from the caller, which knows the attached resources.
func Summarize(totalRequired int, gaps []SkillGap, estimatedHours float64) GapSummary {
	s := GapSummary{
		TotalSkillsRequired:    totalRequired,
		SkillsYouHave:          totalRequired - len(gaps),
		EstimatedLearningHours: estimatedHours,
	}
	for _, g := range gaps {
		switch g.GapSeverity {
		case SeverityCritical:
			s.CriticalGaps++
		case SeverityImportant:
			s.ImportantGaps++
		case SeverityNiceToHave:
			s.NiceToHaveGaps++
		}
	}
	return s
}

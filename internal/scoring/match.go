package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

const essentialWeight = 3

// UserSkill is a user's recorded proficiency in one catalog skill.
type UserSkill struct {
	SkillID         uuid.UUID
	SkillName       string
	Level           Proficiency
	YearsExperience float64
}

// Requirement is one career skill requirement joined with its skill row.
type Requirement struct {
	SkillID       uuid.UUID
	SkillName     string
	SkillCategory string
	IsEssential   bool
	RequiredLevel Proficiency
}

// CareerProfile is the career attributes the scorer needs, already fetched.
type CareerProfile struct {
	ID            uuid.UUID
	Name          string
	Description   string
	SalaryMin     int
	SalaryMax     int
	GrowthOutlook string
	Requirements  []Requirement
}

type RequiredSkillStatus struct {
	SkillName   string `json:"skill_name"`
	IsEssential bool   `json:"is_essential"`
	UserHas     bool   `json:"user_has"`
}

type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type MatchResult struct {
	CareerID       uuid.UUID             `json:"career_id"`
	CareerName     string                `json:"career_name"`
	Description    string                `json:"description"`
	MatchScore     float64               `json:"match_score"`
	Explanation    string                `json:"explanation"`
	RequiredSkills []RequiredSkillStatus `json:"required_skills"`
	SalaryRange    SalaryRange           `json:"salary_range"`
	GrowthOutlook  string                `json:"growth_outlook"`
}

// Score computes the weighted 0-100 match between a user's skills and one
// career's requirements. Essential requirements weigh 3, others 1; a held
// skill contributes weight times its proficiency weight. A career with no
// requirements scores 0.
func Score(userSkills []UserSkill, career CareerProfile) MatchResult {
	byID := make(map[uuid.UUID]UserSkill, len(userSkills))
	for _, us := range userSkills {
		byID[us.SkillID] = us
	}

	var contribution, totalWeight float64
	statuses := make([]RequiredSkillStatus, 0, len(career.Requirements))
	essentialTotal := 0
	essentialHave := 0

	for _, req := range career.Requirements {
		weight := 1.0
		if req.IsEssential {
			weight = essentialWeight
			essentialTotal++
		}
		us, has := byID[req.SkillID]
		if has {
			contribution += weight * us.Level.Weight()
			if req.IsEssential {
				essentialHave++
			}
		}
		totalWeight += weight
		statuses = append(statuses, RequiredSkillStatus{
			SkillName:   req.SkillName,
			IsEssential: req.IsEssential,
			UserHas:     has,
		})
	}

	score := 0.0
	if totalWeight > 0 {
		score = round2(contribution / totalWeight * 100)
	}

	return MatchResult{
		CareerID:       career.ID,
		CareerName:     career.Name,
		Description:    career.Description,
		MatchScore:     score,
		Explanation:    explanation(score, essentialHave, essentialTotal, career.Name),
		RequiredSkills: statuses,
		SalaryRange:    SalaryRange{Min: career.SalaryMin, Max: career.SalaryMax},
		GrowthOutlook:  career.GrowthOutlook,
	}
}

// Rank orders results by descending match score and truncates to limit.
// Equal scores order by ascending career id so a full catalog rescore is
// deterministic.
func Rank(results []MatchResult, limit int) []MatchResult {
	ranked := make([]MatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		return ranked[i].CareerID.String() < ranked[j].CareerID.String()
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// explanation picks wording by score band. Bands are presentation only and
// never feed back into the score.
func explanation(score float64, essentialHave, essentialTotal int, careerName string) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent match! You have %d/%d essential skills for %s. Your experience aligns well with this career path.",
			essentialHave, essentialTotal, careerName)
	case score >= 60:
		return fmt.Sprintf("Good match! You have %d/%d essential skills for %s. With some additional learning, this could be a great fit.",
			essentialHave, essentialTotal, careerName)
	case score >= 40:
		return fmt.Sprintf("Moderate match. You have %d/%d essential skills for %s. Consider developing more relevant skills to strengthen your candidacy.",
			essentialHave, essentialTotal, careerName)
	default:
		return fmt.Sprintf("This role requires significant skill development. You currently have %d/%d essential skills for %s, but it could be a good long-term goal.",
			essentialHave, essentialTotal, careerName)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

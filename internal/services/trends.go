package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/requestdata"
)

const (
	defaultTrendLimit  = 10
	trendingSkillLimit = 10
	personalizedLimit  = 5
)

type TrendQuery struct {
	Industry string
	Skill    string
	Limit    int
}

type SkillTrend struct {
	Skill    string `json:"skill"`
	Mentions int    `json:"mentions"`
}

type CategorizedInsights struct {
	EmergingRoles  []*types.IndustryInsight `json:"emerging_roles"`
	SkillDemand    []*types.IndustryInsight `json:"skill_demand"`
	IndustryShifts []*types.IndustryInsight `json:"industry_shifts"`
	MarketTrends   []*types.IndustryInsight `json:"market_trends"`
}

type TrendReport struct {
	Insights             []*types.IndustryInsight `json:"insights"`
	TrendingSkills       []SkillTrend             `json:"trending_skills"`
	Categorized          CategorizedInsights      `json:"categorized"`
	PersonalizedInsights []*types.IndustryInsight `json:"personalized_insights"`
	TotalInsights        int                      `json:"total_insights"`
	LastUpdated          *time.Time               `json:"last_updated"`
}

type TrendService interface {
	GetTrends(ctx context.Context, query TrendQuery) (*TrendReport, error)
}

type trendService struct {
	log           *logger.Logger
	insightRepo   repos.IndustryInsightRepo
	userSkillRepo repos.UserSkillRepo
}

func NewTrendService(log *logger.Logger, insightRepo repos.IndustryInsightRepo, userSkillRepo repos.UserSkillRepo) TrendService {
	return &trendService{
		log:           log.With("service", "TrendService"),
		insightRepo:   insightRepo,
		userSkillRepo: userSkillRepo,
	}
}

// GetTrends works for anonymous callers; personalized_insights stays empty
// unless the request carries an authenticated user.
func (ts *trendService) GetTrends(ctx context.Context, query TrendQuery) (*TrendReport, error) {
	if query.Limit <= 0 {
		query.Limit = defaultTrendLimit
	}
	userID := requestdata.UserID(ctx)

	var (
		insights   []*types.IndustryInsight
		userSkills []*types.UserSkill
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		insights, err = ts.insightRepo.ListActive(gctx, nil, 0)
		if err != nil {
			return fmt.Errorf("list insights: %w", err)
		}
		return nil
	})
	if userID != uuid.Nil {
		g.Go(func() error {
			var err error
			userSkills, err = ts.userSkillRepo.ListByUserID(gctx, nil, userID)
			if err != nil {
				return fmt.Errorf("list user skills: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := filterInsights(insights, query)

	limited := filtered
	if len(limited) > query.Limit {
		limited = limited[:query.Limit]
	}

	report := &TrendReport{
		Insights:             limited,
		TrendingSkills:       trendingSkills(filtered),
		Categorized:          categorize(filtered),
		PersonalizedInsights: personalize(filtered, userSkills),
		TotalInsights:        len(filtered),
	}
	if len(filtered) > 0 {
		// ListActive orders by generated_date descending.
		last := filtered[0].GeneratedDate
		report.LastUpdated = &last
	}
	return report, nil
}

// filterInsights keeps insights tagged with the requested industry (career
// tags) and skill, matched case-insensitively.
func filterInsights(insights []*types.IndustryInsight, query TrendQuery) []*types.IndustryInsight {
	industry := strings.ToLower(strings.TrimSpace(query.Industry))
	skill := strings.ToLower(strings.TrimSpace(query.Skill))

	out := make([]*types.IndustryInsight, 0, len(insights))
	for _, insight := range insights {
		if industry != "" && !tagsContain(insight.RelevantCareers, industry) {
			continue
		}
		if skill != "" && !tagsContain(insight.RelevantSkills, skill) {
			continue
		}
		out = append(out, insight)
	}
	return out
}

func tagsContain(raw datatypes.JSON, needle string) bool {
	for _, tag := range decodeTags(raw) {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func decodeTags(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

// trendingSkills counts skill tag mentions across the filtered insights.
// Ties order alphabetically so the list is stable.
func trendingSkills(insights []*types.IndustryInsight) []SkillTrend {
	counts := make(map[string]int)
	for _, insight := range insights {
		for _, tag := range decodeTags(insight.RelevantSkills) {
			counts[tag]++
		}
	}

	trends := make([]SkillTrend, 0, len(counts))
	for skill, mentions := range counts {
		trends = append(trends, SkillTrend{Skill: skill, Mentions: mentions})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Mentions != trends[j].Mentions {
			return trends[i].Mentions > trends[j].Mentions
		}
		return trends[i].Skill < trends[j].Skill
	})
	if len(trends) > trendingSkillLimit {
		trends = trends[:trendingSkillLimit]
	}
	return trends
}

func categorize(insights []*types.IndustryInsight) CategorizedInsights {
	c := CategorizedInsights{
		EmergingRoles:  []*types.IndustryInsight{},
		SkillDemand:    []*types.IndustryInsight{},
		IndustryShifts: []*types.IndustryInsight{},
		MarketTrends:   []*types.IndustryInsight{},
	}
	for _, insight := range insights {
		switch insight.InsightType {
		case types.InsightEmergingRole:
			c.EmergingRoles = append(c.EmergingRoles, insight)
		case types.InsightSkillDemand:
			c.SkillDemand = append(c.SkillDemand, insight)
		case types.InsightIndustryShift:
			c.IndustryShifts = append(c.IndustryShifts, insight)
		case types.InsightMarketTrend:
			c.MarketTrends = append(c.MarketTrends, insight)
		}
	}
	return c
}

// personalize keeps insights that mention any of the caller's skills.
func personalize(insights []*types.IndustryInsight, userSkills []*types.UserSkill) []*types.IndustryInsight {
	out := []*types.IndustryInsight{}
	if len(userSkills) == 0 {
		return out
	}

	held := make(map[string]struct{}, len(userSkills))
	for _, us := range userSkills {
		held[strings.ToLower(us.Skill.Name)] = struct{}{}
	}

	for _, insight := range insights {
		for _, tag := range decodeTags(insight.RelevantSkills) {
			if _, ok := held[strings.ToLower(tag)]; ok {
				out = append(out, insight)
				break
			}
		}
		if len(out) == personalizedLimit {
			break
		}
	}
	return out
}

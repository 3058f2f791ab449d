package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/careerpilot/careerpilot-backend/internal/clients/rediscache"
	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/requestdata"
	"github.com/careerpilot/careerpilot-backend/internal/scoring"
)

const recommendationLimit = 10

type RecommendationService interface {
	GetRecommendations(ctx context.Context) ([]scoring.MatchResult, error)
}

type recommendationService struct {
	log        *logger.Logger
	careerRepo repos.CareerRepo
	skillRepo  repos.UserSkillRepo
	recRepo    repos.CareerRecommendationRepo
	cache      rediscache.MatchCache
}

// NewRecommendationService accepts a nil cache; scoring then always runs
// against the database.
func NewRecommendationService(
	log *logger.Logger,
	careerRepo repos.CareerRepo,
	skillRepo repos.UserSkillRepo,
	recRepo repos.CareerRecommendationRepo,
	cache rediscache.MatchCache,
) RecommendationService {
	return &recommendationService{
		log:        log.With("service", "RecommendationService"),
		careerRepo: careerRepo,
		skillRepo:  skillRepo,
		recRepo:    recRepo,
		cache:      cache,
	}
}

func (rs *recommendationService) GetRecommendations(ctx context.Context) ([]scoring.MatchResult, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	if rs.cache != nil {
		if cached, ok := rs.cache.Get(ctx, userID.String()); ok {
			return cached, nil
		}
	}

	userSkills, err := rs.skillRepo.ListByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list user skills: %w", err)
	}
	careers, err := rs.careerRepo.ListWithRequirements(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}

	scoringSkills := make([]scoring.UserSkill, 0, len(userSkills))
	for _, us := range userSkills {
		scoringSkills = append(scoringSkills, scoring.UserSkill{
			SkillID:         us.SkillID,
			SkillName:       us.Skill.Name,
			Level:           scoring.Proficiency(us.ProficiencyLevel),
			YearsExperience: us.YearsExperience,
		})
	}

	results := make([]scoring.MatchResult, 0, len(careers))
	for _, career := range careers {
		results = append(results, scoring.Score(scoringSkills, careerProfile(career)))
	}
	ranked := scoring.Rank(results, recommendationLimit)

	rs.persist(ctx, userID, ranked)

	if rs.cache != nil {
		rs.cache.Set(ctx, userID.String(), ranked)
	}
	return ranked, nil
}

// persist caches each ranked result as the current recommendation row for the
// (user, career) key. Failures are logged and do not fail the request.
func (rs *recommendationService) persist(ctx context.Context, userID uuid.UUID, ranked []scoring.MatchResult) {
	for _, result := range ranked {
		factors, err := json.Marshal(map[string]interface{}{
			"required_skills": result.RequiredSkills,
			"salary_range":    result.SalaryRange,
			"growth_outlook":  result.GrowthOutlook,
		})
		if err != nil {
			rs.log.Warn("Marshal recommendation factors failed", "career_id", result.CareerID, "error", err)
			continue
		}
		rec := &types.CareerRecommendation{
			UserID:                userID,
			CareerID:              result.CareerID,
			MatchScore:            result.MatchScore,
			Explanation:           result.Explanation,
			RecommendationFactors: datatypes.JSON(factors),
		}
		if err := rs.recRepo.Upsert(ctx, nil, rec); err != nil {
			rs.log.Warn("Persist recommendation failed", "career_id", result.CareerID, "error", err)
		}
	}
}

func careerProfile(career *types.Career) scoring.CareerProfile {
	reqs := make([]scoring.Requirement, 0, len(career.RequiredSkills))
	for _, req := range career.RequiredSkills {
		reqs = append(reqs, scoring.Requirement{
			SkillID:       req.SkillID,
			SkillName:     req.Skill.Name,
			SkillCategory: req.Skill.Category,
			IsEssential:   req.IsEssential,
			RequiredLevel: scoring.Proficiency(req.RequiredProficiency),
		})
	}
	return scoring.CareerProfile{
		ID:            career.ID,
		Name:          career.Name,
		Description:   career.Description,
		SalaryMin:     career.SalaryMin,
		SalaryMax:     career.SalaryMax,
		GrowthOutlook: career.GrowthOutlook,
		Requirements:  reqs,
	}
}

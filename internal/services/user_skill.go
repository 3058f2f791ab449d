package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot-backend/internal/clients/rediscache"
	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/requestdata"
	"github.com/careerpilot/careerpilot-backend/internal/scoring"
)

type UserSkillService interface {
	List(ctx context.Context) ([]*types.UserSkill, error)
	Record(ctx context.Context, skillID uuid.UUID, level string, yearsExperience float64) (*types.UserSkill, error)
	Remove(ctx context.Context, skillID uuid.UUID) error
}

type userSkillService struct {
	log           *logger.Logger
	skillRepo     repos.SkillRepo
	userSkillRepo repos.UserSkillRepo
	matchCache    rediscache.MatchCache
}

// NewUserSkillService accepts a nil matchCache; invalidation is then a no-op.
func NewUserSkillService(log *logger.Logger, skillRepo repos.SkillRepo, userSkillRepo repos.UserSkillRepo, matchCache rediscache.MatchCache) UserSkillService {
	return &userSkillService{
		log:           log.With("service", "UserSkillService"),
		skillRepo:     skillRepo,
		userSkillRepo: userSkillRepo,
		matchCache:    matchCache,
	}
}

func (uss *userSkillService) List(ctx context.Context) ([]*types.UserSkill, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	return uss.userSkillRepo.ListByUserID(ctx, nil, userID)
}

func (uss *userSkillService) Record(ctx context.Context, skillID uuid.UUID, level string, yearsExperience float64) (*types.UserSkill, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	if !scoring.Proficiency(level).Valid() {
		return nil, fmt.Errorf("%w: proficiency_level must be one of Beginner, Intermediate, Advanced", apperr.ErrInvalidInput)
	}
	if yearsExperience < 0 {
		return nil, fmt.Errorf("%w: years_experience cannot be negative", apperr.ErrInvalidInput)
	}

	skills, err := uss.skillRepo.GetByIDs(ctx, nil, []uuid.UUID{skillID})
	if err != nil {
		return nil, fmt.Errorf("get skill: %w", err)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("%w: skill does not exist", apperr.ErrNotFound)
	}

	row := &types.UserSkill{
		ID:               uuid.New(),
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: level,
		YearsExperience:  yearsExperience,
		UpdatedAt:        time.Now(),
	}
	saved, err := uss.userSkillRepo.Upsert(ctx, nil, row)
	if err != nil {
		return nil, fmt.Errorf("upsert user skill: %w", err)
	}
	saved.Skill = *skills[0]
	uss.invalidateRecommendations(ctx, userID)
	return saved, nil
}

func (uss *userSkillService) Remove(ctx context.Context, skillID uuid.UUID) error {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return apperr.ErrUnauthorized
	}
	if err := uss.userSkillRepo.Delete(ctx, nil, userID, skillID); err != nil {
		return err
	}
	uss.invalidateRecommendations(ctx, userID)
	return nil
}

// invalidateRecommendations drops the cached recommendation ranking after a
// skill write; the next request recomputes from the updated rows.
func (uss *userSkillService) invalidateRecommendations(ctx context.Context, userID uuid.UUID) {
	if uss.matchCache != nil {
		uss.matchCache.Invalidate(ctx, userID.String())
	}
}

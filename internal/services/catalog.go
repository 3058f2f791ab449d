package services

import (
	"context"

	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

// CatalogService serves the reference data browsing endpoints.
type CatalogService interface {
	ListSkills(ctx context.Context) ([]*types.Skill, error)
	ListCareers(ctx context.Context) ([]*types.Career, error)
}

type catalogService struct {
	log        *logger.Logger
	skillRepo  repos.SkillRepo
	careerRepo repos.CareerRepo
}

func NewCatalogService(log *logger.Logger, skillRepo repos.SkillRepo, careerRepo repos.CareerRepo) CatalogService {
	return &catalogService{
		log:        log.With("service", "CatalogService"),
		skillRepo:  skillRepo,
		careerRepo: careerRepo,
	}
}

func (cs *catalogService) ListSkills(ctx context.Context) ([]*types.Skill, error) {
	return cs.skillRepo.List(ctx, nil)
}

func (cs *catalogService) ListCareers(ctx context.Context) ([]*types.Career, error) {
	return cs.careerRepo.ListWithRequirements(ctx, nil)
}

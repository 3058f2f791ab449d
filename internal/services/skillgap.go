package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/requestdata"
	"github.com/careerpilot/careerpilot-backend/internal/scoring"
)

const resourcesPerGap = 5

type CareerSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// GapWithResources pairs a detected gap with the best learning resources for
// closing it.
type GapWithResources struct {
	scoring.SkillGap
	LearningResources []types.LearningResource `json:"learning_resources"`
}

type GapAnalysis struct {
	Career    CareerSummary      `json:"career"`
	SkillGaps []GapWithResources `json:"skill_gaps"`
	Summary   scoring.GapSummary `json:"summary"`
}

type SkillGapService interface {
	Analyze(ctx context.Context, careerID uuid.UUID) (*GapAnalysis, error)
}

type skillGapService struct {
	log           *logger.Logger
	careerRepo    repos.CareerRepo
	userSkillRepo repos.UserSkillRepo
	resourceRepo  repos.LearningResourceRepo
	analysisRepo  repos.SkillGapAnalysisRepo
}

func NewSkillGapService(
	log *logger.Logger,
	careerRepo repos.CareerRepo,
	userSkillRepo repos.UserSkillRepo,
	resourceRepo repos.LearningResourceRepo,
	analysisRepo repos.SkillGapAnalysisRepo,
) SkillGapService {
	return &skillGapService{
		log:           log.With("service", "SkillGapService"),
		careerRepo:    careerRepo,
		userSkillRepo: userSkillRepo,
		resourceRepo:  resourceRepo,
		analysisRepo:  analysisRepo,
	}
}

func (sgs *skillGapService) Analyze(ctx context.Context, careerID uuid.UUID) (*GapAnalysis, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	career, err := sgs.careerRepo.GetByID(ctx, nil, careerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: career does not exist", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("get career: %w", err)
	}

	userSkills, err := sgs.userSkillRepo.ListByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list user skills: %w", err)
	}

	held := make(map[uuid.UUID]scoring.UserSkill, len(userSkills))
	for _, us := range userSkills {
		held[us.SkillID] = scoring.UserSkill{
			SkillID:         us.SkillID,
			SkillName:       us.Skill.Name,
			Level:           scoring.Proficiency(us.ProficiencyLevel),
			YearsExperience: us.YearsExperience,
		}
	}

	requirements := careerProfile(career).Requirements
	gaps := scoring.AnalyzeGaps(held, requirements)

	withResources := make([]GapWithResources, 0, len(gaps))
	var estimatedHours float64
	for _, gap := range gaps {
		resources, err := sgs.resourceRepo.ListTopBySkillID(ctx, nil, gap.SkillID, resourcesPerGap)
		if err != nil {
			sgs.log.Warn("List learning resources failed", "skill_id", gap.SkillID, "error", err)
			resources = nil
		}
		if len(resources) > 0 {
			var total float64
			for _, r := range resources {
				total += float64(r.DurationHours)
			}
			estimatedHours += total / float64(len(resources))
		}
		withResources = append(withResources, GapWithResources{
			SkillGap:          gap,
			LearningResources: resources,
		})
	}

	analysis := &GapAnalysis{
		Career: CareerSummary{
			ID:          career.ID,
			Name:        career.Name,
			Description: career.Description,
		},
		SkillGaps: withResources,
		Summary:   scoring.Summarize(len(requirements), gaps, estimatedHours),
	}

	sgs.persist(ctx, userID, careerID, analysis)
	return analysis, nil
}

// persist caches the analysis for the (user, career) key. Failures are logged
// and do not fail the request.
func (sgs *skillGapService) persist(ctx context.Context, userID, careerID uuid.UUID, analysis *GapAnalysis) {
	payload, err := json.Marshal(analysis.SkillGaps)
	if err != nil {
		sgs.log.Warn("Marshal skill gaps failed", "career_id", careerID, "error", err)
		return
	}
	row := &types.SkillGapAnalysis{
		UserID:    userID,
		CareerID:  careerID,
		SkillGaps: datatypes.JSON(payload),
	}
	if err := sgs.analysisRepo.Upsert(ctx, nil, row); err != nil {
		sgs.log.Warn("Persist gap analysis failed", "career_id", careerID, "error", err)
	}
}

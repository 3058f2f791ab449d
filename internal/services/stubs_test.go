package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/requestdata"
)

func testLogger(tb interface{ Fatalf(string, ...interface{}) }) *logger.Logger {
	log, err := logger.New("dev")
	if err != nil {
		tb.Fatalf("logger.New: %v", err)
	}
	return log
}

func authedContext(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: userID,
	})
}

type stubCareerRepo struct {
	careers []*types.Career
	byID    map[uuid.UUID]*types.Career
	err     error
}

func (s *stubCareerRepo) ListWithRequirements(ctx context.Context, tx *gorm.DB) ([]*types.Career, error) {
	return s.careers, s.err
}

func (s *stubCareerRepo) GetByID(ctx context.Context, tx *gorm.DB, careerID uuid.UUID) (*types.Career, error) {
	if s.err != nil {
		return nil, s.err
	}
	career, ok := s.byID[careerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return career, nil
}

func (s *stubCareerRepo) SearchByName(ctx context.Context, tx *gorm.DB, nameFragment string) ([]*types.Career, error) {
	return s.careers, s.err
}

type stubUserSkillRepo struct {
	skills []*types.UserSkill
	err    error
}

func (s *stubUserSkillRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error) {
	return s.skills, s.err
}

func (s *stubUserSkillRepo) Upsert(ctx context.Context, tx *gorm.DB, userSkill *types.UserSkill) (*types.UserSkill, error) {
	return userSkill, s.err
}

func (s *stubUserSkillRepo) Delete(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) error {
	return s.err
}

type stubResourceRepo struct {
	bySkill map[uuid.UUID][]types.LearningResource
}

func (s *stubResourceRepo) ListTopBySkillID(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, limit int) ([]types.LearningResource, error) {
	resources := s.bySkill[skillID]
	if limit > 0 && len(resources) > limit {
		resources = resources[:limit]
	}
	return resources, nil
}

type stubRecRepo struct {
	upserts []*types.CareerRecommendation
}

func (s *stubRecRepo) Upsert(ctx context.Context, tx *gorm.DB, rec *types.CareerRecommendation) error {
	s.upserts = append(s.upserts, rec)
	return nil
}

func (s *stubRecRepo) ListCurrentByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CareerRecommendation, error) {
	return nil, nil
}

type stubGapRepo struct {
	upserts []*types.SkillGapAnalysis
}

func (s *stubGapRepo) Upsert(ctx context.Context, tx *gorm.DB, analysis *types.SkillGapAnalysis) error {
	s.upserts = append(s.upserts, analysis)
	return nil
}

type stubInsightRepo struct {
	insights []*types.IndustryInsight
}

func (s *stubInsightRepo) ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.IndustryInsight, error) {
	if limit > 0 && len(s.insights) > limit {
		return s.insights[:limit], nil
	}
	return s.insights, nil
}

type stubProvider struct {
	output string
	err    error
	calls  int
}

func (s *stubProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	return s.output, s.err
}

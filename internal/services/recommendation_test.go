package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/scoring"
)

func testCareer(name string, reqs ...types.CareerSkillRequirement) *types.Career {
	career := &types.Career{
		ID:            uuid.New(),
		Name:          name,
		GrowthOutlook: "High",
		SalaryMin:     80000,
		SalaryMax:     150000,
	}
	for i := range reqs {
		reqs[i].ID = uuid.New()
		reqs[i].CareerID = career.ID
	}
	career.RequiredSkills = reqs
	return career
}

func essentialReq(skillName string, level string) types.CareerSkillRequirement {
	return types.CareerSkillRequirement{
		SkillID:             uuid.New(),
		IsEssential:         true,
		RequiredProficiency: level,
		Skill:               types.Skill{ID: uuid.New(), Name: skillName, Category: "Technical"},
	}
}

func TestGetRecommendationsRequiresAuth(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(testLogger(t), &stubCareerRepo{}, &stubUserSkillRepo{}, &stubRecRepo{}, nil)
	_, err := svc.GetRecommendations(context.Background())
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestGetRecommendationsRanksAndPersists(t *testing.T) {
	t.Parallel()

	goReq := essentialReq("Go", "Advanced")
	sqlReq := essentialReq("SQL", "Advanced")
	strongFit := testCareer("Backend Engineer", goReq)
	weakFit := testCareer("Data Analyst", sqlReq)

	userID := uuid.New()
	recRepo := &stubRecRepo{}
	svc := NewRecommendationService(
		testLogger(t),
		&stubCareerRepo{careers: []*types.Career{weakFit, strongFit}},
		&stubUserSkillRepo{skills: []*types.UserSkill{{
			UserID:           userID,
			SkillID:          goReq.SkillID,
			ProficiencyLevel: "Advanced",
			Skill:            goReq.Skill,
		}}},
		recRepo,
		nil,
	)

	results, err := svc.GetRecommendations(authedContext(userID))
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].CareerName != "Backend Engineer" {
		t.Fatalf("top result = %q, want Backend Engineer", results[0].CareerName)
	}
	if results[0].MatchScore != 100 {
		t.Errorf("top score = %v, want 100", results[0].MatchScore)
	}
	if results[1].MatchScore != 0 {
		t.Errorf("second score = %v, want 0", results[1].MatchScore)
	}

	if len(recRepo.upserts) != 2 {
		t.Fatalf("persisted %d rows, want 2", len(recRepo.upserts))
	}
	for _, rec := range recRepo.upserts {
		if rec.UserID != userID {
			t.Errorf("persisted UserID = %s, want %s", rec.UserID, userID)
		}
		if len(rec.RecommendationFactors) == 0 {
			t.Errorf("persisted factors empty for career %s", rec.CareerID)
		}
	}
}

func TestGetRecommendationsCapsAtTen(t *testing.T) {
	t.Parallel()

	var careers []*types.Career
	for i := 0; i < 14; i++ {
		careers = append(careers, testCareer("Career", essentialReq("Skill", "Beginner")))
	}

	svc := NewRecommendationService(testLogger(t), &stubCareerRepo{careers: careers}, &stubUserSkillRepo{}, &stubRecRepo{}, nil)
	results, err := svc.GetRecommendations(authedContext(uuid.New()))
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("len(results) = %d, want 10", len(results))
	}
}

func TestGetRecommendationsUsesCache(t *testing.T) {
	t.Parallel()

	cached := []scoring.MatchResult{{CareerName: "Cached Career", MatchScore: 42}}
	cache := &stubMatchCache{hit: cached}
	careerRepo := &stubCareerRepo{err: errors.New("db must not be touched on cache hit")}

	svc := NewRecommendationService(testLogger(t), careerRepo, &stubUserSkillRepo{}, &stubRecRepo{}, cache)
	results, err := svc.GetRecommendations(authedContext(uuid.New()))
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(results) != 1 || results[0].CareerName != "Cached Career" {
		t.Fatalf("results = %+v, want cached payload", results)
	}
}

type stubMatchCache struct {
	hit         []scoring.MatchResult
	sets        int
	invalidated []string
}

func (s *stubMatchCache) Get(ctx context.Context, userID string) ([]scoring.MatchResult, bool) {
	return s.hit, s.hit != nil
}

func (s *stubMatchCache) Set(ctx context.Context, userID string, results []scoring.MatchResult) {
	s.sets++
}

func (s *stubMatchCache) Invalidate(ctx context.Context, userID string) {
	s.invalidated = append(s.invalidated, userID)
	s.hit = nil
}

func (s *stubMatchCache) Close() error { return nil }

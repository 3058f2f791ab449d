package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, name, category string) *types.Skill {
	tb.Helper()
	s := &types.Skill{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed skill: %v", err)
	}
	return s
}

func SeedCareer(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Career {
	tb.Helper()
	c := &types.Career{
		ID:            uuid.New(),
		Name:          name,
		Description:   "a career",
		SalaryMin:     50000,
		SalaryMax:     90000,
		GrowthOutlook: "High",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed career: %v", err)
	}
	return c
}

func SeedRequirement(tb testing.TB, ctx context.Context, tx *gorm.DB, careerID, skillID uuid.UUID, essential bool, proficiency string) *types.CareerSkillRequirement {
	tb.Helper()
	req := &types.CareerSkillRequirement{
		ID:                  uuid.New(),
		CareerID:            careerID,
		SkillID:             skillID,
		IsEssential:         essential,
		RequiredProficiency: proficiency,
	}
	if err := tx.WithContext(ctx).Create(req).Error; err != nil {
		tb.Fatalf("seed requirement: %v", err)
	}
	return req
}

func SeedUserSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID, proficiency string) *types.UserSkill {
	tb.Helper()
	us := &types.UserSkill{
		ID:               uuid.New(),
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: proficiency,
		YearsExperience:  1,
	}
	if err := tx.WithContext(ctx).Create(us).Error; err != nil {
		tb.Fatalf("seed user skill: %v", err)
	}
	return us
}

func SeedResource(tb testing.TB, ctx context.Context, tx *gorm.DB, skillID uuid.UUID, title string, rating, hours float64) *types.LearningResource {
	tb.Helper()
	lr := &types.LearningResource{
		ID:            uuid.New(),
		SkillID:       skillID,
		Title:         title,
		Type:          "Course",
		Rating:        rating,
		DurationHours: hours,
	}
	if err := tx.WithContext(ctx).Create(lr).Error; err != nil {
		tb.Fatalf("seed resource: %v", err)
	}
	return lr
}

package db

import (
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity + auth
		&types.User{},
		&types.UserToken{},

		// Catalog reference data
		&types.Skill{},
		&types.Career{},
		&types.CareerSkillRequirement{},
		&types.LearningResource{},
		&types.IndustryInsight{},

		// Per-user state
		&types.UserSkill{},

		// Derived caches
		&types.CareerRecommendation{},
		&types.SkillGapAnalysis{},
	)
}

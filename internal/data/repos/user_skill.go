package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type UserSkillRepo interface {
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error)
	Upsert(ctx context.Context, tx *gorm.DB, userSkill *types.UserSkill) (*types.UserSkill, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) error
}

type userSkillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserSkillRepo(db *gorm.DB, baseLog *logger.Logger) UserSkillRepo {
	return &userSkillRepo{db: db, log: baseLog.With("repo", "UserSkillRepo")}
}

func (r *userSkillRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.UserSkill
	if err := transaction.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert keeps one row per (user, skill): recording an existing skill
// overwrites proficiency and experience instead of appending.
func (r *userSkillRepo) Upsert(ctx context.Context, tx *gorm.DB, userSkill *types.UserSkill) (*types.UserSkill, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userSkill.ID == uuid.Nil {
		userSkill.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"proficiency_level": userSkill.ProficiencyLevel,
				"years_experience":  userSkill.YearsExperience,
				"updated_at":        time.Now().UTC(),
			}),
		}).
		Create(userSkill).Error; err != nil {
		return nil, err
	}
	return userSkill, nil
}

func (r *userSkillRepo) Delete(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&types.UserSkill{}).Error
}

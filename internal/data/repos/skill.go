package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type SkillRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Skill, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*types.Skill, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	return &skillRepo{db: db, log: baseLog.With("repo", "SkillRepo")}
}

func (r *skillRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Skill
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *skillRepo) GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*types.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Skill
	if len(skillIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", skillIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

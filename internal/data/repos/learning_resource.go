package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type LearningResourceRepo interface {
	ListTopBySkillID(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, limit int) ([]types.LearningResource, error)
}

type learningResourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningResourceRepo(db *gorm.DB, baseLog *logger.Logger) LearningResourceRepo {
	return &learningResourceRepo{db: db, log: baseLog.With("repo", "LearningResourceRepo")}
}

func (r *learningResourceRepo) ListTopBySkillID(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, limit int) ([]types.LearningResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.LearningResource
	q := transaction.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Order("rating DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

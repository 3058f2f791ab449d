package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type IndustryInsightRepo interface {
	ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.IndustryInsight, error)
}

type industryInsightRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIndustryInsightRepo(db *gorm.DB, baseLog *logger.Logger) IndustryInsightRepo {
	return &industryInsightRepo{db: db, log: baseLog.With("repo", "IndustryInsightRepo")}
}

func (r *industryInsightRepo) ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.IndustryInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.IndustryInsight
	q := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("generated_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

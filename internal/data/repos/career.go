package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type CareerRepo interface {
	ListWithRequirements(ctx context.Context, tx *gorm.DB) ([]*types.Career, error)
	GetByID(ctx context.Context, tx *gorm.DB, careerID uuid.UUID) (*types.Career, error)
	SearchByName(ctx context.Context, tx *gorm.DB, nameFragment string) ([]*types.Career, error)
}

type careerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerRepo(db *gorm.DB, baseLog *logger.Logger) CareerRepo {
	return &careerRepo{db: db, log: baseLog.With("repo", "CareerRepo")}
}

func (r *careerRepo) ListWithRequirements(ctx context.Context, tx *gorm.DB) ([]*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Career
	if err := transaction.WithContext(ctx).
		Preload("RequiredSkills.Skill").
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerRepo) GetByID(ctx context.Context, tx *gorm.DB, careerID uuid.UUID) (*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Career
	if err := transaction.WithContext(ctx).
		Preload("RequiredSkills.Skill").
		Where("id = ?", careerID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchByName does a case-insensitive substring match on career name. The
// LOWER/LIKE form keeps it portable across postgres and the sqlite test
// fallback.
func (r *careerRepo) SearchByName(ctx context.Context, tx *gorm.DB, nameFragment string) ([]*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Career
	pattern := "%" + strings.ToLower(nameFragment) + "%"
	if err := transaction.WithContext(ctx).
		Preload("RequiredSkills.Skill").
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

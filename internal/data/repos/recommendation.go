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

type CareerRecommendationRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, rec *types.CareerRecommendation) error
	ListCurrentByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CareerRecommendation, error)
}

type careerRecommendationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) CareerRecommendationRepo {
	return &careerRecommendationRepo{db: db, log: baseLog.With("repo", "CareerRecommendationRepo")}
}

// Upsert overwrites the cached row for the (user, career) key. Prior results
// for the same key are superseded by the overwrite, not kept as history.
func (r *careerRecommendationRepo) Upsert(ctx context.Context, tx *gorm.DB, rec *types.CareerRecommendation) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.IsCurrent = true
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "career_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"match_score":            rec.MatchScore,
				"explanation":            rec.Explanation,
				"recommendation_factors": rec.RecommendationFactors,
				"is_current":             true,
				"updated_at":             time.Now().UTC(),
			}),
		}).
		Create(rec).Error
}

func (r *careerRecommendationRepo) ListCurrentByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CareerRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CareerRecommendation
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND is_current = ?", userID, true).
		Order("match_score DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type SkillGapAnalysisRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, analysis *types.SkillGapAnalysis) error
}

type skillGapAnalysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillGapAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) SkillGapAnalysisRepo {
	return &skillGapAnalysisRepo{db: db, log: baseLog.With("repo", "SkillGapAnalysisRepo")}
}

func (r *skillGapAnalysisRepo) Upsert(ctx context.Context, tx *gorm.DB, analysis *types.SkillGapAnalysis) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	analysis.IsCurrent = true
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "career_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"skill_gaps": analysis.SkillGaps,
				"is_current": true,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(analysis).Error
}

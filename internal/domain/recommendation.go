package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CareerRecommendation caches the latest computed match for a (user, career)
// pair. It is derived data: recomputation always starts from live UserSkill
// and CareerSkillRequirement rows, never from this table. Concurrent writes
// for the same key are last-writer-wins.
type CareerRecommendation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_career_rec;column:user_id" json:"user_id"`
	CareerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_career_rec;column:career_id" json:"career_id"`
	MatchScore  float64   `gorm:"not null;column:match_score" json:"match_score"`
	Explanation string    `gorm:"column:explanation" json:"explanation"`

	RecommendationFactors datatypes.JSON `gorm:"column:recommendation_factors;type:jsonb" json:"recommendation_factors"`

	IsCurrent bool      `gorm:"not null;default:true;column:is_current" json:"is_current"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CareerRecommendation) TableName() string { return "career_recommendation" }

// SkillGapAnalysis caches the latest gap analysis for a (user, career) pair,
// same lifecycle as CareerRecommendation.
type SkillGapAnalysis struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_career_gap;column:user_id" json:"user_id"`
	CareerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_career_gap;column:career_id" json:"career_id"`

	SkillGaps datatypes.JSON `gorm:"column:skill_gaps;type:jsonb" json:"skill_gaps"`

	IsCurrent bool      `gorm:"not null;default:true;column:is_current" json:"is_current"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SkillGapAnalysis) TableName() string { return "skill_gap_analysis" }

package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Insight types as stored in insight_type.
const (
	InsightEmergingRole  = "Emerging Role"
	InsightSkillDemand   = "Skill Demand"
	InsightIndustryShift = "Industry Shift"
	InsightMarketTrend   = "Market Trend"
)

type IndustryInsight struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InsightType string    `gorm:"not null;index;column:insight_type" json:"insight_type"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Summary     string    `gorm:"column:summary" json:"summary"`

	// JSON arrays of skill and career names the insight is tagged with.
	RelevantSkills  datatypes.JSON `gorm:"column:relevant_skills;type:jsonb" json:"relevant_skills"`
	RelevantCareers datatypes.JSON `gorm:"column:relevant_careers;type:jsonb" json:"relevant_careers"`

	IsActive      bool      `gorm:"not null;default:true;index;column:is_active" json:"is_active"`
	GeneratedDate time.Time `gorm:"not null;index;column:generated_date" json:"generated_date"`
}

func (IndustryInsight) TableName() string { return "industry_insight" }

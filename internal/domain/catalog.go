package domain

import (
	"time"

	"github.com/google/uuid"
)

// Skill is immutable catalog reference data. Rows are created by seeding and
// never mutated by request handlers.
type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Category    string    `gorm:"not null;column:category" json:"category"`
	Description string    `gorm:"column:description" json:"description"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Skill) TableName() string { return "skill" }

type Career struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description   string    `gorm:"column:description" json:"description"`
	SalaryMin     int       `gorm:"column:average_salary_min" json:"average_salary_min"`
	SalaryMax     int       `gorm:"column:average_salary_max" json:"average_salary_max"`
	GrowthOutlook string    `gorm:"not null;column:growth_outlook" json:"growth_outlook"`

	RequiredSkills []CareerSkillRequirement `gorm:"foreignKey:CareerID" json:"required_skills,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Career) TableName() string { return "career" }

type CareerSkillRequirement struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CareerID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_career_skill;column:career_id" json:"career_id"`
	SkillID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_career_skill;column:skill_id" json:"skill_id"`
	IsEssential         bool      `gorm:"not null;column:is_essential" json:"is_essential"`
	RequiredProficiency string    `gorm:"not null;column:required_proficiency" json:"required_proficiency"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill"`
}

func (CareerSkillRequirement) TableName() string { return "career_skill" }

type LearningResource struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SkillID         uuid.UUID `gorm:"type:uuid;not null;index;column:skill_id" json:"skill_id"`
	Title           string    `gorm:"not null;column:title" json:"title"`
	Description     string    `gorm:"column:description" json:"description"`
	Type            string    `gorm:"not null;column:type" json:"type"`
	URL             string    `gorm:"column:url" json:"url"`
	Provider        string    `gorm:"column:provider" json:"provider"`
	DurationHours   float64   `gorm:"column:duration_hours" json:"duration_hours"`
	DifficultyLevel string    `gorm:"column:difficulty_level" json:"difficulty_level"`
	Rating          float64   `gorm:"column:rating" json:"rating"`
	PriceUSD        float64   `gorm:"column:price_usd" json:"price_usd"`
}

func (LearningResource) TableName() string { return "learning_resource" }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserSkill links a user to a catalog skill with proficiency as the edge
// attribute. One row per (user, skill) pair; writes use upsert semantics.
type UserSkill struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill;column:user_id" json:"user_id"`
	SkillID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill;column:skill_id" json:"skill_id"`
	ProficiencyLevel string    `gorm:"not null;column:proficiency_level" json:"proficiency_level"`
	YearsExperience  float64   `gorm:"column:years_experience" json:"years_experience"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserSkill) TableName() string { return "user_skill" }

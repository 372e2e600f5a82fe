package models

import "time"

type IllnessLog struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	FamilyMemberID uint         `gorm:"index;not null" json:"family_member_id"`
	FamilyMember   FamilyMember `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IllnessName    string       `gorm:"not null" json:"illness_name"`
	StartDate      time.Time    `gorm:"not null" json:"start_date"`
	EndDate        *time.Time   `json:"end_date"`
	Notes          string       `gorm:"type:text" json:"notes"`
	AISuggestion   *string      `gorm:"type:text" json:"ai_suggestion"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

package models

import "time"

type MedicationUsage struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	FamilyMemberID uint         `gorm:"index;not null" json:"family_member_id"`
	FamilyMember   FamilyMember `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MedicationID   uint         `gorm:"index;not null" json:"medication_id"`
	Medication     Medication   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	QuantityUsed   int          `gorm:"not null;default:1" json:"quantity_used"`
	UsedAt         time.Time    `gorm:"index" json:"used_at"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

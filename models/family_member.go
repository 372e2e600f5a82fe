package models

import "time"

type FamilyMember struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	User        User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `gorm:"size:32" json:"gender"`
	Profession  string     `json:"profession"`
	HealthNotes string     `gorm:"type:text" json:"health_notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Medication is the per-user stock row. NameKey is the lowercased name; the
// composite unique index makes concurrent upserts for the same name fail
// loudly instead of silently duplicating the row.
type Medication struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_medications_user_name" json:"user_id"`
	User           User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	NameKey        string     `gorm:"size:255;not null;uniqueIndex:idx_medications_user_name" json:"-"`
	Quantity       int        `gorm:"not null;default:0" json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (m *Medication) BeforeSave(tx *gorm.DB) error {
	if m.Name != "" {
		m.NameKey = strings.ToLower(m.Name)
	}
	return nil
}

package models

import "time"

// GoogleCredentials holds the provider token pair used for Drive and
// Calendar calls. One row per user, upserted on login and on every refresh.
type GoogleCredentials struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User         User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AccessToken  string    `gorm:"type:text;not null" json:"-"`
	RefreshToken string    `gorm:"type:text;not null" json:"-"`
	TokenExpiry  time.Time `gorm:"not null" json:"token_expiry"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

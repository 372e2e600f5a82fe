package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Name               string    `json:"name"`
	GoogleID           string    `gorm:"uniqueIndex" json:"-"`
	GoogleOauthToken   string    `gorm:"type:text" json:"-"`
	GoogleRefreshToken string    `gorm:"type:text" json:"-"`
	DriveFolderID      string    `json:"drive_folder_id"`
	APIKey             string    `gorm:"index" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

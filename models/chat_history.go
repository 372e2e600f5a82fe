package models

import "time"

// ChatHistory backs the n8n chat workflow. Rows are written by the workflow
// engine; the backend only migrates the table.
type ChatHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:255;not null" json:"session_id"`
	Message   string    `gorm:"type:jsonb;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (ChatHistory) TableName() string {
	return "n8n_chat_histories"
}

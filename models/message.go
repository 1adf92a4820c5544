package models

import "time"

// Message is the audit log of every chat interaction: the raw user message
// and the response that was sent back, intent-matched or not.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"` // nullable, no FK cascade
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// TableName specifies the table name for the Message model
func (Message) TableName() string {
	return "messages"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation represents a fortune-telling chat thread.
// Title is overloaded to carry the locked stick marker ("Fuder Stick <n>");
// once set it never changes for the conversation's lifetime.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id" json:"user_id,omitempty"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Conversation) TableName() string {
	return "chat_conversations"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a message in a conversation. Messages are immutable
// once written and ordered by CreatedAt ascending within a conversation.
type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	Role           string    `gorm:"not null" json:"role"` // "user", "assistant" or "system"
	Content        string    `gorm:"not null" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "chat_messages"
}

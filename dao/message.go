package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryanchien8125/dalin-ai-fuder/models"
)

// MessageDAO handles message-related database operations
type MessageDAO struct {
	db *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// CreateMessage adds a message to a conversation. The message ID is supplied
// by the caller because the SSE frames reference the assistant message ID
// before the row is written.
func (d *MessageDAO) CreateMessage(id, conversationID uuid.UUID, role, content string) (*models.Message, error) {
	msg := &models.Message{
		ID:             id,
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	}
	if err := d.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessagesByConversationID retrieves all messages in a conversation,
// ascending by creation time
func (d *MessageDAO) GetMessagesByConversationID(conversationID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	if err := d.db.Where("conversation_id = ?", conversationID).Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ConversationStats holds the pre-turn limit snapshot for a conversation.
type ConversationStats struct {
	MessageCount   int64
	FirstMessageAt *time.Time
}

// GetConversationStats counts existing messages and finds the earliest one.
// FirstMessageAt is nil for an empty conversation.
func (d *MessageDAO) GetConversationStats(conversationID uuid.UUID) (*ConversationStats, error) {
	var stats ConversationStats
	if err := d.db.Model(&models.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&stats.MessageCount).Error; err != nil {
		return nil, err
	}
	if stats.MessageCount == 0 {
		return &stats, nil
	}
	var first models.Message
	if err := d.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").First(&first).Error; err != nil {
		return nil, err
	}
	stats.FirstMessageAt = &first.CreatedAt
	return &stats, nil
}

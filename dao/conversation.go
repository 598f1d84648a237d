package dao

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryanchien8125/dalin-ai-fuder/models"
)

// StickTitlePrefix marks a conversation title as a locked stick number.
const StickTitlePrefix = "Fuder Stick "

// ConversationDAO handles conversation-related database operations
type ConversationDAO struct {
	db *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: db}
}

// CreateConversation creates a new conversation with a fresh identifier
func (d *ConversationDAO) CreateConversation() (*models.Conversation, error) {
	convo := &models.Conversation{
		ID: uuid.New(),
	}
	if err := d.db.Create(convo).Error; err != nil {
		return nil, err
	}
	return convo, nil
}

// GetConversationByID retrieves a conversation by ID
func (d *ConversationDAO) GetConversationByID(id uuid.UUID) (*models.Conversation, error) {
	var convo models.Conversation
	if err := d.db.Where("id = ?", id).First(&convo).Error; err != nil {
		return nil, err
	}
	return &convo, nil
}

// LockStick records the stick number on the conversation title. The update is
// conditional on the title being unset, so the first writer wins and later
// calls are no-ops. Returns the number that ended up locked.
func (d *ConversationDAO) LockStick(id uuid.UUID, number int) (int, error) {
	title := fmt.Sprintf("%s%d", StickTitlePrefix, number)
	res := d.db.Model(&models.Conversation{}).
		Where("id = ? AND (title IS NULL OR title = '')", id).
		Update("title", title)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		return number, nil
	}
	// Lost the race or already locked; read back the winning number.
	locked, err := d.LockedStick(id)
	if err != nil {
		return 0, err
	}
	if locked == nil {
		return 0, gorm.ErrRecordNotFound
	}
	return *locked, nil
}

// LockedStick parses the stick number out of the conversation title.
// Returns nil when the conversation is not locked.
func (d *ConversationDAO) LockedStick(id uuid.UUID) (*int, error) {
	convo, err := d.GetConversationByID(id)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(convo.Title, StickTitlePrefix) {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(convo.Title, StickTitlePrefix))
	if err != nil {
		return nil, nil
	}
	return &n, nil
}

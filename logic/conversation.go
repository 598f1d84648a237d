package logic

import (
	"github.com/google/uuid"

	"github.com/ryanchien8125/dalin-ai-fuder/dao"
	"github.com/ryanchien8125/dalin-ai-fuder/models"
)

// ConversationLogic handles conversation-related business logic
type ConversationLogic struct {
	convoDAO   *dao.ConversationDAO
	messageDAO *dao.MessageDAO
}

func NewConversationLogic(
	convoDAO *dao.ConversationDAO,
	messageDAO *dao.MessageDAO,
) *ConversationLogic {
	return &ConversationLogic{
		convoDAO:   convoDAO,
		messageDAO: messageDAO,
	}
}

// EnsureConversation resolves the conversation for a chat turn. An empty id
// creates a fresh conversation; a supplied id must reference an existing
// one.
func (l *ConversationLogic) EnsureConversation(id string) (*models.Conversation, error) {
	if id == "" {
		return l.convoDAO.CreateConversation()
	}

	convoID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return l.convoDAO.GetConversationByID(convoID)
}

// GetConversationMessages retrieves all messages in a conversation
func (l *ConversationLogic) GetConversationMessages(conversationID uuid.UUID) ([]models.Message, error) {
	return l.messageDAO.GetMessagesByConversationID(conversationID)
}

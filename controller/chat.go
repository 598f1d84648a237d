package controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryanchien8125/dalin-ai-fuder/logic"
	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
	"github.com/ryanchien8125/dalin-ai-fuder/stream"
)

// Localized stream error messages, keyed by upstream failure class.
const (
	errTextGeneric     = "目前系統繁忙，請稍後再試。"
	errTextRateLimited = "請求過於頻繁或已達上限，請稍後再試。"
	errTextBadRequest  = "請求無效，請重新操作。"
)

// ChatController handles the chat completion and history endpoints
type ChatController struct {
	convoLogic *logic.ConversationLogic
	chatLogic  *logic.ChatLogic
	emitter    pkg.SocketEmitter
}

func NewChatController(
	convoLogic *logic.ConversationLogic,
	chatLogic *logic.ChatLogic,
	emitter pkg.SocketEmitter,
) *ChatController {
	return &ChatController{
		convoLogic: convoLogic,
		chatLogic:  chatLogic,
		emitter:    emitter,
	}
}

// Completion handles POST /api/v1/chat/completion. The response is an SSE
// stream; limit and validation failures are rejected with a JSON status
// before streaming starts, generation failures after that point surface as
// error events inside the stream.
func (c *ChatController) Completion(ctx *gin.Context) {
	type Request struct {
		ConversationID string `json:"conversationId"`
		Content        string `json:"content" binding:"required"`
		LotNumber      int    `json:"lotNumber"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	convo, err := c.convoLogic.EnsureConversation(req.ConversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		var parseErr error
		if _, parseErr = uuid.Parse(req.ConversationID); parseErr != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := c.chatLogic.CheckLimits(convo.ID); err != nil {
		var limitErr *logic.LimitExceededError
		if errors.As(err, &limitErr) {
			ctx.JSON(http.StatusForbidden, gin.H{
				"error":   "CONVERSATION_LIMIT_EXCEEDED",
				"reason":  limitErr.Reason,
				"message": limitErr.Message,
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Stream response to client using Server-Sent Events
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	relay := stream.NewRelay(ctx.Writer, c.emitter, convo.ID.String(), uuid.NewString())
	relay.Init(convo.ID.String())
	defer relay.Close()

	userMessageID := uuid.New()
	assistantMessageID := uuid.New()

	// A client disconnect must not abort generation: the assistant message
	// still gets persisted for later retrieval.
	genCtx := context.WithoutCancel(ctx.Request.Context())

	_, err = c.chatLogic.RunChatTurn(
		genCtx,
		convo.ID,
		userMessageID,
		assistantMessageID,
		req.Content,
		req.LotNumber,
		func(text string) {
			relay.PushChunk(text, assistantMessageID.String())
		},
	)
	if err != nil {
		log.Printf("[Fuder] Bot Error: %v", err)
		message := errTextGeneric
		code := http.StatusInternalServerError
		if errors.Is(err, pkg.ErrRateLimited) {
			message = errTextRateLimited
			code = http.StatusTooManyRequests
		} else if errors.Is(err, pkg.ErrInvalidRequest) {
			message = errTextBadRequest
			code = http.StatusBadRequest
		}
		relay.PushError(message, code)
		return
	}

	relay.PushAck(assistantMessageID.String())
}

// GetConversation handles GET /api/v1/chat/conversation/:id
func (c *ChatController) GetConversation(ctx *gin.Context) {
	convoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID"})
		return
	}

	messages, err := c.convoLogic.GetConversationMessages(convoID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type HistoryEntry struct {
		Role      string `json:"role"`
		Content   string `json:"content"`
		CreatedAt int64  `json:"createdAt"`
	}
	history := make([]HistoryEntry, 0, len(messages))
	for _, msg := range messages {
		history = append(history, HistoryEntry{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.UnixMilli(),
		})
	}

	ctx.JSON(http.StatusOK, history)
}

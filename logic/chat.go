package logic

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ryanchien8125/dalin-ai-fuder/dao"
	"github.com/ryanchien8125/dalin-ai-fuder/fortune"
	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
)

const (
	// ConversationMessageLimit caps the number of prior messages per conversation.
	ConversationMessageLimit = 20
	// ConversationTimeLimit caps the age of a conversation, measured from its
	// first message.
	ConversationTimeLimit = 20 * time.Minute
)

// Limit violation reasons and their user-facing messages.
const (
	LimitReasonMessageCount = "message_count"
	LimitReasonTime         = "time"

	limitMessageCountText = "此次解籤對話已達訊息上限，無法繼續追問。"
	limitTimeText         = "此次解籤對話已封存，無法繼續追問。"
)

// LimitExceededError is returned when a conversation hit its message-count
// or time limit. Writes for that conversation must be rejected.
type LimitExceededError struct {
	Reason  string
	Message string
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("conversation limit exceeded: %s", e.Reason)
}

// ChatLogic runs one chat turn: limit checks, stick resolution, streaming
// generation and persistence of both turn messages.
type ChatLogic struct {
	convoDAO   *dao.ConversationDAO
	messageDAO *dao.MessageDAO
	gemini     GenerativeClient
	intent     *IntentClassifier

	// drawStick picks a random stick number for DRAW_STICK intents;
	// swappable so tests can pin the draw.
	drawStick func() int
}

func NewChatLogic(
	convoDAO *dao.ConversationDAO,
	messageDAO *dao.MessageDAO,
	gemini GenerativeClient,
) *ChatLogic {
	return &ChatLogic{
		convoDAO:   convoDAO,
		messageDAO: messageDAO,
		gemini:     gemini,
		intent:     NewIntentClassifier(gemini),
		drawStick: func() int {
			return rand.IntN(fortune.StickCount) + 1
		},
	}
}

// CheckLimits evaluates the conversation limits against the prior turns
// only; the caller must run it before appending the new user message.
func (l *ChatLogic) CheckLimits(conversationID uuid.UUID) error {
	stats, err := l.messageDAO.GetConversationStats(conversationID)
	if err != nil {
		return err
	}

	if stats.MessageCount >= ConversationMessageLimit {
		return &LimitExceededError{
			Reason:  LimitReasonMessageCount,
			Message: limitMessageCountText,
		}
	}

	if stats.FirstMessageAt != nil && time.Since(*stats.FirstMessageAt) >= ConversationTimeLimit {
		return &LimitExceededError{
			Reason:  LimitReasonTime,
			Message: limitTimeText,
		}
	}

	return nil
}

// resolveStick determines the fortune stick for this turn. Order of
// precedence: existing lock marker, explicit lot number, classified intent
// (QUERY_STICK uses the queried number, DRAW_STICK draws at random). A
// successful resolution locks the conversation; the number returned by the
// lock is authoritative in case a concurrent turn won the race. Returns nil
// when the conversation stays unlocked.
func (l *ChatLogic) resolveStick(ctx context.Context, conversationID uuid.UUID, lotNumber int, userMessage string) *fortune.Stick {
	locked, err := l.convoDAO.LockedStick(conversationID)
	if err != nil {
		log.Printf("[Fuder] Metadata Check Error: %v", err)
	} else if locked != nil {
		return fortune.Lookup(*locked)
	}

	if stick := fortune.Lookup(lotNumber); stick != nil {
		return l.lockStick(conversationID, stick.Number)
	}

	intent := l.intent.Classify(ctx, userMessage)
	switch intent.Action {
	case ActionQueryStick:
		if stick := fortune.Lookup(*intent.Number); stick != nil {
			return l.lockStick(conversationID, stick.Number)
		}
	case ActionDrawStick:
		if stick := fortune.Lookup(l.drawStick()); stick != nil {
			return l.lockStick(conversationID, stick.Number)
		}
	}

	return nil
}

func (l *ChatLogic) lockStick(conversationID uuid.UUID, number int) *fortune.Stick {
	winner, err := l.convoDAO.LockStick(conversationID, number)
	if err != nil {
		log.Printf("[Fuder] Lock Stick Error: %v", err)
		return fortune.Lookup(number)
	}
	return fortune.Lookup(winner)
}

// RunChatTurn appends the user message, resolves the stick, streams the
// reply through onToken in generation order and persists the assistant
// message afterwards. The returned string is the full assistant response.
//
// A generation failure leaves the user message in place and returns the
// error without writing an assistant row. A persistence failure after a
// completed stream is logged only; the stream already reached the client.
func (l *ChatLogic) RunChatTurn(
	ctx context.Context,
	conversationID uuid.UUID,
	userMessageID uuid.UUID,
	assistantMessageID uuid.UUID,
	content string,
	lotNumber int,
	onToken func(text string),
) (string, error) {
	history, err := l.messageDAO.GetMessagesByConversationID(conversationID)
	if err != nil {
		return "", err
	}

	if _, err := l.messageDAO.CreateMessage(userMessageID, conversationID, "user", content); err != nil {
		return "", err
	}

	stick := l.resolveStick(ctx, conversationID, lotNumber, content)
	systemPrompt := buildSystemPrompt(stick)

	req := pkg.GenerateContentRequest{
		SystemInstruction: &pkg.Content{Parts: []pkg.Part{{Text: systemPrompt}}},
		Contents:          buildContents(history, content),
	}

	var full strings.Builder
	err = l.gemini.StreamGenerateContent(ctx, req, func(resp *pkg.GenerateContentResponse) error {
		for _, candidate := range resp.Candidates {
			for _, part := range candidate.Content.Parts {
				if part.Text == "" {
					continue
				}
				full.WriteString(part.Text)
				onToken(part.Text)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	response := full.String()
	if response != "" {
		if _, err := l.messageDAO.CreateMessage(assistantMessageID, conversationID, "assistant", response); err != nil {
			log.Printf("[Fuder] Save Assistant Message Error: %v", err)
		}
	}

	return response, nil
}

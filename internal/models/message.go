package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one immutable transcript entry.
type ChatMessage struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	IsFromUser bool      `json:"isFromUser"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewChatMessage(content string, isFromUser bool, at time.Time) ChatMessage {
	return ChatMessage{
		ID:         uuid.New(),
		Content:    content,
		IsFromUser: isFromUser,
		Timestamp:  at,
	}
}

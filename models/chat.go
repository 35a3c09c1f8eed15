package models

import "time"

type ChatSender string

const (
	SenderUser  ChatSender = "user"
	SenderAI    ChatSender = "ai"
	SenderAdmin ChatSender = "admin"
)

// ChatMessage is one entry in the append-only chat transcript, persisted for
// admin review.
type ChatMessage struct {
	ID             string     `json:"id"`
	ChatID         string     `json:"chat_id"`
	Text           string     `json:"text"`
	Sender         ChatSender `json:"sender"`
	Timestamp      time.Time  `json:"timestamp"`
	UserID         string     `json:"user_id,omitempty"`
	IsAdminVisible bool       `json:"is_admin_visible,omitempty"`
	Language       string     `json:"language,omitempty"`
}

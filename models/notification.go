package models

import "time"

// AdminNotification lands in the admin inbox when a chat visitor who has
// given their name sends a message. Append-only, newest first; only IsRead
// ever changes after creation.
type AdminNotification struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	UserMessage string    `json:"user_message"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
	ChatID      string    `json:"chat_id"`
}

// UserNotification is shown on the visitor-facing bell icon.
type UserNotification struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
	IsFromAdmin bool      `json:"is_from_admin"`
}

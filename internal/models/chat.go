package models

import "time"

type ChatSession struct {
	ID        string    `db:"id" json:"id"`
	UserID    *string   `db:"user_id" json:"user_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ChatMessage struct {
	ID        int64     `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	IsUser    bool      `db:"is_user" json:"is_user"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ChatSessionWithMessages struct {
	ChatSession
	Messages []ChatMessage `json:"messages"`
}

// SessionFeedback is the rating popup payload persisted verbatim.
type SessionFeedback struct {
	ID           int64     `db:"id" json:"id"`
	SessionID    string    `db:"session_id" json:"session_id"`
	Rating       int       `db:"rating" json:"rating"`
	Feedback     string    `db:"feedback" json:"feedback"`
	MessageCount int       `db:"message_count" json:"message_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

package models

import "time"

const (
	CommandStatusPending   = "pending"
	CommandStatusCompleted = "completed"
	CommandStatusFailed    = "failed"
)

type Command struct {
	ID        int64     `db:"id" json:"id"`
	UserID    *string   `db:"user_id" json:"user_id,omitempty"`
	Command   string    `db:"command" json:"command"`
	IsAsync   bool      `db:"is_async" json:"is_async"`
	Output    string    `db:"output" json:"output"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

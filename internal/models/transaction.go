package models

import (
	"encoding/json"
	"time"
)

type Transaction struct {
	ID              int64           `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"user_id"`
	DeploymentID    *int64          `db:"deployment_id" json:"deployment_id,omitempty"`
	Type            string          `db:"type" json:"type"`
	Amount          float64         `db:"amount" json:"amount"`
	Currency        string          `db:"currency" json:"currency"`
	Status          string          `db:"status" json:"status"`
	PaymentIntentID string          `db:"payment_intent_id" json:"payment_intent_id,omitempty"`
	Metadata        json.RawMessage `db:"metadata" json:"metadata,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

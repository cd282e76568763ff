package models

import "time"

const (
	QuoteStatusPending  = "pending"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

type Quote struct {
	ID         int64      `db:"id" json:"id"`
	CustomerID int64      `db:"customer_id" json:"customer_id"`
	Amount     float64    `db:"amount" json:"amount"`
	ValidUntil *time.Time `db:"valid_until" json:"valid_until,omitempty"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// QuoteWithCustomer attaches the customer at read time; nothing is
// denormalized into the quotes table.
type QuoteWithCustomer struct {
	Quote
	Customer Customer `json:"customer"`
}

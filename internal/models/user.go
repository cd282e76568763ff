package models

import "time"

type User struct {
	ID               string    `db:"id" json:"id"`
	Email            string    `db:"email" json:"email"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	DisplayName      string    `db:"display_name" json:"display_name"`
	SubscriptionTier string    `db:"subscription_tier" json:"subscription_tier"`
	Credits          int64     `db:"credits" json:"credits"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

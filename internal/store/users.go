package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateUser(id, email, passwordHash, displayName string) (*models.User, error) {
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, password_hash, display_name)
		VALUES (?, ?, ?, ?)
	`, id, email, passwordHash, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", translate(err))
	}
	return s.GetUser(id)
}

func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	err := s.db.Get(&user, `
		SELECT id, email, password_hash, display_name, subscription_tier, credits, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", translate(err))
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Get(&user, `
		SELECT id, email, password_hash, display_name, subscription_tier, credits, created_at, updated_at
		FROM users
		WHERE email = ?
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", translate(err))
	}
	return &user, nil
}

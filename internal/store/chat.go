package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateChatSession(id string, userID *string) (*models.ChatSession, error) {
	_, err := s.db.Exec(`
		INSERT INTO chat_sessions (id, user_id)
		VALUES (?, ?)
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", translate(err))
	}
	return s.GetChatSession(id, userID)
}

func (s *Store) GetChatSession(id string, userID *string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.db.Get(&session, `
		SELECT id, user_id, created_at
		FROM chat_sessions
		WHERE id = ? AND (user_id = ? OR (user_id IS NULL AND ? IS NULL))
	`, id, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", translate(err))
	}
	return &session, nil
}

func (s *Store) ListChatSessions(userID string) ([]models.ChatSession, error) {
	sessions := []models.ChatSession{}
	err := s.db.Select(&sessions, `
		SELECT id, user_id, created_at
		FROM chat_sessions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

// GetChatSessionWithMessages returns the session plus its messages in
// insertion order.
func (s *Store) GetChatSessionWithMessages(id string, userID *string) (*models.ChatSessionWithMessages, error) {
	session, err := s.GetChatSession(id, userID)
	if err != nil {
		return nil, err
	}
	messages := []models.ChatMessage{}
	err = s.db.Select(&messages, `
		SELECT id, session_id, is_user, content, created_at
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return &models.ChatSessionWithMessages{
		ChatSession: *session,
		Messages:    messages,
	}, nil
}

func (s *Store) CreateChatMessage(sessionID string, isUser bool, content string) (*models.ChatMessage, error) {
	res, err := s.db.Exec(`
		INSERT INTO chat_messages (session_id, is_user, content)
		VALUES (?, ?, ?)
	`, sessionID, isUser, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat message id: %w", err)
	}
	var message models.ChatMessage
	err = s.db.Get(&message, `
		SELECT id, session_id, is_user, content, created_at
		FROM chat_messages
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat message: %w", translate(err))
	}
	return &message, nil
}

func (s *Store) CountChatMessages(sessionID string) (int, error) {
	var count int
	err := s.db.Get(&count, `SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return count, nil
}

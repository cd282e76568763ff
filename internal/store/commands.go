package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateCommand(userID *string, command string, isAsync bool) (*models.Command, error) {
	res, err := s.db.Exec(`
		INSERT INTO commands (user_id, command, is_async)
		VALUES (?, ?, ?)
	`, userID, command, isAsync)
	if err != nil {
		return nil, fmt.Errorf("failed to create command: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read command id: %w", err)
	}
	return s.GetCommand(id)
}

func (s *Store) GetCommand(id int64) (*models.Command, error) {
	var command models.Command
	err := s.db.Get(&command, `
		SELECT id, user_id, command, is_async, output, status, created_at
		FROM commands
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get command: %w", translate(err))
	}
	return &command, nil
}

func (s *Store) ListCommands() ([]models.Command, error) {
	commands := []models.Command{}
	err := s.db.Select(&commands, `
		SELECT id, user_id, command, is_async, output, status, created_at
		FROM commands
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}
	return commands, nil
}

type SystemCounts struct {
	Customers   int64 `db:"customers"`
	Projects    int64 `db:"projects"`
	Deployments int64 `db:"deployments"`
}

// SystemCounts backs the "status" admin command.
func (s *Store) SystemCounts() (*SystemCounts, error) {
	var counts SystemCounts
	err := s.db.Get(&counts, `
		SELECT (SELECT COUNT(*) FROM customers) AS customers,
		       (SELECT COUNT(*) FROM projects) AS projects,
		       (SELECT COUNT(*) FROM deployments) AS deployments
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	return &counts, nil
}

func (s *Store) CompleteCommand(id int64, output, status string) error {
	res, err := s.db.Exec(`
		UPDATE commands SET output = ?, status = ? WHERE id = ?
	`, output, status, id)
	if err != nil {
		return fmt.Errorf("failed to complete command: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to complete command: %w", ErrNotFound)
	}
	return nil
}

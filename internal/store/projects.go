package store

import (
	"encoding/json"
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateProject(userID, fileName, filePath string, fileSize int64, framework string) (*models.Project, error) {
	res, err := s.db.Exec(`
		INSERT INTO projects (user_id, file_name, file_path, file_size, framework)
		VALUES (?, ?, ?, ?, ?)
	`, userID, fileName, filePath, fileSize, framework)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read project id: %w", err)
	}
	return s.GetProject(id, userID)
}

// GetProject scopes by owner; a foreign user's project behaves as missing.
func (s *Store) GetProject(id int64, userID string) (*models.Project, error) {
	var project models.Project
	err := s.db.Get(&project, `
		SELECT id, user_id, file_name, file_path, file_size, framework, analysis, status, created_at, updated_at
		FROM projects
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", translate(err))
	}
	return &project, nil
}

func (s *Store) ListProjects(userID string) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.db.Select(&projects, `
		SELECT id, user_id, file_name, file_path, file_size, framework, analysis, status, created_at, updated_at
		FROM projects
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *Store) UpdateProjectStatus(id int64, userID, status string, analysis json.RawMessage) (*models.Project, error) {
	res, err := s.db.Exec(`
		UPDATE projects
		SET status = ?, analysis = COALESCE(?, analysis), updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`, status, nullableBlob(analysis), id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("failed to update project status: %w", ErrNotFound)
	}
	return s.GetProject(id, userID)
}

func (s *Store) DeleteProject(id int64, userID string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete project: %w", ErrNotFound)
	}
	return nil
}

// nullableBlob converts an empty JSON blob to NULL so COALESCE keeps the
// stored value instead of overwriting it with "".
func nullableBlob(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateDeployment(projectID int64, userID string) (*models.Deployment, error) {
	res, err := s.db.Exec(`
		INSERT INTO deployments (project_id, user_id)
		VALUES (?, ?)
	`, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment id: %w", err)
	}
	return s.GetDeployment(id, userID)
}

func (s *Store) GetDeployment(id int64, userID string) (*models.Deployment, error) {
	var deployment models.Deployment
	err := s.db.Get(&deployment, `
		SELECT id, project_id, user_id, status, url, logs, cost, created_at, updated_at
		FROM deployments
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deployment: %w", translate(err))
	}
	return &deployment, nil
}

func (s *Store) ListDeployments(userID string) ([]models.Deployment, error) {
	deployments := []models.Deployment{}
	err := s.db.Select(&deployments, `
		SELECT id, project_id, user_id, status, url, logs, cost, created_at, updated_at
		FROM deployments
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	return deployments, nil
}

func (s *Store) UpdateDeploymentStatus(id int64, userID, status, url, logs string, cost *float64) (*models.Deployment, error) {
	res, err := s.db.Exec(`
		UPDATE deployments
		SET status = ?,
		    url = CASE WHEN ? != '' THEN ? ELSE url END,
		    logs = CASE WHEN ? != '' THEN ? ELSE logs END,
		    cost = COALESCE(?, cost),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`, status, url, url, logs, logs, cost, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update deployment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("failed to update deployment status: %w", ErrNotFound)
	}
	return s.GetDeployment(id, userID)
}

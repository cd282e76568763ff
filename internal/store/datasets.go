package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

// CreateDataset inserts the dataset row and all of its entries in one
// transaction so a failed upload leaves nothing behind.
func (s *Store) CreateDataset(name, description string, records []models.DatasetRecord) (*models.Dataset, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO datasets (name, description, record_count)
		VALUES (?, ?, ?)
	`, name, description, len(records))
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset id: %w", err)
	}

	for _, record := range records {
		if _, err := tx.Exec(`
			INSERT INTO knowledge_entries (dataset_id, input, output)
			VALUES (?, ?, ?)
		`, id, record.Input, record.Output); err != nil {
			return nil, fmt.Errorf("failed to store dataset record: %w", translate(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit dataset: %w", err)
	}
	return s.GetDataset(id)
}

func (s *Store) GetDataset(id int64) (*models.Dataset, error) {
	var dataset models.Dataset
	err := s.db.Get(&dataset, `
		SELECT id, name, description, record_count, is_active, uploaded_at
		FROM datasets
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", translate(err))
	}
	return &dataset, nil
}

func (s *Store) ListDatasets() ([]models.Dataset, error) {
	datasets := []models.Dataset{}
	err := s.db.Select(&datasets, `
		SELECT id, name, description, record_count, is_active, uploaded_at
		FROM datasets
		ORDER BY uploaded_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, nil
}

// ListKnowledgeEntries returns every entry from active datasets, with the
// dataset name attached as the source. This is the corpus the chat responder
// and the search endpoint match against.
func (s *Store) ListKnowledgeEntries() ([]models.KnowledgeEntry, error) {
	entries := []models.KnowledgeEntry{}
	err := s.db.Select(&entries, `
		SELECT e.id, e.dataset_id, e.input, e.output, d.name AS source
		FROM knowledge_entries e
		JOIN datasets d ON d.id = e.dataset_id
		WHERE d.is_active = 1
		ORDER BY e.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}
	return entries, nil
}

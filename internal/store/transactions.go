package store

import (
	"encoding/json"
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateTransaction(userID string, deploymentID *int64, txType string, amount float64, currency, paymentIntentID string, metadata json.RawMessage) (*models.Transaction, error) {
	res, err := s.db.Exec(`
		INSERT INTO transactions (user_id, deployment_id, type, amount, currency, payment_intent_id, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, userID, deploymentID, txType, amount, currency, paymentIntentID, nullableBlob(metadata))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction id: %w", err)
	}
	return s.GetTransaction(id, userID)
}

func (s *Store) GetTransaction(id int64, userID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.db.Get(&tx, `
		SELECT id, user_id, deployment_id, type, amount, currency, status, payment_intent_id, metadata, created_at
		FROM transactions
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", translate(err))
	}
	return &tx, nil
}

func (s *Store) ListTransactions(userID string) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := s.db.Select(&txs, `
		SELECT id, user_id, deployment_id, type, amount, currency, status, payment_intent_id, metadata, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

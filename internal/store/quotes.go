package store

import (
	"fmt"
	"time"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateQuote(customerID int64, amount float64, validUntil *time.Time) (*models.Quote, error) {
	// The customer must exist up front so a dangling quote never gets an id.
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(`
		INSERT INTO quotes (customer_id, amount, valid_until)
		VALUES (?, ?, ?)
	`, customerID, amount, validUntil)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read quote id: %w", err)
	}
	return s.GetQuote(id)
}

func (s *Store) GetQuote(id int64) (*models.Quote, error) {
	var quote models.Quote
	err := s.db.Get(&quote, `
		SELECT id, customer_id, amount, valid_until, status, created_at
		FROM quotes
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", translate(err))
	}
	return &quote, nil
}

// GetQuoteWithCustomer joins the customer at read time.
func (s *Store) GetQuoteWithCustomer(id int64) (*models.QuoteWithCustomer, error) {
	var row struct {
		models.Quote
		CustomerRowID   int64     `db:"c_id"`
		CustomerName    string    `db:"c_name"`
		CustomerEmail   string    `db:"c_email"`
		CustomerCompany string    `db:"c_company"`
		CustomerPhone   string    `db:"c_phone"`
		CustomerStatus  string    `db:"c_status"`
		CustomerCreated time.Time `db:"c_created_at"`
		CustomerUpdated time.Time `db:"c_updated_at"`
	}
	err := s.db.Get(&row, `
		SELECT q.id, q.customer_id, q.amount, q.valid_until, q.status, q.created_at,
		       c.id AS c_id, c.name AS c_name, c.email AS c_email, c.company AS c_company,
		       c.phone AS c_phone, c.status AS c_status, c.created_at AS c_created_at, c.updated_at AS c_updated_at
		FROM quotes q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", translate(err))
	}
	return &models.QuoteWithCustomer{
		Quote: row.Quote,
		Customer: models.Customer{
			ID:        row.CustomerRowID,
			Name:      row.CustomerName,
			Email:     row.CustomerEmail,
			Company:   row.CustomerCompany,
			Phone:     row.CustomerPhone,
			Status:    row.CustomerStatus,
			CreatedAt: row.CustomerCreated,
			UpdatedAt: row.CustomerUpdated,
		},
	}, nil
}

func (s *Store) ListQuotes() ([]models.Quote, error) {
	quotes := []models.Quote{}
	err := s.db.Select(&quotes, `
		SELECT id, customer_id, amount, valid_until, status, created_at
		FROM quotes
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

func (s *Store) UpdateQuoteStatus(id int64, status string) (*models.Quote, error) {
	res, err := s.db.Exec(`
		UPDATE quotes SET status = ? WHERE id = ?
	`, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("failed to update quote status: %w", ErrNotFound)
	}
	return s.GetQuote(id)
}

func (s *Store) DeleteQuote(id int64) error {
	res, err := s.db.Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete quote: %w", ErrNotFound)
	}
	return nil
}

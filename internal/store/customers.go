package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateCustomer(name, email, company, phone, status string) (*models.Customer, error) {
	res, err := s.db.Exec(`
		INSERT INTO customers (name, email, company, phone, status)
		VALUES (?, ?, ?, ?, ?)
	`, name, email, company, phone, status)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read customer id: %w", err)
	}
	return s.GetCustomer(id)
}

func (s *Store) GetCustomer(id int64) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Get(&customer, `
		SELECT id, name, email, company, phone, status, created_at, updated_at
		FROM customers
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", translate(err))
	}
	return &customer, nil
}

func (s *Store) ListCustomers() ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.Select(&customers, `
		SELECT id, name, email, company, phone, status, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *Store) UpdateCustomer(id int64, name, email, company, phone, status string) (*models.Customer, error) {
	res, err := s.db.Exec(`
		UPDATE customers
		SET name = ?, email = ?, company = ?, phone = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, name, email, company, phone, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", translate(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("failed to update customer: %w", ErrNotFound)
	}
	return s.GetCustomer(id)
}

func (s *Store) DeleteCustomer(id int64) error {
	res, err := s.db.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete customer: %w", ErrNotFound)
	}
	return nil
}

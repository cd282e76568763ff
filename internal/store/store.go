package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a row does not exist or is not visible
	// to the requesting user.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert or update violates a unique
	// constraint (duplicate user or customer email).
	ErrConflict = errors.New("record conflicts with an existing record")
)

// Store provides data access for all tables. One instance is shared by every
// handler; sqlx handles connection pooling underneath.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// translate maps driver-level errors onto the store's sentinel errors so
// handlers never inspect sqlite3 internals.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return ErrConflict
		}
	}
	return err
}

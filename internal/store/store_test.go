package store

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saas-platform-backend/internal/database"
)

// newTestStore opens a per-test in-memory database with the real schema
// applied. Shared cache plus a single connection keeps the memory database
// alive across queries.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sqlx.Connect("sqlite3", "file:"+name+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewMigrator(db, zap.NewNop()).Run())

	return New(db)
}

func createTestUser(t *testing.T, s *Store, id, email string) {
	t.Helper()
	_, err := s.CreateUser(id, email, "hash", "Test User")
	require.NoError(t, err)
}

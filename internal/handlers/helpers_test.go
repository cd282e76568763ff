package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saas-platform-backend/internal/config"
	"saas-platform-backend/internal/database"
	"saas-platform-backend/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-key-for-jwt-signing-must-be-long-enough",
		Environment: "test",
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sqlx.Connect("sqlite3", "file:"+name+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewMigrator(db, zap.NewNop()).Run())

	return store.New(db)
}

func authToken(t *testing.T, cfg *config.Config, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func createTestUser(t *testing.T, s *store.Store, id, email string) {
	t.Helper()
	_, err := s.CreateUser(id, email, "hash", "Test User")
	require.NoError(t, err)
}

func performRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saas-platform-backend/internal/handlers"
	"saas-platform-backend/internal/middleware"
	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

func commandsRouter(t *testing.T) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)
	s := newTestStore(t)
	h := handlers.NewCommandsHandler(s, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(testConfig()))
	api.POST("/commands", h.CreateCommand)
	api.GET("/commands", h.ListCommands)
	api.GET("/commands/:command_id", h.GetCommand)
	return router, s
}

func TestCreateCommand_StatusBuiltin(t *testing.T) {
	router, s := commandsRouter(t)
	createTestUser(t, s, "user-1", "one@example.com")
	token := authToken(t, testConfig(), "user-1")

	_, err := s.CreateCustomer("Jane Doe", "jane@x.com", "", "", "active")
	require.NoError(t, err)

	w := performRequest(router, "POST", "/api/v1/commands", `{"command":"status"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var command models.Command
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &command))
	assert.Equal(t, models.CommandStatusCompleted, command.Status)
	assert.Contains(t, command.Output, "customers: 1")
	assert.Contains(t, command.Output, "projects: 0")
}

func TestCreateCommand_Search(t *testing.T) {
	router, s := commandsRouter(t)
	createTestUser(t, s, "user-1", "one@example.com")
	token := authToken(t, testConfig(), "user-1")

	w := performRequest(router, "POST", "/api/v1/commands", `{"command":"search jane doe"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var command models.Command
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &command))
	assert.Equal(t, models.CommandStatusCompleted, command.Status)
	assert.Equal(t, "search executed for: jane doe", command.Output)
}

func TestCreateCommand_Async(t *testing.T) {
	router, s := commandsRouter(t)
	createTestUser(t, s, "user-1", "one@example.com")
	token := authToken(t, testConfig(), "user-1")

	w := performRequest(router, "POST", "/api/v1/commands", `{"command":"status","async":true}`, token)
	require.Equal(t, http.StatusAccepted, w.Code)

	var command models.Command
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &command))
	assert.Equal(t, models.CommandStatusPending, command.Status)
	assert.True(t, command.IsAsync)
}

func TestCreateCommand_MissingCommand(t *testing.T) {
	router, s := commandsRouter(t)
	createTestUser(t, s, "user-1", "one@example.com")

	w := performRequest(router, "POST", "/api/v1/commands", `{"async":true}`, authToken(t, testConfig(), "user-1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCommand_NotFound(t *testing.T) {
	router, s := commandsRouter(t)
	createTestUser(t, s, "user-1", "one@example.com")

	w := performRequest(router, "GET", "/api/v1/commands/99", "", authToken(t, testConfig(), "user-1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

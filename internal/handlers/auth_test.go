package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-platform-backend/internal/handlers"
	"saas-platform-backend/internal/middleware"
	"saas-platform-backend/internal/models"
)

func authRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := newTestStore(t)
	cfg := testConfig()
	h := handlers.NewAuthHandler(s, cfg)
	customers := handlers.NewCustomersHandler(s)

	router := gin.New()
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.GET("/customers", customers.ListCustomers)
	return router
}

func TestRegister_TokenGrantsAccess(t *testing.T) {
	router := authRouter(t)

	w := performRequest(router, "POST", "/auth/register",
		`{"email":"alice@example.com","password":"supersecret","display_name":"Alice"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Empty(t, resp.User.PasswordHash)

	w = performRequest(router, "GET", "/api/v1/customers", "", resp.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := authRouter(t)

	body := `{"email":"alice@example.com","password":"supersecret"}`
	w := performRequest(router, "POST", "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, "POST", "/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	router := authRouter(t)

	w := performRequest(router, "POST", "/auth/register",
		`{"email":"alice@example.com","password":"short"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	router := authRouter(t)

	w := performRequest(router, "POST", "/auth/register",
		`{"email":"alice@example.com","password":"supersecret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, "POST", "/auth/login",
		`{"email":"alice@example.com","password":"supersecret"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := authRouter(t)

	w := performRequest(router, "POST", "/auth/register",
		`{"email":"alice@example.com","password":"supersecret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, "POST", "/auth/login",
		`{"email":"alice@example.com","password":"wrongpassword"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Unknown email and wrong password produce identical responses.
func TestLogin_UnknownEmailSameResponse(t *testing.T) {
	router := authRouter(t)

	w := performRequest(router, "POST", "/auth/register",
		`{"email":"alice@example.com","password":"supersecret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := performRequest(router, "POST", "/auth/login",
		`{"email":"alice@example.com","password":"wrongpassword"}`, "")
	unknownEmail := performRequest(router, "POST", "/auth/login",
		`{"email":"nobody@example.com","password":"supersecret"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

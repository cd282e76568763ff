package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/middleware"
	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

// currentUserID pulls the authenticated user id out of the gin context. The
// second return is false when the auth middleware did not run.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
	}
	return userID, ok
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondStoreError maps store sentinel errors onto HTTP statuses; anything
// unexpected is a 500.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundMsg, Message: err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "record already exists", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Message: err.Error()})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type FeedbackHandler struct {
	store *store.Store
}

func NewFeedbackHandler(store *store.Store) *FeedbackHandler {
	return &FeedbackHandler{store: store}
}

// SessionFeedback accepts the rating popup payload. A missing or zero rating
// fails binding, so nothing is stored for it.
func (h *FeedbackHandler) SessionFeedback(c *gin.Context) {
	var req models.SessionFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	// When the widget omits the count for a known session, fill it from the
	// stored conversation.
	if req.MessageCount == 0 && req.SessionID != "" {
		if count, err := h.store.CountChatMessages(req.SessionID); err == nil {
			req.MessageCount = count
		}
	}

	row, err := h.store.CreateSessionFeedback(req.SessionID, req.Rating, req.Feedback, req.MessageCount)
	if err != nil {
		respondStoreError(c, err, "feedback not found")
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *FeedbackHandler) Stats(c *gin.Context) {
	stats, err := h.store.FeedbackStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get stats", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

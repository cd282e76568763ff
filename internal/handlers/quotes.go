package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type QuotesHandler struct {
	store *store.Store
}

func NewQuotesHandler(store *store.Store) *QuotesHandler {
	return &QuotesHandler{store: store}
}

func (h *QuotesHandler) CreateQuote(c *gin.Context) {
	var req models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	var validUntil *time.Time
	if req.ValidUntil != nil {
		t, err := time.Parse(time.RFC3339, *req.ValidUntil)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid valid_until", Message: "must be RFC 3339"})
			return
		}
		validUntil = &t
	} else if req.ValidDays != nil {
		t := time.Now().AddDate(0, 0, *req.ValidDays)
		validUntil = &t
	}

	quote, err := h.store.CreateQuote(req.CustomerID, req.Amount, validUntil)
	if err != nil {
		respondStoreError(c, err, "customer not found")
		return
	}

	c.JSON(http.StatusCreated, quote)
}

func (h *QuotesHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.store.ListQuotes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list quotes", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.QuoteListResponse{Quotes: quotes})
}

// GetQuote returns the quote with its customer attached.
func (h *QuotesHandler) GetQuote(c *gin.Context) {
	id, ok := pathID(c, "quote_id")
	if !ok {
		return
	}

	quote, err := h.store.GetQuoteWithCustomer(id)
	if err != nil {
		respondStoreError(c, err, "quote not found")
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuotesHandler) UpdateQuoteStatus(c *gin.Context) {
	id, ok := pathID(c, "quote_id")
	if !ok {
		return
	}

	var req models.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	quote, err := h.store.UpdateQuoteStatus(id, req.Status)
	if err != nil {
		respondStoreError(c, err, "quote not found")
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuotesHandler) DeleteQuote(c *gin.Context) {
	id, ok := pathID(c, "quote_id")
	if !ok {
		return
	}

	if err := h.store.DeleteQuote(id); err != nil {
		respondStoreError(c, err, "quote not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quote deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type TransactionsHandler struct {
	store *store.Store
}

func NewTransactionsHandler(store *store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: store}
}

func (h *TransactionsHandler) CreateTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if req.Currency == "" {
		req.Currency = "usd"
	}

	// An attached deployment must belong to the caller.
	if req.DeploymentID != nil {
		if _, err := h.store.GetDeployment(*req.DeploymentID, userID); err != nil {
			respondStoreError(c, err, "deployment not found")
			return
		}
	}

	tx, err := h.store.CreateTransaction(userID, req.DeploymentID, req.Type, req.Amount, req.Currency, req.PaymentIntentID, req.Metadata)
	if err != nil {
		respondStoreError(c, err, "transaction not found")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionsHandler) ListTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txs, err := h.store.ListTransactions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list transactions", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.TransactionListResponse{Transactions: txs})
}

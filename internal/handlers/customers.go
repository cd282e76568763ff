package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type CustomersHandler struct {
	store *store.Store
}

func NewCustomersHandler(store *store.Store) *CustomersHandler {
	return &CustomersHandler{store: store}
}

// CreateCustomer accepts exactly the insertable field subset: name, email,
// company, phone, status. Anything else in the payload is dropped.
func (h *CustomersHandler) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = models.CustomerStatusActive
	}

	customer, err := h.store.CreateCustomer(req.Name, req.Email, req.Company, req.Phone, req.Status)
	if err != nil {
		respondStoreError(c, err, "customer not found")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomersHandler) ListCustomers(c *gin.Context) {
	customers, err := h.store.ListCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list customers", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.CustomerListResponse{Customers: customers})
}

func (h *CustomersHandler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}

	customer, err := h.store.GetCustomer(id)
	if err != nil {
		respondStoreError(c, err, "customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomersHandler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	customer, err := h.store.UpdateCustomer(id, req.Name, req.Email, req.Company, req.Phone, req.Status)
	if err != nil {
		respondStoreError(c, err, "customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomersHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}

	if err := h.store.DeleteCustomer(id); err != nil {
		respondStoreError(c, err, "customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type DeploymentsHandler struct {
	store *store.Store
}

func NewDeploymentsHandler(store *store.Store) *DeploymentsHandler {
	return &DeploymentsHandler{store: store}
}

func (h *DeploymentsHandler) CreateDeployment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	// The referenced project must exist and belong to the caller.
	if _, err := h.store.GetProject(req.ProjectID, userID); err != nil {
		respondStoreError(c, err, "project not found")
		return
	}

	deployment, err := h.store.CreateDeployment(req.ProjectID, userID)
	if err != nil {
		respondStoreError(c, err, "deployment not found")
		return
	}

	c.JSON(http.StatusCreated, deployment)
}

func (h *DeploymentsHandler) ListDeployments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	deployments, err := h.store.ListDeployments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list deployments", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.DeploymentListResponse{Deployments: deployments})
}

func (h *DeploymentsHandler) GetDeployment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "deployment_id")
	if !ok {
		return
	}

	deployment, err := h.store.GetDeployment(id, userID)
	if err != nil {
		respondStoreError(c, err, "deployment not found")
		return
	}
	c.JSON(http.StatusOK, deployment)
}

func (h *DeploymentsHandler) UpdateDeploymentStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "deployment_id")
	if !ok {
		return
	}

	var req models.UpdateDeploymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	deployment, err := h.store.UpdateDeploymentStatus(id, userID, req.Status, req.URL, req.Logs, req.Cost)
	if err != nil {
		respondStoreError(c, err, "deployment not found")
		return
	}
	c.JSON(http.StatusOK, deployment)
}

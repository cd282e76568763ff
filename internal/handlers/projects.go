package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type ProjectsHandler struct {
	store *store.Store
}

func NewProjectsHandler(store *store.Store) *ProjectsHandler {
	return &ProjectsHandler{store: store}
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.store.CreateProject(userID, req.FileName, req.FilePath, req.FileSize, req.Framework)
	if err != nil {
		respondStoreError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projects, err := h.store.ListProjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list projects", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects})
}

func (h *ProjectsHandler) GetProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}

	project, err := h.store.GetProject(id, userID)
	if err != nil {
		respondStoreError(c, err, "project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectsHandler) UpdateProjectStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}

	var req models.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.store.UpdateProjectStatus(id, userID, req.Status, req.Analysis)
	if err != nil {
		respondStoreError(c, err, "project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}

	// Cascade removes the project's deployments.
	if err := h.store.DeleteProject(id, userID); err != nil {
		respondStoreError(c, err, "project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

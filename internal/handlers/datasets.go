package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/chat"
	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type DatasetsHandler struct {
	store *store.Store
}

func NewDatasetsHandler(store *store.Store) *DatasetsHandler {
	return &DatasetsHandler{store: store}
}

// UploadDataset accepts a named batch of input/output records and adds them
// to the chat knowledge base.
func (h *DatasetsHandler) UploadDataset(c *gin.Context) {
	var req models.UploadDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	dataset, err := h.store.CreateDataset(req.Name, req.Description, req.Records)
	if err != nil {
		respondStoreError(c, err, "dataset not found")
		return
	}

	c.JSON(http.StatusCreated, models.DatasetUploadResponse{
		Dataset:      *dataset,
		RecordsAdded: len(req.Records),
	})
}

func (h *DatasetsHandler) ListDatasets(c *gin.Context) {
	datasets, err := h.store.ListDatasets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list datasets", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.DatasetListResponse{Datasets: datasets, Total: len(datasets)})
}

// Search scores the knowledge base against ?query and returns the top
// matches; ?top_k bounds the result count (default 3).
func (h *DatasetsHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "query parameter is required"})
		return
	}

	topK := 3
	if raw := c.Query("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid top_k"})
			return
		}
		topK = parsed
	}

	entries, err := h.store.ListKnowledgeEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load knowledge base", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Query:   query,
		Results: chat.Search(entries, query, topK),
	})
}

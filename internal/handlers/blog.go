package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type BlogHandler struct {
	store *store.Store
}

func NewBlogHandler(store *store.Store) *BlogHandler {
	return &BlogHandler{store: store}
}

// ListPosts always returns the whole collection; an empty table yields an
// empty array, never null.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.store.ListBlogPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list blog posts", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.BlogListResponse{Posts: posts})
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	post, err := h.store.CreateBlogPost(req.Title, req.Excerpt, req.Content, req.Category)
	if err != nil {
		respondStoreError(c, err, "blog post not found")
		return
	}
	c.JSON(http.StatusCreated, post)
}

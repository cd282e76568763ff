package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type CommandsHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCommandsHandler(store *store.Store, logger *zap.Logger) *CommandsHandler {
	return &CommandsHandler{store: store, logger: logger}
}

// CreateCommand runs sync commands inline; async commands are persisted as
// pending and completed by a background goroutine. There is no queue or
// retry behind this.
func (h *CommandsHandler) CreateCommand(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	command, err := h.store.CreateCommand(&userID, req.Command, req.Async)
	if err != nil {
		respondStoreError(c, err, "command not found")
		return
	}

	if req.Async {
		go h.execute(command.ID, command.Command)
		c.JSON(http.StatusAccepted, command)
		return
	}

	h.execute(command.ID, command.Command)
	command, err = h.store.GetCommand(command.ID)
	if err != nil {
		respondStoreError(c, err, "command not found")
		return
	}
	c.JSON(http.StatusCreated, command)
}

func (h *CommandsHandler) GetCommand(c *gin.Context) {
	id, ok := pathID(c, "command_id")
	if !ok {
		return
	}

	command, err := h.store.GetCommand(id)
	if err != nil {
		respondStoreError(c, err, "command not found")
		return
	}
	c.JSON(http.StatusOK, command)
}

func (h *CommandsHandler) ListCommands(c *gin.Context) {
	commands, err := h.store.ListCommands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list commands", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.CommandListResponse{Commands: commands})
}

func (h *CommandsHandler) execute(id int64, command string) {
	output, err := h.run(command)
	status := models.CommandStatusCompleted
	if err != nil {
		output = err.Error()
		status = models.CommandStatusFailed
	}
	if err := h.store.CompleteCommand(id, output, status); err != nil {
		h.logger.Error("failed to record command result", zap.Int64("command_id", id), zap.Error(err))
	}
}

func (h *CommandsHandler) run(command string) (string, error) {
	trimmed := strings.TrimSpace(command)
	lower := strings.ToLower(trimmed)

	switch {
	case lower == "status":
		counts, err := h.store.SystemCounts()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("system status: active. customers: %d, projects: %d, deployments: %d",
			counts.Customers, counts.Projects, counts.Deployments), nil
	case strings.HasPrefix(lower, "search "):
		query := strings.TrimSpace(trimmed[len("search "):])
		return fmt.Sprintf("search executed for: %s", query), nil
	default:
		return fmt.Sprintf("command %q executed successfully", trimmed), nil
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"saas-platform-backend/internal/chat"
	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

type ChatHandler struct {
	store *store.Store
}

func NewChatHandler(store *store.Store) *ChatHandler {
	return &ChatHandler{store: store}
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	session, err := h.store.CreateChatSession(ksuid.New().String(), &userID)
	if err != nil {
		respondStoreError(c, err, "chat session not found")
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sessions, err := h.store.ListChatSessions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list chat sessions", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ChatSessionListResponse{Sessions: sessions})
}

func (h *ChatHandler) GetSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sessionID := c.Param("session_id")

	session, err := h.store.GetChatSessionWithMessages(sessionID, &userID)
	if err != nil {
		respondStoreError(c, err, "chat session not found")
		return
	}
	c.JSON(http.StatusOK, session)
}

// PostMessage stores the user message and the generated assistant reply and
// returns both.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sessionID := c.Param("session_id")

	var req models.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if _, err := h.store.GetChatSession(sessionID, &userID); err != nil {
		respondStoreError(c, err, "chat session not found")
		return
	}

	userMessage, err := h.store.CreateChatMessage(sessionID, true, req.Content)
	if err != nil {
		respondStoreError(c, err, "chat session not found")
		return
	}

	entries, err := h.store.ListKnowledgeEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load knowledge base", Message: err.Error()})
		return
	}

	assistantMessage, err := h.store.CreateChatMessage(sessionID, false, chat.Reply(req.Content, entries))
	if err != nil {
		respondStoreError(c, err, "chat session not found")
		return
	}

	c.JSON(http.StatusCreated, models.ChatMessagePairResponse{
		UserMessage:      *userMessage,
		AssistantMessage: *assistantMessage,
	})
}

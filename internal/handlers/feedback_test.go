package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-platform-backend/internal/handlers"
	"saas-platform-backend/internal/models"
	"saas-platform-backend/internal/store"
)

func feedbackRouter(t *testing.T) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)
	s := newTestStore(t)
	h := handlers.NewFeedbackHandler(s)

	router := gin.New()
	router.POST("/api/chat/session-feedback", h.SessionFeedback)
	router.GET("/api/v1/feedback/stats", h.Stats)
	return router, s
}

// A zero rating never reaches the store.
func TestSessionFeedback_ZeroRatingBlocked(t *testing.T) {
	router, s := feedbackRouter(t)

	w := performRequest(router, "POST", "/api/chat/session-feedback",
		`{"rating":0,"feedback":"meh"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stats, err := s.FeedbackStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalFeedback)
}

func TestSessionFeedback_RatingOutOfRange(t *testing.T) {
	router, _ := feedbackRouter(t)

	w := performRequest(router, "POST", "/api/chat/session-feedback",
		`{"rating":6}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionFeedback_AllValidRatings(t *testing.T) {
	router, s := feedbackRouter(t)

	for rating := 1; rating <= 5; rating++ {
		body, _ := json.Marshal(models.SessionFeedbackRequest{
			SessionID:    "sess-1",
			Rating:       rating,
			Feedback:     "some feedback",
			MessageCount: 4,
		})
		w := performRequest(router, "POST", "/api/chat/session-feedback", string(body), "")
		assert.Equal(t, http.StatusCreated, w.Code, "rating %d", rating)
	}

	stats, err := s.FeedbackStats()
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalFeedback)
}

func TestSessionFeedback_SessionIDTooLong(t *testing.T) {
	router, s := feedbackRouter(t)

	longID := strings.Repeat("x", 200)
	w := performRequest(router, "POST", "/api/chat/session-feedback",
		`{"session_id":"`+longID+`","rating":4}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stats, err := s.FeedbackStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalFeedback)
}

// An omitted message count is backfilled from the session's stored messages.
func TestSessionFeedback_MessageCountFromSession(t *testing.T) {
	router, s := feedbackRouter(t)

	userID := "user-1"
	createTestUser(t, s, userID, "one@example.com")
	_, err := s.CreateChatSession("sess-1", &userID)
	require.NoError(t, err)
	for _, content := range []string{"hello", "Hello! How can I help?", "thanks"} {
		_, err = s.CreateChatMessage("sess-1", true, content)
		require.NoError(t, err)
	}

	w := performRequest(router, "POST", "/api/chat/session-feedback",
		`{"session_id":"sess-1","rating":5}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var row models.SessionFeedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, 3, row.MessageCount)
}

func TestFeedbackStats(t *testing.T) {
	router, s := feedbackRouter(t)

	_, err := s.CreateSessionFeedback("sess-1", 5, "great", 10)
	require.NoError(t, err)
	_, err = s.CreateSessionFeedback("sess-2", 1, "bad", 2)
	require.NoError(t, err)

	w := performRequest(router, "GET", "/api/v1/feedback/stats", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.FeedbackStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalFeedback)
	assert.Equal(t, int64(1), stats.PositiveFeedback)
	assert.Equal(t, int64(1), stats.NegativeFeedback)
	assert.InDelta(t, 3.0, stats.AverageRating, 0.0001)
}

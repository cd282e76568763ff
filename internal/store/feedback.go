package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

func (s *Store) CreateSessionFeedback(sessionID string, rating int, feedback string, messageCount int) (*models.SessionFeedback, error) {
	res, err := s.db.Exec(`
		INSERT INTO session_feedback (session_id, rating, feedback, message_count)
		VALUES (?, ?, ?, ?)
	`, sessionID, rating, feedback, messageCount)
	if err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read feedback id: %w", err)
	}
	var row models.SessionFeedback
	err = s.db.Get(&row, `
		SELECT id, session_id, rating, feedback, message_count, created_at
		FROM session_feedback
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", translate(err))
	}
	return &row, nil
}

// FeedbackStats aggregates over all stored ratings. Ratings of 4 and 5 count
// as positive, 1 and 2 as negative; a rating of 3 is neutral and counts in
// neither bucket.
func (s *Store) FeedbackStats() (*models.FeedbackStatsResponse, error) {
	var row struct {
		Total    int64    `db:"total"`
		Positive int64    `db:"positive"`
		Negative int64    `db:"negative"`
		Average  *float64 `db:"average"`
	}
	err := s.db.Get(&row, `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN rating >= 4 THEN 1 ELSE 0 END), 0) AS positive,
		       COALESCE(SUM(CASE WHEN rating <= 2 THEN 1 ELSE 0 END), 0) AS negative,
		       AVG(rating) AS average
		FROM session_feedback
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feedback: %w", err)
	}
	stats := &models.FeedbackStatsResponse{
		TotalFeedback:    row.Total,
		PositiveFeedback: row.Positive,
		NegativeFeedback: row.Negative,
	}
	if row.Average != nil {
		stats.AverageRating = *row.Average
	}
	return stats, nil
}

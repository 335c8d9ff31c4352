package postgres

import (
	"database/sql"

	"sponsorbot/internal/domain"
)

// FeedbackRepo implements repository.FeedbackRepository
type FeedbackRepo struct {
	db *sql.DB
}

// NewFeedbackRepo creates a new feedback repository
func NewFeedbackRepo(db *sql.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

// SaveFeedback archives a feedback message
func (r *FeedbackRepo) SaveFeedback(fb domain.Feedback) error {
	query := `
		INSERT INTO feedback (user_id, username, language, text, delivered)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, fb.UserID, fb.Username, string(fb.Language), fb.Text, fb.Delivered)
	return err
}

// CleanOldFeedback deletes feedback older than specified days
func (r *FeedbackRepo) CleanOldFeedback(days int) error {
	query := `
		DELETE FROM feedback
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}

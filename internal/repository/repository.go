package repository

import (
	"time"

	"sponsorbot/internal/domain"
)

// StateRepository defines per-user conversation state operations
type StateRepository interface {
	Get(userID int64) domain.UserState
	SetLanguage(userID int64, lang domain.Language)
	Reset(userID int64)
	AppendHistory(userID int64, role domain.Role, content string)
	RecentHistory(userID int64, n int) []domain.Message
	SetAwaitingFeedback(userID int64, awaiting bool)
	IsAwaitingFeedback(userID int64) bool
	LockUser(userID int64) (unlock func())
	EvictIdle(cutoff time.Time) int
}

// FeedbackRepository defines feedback archive operations
type FeedbackRepository interface {
	SaveFeedback(fb domain.Feedback) error
	CleanOldFeedback(days int) error
}

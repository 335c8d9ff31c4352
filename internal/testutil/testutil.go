package testutil

import (
	"sponsorbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSender creates a test message sender
func NewTestSender(userID int64, username string) domain.Sender {
	return domain.Sender{
		ID:        userID,
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// UserState is a snapshot of one user's conversation state
type UserState struct {
	UserID           int64
	Language         Language
	History          []Message
	AwaitingFeedback bool
	LastSeen         time.Time
}

// Sender describes the author of an inbound message
type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// DisplayName returns @username if present, the full name otherwise
func (s Sender) DisplayName() string {
	if s.Username != "" {
		return "@" + s.Username
	}

	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return fmt.Sprintf("id%d", s.ID)
	}
	return name
}

// Feedback is a message a user asked to forward to the bot owners
type Feedback struct {
	ID        int
	UserID    int64
	Username  string
	Language  Language
	Text      string
	Delivered bool
	CreatedAt time.Time
}

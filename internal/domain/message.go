package domain

import "time"

// Role identifies the author of a conversation message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation entry
type Message struct {
	Role      Role
	Content   string
	CreatedAt time.Time
}

// LastMessages returns a copy of the most recent n messages in chronological order
func LastMessages(history []Message, n int) []Message {
	if n <= 0 || len(history) == 0 {
		return []Message{}
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}

	out := make([]Message, len(history))
	copy(out, history)
	return out
}

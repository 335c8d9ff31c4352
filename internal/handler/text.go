package handler

import (
	"strings"

	"sponsorbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText answers free text through the conversation service
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Unregistered commands end up here
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	sender := senderFromUser(c.Sender())

	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send typing action",
			zap.Int64("user_id", sender.ID),
			zap.Error(err),
		)
	}

	reply := h.conversation.HandleText(h.ctx, sender, text)
	return c.Send(reply)
}

func senderFromUser(u *tele.User) domain.Sender {
	return domain.Sender{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

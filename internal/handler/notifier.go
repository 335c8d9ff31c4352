package handler

import (
	"context"

	tele "gopkg.in/telebot.v3"
)

// messageSender is the part of *tele.Bot used for outbound messages
type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// BotNotifier delivers service messages to arbitrary chats
type BotNotifier struct {
	bot messageSender
}

// NewBotNotifier creates a notifier sending through bot
func NewBotNotifier(bot messageSender) *BotNotifier {
	return &BotNotifier{bot: bot}
}

// Notify sends text to chatID
func (n *BotNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := n.bot.Send(tele.ChatID(chatID), text)
	return err
}

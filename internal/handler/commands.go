package handler

import (
	"sponsorbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// commandHandler answers a slash command.
// start and language also get the language keyboard.
func (h *Handler) commandHandler(cmd service.Command) tele.HandlerFunc {
	return func(c tele.Context) error {
		reply := h.commands.Execute(c.Sender().ID, cmd)

		switch cmd {
		case service.CommandStart, service.CommandLanguage:
			return c.Send(reply, languageMarkup())
		default:
			return c.Send(reply)
		}
	}
}

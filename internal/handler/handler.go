package handler

import (
	"context"

	"sponsorbot/internal/domain"
	"sponsorbot/internal/locale"
	"sponsorbot/internal/middleware"
	"sponsorbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	// ctx bounds completions started by updates and is canceled on shutdown
	ctx          context.Context
	bot          *tele.Bot
	conversation *service.ConversationService
	commands     *service.CommandService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	conversation *service.ConversationService,
	commands *service.CommandService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		ctx:          ctx,
		bot:          bot,
		conversation: conversation,
		commands:     commands,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Logging(h.logger))

	// Commands
	for _, cmd := range service.Commands {
		h.bot.Handle("/"+string(cmd), h.commandHandler(cmd))
	}

	// Language keyboard
	h.bot.Handle(&btnLangRU, h.handleLanguageSelection)
	h.bot.Handle(&btnLangEN, h.handleLanguageSelection)

	// Callbacks whose unique part did not survive
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Free text
	h.bot.Handle(tele.OnText, h.handleText)
}

// commandDescriptions are shown in the Telegram command menu
var commandDescriptions = map[service.Command]string{
	service.CommandStart:    "Начать / Start",
	service.CommandLanguage: "Сменить язык / Change language",
	service.CommandExamples: "Примеры вопросов / Example questions",
	service.CommandReset:    "Очистить историю / Clear history",
	service.CommandHelp:     "Помощь / Help",
	service.CommandAbout:    "О боте / About",
	service.CommandFeedback: "Оставить отзыв / Leave feedback",
}

// BotCommands returns the command menu published with SetCommands
func BotCommands() []tele.Command {
	commands := make([]tele.Command, 0, len(service.Commands))
	for _, cmd := range service.Commands {
		commands = append(commands, tele.Command{
			Text:        string(cmd),
			Description: commandDescriptions[cmd],
		})
	}
	return commands
}

// Inline keyboard buttons
var (
	btnLangRU = tele.Btn{
		Unique: domain.CallbackLangRU,
		Text:   locale.ButtonRU,
	}
	btnLangEN = tele.Btn{
		Unique: domain.CallbackLangEN,
		Text:   locale.ButtonEN,
	}
)

// languageMarkup returns the language selection keyboard
func languageMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLangRU, btnLangEN),
	)
	return menu
}

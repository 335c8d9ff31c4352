package handler

import (
	"strings"
	"unicode"

	"sponsorbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackLanguage resolves the selected language by Unique first, then by Data
func callbackLanguage(cb *tele.Callback) (domain.Language, bool) {
	if lang, ok := domain.LanguageFromCallback(cb.Unique); ok {
		return lang, true
	}
	if cb.Unique != "" {
		return "", false
	}
	return domain.LanguageFromCallback(cleanCallbackData(cb.Data))
}

// handleEditError handles errors from c.Edit().
// Returns nil when the message already has the wanted content, the original error otherwise.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Another press of the same button got there first
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	return err
}

// handleCallback handles callback queries not matched by a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	if _, ok := callbackLanguage(callback); ok {
		return h.handleLanguageSelection(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handleLanguageSelection stores the chosen language and replaces the keyboard with the greeting
func (h *Handler) handleLanguageSelection(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	userID := c.Sender().ID
	lang, ok := callbackLanguage(callback)
	if !ok {
		h.logger.Warn("Unknown language callback",
			zap.String("data", callback.Data),
			zap.String("unique", callback.Unique),
		)
		return c.Respond()
	}

	greeting := h.commands.SelectLanguage(userID, lang)

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	if err := c.Edit(greeting); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(greeting)
	}
	return nil
}

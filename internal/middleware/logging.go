package middleware

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every handled update and turns handler panics into errors
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			start := time.Now()
			fields := updateFields(c)

			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic: %v", r)
					logger.Error("Recovered from handler panic", append(fields, zap.Any("panic", r))...)
				}

				fields = append(fields, zap.Duration("duration", time.Since(start)))
				if err != nil {
					logger.Error("Update handling failed", append(fields, zap.Error(err))...)
					return
				}
				logger.Debug("Update handled", fields...)
			}()

			return next(c)
		}
	}
}

// updateFields describes the update for logging. Message text is never logged.
func updateFields(c tele.Context) []zap.Field {
	fields := make([]zap.Field, 0, 4)

	if sender := c.Sender(); sender != nil {
		fields = append(fields,
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		)
	}

	if c.Callback() != nil {
		return append(fields, zap.String("kind", "callback"))
	}

	if text := c.Text(); strings.HasPrefix(text, "/") {
		command := strings.Fields(text)[0]
		return append(fields, zap.String("kind", "command"), zap.String("command", command))
	}
	return append(fields, zap.String("kind", "message"))
}

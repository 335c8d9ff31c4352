package service

import (
	"context"
	"errors"
	"fmt"

	"sponsorbot/internal/domain"
	"sponsorbot/internal/repository"

	"go.uber.org/zap"
)

// ErrFeedbackRecipientMissing means no feedback chat is configured
var ErrFeedbackRecipientMissing = errors.New("feedback recipient is not configured")

// DeliveryError reports a failed attempt to forward feedback
type DeliveryError struct {
	ChatID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver feedback to chat %d: %v", e.ChatID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Notifier sends a text message to a chat
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// FeedbackService forwards user feedback to a fixed chat
type FeedbackService struct {
	notifier  Notifier
	recipient int64
	archive   repository.FeedbackRepository
	logger    *zap.Logger
}

// NewFeedbackService creates a new feedback service. archive may be nil.
func NewFeedbackService(
	notifier Notifier,
	recipient int64,
	archive repository.FeedbackRepository,
	logger *zap.Logger,
) *FeedbackService {
	return &FeedbackService{
		notifier:  notifier,
		recipient: recipient,
		archive:   archive,
		logger:    logger,
	}
}

// Submit forwards feedback text annotated with the sender
func (s *FeedbackService) Submit(ctx context.Context, sender domain.Sender, lang domain.Language, text string) error {
	err := s.deliver(ctx, sender, lang, text)

	s.store(domain.Feedback{
		UserID:    sender.ID,
		Username:  sender.Username,
		Language:  lang.Normalize(),
		Text:      text,
		Delivered: err == nil,
	})

	return err
}

func (s *FeedbackService) deliver(ctx context.Context, sender domain.Sender, lang domain.Language, text string) error {
	if s.recipient == 0 {
		return ErrFeedbackRecipientMissing
	}

	if err := s.notifier.Notify(ctx, s.recipient, FormatFeedback(sender, lang, text)); err != nil {
		return &DeliveryError{ChatID: s.recipient, Err: err}
	}
	return nil
}

// store archives feedback when an archive is configured. Failures are only logged.
func (s *FeedbackService) store(fb domain.Feedback) {
	if s.archive == nil {
		return
	}

	if err := s.archive.SaveFeedback(fb); err != nil {
		s.logger.Warn("Failed to archive feedback",
			zap.Error(err),
			zap.Int64("user_id", fb.UserID),
		)
	}
}

// FormatFeedback builds the message forwarded to the feedback chat
func FormatFeedback(sender domain.Sender, lang domain.Language, text string) string {
	return fmt.Sprintf("📝 Feedback from %s (id %d, %s):\n\n%s",
		sender.DisplayName(), sender.ID, lang.Normalize(), text)
}

package service

import (
	"context"

	"sponsorbot/internal/domain"
	"sponsorbot/internal/locale"
	"sponsorbot/internal/repository"

	"go.uber.org/zap"
)

// HistoryWindow is the number of stored history entries sent with each prompt
const HistoryWindow = 10

// Completer produces an assistant reply for a message list
type Completer interface {
	Complete(ctx context.Context, messages []domain.Message) (string, error)
}

// FeedbackSubmitter delivers captured feedback
type FeedbackSubmitter interface {
	Submit(ctx context.Context, sender domain.Sender, lang domain.Language, text string) error
}

// ConversationService turns inbound text into replies
type ConversationService struct {
	states    repository.StateRepository
	completer Completer
	feedback  FeedbackSubmitter
	logger    *zap.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(
	states repository.StateRepository,
	completer Completer,
	feedback FeedbackSubmitter,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		states:    states,
		completer: completer,
		feedback:  feedback,
		logger:    logger,
	}
}

// HandleText processes one text message and returns the reply.
// Turns of the same user run one at a time.
func (s *ConversationService) HandleText(ctx context.Context, sender domain.Sender, text string) string {
	unlock := s.states.LockUser(sender.ID)
	defer unlock()

	state := s.states.Get(sender.ID)
	lang := state.Language

	if state.AwaitingFeedback {
		return s.handleFeedback(ctx, sender, lang, text)
	}

	s.states.AppendHistory(sender.ID, domain.RoleUser, text)
	prompt := BuildPrompt(lang, s.states.RecentHistory(sender.ID, HistoryWindow))

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Failed to get completion",
			zap.Error(err),
			zap.Int64("user_id", sender.ID),
		)
		return locale.Text(lang, locale.CompletionError)
	}

	s.states.AppendHistory(sender.ID, domain.RoleAssistant, reply)
	return reply
}

// handleFeedback forwards text as feedback. The capture mode is single use.
func (s *ConversationService) handleFeedback(ctx context.Context, sender domain.Sender, lang domain.Language, text string) string {
	s.states.SetAwaitingFeedback(sender.ID, false)

	if err := s.feedback.Submit(ctx, sender, lang, text); err != nil {
		s.logger.Error("Failed to deliver feedback",
			zap.Error(err),
			zap.Int64("user_id", sender.ID),
		)
		return locale.Text(lang, locale.FeedbackFailed)
	}

	s.logger.Info("Feedback delivered", zap.Int64("user_id", sender.ID))
	return locale.Text(lang, locale.FeedbackThanks)
}

// BuildPrompt prepends the persona system prompt to the newest HistoryWindow entries
func BuildPrompt(lang domain.Language, history []domain.Message) []domain.Message {
	recent := domain.LastMessages(history, HistoryWindow)

	prompt := make([]domain.Message, 0, len(recent)+1)
	prompt = append(prompt, domain.Message{
		Role:    domain.RoleSystem,
		Content: locale.Text(lang, locale.SystemPrompt),
	})
	return append(prompt, recent...)
}

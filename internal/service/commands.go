package service

import (
	"sponsorbot/internal/domain"
	"sponsorbot/internal/locale"
	"sponsorbot/internal/repository"

	"go.uber.org/zap"
)

// Command is a bot command name without the leading slash
type Command string

const (
	CommandStart    Command = "start"
	CommandLanguage Command = "language"
	CommandExamples Command = "examples"
	CommandReset    Command = "reset"
	CommandHelp     Command = "help"
	CommandAbout    Command = "about"
	CommandFeedback Command = "feedback"
)

// Commands lists every command in menu order
var Commands = []Command{
	CommandStart,
	CommandLanguage,
	CommandExamples,
	CommandReset,
	CommandFeedback,
	CommandAbout,
	CommandHelp,
}

// CommandService maps commands to state changes and canned replies
type CommandService struct {
	states repository.StateRepository
	logger *zap.Logger
}

// NewCommandService creates a new command service
func NewCommandService(states repository.StateRepository, logger *zap.Logger) *CommandService {
	return &CommandService{
		states: states,
		logger: logger,
	}
}

// LanguagePrompt returns the text shown above the language keyboard
func (s *CommandService) LanguagePrompt() string {
	return locale.LanguagePrompt
}

// SelectLanguage stores the user's language, clears the conversation and returns the greeting
func (s *CommandService) SelectLanguage(userID int64, lang domain.Language) string {
	unlock := s.states.LockUser(userID)
	defer unlock()

	lang = lang.Normalize()
	s.states.SetLanguage(userID, lang)

	s.logger.Info("Language selected",
		zap.Int64("user_id", userID),
		zap.String("language", string(lang)),
	)
	return locale.Text(lang, locale.Greeting)
}

// Execute runs a command and returns the reply.
// start and language are answered with LanguagePrompt.
func (s *CommandService) Execute(userID int64, cmd Command) string {
	unlock := s.states.LockUser(userID)
	defer unlock()

	lang := s.states.Get(userID).Language

	switch cmd {
	case CommandStart, CommandLanguage:
		return locale.LanguagePrompt
	case CommandExamples:
		return locale.Text(lang, locale.Examples)
	case CommandReset:
		s.states.Reset(userID)
		s.logger.Info("Conversation reset", zap.Int64("user_id", userID))
		return locale.Text(lang, locale.ResetDone)
	case CommandHelp:
		return locale.Text(lang, locale.Help)
	case CommandAbout:
		return locale.Text(lang, locale.About)
	case CommandFeedback:
		s.states.SetAwaitingFeedback(userID, true)
		return locale.Text(lang, locale.FeedbackPrompt)
	default:
		s.logger.Warn("Unknown command", zap.String("command", string(cmd)))
		return locale.Text(lang, locale.Help)
	}
}

package service

import (
	"testing"

	"sponsorbot/internal/domain"
	"sponsorbot/internal/locale"
	"sponsorbot/internal/repository/memory"
	"sponsorbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCommandService_Execute(t *testing.T) {
	tests := []struct {
		name     string
		language domain.Language
		command  Command
		expected string
	}{
		{name: "start", language: domain.LanguageEN, command: CommandStart, expected: locale.LanguagePrompt},
		{name: "language", language: domain.LanguageRU, command: CommandLanguage, expected: locale.LanguagePrompt},
		{name: "examples ru", language: domain.LanguageRU, command: CommandExamples, expected: locale.Text(domain.LanguageRU, locale.Examples)},
		{name: "examples en", language: domain.LanguageEN, command: CommandExamples, expected: locale.Text(domain.LanguageEN, locale.Examples)},
		{name: "help", language: domain.LanguageEN, command: CommandHelp, expected: locale.Text(domain.LanguageEN, locale.Help)},
		{name: "about", language: domain.LanguageRU, command: CommandAbout, expected: locale.Text(domain.LanguageRU, locale.About)},
		{name: "feedback", language: domain.LanguageEN, command: CommandFeedback, expected: locale.Text(domain.LanguageEN, locale.FeedbackPrompt)},
		{name: "reset answers in previous language", language: domain.LanguageEN, command: CommandReset, expected: locale.Text(domain.LanguageEN, locale.ResetDone)},
		{name: "unknown command", language: domain.LanguageRU, command: Command("dance"), expected: locale.Text(domain.LanguageRU, locale.Help)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := memory.NewStateRepo()
			states.SetLanguage(1, tt.language)
			svc := NewCommandService(states, testutil.NewTestLogger())

			assert.Equal(t, tt.expected, svc.Execute(1, tt.command))
		})
	}
}

func TestCommandService_ExecuteFeedbackEntersCaptureMode(t *testing.T) {
	states := memory.NewStateRepo()
	svc := NewCommandService(states, testutil.NewTestLogger())

	svc.Execute(1, CommandFeedback)

	assert.True(t, states.IsAwaitingFeedback(1))
	assert.False(t, states.IsAwaitingFeedback(2))
}

func TestCommandService_ExecuteReset(t *testing.T) {
	states := memory.NewStateRepo()
	states.SetLanguage(1, domain.LanguageEN)
	states.AppendHistory(1, domain.RoleUser, "q")
	states.SetAwaitingFeedback(1, true)
	svc := NewCommandService(states, testutil.NewTestLogger())

	svc.Execute(1, CommandReset)

	state := states.Get(1)
	assert.Equal(t, domain.LanguageRU, state.Language)
	assert.Empty(t, state.History)
	assert.False(t, state.AwaitingFeedback)
}

func TestCommandService_ExecuteDoesNotTouchHistory(t *testing.T) {
	states := memory.NewStateRepo()
	states.AppendHistory(1, domain.RoleUser, "q")
	svc := NewCommandService(states, testutil.NewTestLogger())

	for _, cmd := range []Command{CommandStart, CommandLanguage, CommandExamples, CommandHelp, CommandAbout, CommandFeedback} {
		svc.Execute(1, cmd)
	}

	assert.Len(t, states.Get(1).History, 1)
}

func TestCommandService_SelectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language domain.Language
		expected domain.Language
	}{
		{name: "russian", language: domain.LanguageRU, expected: domain.LanguageRU},
		{name: "english", language: domain.LanguageEN, expected: domain.LanguageEN},
		{name: "unsupported falls back", language: domain.Language("de"), expected: domain.LanguageRU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := memory.NewStateRepo()
			states.AppendHistory(1, domain.RoleUser, "old")
			states.AppendHistory(1, domain.RoleAssistant, "old reply")
			svc := NewCommandService(states, testutil.NewTestLogger())

			greeting := svc.SelectLanguage(1, tt.language)

			assert.Equal(t, locale.Text(tt.expected, locale.Greeting), greeting)
			state := states.Get(1)
			assert.Equal(t, tt.expected, state.Language)
			assert.Empty(t, state.History)
		})
	}
}

func TestCommandService_LanguagePrompt(t *testing.T) {
	svc := NewCommandService(memory.NewStateRepo(), testutil.NewTestLogger())
	assert.Equal(t, locale.LanguagePrompt, svc.LanguagePrompt())
}

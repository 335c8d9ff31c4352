package handler

import (
	"context"
	"errors"
	"testing"

	"sponsorbot/internal/domain"
	"sponsorbot/internal/locale"
	"sponsorbot/internal/repository/memory"
	"sponsorbot/internal/service"
	"sponsorbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type handlerFixture struct {
	handler   *Handler
	states    *memory.StateRepo
	completer *testutil.MockCompleter
	feedback  *testutil.MockFeedbackSubmitter
}

func newHandlerFixture() *handlerFixture {
	return newHandlerFixtureWithContext(context.Background())
}

func newHandlerFixtureWithContext(ctx context.Context) *handlerFixture {
	logger := testutil.NewTestLogger()
	states := memory.NewStateRepo()
	completer := new(testutil.MockCompleter)
	feedback := new(testutil.MockFeedbackSubmitter)

	conversation := service.NewConversationService(states, completer, feedback, logger)
	commands := service.NewCommandService(states, logger)

	return &handlerFixture{
		handler:   NewHandler(ctx, nil, conversation, commands, logger),
		states:    states,
		completer: completer,
		feedback:  feedback,
	}
}

func TestCommandHandler_StartShowsLanguageKeyboard(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewTextContext(1, "alice", "/start")

	require.NoError(t, f.handler.commandHandler(service.CommandStart)(c))

	require.Len(t, c.Sent, 1)
	assert.Equal(t, locale.LanguagePrompt, c.Sent[0])
	require.Len(t, c.Markups, 1)

	keyboard := c.Markups[0].InlineKeyboard
	require.Len(t, keyboard, 1)
	require.Len(t, keyboard[0], 2)
	assert.Equal(t, locale.ButtonRU, keyboard[0][0].Text)
	assert.Equal(t, locale.ButtonEN, keyboard[0][1].Text)
}

func TestCommandHandler_ResetReplyHasNoKeyboard(t *testing.T) {
	f := newHandlerFixture()
	f.states.SetLanguage(1, domain.LanguageEN)
	f.states.AppendHistory(1, domain.RoleUser, "hi")
	c := testutil.NewTextContext(1, "alice", "/reset")

	require.NoError(t, f.handler.commandHandler(service.CommandReset)(c))

	assert.Equal(t, []string{locale.Text(domain.LanguageEN, locale.ResetDone)}, c.Sent)
	assert.Empty(t, c.Markups)
	assert.Empty(t, f.states.RecentHistory(1, 10))
}

func TestHandleLanguageSelection_ByUnique(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewCallbackContext(5, domain.CallbackLangEN, "")

	require.NoError(t, f.handler.handleLanguageSelection(c))

	assert.Equal(t, []string{locale.Text(domain.LanguageEN, locale.Greeting)}, c.Edited)
	assert.Empty(t, c.Sent)
	assert.Len(t, c.Responses, 1)
	assert.Equal(t, domain.LanguageEN, f.states.Get(5).Language)
}

func TestHandleCallback_ByDirtyData(t *testing.T) {
	f := newHandlerFixture()
	f.states.SetLanguage(5, domain.LanguageEN)
	c := testutil.NewCallbackContext(5, "", " \flang_ru\n")

	require.NoError(t, f.handler.handleCallback(c))

	assert.Equal(t, []string{locale.Text(domain.LanguageRU, locale.Greeting)}, c.Edited)
	assert.Equal(t, domain.LanguageRU, f.states.Get(5).Language)
}

func TestHandleCallback_Unknown(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewCallbackContext(5, "something_else", "x")

	require.NoError(t, f.handler.handleCallback(c))

	assert.Empty(t, c.Edited)
	assert.Empty(t, c.Sent)
	assert.Len(t, c.Responses, 1)
}

func TestHandleLanguageSelection_EditFallsBackToSend(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewCallbackContext(5, domain.CallbackLangRU, "")
	c.EditErr = errors.New("telegram: message to edit not found (400)")

	require.NoError(t, f.handler.handleLanguageSelection(c))

	assert.Equal(t, []string{locale.Text(domain.LanguageRU, locale.Greeting)}, c.Sent)
}

func TestHandleLanguageSelection_NotModified(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewCallbackContext(5, domain.CallbackLangRU, "")
	c.EditErr = errors.New("telegram: Bad Request: message is not modified (400)")

	require.NoError(t, f.handler.handleLanguageSelection(c))

	assert.Empty(t, c.Sent)
	assert.Len(t, c.Responses, 1)
}

func TestHandleText_RepliesWithCompletion(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewTextContext(9, "bob", "How do I start step one?")

	f.completer.On("Complete", mock.Anything, mock.Anything).Return("Start by being honest.", nil)

	require.NoError(t, f.handler.handleText(c))

	assert.Equal(t, []string{"Start by being honest."}, c.Sent)
	assert.Equal(t, []tele.ChatAction{tele.Typing}, c.Actions)
	assert.Len(t, f.states.RecentHistory(9, 10), 2)
	f.completer.AssertExpectations(t)
}

func TestHandleText_UsesHandlerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newHandlerFixtureWithContext(ctx)
	c := testutil.NewTextContext(9, "bob", "Are you there?")

	f.completer.On("Complete", mock.MatchedBy(func(ctx context.Context) bool {
		return errors.Is(ctx.Err(), context.Canceled)
	}), mock.Anything).Return("", context.Canceled)

	require.NoError(t, f.handler.handleText(c))

	assert.Equal(t, []string{locale.Text(domain.LanguageRU, locale.CompletionError)}, c.Sent)
	assert.Len(t, f.states.RecentHistory(9, 10), 1)
	f.completer.AssertExpectations(t)
}

func TestHandleText_IgnoresUnknownCommands(t *testing.T) {
	f := newHandlerFixture()
	c := testutil.NewTextContext(9, "bob", "/unknown")

	require.NoError(t, f.handler.handleText(c))

	assert.Empty(t, c.Sent)
	f.completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleText_ForwardsFeedback(t *testing.T) {
	f := newHandlerFixture()
	f.states.SetAwaitingFeedback(9, true)
	c := testutil.NewTextContext(9, "bob", "Great bot")

	f.feedback.On("Submit", mock.Anything, mock.MatchedBy(func(s domain.Sender) bool {
		return s.ID == 9 && s.Username == "bob"
	}), domain.LanguageRU, "Great bot").Return(nil)

	require.NoError(t, f.handler.handleText(c))

	assert.Equal(t, []string{locale.Text(domain.LanguageRU, locale.FeedbackThanks)}, c.Sent)
	assert.False(t, f.states.IsAwaitingFeedback(9))
	f.feedback.AssertExpectations(t)
}

func TestBotCommands(t *testing.T) {
	commands := BotCommands()

	require.Len(t, commands, len(service.Commands))
	for i, cmd := range commands {
		assert.Equal(t, string(service.Commands[i]), cmd.Text)
		assert.NotEmpty(t, cmd.Description)
	}
}

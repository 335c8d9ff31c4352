package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context that records replies.
// Methods not overridden here panic when called.
type FakeContext struct {
	tele.Context

	User    *tele.User
	Msg     *tele.Message
	Cb      *tele.Callback
	EditErr error

	Sent      []string
	Edited    []string
	Markups   []*tele.ReplyMarkup
	Responses []*tele.CallbackResponse
	Actions   []tele.ChatAction
}

// NewTextContext creates a context for a text message from userID
func NewTextContext(userID int64, username, text string) *FakeContext {
	user := &tele.User{ID: userID, Username: username, FirstName: "Test"}
	return &FakeContext{
		User: user,
		Msg: &tele.Message{
			Sender: user,
			Chat:   &tele.Chat{ID: userID},
			Text:   text,
		},
	}
}

// NewCallbackContext creates a context for an inline button press
func NewCallbackContext(userID int64, unique, data string) *FakeContext {
	user := &tele.User{ID: userID, Username: "tester"}
	msg := &tele.Message{Sender: user, Chat: &tele.Chat{ID: userID}}
	return &FakeContext{
		User: user,
		Msg:  msg,
		Cb: &tele.Callback{
			ID:      "cb-1",
			Sender:  user,
			Message: msg,
			Unique:  unique,
			Data:    data,
		},
	}
}

func (c *FakeContext) Sender() *tele.User       { return c.User }
func (c *FakeContext) Message() *tele.Message   { return c.Msg }
func (c *FakeContext) Callback() *tele.Callback { return c.Cb }

func (c *FakeContext) Notify(a tele.ChatAction) error {
	c.Actions = append(c.Actions, a)
	return nil
}

func (c *FakeContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	return c.Msg.Text
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, fmt.Sprint(what))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, fmt.Sprint(what))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, nil)
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

func (c *FakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			c.Markups = append(c.Markups, markup)
		}
	}
}

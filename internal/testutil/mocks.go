package testutil

import (
	"context"
	"time"

	"sponsorbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCompleter is a mock for service.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

// MockFeedbackSubmitter is a mock for service.FeedbackSubmitter
type MockFeedbackSubmitter struct {
	mock.Mock
}

func (m *MockFeedbackSubmitter) Submit(ctx context.Context, sender domain.Sender, lang domain.Language, text string) error {
	args := m.Called(ctx, sender, lang, text)
	return args.Error(0)
}

// MockFeedbackRepository is a mock for FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) SaveFeedback(fb domain.Feedback) error {
	args := m.Called(fb)
	return args.Error(0)
}

func (m *MockFeedbackRepository) CleanOldFeedback(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Get(userID int64) domain.UserState {
	args := m.Called(userID)
	return args.Get(0).(domain.UserState)
}

func (m *MockStateRepository) SetLanguage(userID int64, lang domain.Language) {
	m.Called(userID, lang)
}

func (m *MockStateRepository) Reset(userID int64) {
	m.Called(userID)
}

func (m *MockStateRepository) AppendHistory(userID int64, role domain.Role, content string) {
	m.Called(userID, role, content)
}

func (m *MockStateRepository) RecentHistory(userID int64, n int) []domain.Message {
	args := m.Called(userID, n)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Message)
}

func (m *MockStateRepository) SetAwaitingFeedback(userID int64, awaiting bool) {
	m.Called(userID, awaiting)
}

func (m *MockStateRepository) IsAwaitingFeedback(userID int64) bool {
	args := m.Called(userID)
	return args.Bool(0)
}

func (m *MockStateRepository) LockUser(userID int64) func() {
	m.Called(userID)
	return func() {}
}

func (m *MockStateRepository) EvictIdle(cutoff time.Time) int {
	args := m.Called(cutoff)
	return args.Int(0)
}

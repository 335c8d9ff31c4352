package memory

import (
	"sync"
	"time"

	"sponsorbot/internal/domain"
)

// DefaultHistoryLimit is the number of history entries kept per user
const DefaultHistoryLimit = 20

type userEntry struct {
	language         domain.Language
	history          []domain.Message
	awaitingFeedback bool
	lastSeen         time.Time
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// StateRepo implements repository.StateRepository in process memory.
// State is lost on restart.
type StateRepo struct {
	mu    sync.RWMutex
	users map[int64]*userEntry

	locksMu sync.Mutex
	locks   map[int64]*userLock

	historyLimit int
	now          func() time.Time
}

// Option configures a StateRepo
type Option func(*StateRepo)

// WithHistoryLimit caps stored history per user. Zero or less keeps everything.
func WithHistoryLimit(limit int) Option {
	return func(r *StateRepo) {
		r.historyLimit = limit
	}
}

// WithClock overrides the time source used for LastSeen
func WithClock(now func() time.Time) Option {
	return func(r *StateRepo) {
		r.now = now
	}
}

// NewStateRepo creates an empty state repository
func NewStateRepo(opts ...Option) *StateRepo {
	r := &StateRepo{
		users:        make(map[int64]*userEntry),
		locks:        make(map[int64]*userLock),
		historyLimit: DefaultHistoryLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// entry returns the user's entry, creating it if absent. Caller holds r.mu.
func (r *StateRepo) entry(userID int64) *userEntry {
	e, exists := r.users[userID]
	if !exists {
		e = &userEntry{}
		r.users[userID] = e
	}
	e.lastSeen = r.now()
	return e
}

// Get returns a snapshot of the user's state, creating the default state on first access
func (r *StateRepo) Get(userID int64) domain.UserState {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID)
	history := make([]domain.Message, len(e.history))
	copy(history, e.history)

	return domain.UserState{
		UserID:           userID,
		Language:         e.language.Normalize(),
		History:          history,
		AwaitingFeedback: e.awaitingFeedback,
		LastSeen:         e.lastSeen,
	}
}

// SetLanguage stores the language and starts a fresh conversation
func (r *StateRepo) SetLanguage(userID int64, lang domain.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID)
	e.language = lang.Normalize()
	e.history = nil
	e.awaitingFeedback = false
}

// Reset drops the language choice, history and feedback flag
func (r *StateRepo) Reset(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID)
	e.language = ""
	e.history = nil
	e.awaitingFeedback = false
}

// AppendHistory appends a message, dropping the oldest entries beyond the history limit
func (r *StateRepo) AppendHistory(userID int64, role domain.Role, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID)
	e.history = append(e.history, domain.Message{
		Role:      role,
		Content:   content,
		CreatedAt: e.lastSeen,
	})

	if r.historyLimit > 0 && len(e.history) > r.historyLimit {
		trimmed := make([]domain.Message, r.historyLimit)
		copy(trimmed, e.history[len(e.history)-r.historyLimit:])
		e.history = trimmed
	}
}

// RecentHistory returns the last n history entries in chronological order
func (r *StateRepo) RecentHistory(userID int64, n int) []domain.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.users[userID]
	if !exists {
		return []domain.Message{}
	}
	return domain.LastMessages(e.history, n)
}

// SetAwaitingFeedback toggles feedback capture mode
func (r *StateRepo) SetAwaitingFeedback(userID int64, awaiting bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry(userID).awaitingFeedback = awaiting
}

// IsAwaitingFeedback reports whether the next text message is feedback
func (r *StateRepo) IsAwaitingFeedback(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.users[userID]
	return exists && e.awaitingFeedback
}

// LockUser serializes turns of a single user. Other users are not blocked.
func (r *StateRepo) LockUser(userID int64) (unlock func()) {
	r.locksMu.Lock()
	l, exists := r.locks[userID]
	if !exists {
		l = &userLock{}
		r.locks[userID] = l
	}
	l.refs++
	r.locksMu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			r.locksMu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(r.locks, userID)
			}
			r.locksMu.Unlock()
		})
	}
}

// EvictIdle removes users not seen since cutoff and returns how many were removed.
// Users with a turn in progress are kept.
func (r *StateRepo) EvictIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locksMu.Lock()
	defer r.locksMu.Unlock()

	evicted := 0
	for userID, e := range r.users {
		if !e.lastSeen.Before(cutoff) {
			continue
		}
		if _, busy := r.locks[userID]; busy {
			continue
		}
		delete(r.users, userID)
		evicted++
	}
	return evicted
}

// Len returns the number of users with state
func (r *StateRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

package state

import (
	"sync"
	"time"

	"github.com/m3rciful/taskbot/core/logger"
	tghelpers "github.com/m3rciful/taskbot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	handlers map[State]tele.HandlerFunc
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryManager constructs an in-memory Manager. A ttl of 0 falls back to
// DefaultTTL; expired sessions are discarded lazily on access.
func NewMemoryManager(ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryManager{
		sessions: make(map[int64]*Session),
		handlers: make(map[State]tele.HandlerFunc),
		ttl:      ttl,
		now:      time.Now,
	}
}

// session returns the live session for a user, dropping it when expired.
// Callers must hold the write lock.
func (m *memoryManager) session(userID int64) (*Session, bool) {
	sess, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	if m.now().Sub(sess.Touched) > m.ttl {
		delete(m.sessions, userID)
		return nil, false
	}
	return sess, true
}

func (m *memoryManager) ensure(userID int64) *Session {
	sess, ok := m.session(userID)
	if !ok {
		sess = &Session{State: StateIdle, TempData: make(map[string]interface{})}
		m.sessions[userID] = sess
	}
	sess.Touched = m.now()
	return sess
}

// SetState sets the FSM state for the given user.
func (m *memoryManager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(userID).State = st
}

// GetState returns the current FSM state of a user, or StateIdle if none exists.
func (m *memoryManager) GetState(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.session(userID); ok {
		return sess.State
	}
	return StateIdle
}

// ClearState resets the FSM state to idle without removing session data.
func (m *memoryManager) ClearState(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.session(userID); ok {
		sess.State = StateIdle
	}
}

// SetTemp stores a temporary key/value pair for the given user session.
func (m *memoryManager) SetTemp(userID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(userID).TempData[key] = value
}

// GetTemp retrieves a temporary value by key for the given user session.
func (m *memoryManager) GetTemp(userID int64, key string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.session(userID)
	if !ok {
		return nil, false
	}
	val, ok := sess.TempData[key]
	return val, ok
}

// GetTempString retrieves a temporary value by key and asserts it as string.
func (m *memoryManager) GetTempString(userID int64, key string) (string, bool) {
	val, found := m.GetTemp(userID, key)
	if !found {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// ClearTemp removes a temporary key/value pair for the given user session.
func (m *memoryManager) ClearTemp(userID int64, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.session(userID); ok {
		delete(sess.TempData, key)
	}
}

// Clear removes the entire session for a user.
func (m *memoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// InProgress reports whether the user currently has an active FSM state.
func (m *memoryManager) InProgress(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.session(userID)
	return ok && sess.State != StateIdle
}

// Bind associates a state with its handler.
func (m *memoryManager) Bind(st State, h tele.HandlerFunc) {
	if h == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[st] = h
}

// ManagerHandler executes the handler bound to the user's current state, if any.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	current := m.GetState(userID)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("state", string(current)),
	)

	m.mu.RLock()
	handler, ok := m.handlers[current]
	m.mu.RUnlock()
	if ok {
		return handler(c)
	}
	return nil
}

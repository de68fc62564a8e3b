// Package state provides a lightweight FSM/session manager for Telegram bots.
// It is intentionally domain-agnostic so it can be reused across bots.
package state

import (
	"time"

	tele "gopkg.in/telebot.v4"
)

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// DefaultTTL bounds how long a pending conversation step may wait for the
// next reply before it is silently discarded.
const DefaultTTL = 10 * time.Minute

// Session stores conversation state and temporary data for a user.
type Session struct {
	State    State
	TempData map[string]interface{}
	Touched  time.Time
}

// Manager orchestrates user sessions and FSM state transitions.
type Manager interface {
	SetState(userID int64, st State)
	GetState(userID int64) State
	ClearState(userID int64)

	SetTemp(userID int64, key string, value interface{})
	GetTemp(userID int64, key string) (interface{}, bool)
	GetTempString(userID int64, key string) (string, bool)
	ClearTemp(userID int64, key string)

	Clear(userID int64)
	InProgress(userID int64) bool

	// Bind associates a state with the handler invoked for the next
	// text message while the user is in that state.
	Bind(st State, h tele.HandlerFunc)
	ManagerHandler(c tele.Context) error
}

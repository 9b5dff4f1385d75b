// Package session holds the per-user conversational state: the dialogue
// language, the ordered history of turns and the order awaiting
// confirmation, guarded by one explicit state enum.
package session

import (
	"github.com/cloudwego/eino/schema"

	"github.com/smokybot/orderagent/locale"
	"github.com/smokybot/orderagent/order"
)

// State is the single enumerated conversation state. PendingOrder is only
// meaningful in StateConfirmation.
type State string

const (
	StateAwaitingLanguage State = "awaiting_language"
	StateActive           State = "active"
	StateConfirmation     State = "confirmation"
)

// Session is one user's complete conversational state. Exactly one session
// per user exists at a time; starting over discards the previous one.
type Session struct {
	State        State
	Language     locale.Language
	History      []*schema.Message
	PendingOrder *order.Record
}

// New returns a fresh session awaiting a language choice.
func New() *Session {
	return &Session{State: StateAwaitingLanguage}
}

// Append adds turns to the history. Nil messages are dropped.
func (s *Session) Append(msgs ...*schema.Message) {
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		s.History = append(s.History, msg)
	}
}

// RollbackLast removes exactly the most recently appended turn. It restores
// history consistency after a failed completion call so the user can simply
// resend the message.
func (s *Session) RollbackLast() bool {
	if len(s.History) == 0 {
		return false
	}
	s.History = s.History[:len(s.History)-1]
	return true
}

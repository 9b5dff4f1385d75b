// Package transport abstracts the messaging platform: inbound events are
// delivered to the engine by the platform's own dispatch loop, and this
// package only covers the outbound side the engine depends on.
package transport

import (
	"context"
	"errors"
	"fmt"
)

// ErrMessageNotFound reports an edit or delete against a handle the
// platform no longer knows.
var ErrMessageNotFound = errors.New("transport: message not found")

// User identifies the person on the other end of the conversation, as
// tagged by the platform.
type User struct {
	ID       int64
	Username string
}

// Reference renders a human-readable handle for summaries: the username
// when the platform knows one, a deep link otherwise.
func (u User) Reference() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("tg://user?id=%d", u.ID)
}

// Button is one inline choice attached to an outbound message. Data is the
// opaque payload handed back on press.
type Button struct {
	Label string
	Data  string
}

// MessageRef is the platform's handle for a delivered message, used for
// later edits and deletion.
type MessageRef struct {
	ChatID    int64
	MessageID int64
}

// Messenger is the outbound side of the chat transport. Editing a message
// without buttons removes any buttons it carried.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string, buttons ...Button) (MessageRef, error)
	Edit(ctx context.Context, ref MessageRef, text string) error
	Delete(ctx context.Context, ref MessageRef) error
}

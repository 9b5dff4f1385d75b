package transport

import (
	"context"
	"sync"
)

// Sent is one outbound message as the Recorder saw it, kept current across
// edits and deletion.
type Sent struct {
	Ref     MessageRef
	ChatID  int64
	Text    string
	Buttons []Button
	Deleted bool
	Edits   int
}

// Recorder is an in-memory Messenger for tests and local runs: it records
// every delivery and mimics the platform's edit/delete semantics.
type Recorder struct {
	mu     sync.Mutex
	nextID int64
	sent   []*Sent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Send(ctx context.Context, chatID int64, text string, buttons ...Button) (MessageRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ref := MessageRef{ChatID: chatID, MessageID: r.nextID}
	r.sent = append(r.sent, &Sent{
		Ref:     ref,
		ChatID:  chatID,
		Text:    text,
		Buttons: buttons,
	})
	return ref, nil
}

func (r *Recorder) Edit(ctx context.Context, ref MessageRef, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range r.sent {
		if msg.Ref == ref && !msg.Deleted {
			msg.Text = text
			msg.Buttons = nil
			msg.Edits++
			return nil
		}
	}
	return ErrMessageNotFound
}

func (r *Recorder) Delete(ctx context.Context, ref MessageRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range r.sent {
		if msg.Ref == ref && !msg.Deleted {
			msg.Deleted = true
			return nil
		}
	}
	return ErrMessageNotFound
}

// Messages returns a snapshot of everything sent so far, in order.
func (r *Recorder) Messages() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sent, 0, len(r.sent))
	for _, msg := range r.sent {
		out = append(out, *msg)
	}
	return out
}

// Last returns the most recent non-deleted message to the given chat.
func (r *Recorder) Last(chatID int64) (Sent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sent) - 1; i >= 0; i-- {
		if r.sent[i].ChatID == chatID && !r.sent[i].Deleted {
			return *r.sent[i], true
		}
	}
	return Sent{}, false
}

var _ Messenger = (*Recorder)(nil)

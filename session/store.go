package session

import (
	"context"
	"sync"
)

// Store keeps sessions keyed by user identity. Implementations must be safe
// for concurrent use across different users; events for a single user are
// assumed to arrive serialized (see the engine's documentation).
type Store interface {
	Load(ctx context.Context, userID int64) (*Session, bool, error)
	Save(ctx context.Context, userID int64, sess *Session) error
	Remove(ctx context.Context, userID int64) error
}

// MemoryStore is the in-memory Store used in production: sessions are
// volatile and do not survive a process restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*Session)}
}

func (m *MemoryStore) Load(ctx context.Context, userID int64) (*Session, bool, error) {
	m.mu.RLock()
	sess, ok := m.sessions[userID]
	m.mu.RUnlock()
	return sess, ok, nil
}

func (m *MemoryStore) Save(ctx context.Context, userID int64, sess *Session) error {
	m.mu.Lock()
	m.sessions[userID] = sess
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, userID int64) error {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)

package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sweep the whole map at most this often
const sweepInterval = time.Minute

type entry struct {
	s        Session
	lastSeen time.Time
}

type memoryStore struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore drops sessions idle for longer than ttl. ttl <= 0 keeps
// them until the process exits.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *memoryStore) New(ctx context.Context) (string, Session) {
	id := uuid.NewString()
	s := Default()

	m.mu.Lock()
	now := m.now()
	m.sweepLocked(now)
	m.sessions[id] = &entry{s: s, lastSeen: now}
	m.mu.Unlock()

	return id, s
}

func (m *memoryStore) Get(ctx context.Context, id string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	now := m.now()
	if m.expired(e, now) {
		delete(m.sessions, id)
		return Session{}, false
	}
	e.lastSeen = now
	return e.s, true
}

func (m *memoryStore) Save(ctx context.Context, id string, s Session) {
	m.mu.Lock()
	m.sessions[id] = &entry{s: s, lastSeen: m.now()}
	m.mu.Unlock()
}

func (m *memoryStore) Reset(ctx context.Context, id string) Session {
	s := Default()

	m.mu.Lock()
	m.sessions[id] = &entry{s: s, lastSeen: m.now()}
	m.mu.Unlock()

	return s
}

func (m *memoryStore) expired(e *entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.lastSeen) > m.ttl
}

func (m *memoryStore) sweepLocked(now time.Time) {
	if m.ttl <= 0 || now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}
}

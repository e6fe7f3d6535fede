package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// sweepInterval is how often the janitor prunes expired sessions.
const sweepInterval = time.Minute

type entry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Entries expire after a fixed TTL;
// expired entries are dropped lazily on read and swept periodically by
// the janitor loop.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	done    chan bool
}

// NewMemoryStore creates a MemoryStore whose sessions live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		done:    make(chan bool),
	}
}

// Get returns the session for id, if present and not expired.
func (s *MemoryStore) Get(_ context.Context, id string) (Session, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.Destroy(context.Background(), id)
		return Session{}, false
	}
	return e.session, true
}

// Set stores the session under id and restarts its TTL.
func (s *MemoryStore) Set(_ context.Context, id string, sess Session) {
	s.mu.Lock()
	s.entries[id] = entry{session: sess, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

// Destroy removes the session for id. Destroying an absent session is a no-op.
func (s *MemoryStore) Destroy(_ context.Context, id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Run starts the janitor loop sweeping expired sessions. It blocks until
// Stop is called, so callers run it in a goroutine.
func (s *MemoryStore) Run() {
	log.Info().Msg("Starting session janitor...")
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping session janitor.")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// Stop halts the janitor loop.
func (s *MemoryStore) Stop() {
	s.done <- true
}

// sweep drops every expired entry.
func (s *MemoryStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()
}

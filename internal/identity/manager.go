package identity

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionEntry struct {
	sess     *Session
	lastSeen time.Time
}

// Manager hands out sessions keyed by opaque bearer tokens. Each token maps
// to its own durable store entry, so a token presented after a restart
// revives the session it belonged to.
//
// The in-memory map is a cache over the store: entries idle past the TTL are
// swept, and an authenticated session comes back through the store probe the
// next time its token shows up.
type Manager struct {
	mu       sync.Mutex
	store    Store
	dir      *Directory
	latency  time.Duration
	idleTTL  time.Duration
	sessions map[string]*sessionEntry
	now      func() time.Time
}

func NewManager(store Store, dir *Directory, latency time.Duration) *Manager {
	return &Manager{
		store:    store,
		dir:      dir,
		latency:  latency,
		idleTTL:  time.Hour,
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
}

// WithIdleTTL overrides how long an untouched session stays cached.
func (m *Manager) WithIdleTTL(ttl time.Duration) *Manager {
	m.idleTTL = ttl
	return m
}

func sessionKey(token string) string {
	return "session:" + token
}

// Issue creates a fresh, not yet authenticated session and its token.
func (m *Manager) Issue() (string, *Session) {
	token := uuid.NewString()
	sess := NewSession(m.store, m.dir, sessionKey(token), m.latency)

	m.mu.Lock()
	m.sessions[token] = &sessionEntry{sess: sess, lastSeen: m.now()}
	m.mu.Unlock()

	return token, sess
}

// Lookup resolves a token to its session. Unknown tokens get a probe session
// that checks the durable store; it is only retained when a persisted
// identity was actually found, so junk tokens do not accumulate.
func (m *Manager) Lookup(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	if _, err := uuid.Parse(token); err != nil {
		return nil, false
	}

	m.mu.Lock()
	if e, ok := m.sessions[token]; ok {
		e.lastSeen = m.now()
		m.mu.Unlock()
		return e.sess, true
	}
	m.mu.Unlock()

	sess := NewSession(m.store, m.dir, sessionKey(token), m.latency)
	if !sess.Authenticated() {
		return nil, false
	}

	m.mu.Lock()
	m.sessions[token] = &sessionEntry{sess: sess, lastSeen: m.now()}
	m.mu.Unlock()

	return sess, true
}

// Drop signs the token's session out and forgets it.
func (m *Manager) Drop(ctx context.Context, token string) {
	m.mu.Lock()
	e, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	var sess *Session
	if ok {
		sess = e.sess
	} else {
		sess = NewSession(m.store, m.dir, sessionKey(token), m.latency)
	}
	sess.SignOut(ctx)
}

// Prune evicts cached sessions untouched for longer than the idle TTL and
// returns how many were evicted. Only the cache entry goes; the durable
// record is left alone, so this is not a sign-out.
func (m *Manager) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.idleTTL)
	removed := 0
	for token, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// PruneLoop sweeps periodically until ctx is cancelled.
func (m *Manager) PruneLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Prune(); n > 0 {
				log.Printf("evicted %d idle sessions from cache", n)
			}
		}
	}
}

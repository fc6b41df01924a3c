package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the in-memory session store. Sessions expire after ttl of
// inactivity and are reaped lazily on access plus periodically via
// PurgeExpired.
type Manager struct {
	ttl   time.Duration
	log   Logger
	gauge SessionsGauge

	mu       sync.RWMutex
	sessions map[string]*Session

	// now is swappable for tests
	now func() time.Time
}

// NewManager creates a session manager. gauge may be nil.
func NewManager(ttl time.Duration, log Logger, gauge SessionsGauge) *Manager {
	return &Manager{
		ttl:      ttl,
		log:      log,
		gauge:    gauge,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a new empty session and returns it.
func (m *Manager) Create() *Session {
	s := &Session{
		id:       uuid.NewString(),
		lastSeen: m.now(),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.setGauge(count)
	m.log.Info("Session created: id=%s, active=%d", s.id, count)
	return s
}

// Get returns the session for id, refreshing its idle timer. Unknown and
// expired IDs both yield ErrSessionNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	now := m.now()
	if s.expired(now, m.ttl) {
		m.Delete(id)
		m.log.Warn("Session expired on access: id=%s", id)
		return nil, ErrSessionNotFound
	}

	s.touch(now)
	return s, nil
}

// Delete removes a session, if present.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mu.Unlock()

	if ok {
		m.setGauge(count)
	}
}

// PurgeExpired drops every session idle for longer than the TTL and returns
// how many were removed. Intended to run on a ticker.
func (m *Manager) PurgeExpired() int {
	now := m.now()

	m.mu.Lock()
	var removed int
	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			delete(m.sessions, id)
			removed++
		}
	}
	count := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		m.setGauge(count)
		m.log.Info("Purged %d expired sessions, active=%d", removed, count)
	}
	return removed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) setGauge(count int) {
	if m.gauge == nil {
		return
	}
	m.gauge.Set(float64(count))
}

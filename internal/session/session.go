// Package session tracks per-client ordering state: the cart, the draft
// submitter fields, and the in-flight submission guard. Sessions are
// created on first contact, reset on a committed order, and swept away
// after a period of inactivity.
package session

import (
	"context"
	"sync"
	"time"

	"prato/internal/cart"
	"prato/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session holds the state of one client between requests.
type Session struct {
	ID   uuid.UUID
	Cart *cart.Cart

	mu        sync.Mutex
	submitter model.Submitter
	inFlight  bool
	lastSeen  time.Time
}

// Submitter returns the current draft submitter fields.
func (s *Session) Submitter() model.Submitter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitter
}

// SetSubmitter replaces the draft submitter fields.
func (s *Session) SetSubmitter(sub model.Submitter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitter = sub
}

// ResetSubmitter clears the draft fields after a committed order.
func (s *Session) ResetSubmitter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitter = model.Submitter{}
}

// BeginSubmit marks a submission as in flight. It returns false if one is
// already running, so a session never has two overlapping submissions.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// EndSubmit releases the in-flight guard.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) seenBefore(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// Manager is an in-memory session store keyed by session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewManager creates a session manager. Sessions idle longer than ttl are
// removed by Sweep.
func NewManager(ttl time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger.With().Str("component", "session-manager").Logger(),
	}
}

// Get returns the session with the given id, refreshing its idle timer,
// or nil if no such session exists.
func (m *Manager) Get(id uuid.UUID) *Session {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	sess.touch(time.Now())
	return sess
}

// Create allocates a fresh session with an empty cart.
func (m *Manager) Create() *Session {
	sess := &Session{
		ID:       uuid.New(),
		Cart:     cart.New(),
		lastSeen: time.Now(),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", sess.ID.String()).Msg("session created")
	return sess
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// sweep removes sessions idle longer than the ttl.
func (m *Manager) sweep(now time.Time) {
	cutoff := now.Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		if sess.seenBefore(cutoff) {
			delete(m.sessions, id)
			m.logger.Debug().Str("session_id", id.String()).Msg("session expired")
		}
	}
}

// Sweep periodically expires idle sessions until ctx is cancelled.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.sweep(now)
		}
	}
}

// Package store keeps all live order sessions in memory. There is no
// persistence: restarting the server logs everyone out.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/abarrotes/pos/internal/domain"
)

const (
	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 1 * time.Minute
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore implements in-memory session storage. It also owns the
// per-session timers used for the simulated delays, so destroying a session
// always cancels its pending timer and a stale callback can never fire.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session // sessionID -> session
	timers   map[string]*time.Timer     // sessionID -> pending auto-transition

	ttl         time.Duration
	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewSessionStore creates a store evicting sessions idle longer than ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	s := &SessionStore{
		sessions:    make(map[string]*domain.Session),
		timers:      make(map[string]*time.Timer),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *SessionStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictIdle()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *SessionStore) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastActive.Before(cutoff) {
			s.cancelTimerLocked(id)
			delete(s.sessions, id)
		}
	}
}

// Put registers a new session.
func (s *SessionStore) Put(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns a deep copy of the session. Mutations go through Update.
func (s *SessionStore) Get(id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Update applies fn to the session under the write lock. LastActive is
// touched only when fn succeeds, so rejected operations do not keep an idle
// session alive.
func (s *SessionStore) Update(id string, fn func(*domain.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return err
	}
	sess.LastActive = time.Now()
	return nil
}

// Delete destroys a session and cancels its pending timer.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	s.cancelTimerLocked(id)
	delete(s.sessions, id)
	return nil
}

// Schedule runs fn after d on behalf of the session, replacing any timer
// already pending for it. The timer is cancelled when the session is deleted.
func (s *SessionStore) Schedule(id string, d time.Duration, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	s.cancelTimerLocked(id)
	s.timers[id] = time.AfterFunc(d, func() {
		s.clearTimer(id)
		fn()
	})
	return nil
}

// CancelTimer drops the pending timer for the session, if any.
func (s *SessionStore) CancelTimer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimerLocked(id)
}

func (s *SessionStore) cancelTimerLocked(id string) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *SessionStore) clearTimer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background cleanup, cancels all timers and waits for the
// cleanup goroutine to finish.
func (s *SessionStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.timers {
		s.cancelTimerLocked(id)
	}
	return nil
}

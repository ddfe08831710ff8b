// Package session holds server-side login sessions in memory with TTL
// and size-based eviction.
package session

import (
	"container/list"
	"sync"
	"time"
)

// Session is the server-side state bound to a session cookie.
type Session struct {
	Token     string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Store keeps sessions in memory, evicting the least recently used
// entry when the store is full.
type Store struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List

	stopCleanup chan struct{}
	cleanupDone chan struct{}
}

// NewStore creates a session store with the given capacity and TTL.
func NewStore(maxSize int, ttl time.Duration) *Store {
	return &Store{
		maxSize:     maxSize,
		ttl:         ttl,
		items:       make(map[string]*list.Element),
		lru:         list.New(),
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
}

// Create registers a new session for the user and returns it.
func (s *Store) Create(token, userID, email string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if elem, exists := s.items[token]; exists {
		elem.Value = sess
		s.lru.MoveToFront(elem)
		return sess
	}

	elem := s.lru.PushFront(sess)
	s.items[token] = elem

	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
	return sess
}

// Get returns the session for a token if it exists and has not expired.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, exists := s.items[token]
	if !exists {
		return Session{}, false
	}

	sess := elem.Value.(Session)
	if time.Now().After(sess.ExpiresAt) {
		s.removeElement(elem)
		return Session{}, false
	}

	s.lru.MoveToFront(elem)
	return sess, true
}

// Renew extends a live session to a full TTL from now. Sessions past
// the halfway point of their lifetime are the intended callers; renewing
// earlier is harmless.
func (s *Store) Renew(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, exists := s.items[token]
	if !exists {
		return Session{}, false
	}

	sess := elem.Value.(Session)
	if time.Now().After(sess.ExpiresAt) {
		s.removeElement(elem)
		return Session{}, false
	}

	sess.ExpiresAt = time.Now().Add(s.ttl)
	elem.Value = sess
	s.lru.MoveToFront(elem)
	return sess, true
}

// Delete removes a session.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, exists := s.items[token]; exists {
		s.removeElement(elem)
	}
}

// Size returns the current number of sessions in the store.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) removeElement(elem *list.Element) {
	sess := elem.Value.(Session)
	delete(s.items, sess.Token)
	s.lru.Remove(elem)
}

// CleanExpired removes all expired sessions and returns how many were removed.
func (s *Store) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var toRemove []*list.Element
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(Session).ExpiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		s.removeElement(elem)
	}
	return len(toRemove)
}

// StartCleanup begins periodic removal of expired sessions.
func (s *Store) StartCleanup(interval time.Duration) {
	go func() {
		defer close(s.cleanupDone)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.CleanExpired()
			case <-s.stopCleanup:
				return
			}
		}
	}()
}

// StopCleanup gracefully stops the cleanup routine started by StartCleanup.
func (s *Store) StopCleanup() {
	close(s.stopCleanup)
	<-s.cleanupDone
}

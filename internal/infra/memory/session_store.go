package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellness-quiz-service/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionStore.
type SessionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[string]session
}

type session struct {
	userID    int64
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]session),
	}
}

func (s *SessionStore) Create(_ context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{userID: userID, expiresAt: s.clock().Add(s.ttl)}
	return token, nil
}

func (s *SessionStore) Get(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, domain.ErrUnauthenticated
	}
	if !s.clock().Before(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, domain.ErrUnauthenticated
	}
	return sess.userID, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

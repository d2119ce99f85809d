package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ainadeul/internal/auth/models"
	id "ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// InMemorySessionStore is the single-process session store used when Redis is
// not configured. Expired sessions stay in the map; IsActive decides liveness.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[id.SessionID]models.Session
}

func NewInMemory() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: map[id.SessionID]models.Session{}}
}

func (s *InMemorySessionStore) Create(_ context.Context, session *models.Session) error {
	if session == nil {
		return errors.New("session is required")
	}
	s.mu.Lock()
	s.sessions[session.ID] = *session
	s.mu.Unlock()
	return nil
}

func (s *InMemorySessionStore) FindByID(_ context.Context, sessionID id.SessionID) (*models.Session, error) {
	s.mu.RLock()
	stored, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, missing(sessionID)
	}
	return &stored, nil
}

// Revoke reports whether this call did the revoking.
func (s *InMemorySessionStore) Revoke(_ context.Context, sessionID id.SessionID, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.sessions[sessionID]
	if !ok {
		return false, missing(sessionID)
	}
	if !stored.Revoke(at) {
		return false, nil
	}
	s.sessions[sessionID] = stored
	return true, nil
}

func missing(sessionID id.SessionID) error {
	return fmt.Errorf("session %s: %w", sessionID, sentinel.ErrNotFound)
}

package user

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ainadeul/internal/auth/models"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// Error Contract:
// - FindByID / FindByEmail return sentinel.ErrNotFound when no user matches
// - Create returns sentinel.ErrConflict when the email is taken
type InMemoryUserStore struct {
	mu      sync.RWMutex
	users   map[domain.UserID]*models.User
	byEmail map[string]domain.UserID
}

func NewInMemory() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:   make(map[domain.UserID]*models.User),
		byEmail: make(map[string]domain.UserID),
	}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, taken := s.byEmail[key]; taken {
		return fmt.Errorf("email already registered: %w", sentinel.ErrConflict)
	}
	cp := *user
	s.users[user.ID] = &cp
	s.byEmail[key] = user.ID
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, userID domain.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if userID, ok := s.byEmail[strings.ToLower(email)]; ok {
		cp := *s.users[userID]
		return &cp, nil
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

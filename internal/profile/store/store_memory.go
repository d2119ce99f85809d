package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"ainadeul/internal/profile/models"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// InMemoryStore keeps profiles, bookmarks and visits in memory for tests and local runs.
// Every read returns copies so callers cannot mutate stored state.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[domain.UserID]*models.Profile
	saved    map[domain.UserID][]models.SavedPlace
	visits   map[domain.UserID][]models.Visit
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		profiles: make(map[domain.UserID]*models.Profile),
		saved:    make(map[domain.UserID][]models.SavedPlace),
		visits:   make(map[domain.UserID][]models.Visit),
	}
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID domain.UserID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
	}
	return p.Clone(), nil
}

// Create inserts a profile unless one already exists, returning the stored profile.
func (s *InMemoryStore) Create(_ context.Context, profile *models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.profiles[profile.UserID]; ok {
		return existing.Clone(), nil
	}
	s.profiles[profile.UserID] = profile.Clone()
	return profile.Clone(), nil
}

func (s *InMemoryStore) UpdateHome(_ context.Context, userID domain.UserID, home domain.Coordinate, address string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
	}
	p.Home = &home
	p.Address = address
	p.UpdatedAt = at
	return nil
}

func (s *InMemoryStore) AddChild(_ context.Context, userID domain.UserID, child models.ChildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
	}
	p.Children = append(p.Children, child)
	p.UpdatedAt = child.CreatedAt
	return nil
}

func (s *InMemoryStore) DeleteChild(_ context.Context, userID domain.UserID, childID domain.ChildID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
	}
	idx := slices.IndexFunc(p.Children, func(c models.ChildRecord) bool { return c.ID == childID })
	if idx < 0 {
		return fmt.Errorf("child not found: %w", sentinel.ErrNotFound)
	}
	p.Children = slices.Delete(p.Children, idx, idx+1)
	return nil
}

// ToggleSavedPlace flips the bookmark and reports whether the place is saved afterwards.
func (s *InMemoryStore) ToggleSavedPlace(_ context.Context, userID domain.UserID, placeID domain.PlaceID, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := s.saved[userID]
	idx := slices.IndexFunc(saved, func(sp models.SavedPlace) bool { return sp.PlaceID == placeID })
	if idx >= 0 {
		s.saved[userID] = slices.Delete(saved, idx, idx+1)
		return false, nil
	}
	s.saved[userID] = append(saved, models.SavedPlace{PlaceID: placeID, SavedAt: at})
	return true, nil
}

// ListSavedPlaces returns bookmarks newest first.
func (s *InMemoryStore) ListSavedPlaces(_ context.Context, userID domain.UserID) ([]models.SavedPlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.saved[userID])
	slices.SortStableFunc(out, func(a, b models.SavedPlace) int { return b.SavedAt.Compare(a.SavedAt) })
	return out, nil
}

func (s *InMemoryStore) AddVisit(_ context.Context, visit models.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits[visit.UserID] = append(s.visits[visit.UserID], visit)
	return nil
}

// ListVisits returns visits most recent visit date first.
func (s *InMemoryStore) ListVisits(_ context.Context, userID domain.UserID) ([]models.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.visits[userID])
	slices.SortStableFunc(out, func(a, b models.Visit) int {
		if c := b.VisitedOn.Compare(a.VisitedOn); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

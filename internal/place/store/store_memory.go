package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"ainadeul/internal/place/models"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// InMemoryStore holds places in a map. It backs development runs without a
// database and the service tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	places map[domain.PlaceID]*models.Place
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{places: make(map[domain.PlaceID]*models.Place)}
}

// Save inserts or replaces a place with all of its side records.
func (s *InMemoryStore) Save(_ context.Context, place *models.Place) error {
	if place == nil {
		return fmt.Errorf("place is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[place.ID] = clonePlace(place)
	return nil
}

// ListActive returns active places ordered by name.
func (s *InMemoryStore) ListActive(_ context.Context) ([]*models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Place, 0, len(s.places))
	for _, p := range s.places {
		if p.IsActive {
			out = append(out, clonePlace(p))
		}
	}
	slices.SortFunc(out, func(a, b *models.Place) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, placeID domain.PlaceID) (*models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.places[placeID]
	if !ok {
		return nil, fmt.Errorf("place not found: %w", sentinel.ErrNotFound)
	}
	return clonePlace(p), nil
}

func (s *InMemoryStore) Exists(_ context.Context, placeID domain.PlaceID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.places[placeID]
	return ok, nil
}

func clonePlace(p *models.Place) *models.Place {
	cp := *p
	cp.Hours = maps.Clone(p.Hours)
	cp.Suitability = maps.Clone(p.Suitability)
	cp.BlogMentions = slices.Clone(p.BlogMentions)
	if p.Details != nil {
		d := *p.Details
		d.Features = slices.Clone(p.Details.Features)
		cp.Details = &d
	}
	if p.Amenities != nil {
		a := *p.Amenities
		cp.Amenities = &a
	}
	if p.Scores != nil {
		sc := *p.Scores
		cp.Scores = &sc
	}
	return &cp
}

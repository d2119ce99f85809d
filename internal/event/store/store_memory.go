package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"ainadeul/internal/event/models"
	"ainadeul/pkg/domain"
)

// InMemoryStore holds events and organizers in maps. Organizer and place
// summaries are stored with the event as given.
type InMemoryStore struct {
	mu         sync.RWMutex
	events     map[domain.EventID]*models.Event
	organizers map[domain.OrganizerID]models.Organizer
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		events:     make(map[domain.EventID]*models.Event),
		organizers: make(map[domain.OrganizerID]models.Organizer),
	}
}

func (s *InMemoryStore) SaveOrganizer(_ context.Context, org models.Organizer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organizers[org.ID] = org
	return nil
}

func (s *InMemoryStore) Save(_ context.Context, event *models.Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = cloneEvent(event)
	return nil
}

// ListByStatus returns events with the given status ordered by start date.
func (s *InMemoryStore) ListByStatus(_ context.Context, status models.Status) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.Status == status {
			out = append(out, cloneEvent(e))
		}
	}
	slices.SortFunc(out, func(a, b *models.Event) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// ListOrganizers returns every organizer ordered by name.
func (s *InMemoryStore) ListOrganizers(_ context.Context) ([]models.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Organizer, 0, len(s.organizers))
	for _, o := range s.organizers {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b models.Organizer) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func cloneEvent(e *models.Event) *models.Event {
	c := *e
	if e.EndDate != nil {
		end := *e.EndDate
		c.EndDate = &end
	}
	if e.TargetAgeMin != nil {
		v := *e.TargetAgeMin
		c.TargetAgeMin = &v
	}
	if e.TargetAgeMax != nil {
		v := *e.TargetAgeMax
		c.TargetAgeMax = &v
	}
	if e.Organizer != nil {
		org := *e.Organizer
		c.Organizer = &org
	}
	if e.Place != nil {
		p := *e.Place
		c.Place = &p
	}
	return &c
}

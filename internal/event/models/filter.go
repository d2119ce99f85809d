package models

import (
	"strconv"
	"strings"
	"time"

	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
)

type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabOngoing  Tab = "ongoing"
)

// all is the selector value meaning no restriction.
const all = "all"

// Filter narrows an event listing to one tab.
type Filter struct {
	Tab             Tab
	OrganizerID     *domain.OrganizerID
	Type            string
	TargetAgeMonths *int
}

// Status is the stored status a tab draws from.
func (f Filter) Status() Status {
	if f.Tab == TabOngoing {
		return StatusOngoing
	}
	return StatusUpcoming
}

// ListRequest is the raw query of GET /events.
type ListRequest struct {
	Tab         string
	OrganizerID string
	EventType   string
	TargetAge   string
}

func (r *ListRequest) Sanitize() {
	for _, f := range []*string{&r.Tab, &r.OrganizerID, &r.EventType, &r.TargetAge} {
		*f = strings.TrimSpace(*f)
		if *f == all {
			*f = ""
		}
	}
}

func (r *ListRequest) ToFilter() (Filter, error) {
	f := Filter{Tab: TabUpcoming, Type: r.EventType}
	switch Tab(r.Tab) {
	case "", TabUpcoming:
	case TabOngoing:
		f.Tab = TabOngoing
	default:
		return Filter{}, dErrors.New(dErrors.CodeValidation, "invalid tab: "+strconv.Quote(r.Tab))
	}
	if r.OrganizerID != "" {
		id, err := domain.ParseOrganizerID(r.OrganizerID)
		if err != nil {
			return Filter{}, err
		}
		f.OrganizerID = &id
	}
	if r.TargetAge != "" {
		months, err := strconv.Atoi(r.TargetAge)
		if err != nil || months < 0 {
			return Filter{}, dErrors.New(dErrors.CodeValidation, "invalid target_age: "+strconv.Quote(r.TargetAge))
		}
		f.TargetAgeMonths = &months
	}
	return f, nil
}

// Match reports whether e belongs in the listing on the given day. today
// must come from Date.
func (f Filter) Match(e *Event, today time.Time) bool {
	switch f.Tab {
	case TabOngoing:
		if e.Status != StatusOngoing || e.StartDate.After(today) || e.EndDate == nil || e.EndDate.Before(today) {
			return false
		}
	default:
		if e.Status != StatusUpcoming || e.StartDate.Before(today) {
			return false
		}
	}
	if f.OrganizerID != nil && (e.Organizer == nil || e.Organizer.ID != *f.OrganizerID) {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if age := f.TargetAgeMonths; age != nil {
		if e.TargetAgeMin != nil && *e.TargetAgeMin > *age {
			return false
		}
		if e.TargetAgeMax != nil && *e.TargetAgeMax < *age {
			return false
		}
	}
	return true
}

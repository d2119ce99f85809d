package models

import (
	"time"

	"ainadeul/pkg/domain"
)

// Profile is a parent's account-level data: where they start outings from and
// which children they plan for.
type Profile struct {
	UserID    domain.UserID
	Home      *domain.Coordinate
	Address   string
	Children  []ChildRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChildRecord is a registered child. Only year and month of birth are stored.
type ChildRecord struct {
	ID         domain.ChildID
	Nickname   string
	BirthYear  int
	BirthMonth int
	CreatedAt  time.Time
}

// Child returns the value the age engine works with.
func (c ChildRecord) Child() domain.Child {
	return domain.Child{BirthYear: c.BirthYear, BirthMonth: c.BirthMonth}
}

// DomainChildren projects the registered children onto the age engine type.
func (p *Profile) DomainChildren() []domain.Child {
	if p == nil {
		return nil
	}
	out := make([]domain.Child, 0, len(p.Children))
	for _, c := range p.Children {
		out = append(out, c.Child())
	}
	return out
}

// NeedsChildInfo is true while no child is registered.
func (p *Profile) NeedsChildInfo() bool {
	return p == nil || len(p.Children) == 0
}

// Clone returns a deep copy safe to hand out of a store.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Home != nil {
		home := *p.Home
		cp.Home = &home
	}
	cp.Children = append([]ChildRecord(nil), p.Children...)
	return &cp
}

// SavedPlace is a bookmark.
type SavedPlace struct {
	PlaceID domain.PlaceID
	SavedAt time.Time
}

// Visit records an outing a family made.
type Visit struct {
	ID        domain.VisitID
	UserID    domain.UserID
	PlaceID   domain.PlaceID
	VisitedOn time.Time
	Rating    int // 0 when not rated, otherwise 1-5
	Memo      string
	CreatedAt time.Time
}

// ActivityType names a profile change published to the activity stream.
type ActivityType string

const (
	ActivityChildAdded    ActivityType = "child_added"
	ActivityChildRemoved  ActivityType = "child_removed"
	ActivityPlaceSaved    ActivityType = "place_saved"
	ActivityPlaceUnsaved  ActivityType = "place_unsaved"
	ActivityVisitRecorded ActivityType = "visit_recorded"
	ActivityHomeUpdated   ActivityType = "home_updated"
)

// ActivityEvent is the payload written to the activity topic.
type ActivityEvent struct {
	Type       ActivityType `json:"type"`
	UserID     string       `json:"user_id"`
	SubjectID  string       `json:"subject_id,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// Package domain holds the pure building blocks shared by every feature:
// typed identifiers, the age engine and the geo engine.
package domain

import (
	"github.com/google/uuid"

	dErrors "ainadeul/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a PlaceID where a UserID is expected.
type (
	UserID      uuid.UUID
	SessionID   uuid.UUID
	ChildID     uuid.UUID
	PlaceID     uuid.UUID
	EventID     uuid.UUID
	OrganizerID uuid.UUID
	VisitID     uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, token claims).

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseSessionID(s string) (SessionID, error) {
	id, err := parseUUID(s, "session ID")
	return SessionID(id), err
}

func ParseChildID(s string) (ChildID, error) {
	id, err := parseUUID(s, "child ID")
	return ChildID(id), err
}

func ParsePlaceID(s string) (PlaceID, error) {
	id, err := parseUUID(s, "place ID")
	return PlaceID(id), err
}

func ParseEventID(s string) (EventID, error) {
	id, err := parseUUID(s, "event ID")
	return EventID(id), err
}

func ParseOrganizerID(s string) (OrganizerID, error) {
	id, err := parseUUID(s, "organizer ID")
	return OrganizerID(id), err
}

// String methods - for logging and JSON.

func (id UserID) String() string      { return uuid.UUID(id).String() }
func (id SessionID) String() string   { return uuid.UUID(id).String() }
func (id ChildID) String() string     { return uuid.UUID(id).String() }
func (id PlaceID) String() string     { return uuid.UUID(id).String() }
func (id EventID) String() string     { return uuid.UUID(id).String() }
func (id OrganizerID) String() string { return uuid.UUID(id).String() }
func (id VisitID) String() string     { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id UserID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ChildID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id PlaceID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id OrganizerID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed IDs render as plain UUID strings in JSON payloads.
func (id UserID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }
func (id ChildID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id PlaceID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id EventID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id OrganizerID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id VisitID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }

// UnmarshalText accepts plain UUID strings, so cached JSON round-trips.
func (id *PlaceID) UnmarshalText(b []byte) error {
	parsed, err := uuid.ParseBytes(b)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid place ID format")
	}
	*id = PlaceID(parsed)
	return nil
}

func (id *OrganizerID) UnmarshalText(b []byte) error {
	parsed, err := uuid.ParseBytes(b)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid organizer ID format")
	}
	*id = OrganizerID(parsed)
	return nil
}

// parseUUID is the shared validation logic. Nil UUIDs are rejected: no
// record in this system is ever keyed by the zero UUID.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return id, nil
}

// Package sentinel holds the store level errors services translate into
// domain errors.
package sentinel

import "errors"

var (
	// ErrNotFound is returned for a missing place, event, user, session, child or saved row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique key (email, saved place) already exists.
	ErrConflict = errors.New("conflict")
)

package models

import (
	"time"

	"ainadeul/pkg/domain"
)

// User is a parent account. Email is stored lower-cased.
type User struct {
	ID           domain.UserID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is one signed-in device. Tokens carry the session id so sign-out
// takes effect before the token expires.
type Session struct {
	ID          domain.SessionID
	UserID      domain.UserID
	DeviceName  string
	DeviceClass string
	ClientIP    string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	RevokedAt   *time.Time
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsActive reports whether the session is neither revoked nor expired at now.
func (s *Session) IsActive(now time.Time) bool {
	return !s.IsRevoked() && now.Before(s.ExpiresAt)
}

// Revoke marks the session revoked. It returns false if it already was.
func (s *Session) Revoke(at time.Time) bool {
	if s.IsRevoked() {
		return false
	}
	s.RevokedAt = &at
	return true
}

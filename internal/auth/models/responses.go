package models

import (
	"time"

	profilemodels "ainadeul/internal/profile/models"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{ID: u.ID.String(), Email: u.Email, CreatedAt: u.CreatedAt}
}

// SignInResponse carries the bearer token for subsequent requests.
type SignInResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// Snapshot is the read-only view of a signed-in session handed to callers.
type Snapshot struct {
	User           *User
	Session        *Session
	Profile        *profilemodels.Profile
	NeedsChildInfo bool
}

type SessionResponse struct {
	User           UserResponse                  `json:"user"`
	SessionID      string                        `json:"session_id"`
	Device         string                        `json:"device,omitempty"`
	ExpiresAt      time.Time                     `json:"expires_at"`
	Profile        profilemodels.ProfileResponse `json:"profile"`
	NeedsChildInfo bool                          `json:"needs_child_info"`
}

func NewSessionResponse(snap *Snapshot, asOf time.Time) SessionResponse {
	return SessionResponse{
		User:           NewUserResponse(snap.User),
		SessionID:      snap.Session.ID.String(),
		Device:         snap.Session.DeviceName,
		ExpiresAt:      snap.Session.ExpiresAt,
		Profile:        profilemodels.NewProfileResponse(snap.Profile, asOf),
		NeedsChildInfo: snap.NeedsChildInfo,
	}
}

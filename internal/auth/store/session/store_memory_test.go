package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ainadeul/internal/auth/models"
	id "ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
	"ainadeul/pkg/testutil"
)

type InMemorySessionStoreSuite struct {
	suite.Suite
	store *InMemorySessionStore
	ctx   context.Context
	now   time.Time
}

func TestInMemorySessionStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemorySessionStoreSuite))
}

func (s *InMemorySessionStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func (s *InMemorySessionStoreSuite) newSession() *models.Session {
	return &models.Session{
		ID:          id.SessionID(uuid.New()),
		UserID:      id.UserID(uuid.New()),
		DeviceName:  "Chrome on macOS",
		DeviceClass: "desktop",
		CreatedAt:   s.now,
		ExpiresAt:   s.now.Add(24 * time.Hour),
	}
}

func (s *InMemorySessionStoreSuite) TestCreateAndFind() {
	session := s.newSession()
	s.Require().NoError(s.store.Create(s.ctx, session))

	found, err := s.store.FindByID(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.UserID, found.UserID)
	s.Equal("Chrome on macOS", found.DeviceName)
	s.True(found.IsActive(s.now))

	// returned copies do not alias stored state
	found.Revoke(s.now)
	again, err := s.store.FindByID(s.ctx, session.ID)
	s.Require().NoError(err)
	s.False(again.IsRevoked())
}

func (s *InMemorySessionStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(s.ctx, id.SessionID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySessionStoreSuite) TestRevoke() {
	session := s.newSession()
	s.Require().NoError(s.store.Create(s.ctx, session))

	revoked, err := s.store.Revoke(s.ctx, session.ID, s.now.Add(time.Minute))
	s.Require().NoError(err)
	s.True(revoked)

	revoked, err = s.store.Revoke(s.ctx, session.ID, s.now.Add(2*time.Minute))
	s.Require().NoError(err)
	s.False(revoked, "second revoke is a no-op")

	found, err := s.store.FindByID(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Minute), *found.RevokedAt)
	s.False(found.IsActive(s.now.Add(time.Hour)))
}

func (s *InMemorySessionStoreSuite) TestRevokeMissing() {
	_, err := s.store.Revoke(s.ctx, id.SessionID(uuid.New()), s.now)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func TestConcurrentRevokeHasOneWinner(t *testing.T) {
	store := NewInMemory()
	now := time.Now()
	session := &models.Session{ID: id.SessionID(uuid.New()), UserID: id.UserID(uuid.New()), CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Create(context.Background(), session))

	// losers report a conflict so the tally separates them from the winner
	result := testutil.RunConcurrent(20, func(int) error {
		revoked, err := store.Revoke(context.Background(), session.ID, now)
		if err != nil {
			return err
		}
		if !revoked {
			return sentinel.ErrConflict
		}
		return nil
	})
	assert.Equal(t, int32(1), result.Successes)
	assert.Equal(t, int32(19), result.Conflicts)
}

//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"ainadeul/internal/auth/models"
	id "ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
	"ainadeul/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisStore
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.Redis(s.T())
	s.store = NewRedis(s.redis.Client)
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.Flush(s.ctx))
}

func (s *RedisStoreSuite) TestRoundTripAndRevoke() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	session := &models.Session{
		ID:          id.SessionID(uuid.New()),
		UserID:      id.UserID(uuid.New()),
		DeviceName:  "Safari on iOS",
		DeviceClass: "mobile",
		ClientIP:    "203.0.113.7",
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
	s.Require().NoError(s.store.Create(s.ctx, session))

	found, err := s.store.FindByID(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.DeviceName, found.DeviceName)
	s.True(found.ExpiresAt.Equal(session.ExpiresAt))

	revoked, err := s.store.Revoke(s.ctx, session.ID, now.Add(time.Minute))
	s.Require().NoError(err)
	s.True(revoked)

	revoked, err = s.store.Revoke(s.ctx, session.ID, now.Add(2*time.Minute))
	s.Require().NoError(err)
	s.False(revoked)

	found, err = s.store.FindByID(s.ctx, session.ID)
	s.Require().NoError(err)
	s.True(found.IsRevoked())
}

func (s *RedisStoreSuite) TestMissing() {
	_, err := s.store.FindByID(s.ctx, id.SessionID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.Revoke(s.ctx, id.SessionID(uuid.New()), time.Now())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

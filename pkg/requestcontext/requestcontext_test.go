package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	id "ainadeul/pkg/domain"
)

func TestNow(t *testing.T) {
	t.Run("returns pinned time", func(t *testing.T) {
		pinned := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, pinned, Now(WithTime(context.Background(), pinned)))
	})

	t.Run("falls back to wall clock", func(t *testing.T) {
		assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Second)
	})
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	assert.True(t, UserID(ctx).IsNil())
	assert.True(t, SessionID(ctx).IsNil())

	userID := id.UserID(uuid.New())
	sessionID := id.SessionID(uuid.New())
	ctx = WithSessionID(WithUserID(ctx, userID), sessionID)
	assert.Equal(t, userID, UserID(ctx))
	assert.Equal(t, sessionID, SessionID(ctx))
}

func TestClientMetadata(t *testing.T) {
	ctx := WithClientMetadata(context.Background(), "203.0.113.7", "curl/8.0")
	assert.Equal(t, "203.0.113.7", ClientIP(ctx))
	assert.Equal(t, "curl/8.0", UserAgent(ctx))
	assert.Equal(t, "unknown", DeviceClass(ctx))
	assert.Equal(t, "mobile", DeviceClass(WithDeviceClass(ctx, "mobile")))
	assert.Empty(t, RequestID(ctx))
	assert.Equal(t, "req-1", RequestID(WithRequestID(ctx, "req-1")))
}

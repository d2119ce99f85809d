package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ainadeul/internal/auth/models"
	id "ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// Each session is a hash under ainadeul:session:<id>; ainadeul:user:<id>:sessions
// indexes the live ones per user.
const keyNamespace = "ainadeul:"

// revokedRetention keeps a revoked session readable for a while so a
// replayed token is rejected as revoked rather than unknown.
const revokedRetention = time.Hour

// revokeScript returns -1 for a missing session, 0 if it was already revoked
// and 1 when this call revoked it.
var revokeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
if redis.call('HSETNX', KEYS[1], 'revoked_at', ARGV[1]) == 0 then
	return 0
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 or ttl > tonumber(ARGV[2]) then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
redis.call('SREM', KEYS[2], ARGV[3])
return 1
`)

// record mirrors the hash fields. Timestamps are unix microseconds; a zero
// RevokedAt means the field is absent.
type record struct {
	UserID      string `redis:"user_id"`
	DeviceName  string `redis:"device_name"`
	DeviceClass string `redis:"device_class"`
	ClientIP    string `redis:"client_ip"`
	CreatedAt   int64  `redis:"created_at"`
	ExpiresAt   int64  `redis:"expires_at"`
	RevokedAt   int64  `redis:"revoked_at"`
}

func (r record) session(sessionID id.SessionID) (*models.Session, error) {
	userID, err := id.ParseUserID(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	s := &models.Session{
		ID:          sessionID,
		UserID:      userID,
		DeviceName:  r.DeviceName,
		DeviceClass: r.DeviceClass,
		ClientIP:    r.ClientIP,
		CreatedAt:   time.UnixMicro(r.CreatedAt).UTC(),
		ExpiresAt:   time.UnixMicro(r.ExpiresAt).UTC(),
	}
	if r.RevokedAt != 0 {
		at := time.UnixMicro(r.RevokedAt).UTC()
		s.RevokedAt = &at
	}
	return s, nil
}

func fields(s *models.Session) []any {
	out := []any{
		"user_id", s.UserID.String(),
		"device_name", s.DeviceName,
		"device_class", s.DeviceClass,
		"client_ip", s.ClientIP,
		"created_at", s.CreatedAt.UnixMicro(),
		"expires_at", s.ExpiresAt.UnixMicro(),
	}
	if s.RevokedAt != nil {
		out = append(out, "revoked_at", s.RevokedAt.UnixMicro())
	}
	return out
}

func sessionKey(sessionID id.SessionID) string {
	return keyNamespace + "session:" + sessionID.String()
}

func userIndexKey(userID id.UserID) string {
	return keyNamespace + "user:" + userID.String() + ":sessions"
}

// RedisStore keeps sessions in Redis. Keys expire with the session.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, session *models.Session) error {
	if session == nil {
		return errors.New("session is required")
	}
	key := sessionKey(session.ID)
	index := userIndexKey(session.UserID)
	expireAt := session.ExpiresAt

	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, fields(session)...)
		p.ExpireAt(ctx, key, expireAt)
		p.SAdd(ctx, index, session.ID.String())
		// Sessions share one lifetime, so the newest one bounds the index.
		p.ExpireAt(ctx, index, expireAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store session %s: %w", session.ID, err)
	}
	return nil
}

func (s *RedisStore) FindByID(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	cmd := s.client.HGetAll(ctx, sessionKey(sessionID))
	vals, err := cmd.Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, sentinel.ErrNotFound)
	}
	var r record
	if err := cmd.Scan(&r); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return r.session(sessionID)
}

// Revoke marks the session revoked and shortens its TTL to revokedRetention.
// It reports whether this call did the revoking.
func (s *RedisStore) Revoke(ctx context.Context, sessionID id.SessionID, at time.Time) (bool, error) {
	userID, err := s.client.HGet(ctx, sessionKey(sessionID), "user_id").Result()
	if errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("session %s: %w", sessionID, sentinel.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	owner, err := id.ParseUserID(userID)
	if err != nil {
		return false, fmt.Errorf("session %s: %w", sessionID, err)
	}

	keys := []string{sessionKey(sessionID), userIndexKey(owner)}
	res, err := revokeScript.Run(ctx, s.client, keys,
		at.UnixMicro(), revokedRetention.Milliseconds(), sessionID.String()).Int()
	if err != nil {
		return false, fmt.Errorf("revoke session %s: %w", sessionID, err)
	}
	switch res {
	case -1:
		return false, fmt.Errorf("session %s: %w", sessionID, sentinel.ErrNotFound)
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

// Package requestcontext carries request-scoped values (request id, request time,
// authenticated identity, client metadata) through context.Context.
package requestcontext

import (
	"context"
	"time"

	id "ainadeul/pkg/domain"
)

type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	userIDKey      struct{}
	sessionIDKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	deviceClassKey struct{}
)

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request id or "" when unset.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithTime pins the request's notion of "now".
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now returns the request-scoped time, falling back to time.Now() outside HTTP
// requests (workers, CLI, tests that don't pin a time).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithUserID stores the authenticated user.
func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user, or a nil ID for anonymous requests.
func UserID(ctx context.Context) id.UserID {
	v, _ := ctx.Value(userIDKey{}).(id.UserID)
	return v
}

// WithSessionID stores the session the request was authenticated with.
func WithSessionID(ctx context.Context, sessionID id.SessionID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionID returns the session id, or a nil ID when unset.
func SessionID(ctx context.Context) id.SessionID {
	v, _ := ctx.Value(sessionIDKey{}).(id.SessionID)
	return v
}

// WithClientMetadata stores the client IP and raw User-Agent.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, clientIP)
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

// ClientIP returns the client IP or "".
func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(clientIPKey{}).(string)
	return v
}

// UserAgent returns the raw User-Agent or "".
func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(userAgentKey{}).(string)
	return v
}

// WithDeviceClass stores the coarse device class derived from the User-Agent.
func WithDeviceClass(ctx context.Context, class string) context.Context {
	return context.WithValue(ctx, deviceClassKey{}, class)
}

// DeviceClass returns "mobile", "desktop", "bot" or "unknown".
func DeviceClass(ctx context.Context) string {
	if v, ok := ctx.Value(deviceClassKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

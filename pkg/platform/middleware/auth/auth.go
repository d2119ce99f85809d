package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	id "ainadeul/pkg/domain"
	"ainadeul/pkg/requestcontext"
)

// JWTValidator defines the interface for validating access tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// SessionChecker reports whether the session a token was issued for is still live.
// Signing out revokes the session, which invalidates every token issued for it.
type SessionChecker interface {
	IsSessionActive(ctx context.Context, sessionID id.SessionID) (bool, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	UserID    string
	SessionID string
}

var (
	errMissingToken   = errors.New("missing bearer token")
	errSessionRevoked = errors.New("session revoked")
)

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

type authenticator struct {
	validator JWTValidator
	sessions  SessionChecker
	logger    *slog.Logger
}

// authenticate validates the bearer token of r and returns a context carrying the typed IDs.
// A failure with errSessionCheck is an infrastructure error, everything else is a client error.
func (a authenticator) authenticate(r *http.Request) (context.Context, error) {
	ctx := r.Context()
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return ctx, errMissingToken
	}

	claims, err := a.validator.ValidateToken(token)
	if err != nil {
		return ctx, err
	}

	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return ctx, fmt.Errorf("invalid user_id: %w", err)
	}
	sessionID, err := id.ParseSessionID(claims.SessionID)
	if err != nil {
		return ctx, fmt.Errorf("invalid session_id: %w", err)
	}

	if a.sessions != nil {
		active, err := a.sessions.IsSessionActive(ctx, sessionID)
		if err != nil {
			return ctx, &sessionCheckError{err: err}
		}
		if !active {
			return ctx, errSessionRevoked
		}
	}

	ctx = requestcontext.WithUserID(ctx, userID)
	ctx = requestcontext.WithSessionID(ctx, sessionID)
	return ctx, nil
}

type sessionCheckError struct{ err error }

func (e *sessionCheckError) Error() string { return "session check failed: " + e.err.Error() }
func (e *sessionCheckError) Unwrap() error { return e.err }

// RequireAuth returns middleware that rejects requests without a valid, unrevoked token
// and populates context with the typed user and session IDs.
func RequireAuth(validator JWTValidator, sessions SessionChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	a := authenticator{validator: validator, sessions: sessions, logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := a.authenticate(r)
			if err != nil {
				requestID := requestcontext.RequestID(ctx)
				var checkErr *sessionCheckError
				if errors.As(err, &checkErr) {
					logger.ErrorContext(ctx, "failed to check session",
						"error", err,
						"request_id", requestID,
					)
					writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to validate token")
					return
				}
				logger.WarnContext(ctx, "unauthorized access",
					"error", err,
					"request_id", requestID,
				)
				switch {
				case errors.Is(err, errMissingToken):
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				case errors.Is(err, errSessionRevoked):
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Session has been signed out")
				default:
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present and
// otherwise serves the request anonymously. Used by browse endpoints that
// personalize results for signed-in parents.
func OptionalAuth(validator JWTValidator, sessions SessionChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	a := authenticator{validator: validator, sessions: sessions, logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := a.authenticate(r)
			if err != nil {
				if !errors.Is(err, errMissingToken) {
					logger.DebugContext(ctx, "ignoring invalid token on anonymous route",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

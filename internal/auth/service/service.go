package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ainadeul/internal/auth/models"
	"ainadeul/internal/platform/metrics"
	profilemodels "ainadeul/internal/profile/models"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/middleware/device"
	"ainadeul/pkg/platform/sentinel"
	"ainadeul/pkg/requestcontext"
)

// UserStore persists parent accounts.
// Error Contract: Create returns sentinel.ErrConflict for a taken email,
// lookups return sentinel.ErrNotFound.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID domain.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, sessionID domain.SessionID) (*models.Session, error)
	Revoke(ctx context.Context, sessionID domain.SessionID, at time.Time) (bool, error)
}

// TokenIssuer signs access tokens bound to a session.
type TokenIssuer interface {
	GenerateAccessToken(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (string, time.Time, error)
}

// ProfileReader loads (or lazily creates) the parent's profile.
type ProfileReader interface {
	Get(ctx context.Context, userID domain.UserID) (*profilemodels.Profile, error)
}

type Service struct {
	users    UserStore
	sessions SessionStore
	tokens   TokenIssuer
	profiles ProfileReader
	tokenTTL time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	cost     int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

func New(users UserStore, sessions SessionStore, tokens TokenIssuer, profiles ProfileReader, tokenTTL time.Duration, opts ...Option) *Service {
	svc := &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		profiles: profiles,
		tokenTTL: tokenTTL,
		cost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// SignUp registers a parent account with a bcrypt password hash.
func (s *Service) SignUp(ctx context.Context, req *models.CredentialsRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	now := requestcontext.Now(ctx)
	user := &models.User{
		ID:           domain.UserID(uuid.New()),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "email is already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	s.logger.InfoContext(ctx, "user signed up",
		"user_id", user.ID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return user, nil
}

// SignIn checks the credentials, opens a session for the calling device and
// returns a token bound to it. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, req *models.CredentialsRequest) (*models.SignInResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, s.authFailure(ctx, "unknown email")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return nil, s.authFailure(ctx, "password mismatch")
	}

	now := requestcontext.Now(ctx)
	userAgent := requestcontext.UserAgent(ctx)
	session := &models.Session{
		ID:          domain.SessionID(uuid.New()),
		UserID:      user.ID,
		DeviceName:  device.DisplayName(userAgent),
		DeviceClass: device.Classify(userAgent),
		ClientIP:    requestcontext.ClientIP(ctx),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.tokenTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create session")
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user.ID, session.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue access token")
	}

	if s.metrics != nil {
		s.metrics.IncrementActiveSessions(1)
	}
	s.logger.InfoContext(ctx, "user signed in",
		"user_id", user.ID.String(),
		"session_id", session.ID.String(),
		"device", session.DeviceName,
		"request_id", requestcontext.RequestID(ctx),
	)
	return &models.SignInResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        models.NewUserResponse(user),
	}, nil
}

func (s *Service) authFailure(ctx context.Context, reason string) error {
	if s.metrics != nil {
		s.metrics.IncrementAuthFailures()
	}
	s.logger.WarnContext(ctx, "sign in rejected",
		"reason", reason,
		"request_id", requestcontext.RequestID(ctx),
	)
	return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
}

// SignOut revokes the session. Signing out twice is not an error.
func (s *Service) SignOut(ctx context.Context, sessionID domain.SessionID) error {
	revoked, err := s.sessions.Revoke(ctx, sessionID, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "session not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke session")
	}
	if revoked && s.metrics != nil {
		s.metrics.DecrementActiveSessions(1)
	}
	s.logger.InfoContext(ctx, "user signed out",
		"session_id", sessionID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

// IsSessionActive implements the auth middleware's session check.
func (s *Service) IsSessionActive(ctx context.Context, sessionID domain.SessionID) (bool, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return session.IsActive(requestcontext.Now(ctx)), nil
}

// Snapshot assembles the read-only view of the signed-in session.
func (s *Service) Snapshot(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*models.Snapshot, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	if session.UserID != userID {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session belongs to another user")
	}
	if !session.IsActive(requestcontext.Now(ctx)) {
		return nil, dErrors.New(dErrors.CodeSessionExpired, "session is no longer active")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{
		User:           user,
		Session:        session,
		Profile:        profile,
		NeedsChildInfo: profile.NeedsChildInfo(),
	}, nil
}

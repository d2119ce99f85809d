package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ainadeul/internal/auth/models"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/httputil"
	"ainadeul/pkg/requestcontext"
)

// Service defines the auth operations the handler needs.
type Service interface {
	SignUp(ctx context.Context, req *models.CredentialsRequest) (*models.User, error)
	SignIn(ctx context.Context, req *models.CredentialsRequest) (*models.SignInResponse, error)
	SignOut(ctx context.Context, sessionID domain.SessionID) error
	Snapshot(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*models.Snapshot, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the credential endpoints.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/signup", h.handleSignUp)
	r.Post("/auth/signin", h.handleSignIn)
}

// RegisterAuthenticated mounts the session endpoints. The caller wraps r with RequireAuth.
func (h *Handler) RegisterAuthenticated(r chi.Router) {
	r.Post("/auth/signout", h.handleSignOut)
	r.Get("/auth/session", h.handleSession)
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CredentialsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.SignUp(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "sign up failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewUserResponse(user))
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CredentialsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resp, err := h.service.SignIn(ctx, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	sessionID, err := h.requireSession(ctx, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.SignOut(ctx, sessionID); err != nil {
		h.logger.ErrorContext(ctx, "sign out failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	sessionID, err := h.requireSession(ctx, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	snap, err := h.service.Snapshot(ctx, userID, sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewSessionResponse(snap, requestcontext.Now(ctx)))
}

func (h *Handler) requireSession(ctx context.Context, requestID string) (domain.SessionID, error) {
	sessionID := requestcontext.SessionID(ctx)
	if sessionID.IsNil() {
		h.logger.ErrorContext(ctx, "sessionID missing from context despite auth middleware",
			"request_id", requestID)
		return domain.SessionID{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return sessionID, nil
}

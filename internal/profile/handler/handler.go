package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ainadeul/internal/profile/models"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/httputil"
	"ainadeul/pkg/requestcontext"
)

// Service defines the profile operations the handler needs.
type Service interface {
	Get(ctx context.Context, userID domain.UserID) (*models.Profile, error)
	AddChild(ctx context.Context, userID domain.UserID, req *models.AddChildRequest) (*models.ChildRecord, error)
	DeleteChild(ctx context.Context, userID domain.UserID, childID domain.ChildID) error
	UpdateLocation(ctx context.Context, userID domain.UserID, req *models.UpdateLocationRequest) (*models.Profile, error)
	UseCurrentLocation(ctx context.Context, userID domain.UserID) (*models.Profile, error)
	ToggleSavedPlace(ctx context.Context, userID domain.UserID, placeID domain.PlaceID) (bool, error)
	ListSavedPlaces(ctx context.Context, userID domain.UserID) ([]models.SavedPlace, error)
	AddVisit(ctx context.Context, userID domain.UserID, req *models.AddVisitRequest) (*models.Visit, error)
	ListVisits(ctx context.Context, userID domain.UserID) ([]models.Visit, error)
}

// Handler serves the authenticated /me routes.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the routes. The caller wraps r with RequireAuth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/me/profile", h.handleGetProfile)
	r.Put("/me/location", h.handleUpdateLocation)
	r.Post("/me/location/current", h.handleUseCurrentLocation)
	r.Post("/me/children", h.handleAddChild)
	r.Delete("/me/children/{id}", h.handleDeleteChild)
	r.Post("/me/saved-places/{placeID}", h.handleToggleSavedPlace)
	r.Get("/me/saved-places", h.handleListSavedPlaces)
	r.Post("/me/visits", h.handleAddVisit)
	r.Get("/me/visits", h.handleListVisits)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	profile, err := h.service.Get(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load profile",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewProfileResponse(profile, requestcontext.Now(ctx)))
}

func (h *Handler) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[models.UpdateLocationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile, err := h.service.UpdateLocation(ctx, userID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to update location",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewProfileResponse(profile, requestcontext.Now(ctx)))
}

func (h *Handler) handleUseCurrentLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	profile, err := h.service.UseCurrentLocation(ctx, userID)
	if err != nil {
		// the client falls back to manual entry
		h.logger.WarnContext(ctx, "current location unavailable",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewProfileResponse(profile, requestcontext.Now(ctx)))
}

func (h *Handler) handleAddChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[models.AddChildRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	child, err := h.service.AddChild(ctx, userID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to add child",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewChildResponse(*child, requestcontext.Now(ctx)))
}

func (h *Handler) handleDeleteChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	childID, err := domain.ParseChildID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.DeleteChild(ctx, userID, childID); err != nil {
		h.logger.WarnContext(ctx, "failed to delete child",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleToggleSavedPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	placeID, err := domain.ParsePlaceID(chi.URLParam(r, "placeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	saved, err := h.service.ToggleSavedPlace(ctx, userID, placeID)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to toggle saved place",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToggleSavedResponse{PlaceID: placeID.String(), Saved: saved})
}

func (h *Handler) handleListSavedPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	saved, err := h.service.ListSavedPlaces(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list saved places",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]models.SavedPlaceResponse, 0, len(saved))
	for _, sp := range saved {
		out = append(out, models.SavedPlaceResponse{PlaceID: sp.PlaceID.String(), SavedAt: sp.SavedAt})
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"saved_places": out})
}

func (h *Handler) handleAddVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[models.AddVisitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	visit, err := h.service.AddVisit(ctx, userID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to record visit",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewVisitResponse(*visit))
}

func (h *Handler) handleListVisits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, err := httputil.RequireUserID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	visits, err := h.service.ListVisits(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list visits",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]models.VisitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, models.NewVisitResponse(v))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"visits": out})
}

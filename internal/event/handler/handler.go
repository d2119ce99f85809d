package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ainadeul/internal/event/models"
	"ainadeul/pkg/platform/httputil"
	"ainadeul/pkg/requestcontext"
)

// Service defines the event operations the handler needs.
type Service interface {
	List(ctx context.Context, filter models.Filter) ([]models.View, error)
	ListOrganizers(ctx context.Context) ([]models.Organizer, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/events", h.handleList)
	r.Get("/events/organizers", h.handleOrganizers)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q := r.URL.Query()
	req := &models.ListRequest{
		Tab:         q.Get("tab"),
		OrganizerID: q.Get("organizer_id"),
		EventType:   q.Get("event_type"),
		TargetAge:   q.Get("target_age"),
	}
	req.Sanitize()
	filter, err := req.ToFilter()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	views, err := h.service.List(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events",
			"request_id", requestID,
			"tab", string(filter.Tab),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ListResponse{Events: views, Total: len(views)})
}

func (h *Handler) handleOrganizers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgs, err := h.service.ListOrganizers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list organizers",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.OrganizersResponse{Organizers: orgs})
}

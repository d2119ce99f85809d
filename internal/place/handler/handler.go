package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ainadeul/internal/place/models"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/httputil"
	"ainadeul/pkg/requestcontext"
)

// Service defines the place operations the handler needs.
type Service interface {
	Viewer(ctx context.Context) (models.Viewer, error)
	List(ctx context.Context, filter models.Filter, viewer models.Viewer) ([]models.Card, error)
	Get(ctx context.Context, placeID domain.PlaceID, viewer models.Viewer) (*models.Detail, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the routes. The caller wraps r with OptionalAuth so
// signed-in parents get personalized results.
func (h *Handler) Register(r chi.Router) {
	r.Get("/places", h.handleList)
	r.Get("/places/{id}", h.handleGet)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q := r.URL.Query()
	req := &models.ListRequest{
		Region:         q.Get("region"),
		Category:       q.Get("category"),
		ParentEnergy:   q.Get("parent_energy"),
		ChildCondition: q.Get("child_condition"),
		TravelTime:     q.Get("travel_time"),
		MaxDistance:    q.Get("max_distance"),
		Environment:    q.Get("environment"),
		Parking:        q.Get("parking"),
		Cost:           q.Get("cost"),
	}
	req.Sanitize()
	filter, err := req.ToFilter()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	viewer, ok := h.viewer(ctx, w, requestID)
	if !ok {
		return
	}

	cards, err := h.service.List(ctx, filter, viewer)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list places",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ListResponse{Places: cards, Total: len(cards)})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	placeID, err := domain.ParsePlaceID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	viewer, ok := h.viewer(ctx, w, requestID)
	if !ok {
		return
	}

	detail, err := h.service.Get(ctx, placeID, viewer)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to load place",
				"request_id", requestID,
				"place_id", placeID.String(),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) viewer(ctx context.Context, w http.ResponseWriter, requestID string) (models.Viewer, bool) {
	viewer, err := h.service.Viewer(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve viewer",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return models.Viewer{}, false
	}
	return viewer, true
}

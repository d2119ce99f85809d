package service

import (
	"context"
	"log/slog"
	"time"

	"ainadeul/internal/event/models"
	"ainadeul/internal/platform/metrics"
	"ainadeul/internal/platform/tracer"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/requestcontext"
)

// Store reads events. ListByStatus orders by start date.
type Store interface {
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Event, error)
	ListOrganizers(ctx context.Context) ([]models.Organizer, error)
}

type Service struct {
	store    Store
	location *time.Location
	tracer   tracer.Tracer
	logger   *slog.Logger
	metrics  *metrics.Metrics
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

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithLocation sets the time zone that decides what "today" is.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.location = loc
	}
}

func New(store Store, opts ...Option) *Service {
	svc := &Service{store: store}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = tracer.NewNoop()
	}
	if svc.location == nil {
		svc.location = time.UTC
	}
	return svc
}

// List returns the events of one tab that pass filter, earliest first.
func (s *Service) List(ctx context.Context, filter models.Filter) (_ []models.View, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanEventList, tracer.String(tracer.AttrEventTab, string(filter.Tab)))
	defer func() { span.End(err) }()

	events, err := s.store.ListByStatus(ctx, filter.Status())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load events")
	}
	span.SetAttributes(tracer.Int(tracer.AttrCandidates, len(events)))

	today := models.Date(requestcontext.Now(ctx), s.location)
	views := make([]models.View, 0, len(events))
	for _, e := range events {
		if filter.Match(e, today) {
			views = append(views, models.NewView(e))
		}
	}

	span.SetAttributes(tracer.Int(tracer.AttrResults, len(views)))
	if s.metrics != nil {
		s.metrics.IncrementEventListings(string(filter.Tab))
	}
	return views, nil
}

// ListOrganizers returns every organizer ordered by name.
func (s *Service) ListOrganizers(ctx context.Context) ([]models.Organizer, error) {
	orgs, err := s.store.ListOrganizers(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load organizers")
	}
	return orgs, nil
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"ainadeul/internal/place/models"
	"ainadeul/internal/platform/metrics"
	"ainadeul/internal/platform/tracer"
	profilemodels "ainadeul/internal/profile/models"
	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/sentinel"
	"ainadeul/pkg/requestcontext"
)

// Store reads places. Error Contract: FindByID returns sentinel.ErrNotFound.
type Store interface {
	ListActive(ctx context.Context) ([]*models.Place, error)
	FindByID(ctx context.Context, placeID domain.PlaceID) (*models.Place, error)
	Exists(ctx context.Context, placeID domain.PlaceID) (bool, error)
}

// DetailCache is a read-through cache for place details.
// Error Contract: Find returns sentinel.ErrNotFound on a miss.
type DetailCache interface {
	Find(ctx context.Context, placeID domain.PlaceID) (*models.Place, error)
	Save(ctx context.Context, place *models.Place) error
}

// ProfileReader supplies the signed-in viewer's home and children.
type ProfileReader interface {
	Get(ctx context.Context, userID domain.UserID) (*profilemodels.Profile, error)
}

type Service struct {
	store    Store
	cache    DetailCache
	profiles ProfileReader
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

func WithCache(c DetailCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithProfiles(p ProfileReader) Option {
	return func(s *Service) {
		s.profiles = p
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
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
	return svc
}

// Viewer resolves who is asking. Anonymous requests, or a missing profile
// reader, yield the zero Viewer.
func (s *Service) Viewer(ctx context.Context) (models.Viewer, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() || s.profiles == nil {
		return models.Viewer{}, nil
	}
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return models.Viewer{}, err
	}
	return models.Viewer{Home: profile.Home, Children: profile.DomainChildren()}, nil
}

type candidate struct {
	place *models.Place
	prox  *models.Proximity
}

// List returns cards for the active places passing filter. With a home
// location the cards carry distance and car travel time and are ordered
// nearest first; otherwise they keep the store's name order.
func (s *Service) List(ctx context.Context, filter models.Filter, viewer models.Viewer) (_ []models.Card, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPlaceList, tracer.Bool(tracer.AttrPersonalized, viewer.Personalized()))
	defer func() { span.End(err) }()

	places, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load places")
	}
	span.SetAttributes(tracer.Int(tracer.AttrCandidates, len(places)))

	matched := make([]candidate, 0, len(places))
	for _, p := range places {
		c := candidate{place: p}
		var km *float64
		var minutes *int
		if viewer.Home != nil {
			prox := models.ProximityFrom(*viewer.Home, p)
			c.prox = &prox
			km, minutes = &prox.DistanceKm, &prox.TravelMinutes
		}
		if filter.Match(p, km, minutes) {
			matched = append(matched, c)
		}
	}
	if viewer.Home != nil {
		slices.SortStableFunc(matched, func(a, b candidate) int {
			switch {
			case a.prox.DistanceKm < b.prox.DistanceKm:
				return -1
			case a.prox.DistanceKm > b.prox.DistanceKm:
				return 1
			}
			return 0
		})
	}

	asOf := requestcontext.Now(ctx)
	cards := make([]models.Card, 0, len(matched))
	for _, c := range matched {
		score := recommend.Score(c.place.Suitability, viewer.Children, asOf)
		cards = append(cards, models.NewCard(c.place, score, c.prox))
	}

	span.SetAttributes(tracer.Int(tracer.AttrResults, len(cards)))
	if s.metrics != nil {
		s.metrics.ObservePlaceListing(viewer.Personalized(), len(cards))
		if len(viewer.Children) > 0 {
			s.metrics.AddPersonalizedScores(len(cards))
		}
	}
	return cards, nil
}

// Get returns the detail view of an active place.
func (s *Service) Get(ctx context.Context, placeID domain.PlaceID, viewer models.Viewer) (_ *models.Detail, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPlaceDetail, tracer.String("place_id", placeID.String()))
	defer func() { span.End(err) }()

	place, cached := s.fromCache(ctx, placeID)
	span.SetAttributes(tracer.Bool(tracer.AttrCacheHit, cached))
	if !cached {
		place, err = s.store.FindByID(ctx, placeID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeNotFound, "place not found")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load place")
		}
		s.toCache(ctx, place)
	}
	if !place.IsActive {
		return nil, dErrors.New(dErrors.CodeNotFound, "place not found")
	}

	var prox *models.Proximity
	if viewer.Home != nil {
		p := models.ProximityFrom(*viewer.Home, place)
		prox = &p
	}
	score := recommend.Score(place.Suitability, viewer.Children, requestcontext.Now(ctx))
	detail := models.NewDetail(place, score, prox)
	return &detail, nil
}

// fromCache treats cache failures as misses.
func (s *Service) fromCache(ctx context.Context, placeID domain.PlaceID) (*models.Place, bool) {
	if s.cache == nil {
		return nil, false
	}
	place, err := s.cache.Find(ctx, placeID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "place cache read failed",
				"place_id", placeID.String(),
				"error", err,
			)
		}
		return nil, false
	}
	return place, true
}

func (s *Service) toCache(ctx context.Context, place *models.Place) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(ctx, place); err != nil {
		s.logger.WarnContext(ctx, "place cache write failed",
			"place_id", place.ID.String(),
			"error", err,
		)
	}
}

// Exists implements the profile service's PlaceChecker.
func (s *Service) Exists(ctx context.Context, placeID domain.PlaceID) (bool, error) {
	ok, err := s.store.Exists(ctx, placeID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check place")
	}
	return ok, nil
}

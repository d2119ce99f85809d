package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ainadeul/internal/location"
	"ainadeul/internal/platform/metrics"
	"ainadeul/internal/profile/models"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/sentinel"
	"ainadeul/pkg/platform/validation"
	"ainadeul/pkg/requestcontext"
)

// Store persists profiles, children, bookmarks and visits.
// Error Contract: lookups of missing entities return sentinel.ErrNotFound.
type Store interface {
	FindByUserID(ctx context.Context, userID domain.UserID) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	UpdateHome(ctx context.Context, userID domain.UserID, home domain.Coordinate, address string, at time.Time) error
	AddChild(ctx context.Context, userID domain.UserID, child models.ChildRecord) error
	DeleteChild(ctx context.Context, userID domain.UserID, childID domain.ChildID) error
	ToggleSavedPlace(ctx context.Context, userID domain.UserID, placeID domain.PlaceID, at time.Time) (bool, error)
	ListSavedPlaces(ctx context.Context, userID domain.UserID) ([]models.SavedPlace, error)
	AddVisit(ctx context.Context, visit models.Visit) error
	ListVisits(ctx context.Context, userID domain.UserID) ([]models.Visit, error)
}

type ActivityPublisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

// Locator resolves the caller's current position.
type Locator interface {
	Current(ctx context.Context) (domain.Coordinate, error)
}

// PlaceChecker confirms a place exists before it is bookmarked or visited.
type PlaceChecker interface {
	Exists(ctx context.Context, placeID domain.PlaceID) (bool, error)
}

type Service struct {
	store     Store
	publisher ActivityPublisher
	locator   Locator
	places    PlaceChecker
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

func WithActivityPublisher(p ActivityPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithLocator(l Locator) Option {
	return func(s *Service) {
		s.locator = l
	}
}

func WithPlaceChecker(c PlaceChecker) Option {
	return func(s *Service) {
		s.places = c
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
	return svc
}

// Get returns the user's profile, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID domain.UserID) (*models.Profile, error) {
	profile, err := s.store.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	now := requestcontext.Now(ctx)
	profile, err = s.store.Create(ctx, &models.Profile{UserID: userID, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create profile")
	}
	s.logger.InfoContext(ctx, "profile created",
		"user_id", userID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return profile, nil
}

// NeedsChildInfo reports whether the parent still has to register a child.
func (s *Service) NeedsChildInfo(ctx context.Context, userID domain.UserID) (bool, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return profile.NeedsChildInfo(), nil
}

// AddChild registers a child. The birth year/month must not be in the future
// nor more than MaxBirthYearsBack years ago, judged at request time.
func (s *Service) AddChild(ctx context.Context, userID domain.UserID, req *models.AddChildRequest) (*models.ChildRecord, error) {
	now := requestcontext.Now(ctx)
	if !domain.IsValidBirthDate(req.BirthYear, req.BirthMonth, now) {
		return nil, dErrors.New(dErrors.CodeValidation, "birth date must be within the last 20 years and not in the future")
	}

	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckSliceCount("children", len(profile.Children)+1, validation.MaxChildrenPerProfile); err != nil {
		return nil, err
	}

	child := models.ChildRecord{
		ID:         domain.ChildID(uuid.New()),
		Nickname:   req.Nickname,
		BirthYear:  req.BirthYear,
		BirthMonth: req.BirthMonth,
		CreatedAt:  now,
	}
	if err := s.store.AddChild(ctx, userID, child); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add child")
	}
	if s.metrics != nil {
		s.metrics.IncrementChildrenRegistered()
	}
	s.publish(ctx, models.ActivityChildAdded, userID, child.ID.String())
	return &child, nil
}

func (s *Service) DeleteChild(ctx context.Context, userID domain.UserID, childID domain.ChildID) error {
	if err := s.store.DeleteChild(ctx, userID, childID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "child not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete child")
	}
	s.publish(ctx, models.ActivityChildRemoved, userID, childID.String())
	return nil
}

// UpdateLocation stores the home location. An address without a coordinate is
// geocoded against the Daejeon district table.
func (s *Service) UpdateLocation(ctx context.Context, userID domain.UserID, req *models.UpdateLocationRequest) (*models.Profile, error) {
	var home domain.Coordinate
	if req.Latitude != nil && req.Longitude != nil {
		home = domain.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
	} else {
		home = location.Geocode(req.Address)
	}
	if err := home.Validate(); err != nil {
		return nil, err
	}
	return s.setHome(ctx, userID, home, req.Address)
}

// UseCurrentLocation asks the locator for the caller's position and stores it as home.
func (s *Service) UseCurrentLocation(ctx context.Context, userID domain.UserID) (*models.Profile, error) {
	if s.locator == nil {
		return nil, location.ErrUnavailable
	}
	coord, err := s.locator.Current(ctx)
	if err != nil {
		// location failures are already domain errors
		return nil, err
	}
	return s.setHome(ctx, userID, coord, "")
}

func (s *Service) setHome(ctx context.Context, userID domain.UserID, home domain.Coordinate, address string) (*models.Profile, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateHome(ctx, userID, home, address, requestcontext.Now(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update location")
	}
	s.publish(ctx, models.ActivityHomeUpdated, userID, "")
	return s.Get(ctx, userID)
}

// ToggleSavedPlace bookmarks or un-bookmarks a place and returns the resulting state.
func (s *Service) ToggleSavedPlace(ctx context.Context, userID domain.UserID, placeID domain.PlaceID) (bool, error) {
	if err := s.requirePlace(ctx, placeID); err != nil {
		return false, err
	}
	saved, err := s.store.ToggleSavedPlace(ctx, userID, placeID, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, dErrors.New(dErrors.CodeNotFound, "place not found")
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to toggle saved place")
	}
	if s.metrics != nil {
		s.metrics.IncrementPlacesSaved(saved)
	}
	activity := models.ActivityPlaceUnsaved
	if saved {
		activity = models.ActivityPlaceSaved
	}
	s.publish(ctx, activity, userID, placeID.String())
	return saved, nil
}

func (s *Service) ListSavedPlaces(ctx context.Context, userID domain.UserID) ([]models.SavedPlace, error) {
	saved, err := s.store.ListSavedPlaces(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list saved places")
	}
	return saved, nil
}

func (s *Service) AddVisit(ctx context.Context, userID domain.UserID, req *models.AddVisitRequest) (*models.Visit, error) {
	placeID, err := domain.ParsePlaceID(req.PlaceID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	if req.Date().After(now) {
		return nil, dErrors.New(dErrors.CodeValidation, "visited_on must not be in the future")
	}
	if err := s.requirePlace(ctx, placeID); err != nil {
		return nil, err
	}

	visit := models.Visit{
		ID:        domain.VisitID(uuid.New()),
		UserID:    userID,
		PlaceID:   placeID,
		VisitedOn: req.Date(),
		Rating:    req.Rating,
		Memo:      req.Memo,
		CreatedAt: now,
	}
	if err := s.store.AddVisit(ctx, visit); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "place not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record visit")
	}
	if s.metrics != nil {
		s.metrics.IncrementVisitsRecorded()
	}
	s.publish(ctx, models.ActivityVisitRecorded, userID, visit.ID.String())
	return &visit, nil
}

func (s *Service) ListVisits(ctx context.Context, userID domain.UserID) ([]models.Visit, error) {
	visits, err := s.store.ListVisits(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list visits")
	}
	return visits, nil
}

func (s *Service) requirePlace(ctx context.Context, placeID domain.PlaceID) error {
	if s.places == nil {
		return nil
	}
	ok, err := s.places.Exists(ctx, placeID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up place")
	}
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "place not found")
	}
	return nil
}

// publish hands the event to the activity stream. Failures are logged and counted,
// never surfaced: the profile change has already been committed.
func (s *Service) publish(ctx context.Context, typ models.ActivityType, userID domain.UserID, subject string) {
	if s.publisher == nil {
		return
	}
	event := models.ActivityEvent{
		Type:       typ,
		UserID:     userID.String(),
		SubjectID:  subject,
		OccurredAt: requestcontext.Now(ctx),
	}
	outcome := "published"
	if err := s.publisher.Publish(ctx, event); err != nil {
		outcome = "failed"
		s.logger.WarnContext(ctx, "failed to publish activity event",
			"type", string(typ),
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementActivityPublished(outcome)
	}
}

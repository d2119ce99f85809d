package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,DetailCache,ProfileReader

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ainadeul/internal/place/models"
	"ainadeul/internal/place/service/mocks"
	"ainadeul/internal/platform/metrics"
	profilemodels "ainadeul/internal/profile/models"
	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/sentinel"
	"ainadeul/pkg/requestcontext"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

// 대전시청
var cityHall = domain.Coordinate{Lat: 36.3504, Lng: 127.3845}

type PlaceServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	cache    *mocks.MockDetailCache
	profiles *mocks.MockProfileReader
	metrics  *metrics.Metrics
	service  *Service
	ctx      context.Context
}

func TestPlaceServiceSuite(t *testing.T) {
	suite.Run(t, new(PlaceServiceSuite))
}

func (s *PlaceServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.cache = mocks.NewMockDetailCache(s.ctrl)
	s.profiles = mocks.NewMockProfileReader(s.ctrl)
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.service = New(s.store,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithCache(s.cache),
		WithProfiles(s.profiles),
	)
	s.ctx = requestcontext.WithTime(context.Background(), fixedNow)
}

func (s *PlaceServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func place(name string, at domain.Coordinate) *models.Place {
	return &models.Place{
		ID:       domain.PlaceID(uuid.New()),
		Name:     name,
		Category: "공원",
		Region:   "서구",
		Location: at,
		IsActive: true,
		IsIndoor: true,
		Suitability: recommend.Suitability{
			domain.Band0To12:  5.0,
			domain.Band25To48: 3.0,
		},
	}
}

func (s *PlaceServiceSuite) TestListAnonymous() {
	a := place("가", domain.Coordinate{Lat: 36.40, Lng: 127.38})
	b := place("나", domain.Coordinate{Lat: 36.36, Lng: 127.38})
	s.store.EXPECT().ListActive(gomock.Any()).Return([]*models.Place{a, b}, nil)

	cards, err := s.service.List(s.ctx, models.Filter{}, models.Viewer{})
	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Equal("가", cards[0].Name, "store order is kept without a home")
	s.Nil(cards[0].DistanceKm)
	s.InDelta(4.0, cards[0].ExpectedRating, 1e-9, "population mean without children")
	s.InDelta(1, testutil.ToFloat64(s.metrics.PlaceListings.WithLabelValues("false")), 0)
}

func (s *PlaceServiceSuite) TestListWithHomeSortsByDistanceAndFiltersTravelTime() {
	far := place("먼 곳", domain.Coordinate{Lat: 36.60, Lng: 127.38})   // ~27.8km, 56분
	near := place("가까운 곳", domain.Coordinate{Lat: 36.36, Lng: 127.38}) // ~1.2km
	mid := place("중간", domain.Coordinate{Lat: 36.40, Lng: 127.38})     // ~5.5km
	s.store.EXPECT().ListActive(gomock.Any()).Return([]*models.Place{far, near, mid}, nil).Times(2)

	home := cityHall
	viewer := models.Viewer{Home: &home}

	cards, err := s.service.List(s.ctx, models.Filter{}, viewer)
	s.Require().NoError(err)
	s.Require().Len(cards, 3)
	s.Equal([]string{"가까운 곳", "중간", "먼 곳"}, []string{cards[0].Name, cards[1].Name, cards[2].Name})
	s.Require().NotNil(cards[0].DistanceKm)
	s.NotEmpty(cards[0].Distance)
	s.NotEmpty(cards[0].TravelTime)

	cards, err = s.service.List(s.ctx, models.Filter{TravelTime: models.Within30Minutes}, viewer)
	s.Require().NoError(err)
	s.Len(cards, 2)
}

func (s *PlaceServiceSuite) TestListScoresAgainstChildren() {
	p := place("수목원", cityHall)
	s.store.EXPECT().ListActive(gomock.Any()).Return([]*models.Place{p}, nil)

	// born 2024-12: 6 months old on the request date
	viewer := models.Viewer{Children: []domain.Child{{BirthYear: 2024, BirthMonth: 12}}}
	cards, err := s.service.List(s.ctx, models.Filter{}, viewer)
	s.Require().NoError(err)
	s.Require().Len(cards, 1)
	s.InDelta(5.0, cards[0].ExpectedRating, 1e-9)
	s.Require().Len(cards[0].RecommendedAges, 1)
	s.Equal(domain.Band0To12, cards[0].RecommendedAges[0].Band)
	s.InDelta(1, testutil.ToFloat64(s.metrics.PersonalizedScores), 0)
}

func (s *PlaceServiceSuite) TestListStoreFailure() {
	s.store.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.service.List(s.ctx, models.Filter{}, models.Viewer{})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *PlaceServiceSuite) TestGet() {
	p := place("수목원", cityHall)
	p.Hours = models.OperatingHours{models.Monday: {Closed: true}}

	s.Run("cache hit skips the store", func() {
		s.cache.EXPECT().Find(gomock.Any(), p.ID).Return(p, nil)

		detail, err := s.service.Get(s.ctx, p.ID, models.Viewer{})
		s.Require().NoError(err)
		s.Equal([]string{"월: 휴무"}, detail.OperatingHours)
		s.Len(detail.RatedAges, 2)
	})

	s.Run("miss reads through and fills the cache", func() {
		s.cache.EXPECT().Find(gomock.Any(), p.ID).Return(nil, sentinel.ErrNotFound)
		s.store.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		s.cache.EXPECT().Save(gomock.Any(), p).Return(nil)

		_, err := s.service.Get(s.ctx, p.ID, models.Viewer{})
		s.Require().NoError(err)
	})

	s.Run("cache outage falls back to the store", func() {
		s.cache.EXPECT().Find(gomock.Any(), p.ID).Return(nil, errors.New("redis down"))
		s.store.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		s.cache.EXPECT().Save(gomock.Any(), p).Return(errors.New("redis down"))

		_, err := s.service.Get(s.ctx, p.ID, models.Viewer{})
		s.Require().NoError(err)
	})

	s.Run("unknown place", func() {
		missing := domain.PlaceID(uuid.New())
		s.cache.EXPECT().Find(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)
		s.store.EXPECT().FindByID(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.Get(s.ctx, missing, models.Viewer{})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("inactive place is hidden", func() {
		closed := place("폐관", cityHall)
		closed.IsActive = false
		s.cache.EXPECT().Find(gomock.Any(), closed.ID).Return(closed, nil)

		_, err := s.service.Get(s.ctx, closed.ID, models.Viewer{})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *PlaceServiceSuite) TestViewer() {
	s.Run("anonymous", func() {
		v, err := s.service.Viewer(s.ctx)
		s.Require().NoError(err)
		s.False(v.Personalized())
	})

	s.Run("signed in", func() {
		userID := domain.UserID(uuid.New())
		home := cityHall
		s.profiles.EXPECT().Get(gomock.Any(), userID).Return(&profilemodels.Profile{
			UserID:   userID,
			Home:     &home,
			Children: []profilemodels.ChildRecord{{BirthYear: 2022, BirthMonth: 3}},
		}, nil)

		v, err := s.service.Viewer(requestcontext.WithUserID(s.ctx, userID))
		s.Require().NoError(err)
		s.Equal(&home, v.Home)
		s.Len(v.Children, 1)
	})
}

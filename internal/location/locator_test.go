package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"ainadeul/internal/platform/metrics"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
)

type LocatorSuite struct {
	suite.Suite
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func TestLocatorSuite(t *testing.T) {
	suite.Run(t, new(LocatorSuite))
}

func (s *LocatorSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
}

func (s *LocatorSuite) locator(p Provider, opts ...Option) *Locator {
	return NewLocator(p, s.logger, append(opts, WithMetrics(s.metrics))...)
}

func (s *LocatorSuite) TestCurrent() {
	s.Run("returns the provider fix", func() {
		want := domain.Coordinate{Lat: 36.3504, Lng: 127.3845}
		got, err := s.locator(StaticProvider{Coordinate: want}).Current(context.Background())

		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("no provider is unavailable", func() {
		_, err := s.locator(nil).Current(context.Background())

		s.ErrorIs(err, ErrUnavailable)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	s.Run("provider refusal is denied", func() {
		_, err := s.locator(StaticProvider{Err: errors.New("user denied geolocation")}).Current(context.Background())

		s.ErrorIs(err, ErrDenied)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("provider unavailable passes through", func() {
		_, err := s.locator(StaticProvider{Err: ErrUnavailable}).Current(context.Background())

		s.ErrorIs(err, ErrUnavailable)
	})

	s.Run("slow provider times out", func() {
		slow := StaticProvider{Coordinate: DefaultCenter, Delay: time.Second}
		start := time.Now()
		_, err := s.locator(slow, WithTimeout(20*time.Millisecond)).Current(context.Background())

		s.ErrorIs(err, ErrTimeout)
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
		s.Less(time.Since(start), 500*time.Millisecond)
	})

	s.Run("caller cancellation is not a timeout", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.locator(StaticProvider{Delay: time.Second}).Current(ctx)

		s.ErrorIs(err, context.Canceled)
		s.NotErrorIs(err, ErrTimeout)
	})

	s.Run("out of range fix is rejected", func() {
		_, err := s.locator(StaticProvider{Coordinate: domain.Coordinate{Lat: 120, Lng: 0}}).Current(context.Background())

		s.ErrorIs(err, ErrDenied)
	})
}

func (s *LocatorSuite) TestDefaultOptions() {
	opts := DefaultOptions()
	s.True(opts.HighAccuracy)
	s.Equal(5*time.Second, opts.Timeout)
	s.Zero(opts.MaximumAge)
}

func (s *LocatorSuite) TestOutcomeMetrics() {
	l := s.locator(StaticProvider{Coordinate: DefaultCenter})
	_, _ = l.Current(context.Background())
	_, _ = s.locator(nil).Current(context.Background())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.LocationRequests.WithLabelValues("ok")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.LocationRequests.WithLabelValues("unavailable")))
}

func (s *LocatorSuite) TestGeoIPWithoutDatabase() {
	provider, err := OpenGeoIP("")
	s.Require().NoError(err)
	s.Nil(provider)

	// a typed nil provider still answers
	_, err = provider.Position(context.Background(), DefaultOptions())
	s.ErrorIs(err, ErrUnavailable)
	s.NoError(provider.Close())
}

func (s *LocatorSuite) TestGeoIPMissingFile() {
	_, err := OpenGeoIP("/nonexistent/GeoLite2-City.mmdb")
	s.Error(err)
}

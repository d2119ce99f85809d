// Package location resolves the caller's current position through a pluggable
// Provider and offers the fixed Daejeon presets used for manual location entry.
package location

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ainadeul/internal/platform/metrics"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/requestcontext"
)

// Location failures. They are domain errors, so errors.Is matches them by code
// and httputil.WriteError maps them to 503, 403 and 504.
var (
	ErrUnavailable = dErrors.New(dErrors.CodeUnavailable, "location service is not supported")
	ErrDenied      = dErrors.New(dErrors.CodeForbidden, "location request was denied")
	ErrTimeout     = dErrors.New(dErrors.CodeTimeout, "location request timed out")
)

const defaultTimeout = 5 * time.Second

// Options mirror a device position request.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge is the oldest cached fix the provider may return. Zero forces a fresh reading.
	MaximumAge time.Duration
}

// DefaultOptions asks for a fresh, high-accuracy fix within five seconds.
func DefaultOptions() Options {
	return Options{HighAccuracy: true, Timeout: defaultTimeout, MaximumAge: 0}
}

// Provider is the host capability that answers a single position request.
// Implementations return ErrUnavailable when they cannot locate at all.
type Provider interface {
	Position(ctx context.Context, opts Options) (domain.Coordinate, error)
}

// Locator performs single-shot position requests with a hard timeout. It never retries.
type Locator struct {
	provider Provider
	opts     Options
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Locator)

// WithTimeout overrides the five second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Locator) {
		if d > 0 {
			l.opts.Timeout = d
		}
	}
}

// WithMetrics records request outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Locator) {
		l.metrics = m
	}
}

// NewLocator builds a Locator. A nil provider makes every request fail with ErrUnavailable.
func NewLocator(provider Provider, logger *slog.Logger, opts ...Option) *Locator {
	l := &Locator{
		provider: provider,
		opts:     DefaultOptions(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type positionResult struct {
	coord domain.Coordinate
	err   error
}

// Current suspends until the provider answers, the timeout expires or ctx is done.
func (l *Locator) Current(ctx context.Context) (domain.Coordinate, error) {
	coord, err := l.current(ctx)
	l.observe(ctx, err)
	return coord, err
}

func (l *Locator) current(ctx context.Context) (domain.Coordinate, error) {
	if l.provider == nil {
		return domain.Coordinate{}, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, l.opts.Timeout)
	defer cancel()

	// buffered so the provider goroutine never blocks after we stop listening
	results := make(chan positionResult, 1)
	go func() {
		coord, err := l.provider.Position(ctx, l.opts)
		results <- positionResult{coord: coord, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.Coordinate{}, ErrTimeout
		}
		return domain.Coordinate{}, ctx.Err()
	case res := <-results:
		if res.err != nil {
			return domain.Coordinate{}, classify(res.err)
		}
		if err := res.coord.Validate(); err != nil {
			return domain.Coordinate{}, &dErrors.Error{Code: dErrors.CodeForbidden, Message: "location provider returned an invalid position", Err: err}
		}
		return res.coord, nil
	}
}

// classify folds provider errors into the three location failures.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrTimeout), errors.Is(err, ErrDenied):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return err
	default:
		return &dErrors.Error{Code: dErrors.CodeForbidden, Message: "location request was denied", Err: err}
	}
}

func (l *Locator) observe(ctx context.Context, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrUnavailable):
		outcome = "unavailable"
	case errors.Is(err, ErrTimeout):
		outcome = "timeout"
	case errors.Is(err, ErrDenied):
		outcome = "denied"
	default:
		outcome = "cancelled"
	}
	if l.metrics != nil {
		l.metrics.IncrementLocationRequests(outcome)
	}
	if err != nil && l.logger != nil {
		l.logger.WarnContext(ctx, "current location unavailable",
			"outcome", outcome,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

// Package tracer is the tracing surface services depend on. OTelTracer backs
// it with OpenTelemetry; NoopTracer is the default when nothing is wired.
package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span, marking it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

type Attribute = attribute.KeyValue

func String(key, value string) Attribute          { return attribute.String(key, value) }
func Bool(key string, value bool) Attribute       { return attribute.Bool(key, value) }
func Int(key string, value int) Attribute         { return attribute.Int(key, value) }
func Float64(key string, value float64) Attribute { return attribute.Float64(key, value) }

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return attribute.Int64(key, value.Milliseconds())
}

const (
	SpanPlaceList   = "place.list"
	SpanPlaceDetail = "place.detail"
	SpanEventList   = "event.list"
)

const (
	AttrPersonalized = "personalized"
	AttrCandidates   = "places.candidates"
	AttrResults      = "places.results"
	AttrCacheHit     = "cache.hit"
	AttrEventTab     = "event.tab"
)

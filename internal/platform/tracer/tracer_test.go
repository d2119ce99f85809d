package tracer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func recordingProvider() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)), rec
}

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	newCtx, span := NewNoop().Start(ctx, SpanPlaceList, Bool(AttrPersonalized, true))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(Int(AttrResults, 3))
	span.AddEvent("cache.miss")
	span.End(errors.New("store down"))
}

func TestOTelTracerRecordsSpans(t *testing.T) {
	tp, rec := recordingProvider()
	tr := NewOTel(tp)

	_, ok := tr.Start(context.Background(), SpanPlaceDetail, String("place_id", "abc"))
	ok.SetAttributes(Bool(AttrCacheHit, true), Duration("store.elapsed", 150*time.Millisecond))
	ok.AddEvent("cache.hit")
	ok.End(nil)

	_, failed := tr.Start(context.Background(), SpanEventList, String(AttrEventTab, "ongoing"))
	failed.End(errors.New("store down"))

	spans := rec.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, SpanPlaceDetail, spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int64("store.elapsed", 150))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool(AttrCacheHit, true))
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "store down", spans[1].Status().Description)
}

func TestMiddlewareNamesSpanByRoute(t *testing.T) {
	tp, rec := recordingProvider()

	r := chi.NewRouter()
	r.Use(Middleware(tp))
	r.Get("/places/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, trace.SpanContextFromContext(r.Context()).IsValid())
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/places/123", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "GET /places/{id}", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", http.StatusNotFound))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestSetup(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled", func(t *testing.T) {
		shutdown, err := Setup(context.Background(), Config{}, log)
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("unknown exporter", func(t *testing.T) {
		_, err := Setup(context.Background(), Config{Exporter: "zipkin"}, log)
		assert.Error(t, err)
	})

	t.Run("stdout exporter flushes on shutdown", func(t *testing.T) {
		var buf bytes.Buffer
		shutdown, err := Setup(context.Background(), Config{Exporter: ExporterStdout, ServiceName: "ainadeul", Writer: &buf}, log)
		require.NoError(t, err)

		_, span := NewOTel(nil).Start(context.Background(), SpanPlaceList)
		span.End(nil)

		require.NoError(t, shutdown(context.Background()))
		assert.Contains(t, buf.String(), SpanPlaceList)
	})
}

func TestClampRatio(t *testing.T) {
	assert.InDelta(t, 1, clampRatio(0), 0)
	assert.InDelta(t, 1, clampRatio(2), 0)
	assert.InDelta(t, 0.25, clampRatio(0.25), 0)
}

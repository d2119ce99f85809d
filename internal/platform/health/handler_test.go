package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func readiness(t *testing.T, h *Handler) (int, ReadinessResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestReadiness(t *testing.T) {
	up := func(context.Context) error { return nil }
	refused := func(context.Context) error { return errors.New("connection refused") }

	t.Run("ready when all checks pass", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("database", up)

		code, body := readiness(t, h)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, StatusReady, body.Status)
		assert.Equal(t, "up", body.Checks["database"].Status)
	})

	t.Run("503 when a required check fails", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("database", up)
		h.RegisterCheck("redis", refused)
		h.RegisterOptionalCheck("kafka", refused)

		code, body := readiness(t, h)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, StatusNotReady, body.Status)
		assert.Equal(t, CheckResult{Status: "down", Error: "connection refused"}, withoutLatency(body.Checks["redis"]))
		assert.Equal(t, "up", body.Checks["database"].Status)
	})

	t.Run("degraded when only an optional check fails", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("database", up)
		h.RegisterOptionalCheck("kafka", refused)

		code, body := readiness(t, h)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, StatusDegraded, body.Status)
		assert.True(t, body.Checks["kafka"].Optional)
	})

	t.Run("checks receive a deadline", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("redis", func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		})

		code, _ := readiness(t, h)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("no checks is ready", func(t *testing.T) {
		code, body := readiness(t, New("test"))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, StatusReady, body.Status)
	})
}

func withoutLatency(r CheckResult) CheckResult {
	r.LatencyMs = 0
	return r
}

func TestLivenessAndStatus(t *testing.T) {
	h := New("development")
	router := newRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "development", status.Environment)
	assert.Equal(t, "ainadeul", status.Service)
}

package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ainadeul/internal/platform/tracer"
	authmw "ainadeul/pkg/platform/middleware/auth"
	"ainadeul/pkg/platform/middleware/device"
	"ainadeul/pkg/platform/middleware/metadata"
	"ainadeul/pkg/platform/middleware/request"
	"ainadeul/pkg/platform/middleware/requesttime"
	"ainadeul/pkg/platform/validation"
)

const (
	requestTimeout    = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// newRouter mounts every route. Places are public with optional
// personalization; /me and the session routes need a signed-in parent.
func newRouter(a *app, gatherer prometheus.Gatherer, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(tracer.Middleware(nil))
	r.Use(metadata.NewMiddleware(&metadata.Config{TrustedProxies: a.proxies}).Handler)
	r.Use(device.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(log))
	r.Use(request.LatencyMiddleware(a.latency))

	a.health.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(request.Timeout(requestTimeout))
		r.Use(request.BodyLimit(validation.MaxBodySize))
		r.Use(request.ContentTypeJSON)

		a.auth.RegisterPublic(r)
		a.events.Register(r)
		a.location.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(authmw.OptionalAuth(a.jwt, a.authService, log))
			a.places.Register(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireAuth(a.jwt, a.authService, log))
			a.auth.RegisterAuthenticated(r)
			a.profiles.Register(r)
		})
	})

	return r
}

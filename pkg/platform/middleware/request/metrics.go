package request

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
	Responses       *prometheus.CounterVec
}

// NewMetrics registers the HTTP collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ainadeul_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		Responses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ainadeul_http_responses_total",
			Help: "HTTP responses by route and status code",
		}, []string{"endpoint", "code"}),
	}
}

func (m *Metrics) observe(method, endpoint string, status int, elapsed time.Duration) {
	m.EndpointLatency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
	m.Responses.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// LatencyMiddleware records latency and status per chi route pattern, so
// /places/{id} is one series regardless of the id. A nil m disables it.
func LatencyMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			m.observe(r.Method, routePattern(r), sw.status, time.Since(start))
		})
	}
}

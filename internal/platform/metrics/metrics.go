package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	UsersCreated   prometheus.Counter
	ActiveSessions prometheus.Gauge
	AuthFailures   prometheus.Counter

	// Place browsing
	PlaceListings      *prometheus.CounterVec
	PlaceResults       prometheus.Histogram
	PersonalizedScores prometheus.Counter
	PlaceCacheHits     prometheus.Counter
	PlaceCacheMisses   prometheus.Counter

	// Events
	EventListings *prometheus.CounterVec

	// Profile activity
	ChildrenRegistered prometheus.Counter
	PlacesSaved        *prometheus.CounterVec
	VisitsRecorded     prometheus.Counter
	ActivityPublished  *prometheus.CounterVec

	LocationRequests *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UsersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_users_created_total",
			Help: "Total number of accounts created",
		}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "ainadeul_active_sessions",
			Help: "Current number of active sessions",
		}),
		AuthFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_auth_failures_total",
			Help: "Total number of failed sign-in attempts",
		}),
		PlaceListings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ainadeul_place_listings_total",
			Help: "Total number of place listings served, labeled by whether the caller was personalized",
		}, []string{"personalized"}),
		PlaceResults: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ainadeul_place_listing_results",
			Help:    "Number of places returned per listing after filtering",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
		PersonalizedScores: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_personalized_scores_total",
			Help: "Total number of expected ratings computed from a child's age band",
		}),
		PlaceCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_place_cache_hits_total",
			Help: "Place detail cache hits",
		}),
		PlaceCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_place_cache_misses_total",
			Help: "Place detail cache misses",
		}),
		EventListings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ainadeul_event_listings_total",
			Help: "Total number of event listings served, labeled by tab",
		}, []string{"tab"}),
		ChildrenRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_children_registered_total",
			Help: "Total number of child records added to profiles",
		}),
		PlacesSaved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ainadeul_saved_place_toggles_total",
			Help: "Saved place toggles, labeled by resulting state",
		}, []string{"state"}),
		VisitsRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "ainadeul_visits_recorded_total",
			Help: "Total number of visit records",
		}),
		ActivityPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ainadeul_activity_events_total",
			Help: "Profile activity events handed to the publisher, labeled by outcome",
		}, []string{"outcome"}),
		LocationRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ainadeul_location_requests_total",
			Help: "Current location requests, labeled by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) IncrementActiveSessions(count int) {
	m.ActiveSessions.Add(float64(count))
}

func (m *Metrics) DecrementActiveSessions(count int) {
	m.ActiveSessions.Sub(float64(count))
}

func (m *Metrics) IncrementAuthFailures() {
	m.AuthFailures.Inc()
}

// ObservePlaceListing records one listing and how many places survived filtering.
func (m *Metrics) ObservePlaceListing(personalized bool, results int) {
	label := "false"
	if personalized {
		label = "true"
	}
	m.PlaceListings.WithLabelValues(label).Inc()
	m.PlaceResults.Observe(float64(results))
}

func (m *Metrics) AddPersonalizedScores(count int) {
	m.PersonalizedScores.Add(float64(count))
}

func (m *Metrics) IncrementPlaceCacheHit() {
	m.PlaceCacheHits.Inc()
}

func (m *Metrics) IncrementPlaceCacheMiss() {
	m.PlaceCacheMisses.Inc()
}

func (m *Metrics) IncrementEventListings(tab string) {
	m.EventListings.WithLabelValues(tab).Inc()
}

func (m *Metrics) IncrementChildrenRegistered() {
	m.ChildrenRegistered.Inc()
}

// IncrementPlacesSaved records a toggle; saved is the state after the toggle.
func (m *Metrics) IncrementPlacesSaved(saved bool) {
	state := "removed"
	if saved {
		state = "saved"
	}
	m.PlacesSaved.WithLabelValues(state).Inc()
}

func (m *Metrics) IncrementVisitsRecorded() {
	m.VisitsRecorded.Inc()
}

func (m *Metrics) IncrementActivityPublished(outcome string) {
	m.ActivityPublished.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementLocationRequests(outcome string) {
	m.LocationRequests.WithLabelValues(outcome).Inc()
}

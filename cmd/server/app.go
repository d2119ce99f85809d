package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	authhandler "ainadeul/internal/auth/handler"
	authservice "ainadeul/internal/auth/service"
	sessionstore "ainadeul/internal/auth/store/session"
	userstore "ainadeul/internal/auth/store/user"
	eventhandler "ainadeul/internal/event/handler"
	eventservice "ainadeul/internal/event/service"
	eventstore "ainadeul/internal/event/store"
	"ainadeul/internal/jwt_token"
	"ainadeul/internal/location"
	placehandler "ainadeul/internal/place/handler"
	placeservice "ainadeul/internal/place/service"
	placestore "ainadeul/internal/place/store"
	"ainadeul/internal/platform/config"
	"ainadeul/internal/platform/database"
	"ainadeul/internal/platform/health"
	"ainadeul/internal/platform/kafka/producer"
	"ainadeul/internal/platform/metrics"
	"ainadeul/internal/platform/redis"
	"ainadeul/internal/platform/tracer"
	"ainadeul/internal/profile/activity"
	profilehandler "ainadeul/internal/profile/handler"
	profileservice "ainadeul/internal/profile/service"
	profilestore "ainadeul/internal/profile/store"
	"ainadeul/internal/seeder"
	"ainadeul/migrations"
	"ainadeul/pkg/platform/circuit"
	authmw "ainadeul/pkg/platform/middleware/auth"
	"ainadeul/pkg/platform/middleware/metadata"
	"ainadeul/pkg/platform/middleware/request"
)

const (
	tokenIssuer   = "ainadeul"
	tokenAudience = "ainadeul-web"
)

// infra holds the optional external connections. Nil members mean the
// in-memory fallback is in use.
type infra struct {
	pool     *database.Pool
	redis    *redis.Client
	producer *producer.Producer
	geoip    *location.GeoIPProvider
}

func connect(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	pool, err := database.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if pool != nil {
		if err := database.Migrate(ctx, pool.DB(), migrations.FS, log); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	var prod *producer.Producer
	if cfg.Kafka.Brokers != "" {
		prod, err = producer.New(producer.DefaultConfig(cfg.Kafka.Brokers), log)
		if err != nil {
			return nil, err
		}
	}

	geoip, err := location.OpenGeoIP(cfg.Location.GeoIPDBPath)
	if err != nil {
		return nil, err
	}

	return &infra{pool: pool, redis: redisClient, producer: prod, geoip: geoip}, nil
}

func (i *infra) db() *sql.DB {
	if i.pool == nil {
		return nil
	}
	return i.pool.DB()
}

func (i *infra) redisClient() *goredis.Client {
	if i.redis == nil {
		return nil
	}
	return i.redis.Client
}

func (i *infra) Close(log *slog.Logger) {
	if i.producer != nil {
		i.producer.Close(5 * time.Second)
	}
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			log.Warn("failed to close redis", "error", err)
		}
	}
	if i.pool != nil {
		if err := i.pool.Close(); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}
	if err := i.geoip.Close(); err != nil {
		log.Warn("failed to close geoip database", "error", err)
	}
}

// registerCollectors exposes connection pool stats next to the app metrics.
func (i *infra) registerCollectors(reg prometheus.Registerer) {
	if db := i.db(); db != nil {
		reg.MustRegister(collectors.NewDBStatsCollector(db, "ainadeul"))
	}
	if c := i.redisClient(); c != nil {
		reg.MustRegister(redis.NewPoolCollector(c.PoolStats))
	}
}

func (i *infra) registerChecks(h *health.Handler) {
	if i.pool != nil {
		h.RegisterCheck("database", i.pool.Health)
	}
	if i.redis != nil {
		h.RegisterCheck("redis", i.redis.Health)
	}
	if i.producer != nil {
		h.RegisterOptionalCheck("kafka", i.producer.Healthy)
	}
}

// app is the set of handlers the router mounts.
type app struct {
	auth     *authhandler.Handler
	places   *placehandler.Handler
	events   *eventhandler.Handler
	profiles *profilehandler.Handler
	location *location.Handler
	health   *health.Handler

	authService *authservice.Service
	jwt         authmw.JWTValidator
	latency     *request.Metrics
	seeder      *seeder.Seeder
	proxies     []netip.Prefix
}

// The seeder writes through the same stores the services read.
type (
	placeStore interface {
		placeservice.Store
		seeder.PlaceStore
	}
	eventStore interface {
		eventservice.Store
		seeder.EventStore
	}
)

// wire builds stores and services over the available infrastructure.
func wire(cfg config.Server, in *infra, m *metrics.Metrics, reg prometheus.Registerer, log *slog.Logger) (*app, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	proxies, err := metadata.ParseTrustedProxies(cfg.Location.TrustedProxies)
	if err != nil {
		return nil, err
	}

	var (
		users       authservice.UserStore
		sessions    authservice.SessionStore
		places      placeStore
		events      eventStore
		profiles    profileservice.Store
		detailCache placeservice.DetailCache
	)

	if db := in.db(); db != nil {
		users = userstore.NewPostgres(db)
		places = placestore.NewPostgres(db)
		events = eventstore.NewPostgres(db)
		profiles = profilestore.NewPostgres(db)
	} else {
		users = userstore.NewInMemory()
		places = placestore.NewInMemory()
		events = eventstore.NewInMemory()
		profiles = profilestore.NewInMemory()
	}

	if c := in.redisClient(); c != nil {
		sessions = sessionstore.NewRedis(c)
		detailCache = placestore.NewRedisCache(c, cfg.PlaceCacheTTL, m)
	} else {
		sessions = sessionstore.NewInMemory()
		detailCache = placestore.NewInMemoryCache(cfg.PlaceCacheTTL, m)
	}

	var publisher profileservice.ActivityPublisher = activity.NopPublisher{}
	if in.producer != nil {
		publisher = activity.NewGuardedPublisher(
			activity.NewKafkaPublisher(in.producer, cfg.Kafka.ActivityTopic),
			circuit.New("activity"),
			log,
		)
	}

	locator := location.NewLocator(in.geoip, log,
		location.WithTimeout(cfg.Location.Timeout),
		location.WithMetrics(m),
	)

	profileSvc := profileservice.New(profiles,
		profileservice.WithLogger(log),
		profileservice.WithMetrics(m),
		profileservice.WithActivityPublisher(publisher),
		profileservice.WithLocator(locator),
		profileservice.WithPlaceChecker(places),
	)

	trc := tracer.NewOTel(nil)
	placeSvc := placeservice.New(places,
		placeservice.WithLogger(log),
		placeservice.WithMetrics(m),
		placeservice.WithCache(detailCache),
		placeservice.WithProfiles(profileSvc),
		placeservice.WithTracer(trc),
	)
	eventSvc := eventservice.New(events,
		eventservice.WithLogger(log),
		eventservice.WithMetrics(m),
		eventservice.WithTracer(trc),
		eventservice.WithLocation(loc),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, tokenIssuer, tokenAudience, cfg.TokenTTL)
	jwtService.SetEnv(cfg.Environment)
	authSvc := authservice.New(users, sessions, jwtService, profileSvc, cfg.TokenTTL,
		authservice.WithLogger(log),
		authservice.WithMetrics(m),
	)

	healthHandler := health.New(cfg.Environment)
	in.registerChecks(healthHandler)

	a := &app{
		auth:        authhandler.New(authSvc, log),
		places:      placehandler.New(placeSvc, log),
		events:      eventhandler.New(eventSvc, log),
		profiles:    profilehandler.New(profileSvc, log),
		location:    location.NewHandler(),
		health:      healthHandler,
		authService: authSvc,
		jwt:         jwtService.Validator(),
		latency:     request.NewMetrics(reg),
		proxies:     proxies,
	}
	if cfg.SeedDemoData {
		a.seeder = seeder.New(users, places, events, log)
	}
	return a, nil
}

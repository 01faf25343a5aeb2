package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/ironquest/backend/internal/auth"
	"github.com/ironquest/backend/internal/cache"
	"github.com/ironquest/backend/internal/config"
	"github.com/ironquest/backend/internal/db"
	"github.com/ironquest/backend/internal/middleware"
	"github.com/ironquest/backend/internal/notifications"
	"github.com/ironquest/backend/internal/profiles"
	"github.com/ironquest/backend/internal/progression"
	"github.com/ironquest/backend/internal/progression/achievements"
	"github.com/ironquest/backend/internal/progression/award"
	"github.com/ironquest/backend/internal/progression/classes"
	"github.com/ironquest/backend/internal/progression/xp"
	"github.com/ironquest/backend/internal/telemetry/metrics"
	"github.com/ironquest/backend/internal/telemetry/tracing"
	"github.com/ironquest/backend/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// progression wiring
	classRegistry *classes.Registry
	pipeline      *progression.Pipeline

	// repos shared between handlers
	profilesRepo     *profiles.Repo
	workoutsRepo     *workouts.Repo
	achievementsRepo *achievements.Repo
	eventsRepo       *notifications.Repo

	profileCache cache.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("ironquest", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "ironquest-backend", rdb)
	if err != nil {
		return nil, err
	}

	profilesRepo := profiles.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	achievementsRepo := achievements.NewRepo(dbPool)
	eventsRepo := notifications.NewRepo(dbPool)

	classRegistry := classes.NewDefaultRegistry()
	resolver := classes.NewResolver(classRegistry, classes.NewCooldownRepo(dbPool))

	coordinator := award.NewCoordinator(
		profilesRepo,
		workoutsRepo,
		award.NewPowerDayRepo(dbPool),
		resolver,
		eventsRepo,
		xp.CapArbiter{Disabled: params.Config.XPDailyCapDisabled},
	)
	engine := achievements.NewEngine(achievementsRepo, profilesRepo, eventsRepo)
	pipeline := progression.NewPipeline(
		coordinator,
		engine,
		profilesRepo,
		workoutsRepo,
		metricsManager,
	)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		classRegistry: classRegistry,
		pipeline:      pipeline,

		profilesRepo:     profilesRepo,
		workoutsRepo:     workoutsRepo,
		achievementsRepo: achievementsRepo,
		eventsRepo:       eventsRepo,

		profileCache: cache.NewProfileCache(),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("I'm OK, thanks ;)"))
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(s.versionInfo))
	}).Methods("GET").Name("version")

	workoutsHandler := workouts.NewHandler(
		workouts.NewService(s.workoutsRepo),
		s.workoutsRepo,
		s.pipeline,
		s.profileCache,
	)
	r.HandleFunc("/workouts/user/{userId}", workoutsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workouts/user/{userId}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")

	profilesHandler := profiles.NewHandler(s.profilesRepo, s.classRegistry, s.profileCache)
	r.HandleFunc("/profile", profilesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-profile")
	r.HandleFunc("/profile/classes", profilesHandler.HandleListClasses).Methods("GET", "OPTIONS").Name("list-classes")
	r.HandleFunc("/profile/{userId}", profilesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile/{userId}/class", profilesHandler.HandleSetClass).Methods("PUT", "OPTIONS").Name("set-class")

	achievementsHandler := achievements.NewHandler(s.achievementsRepo)
	r.HandleFunc("/achievements", achievementsHandler.HandleCatalog).Methods("GET", "OPTIONS").Name("achievement-catalog")
	r.HandleFunc("/achievements/user/{userId}", achievementsHandler.HandleForUser).Methods("GET", "OPTIONS").Name("user-achievements")

	eventsHandler := notifications.NewHandler(s.eventsRepo)
	r.HandleFunc("/events/user/{userId}", eventsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-events")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(s.authService, s.loginChecker)
	authHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

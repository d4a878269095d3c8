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
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/fitcomp/fitcomp/internal/auth"
	"github.com/fitcomp/fitcomp/internal/competitions"
	"github.com/fitcomp/fitcomp/internal/config"
	"github.com/fitcomp/fitcomp/internal/dashboard"
	"github.com/fitcomp/fitcomp/internal/db"
	"github.com/fitcomp/fitcomp/internal/equalize"
	"github.com/fitcomp/fitcomp/internal/middleware"
	"github.com/fitcomp/fitcomp/internal/misc"
	"github.com/fitcomp/fitcomp/internal/remote"
	"github.com/fitcomp/fitcomp/internal/telemetry/metrics"
	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/internal/timeline"
	"github.com/fitcomp/fitcomp/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	formatter    *timeline.Formatter
	remoteClient *remote.Client
	syncer       *workouts.Syncer

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

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
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

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
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitcomp-backend")
	if err != nil {
		return nil, err
	}

	loc, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	remoteClient := remote.NewClient(params.Config.RemoteBaseURL, tracedHttpClient, metricsManager)

	syncer := workouts.NewSyncer(
		remoteClient,
		workouts.NewRepo(dbPool),
		metricsManager,
		params.Config.SyncUserIDs,
		params.Config.SyncSchedule,
	)

	return &Server{
		config:       params.Config,
		dbPool:       dbPool,
		formatter:    timeline.NewFormatter(loc),
		remoteClient: remoteClient,
		syncer:       syncer,
		versionInfo:  params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, s.syncer, s.formatter)
	r.HandleFunc("/workouts/user/{userID}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/user/{userID}", workoutsHandler.HandleDeleteSnapshot).Methods("DELETE", "OPTIONS").Name("delete-workouts-snapshot")
	r.HandleFunc("/workouts/user/{userID}/sync", workoutsHandler.HandleSync).Methods("POST", "OPTIONS").Name("sync-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")

	dashboardHandler := dashboard.NewHandler(
		dashboard.NewAnalyzer(workoutsRepo, s.formatter),
		s.remoteClient,
	)
	r.HandleFunc("/dashboard/{userID}/summary", dashboardHandler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")
	r.HandleFunc("/dashboard/{userID}/goals", dashboardHandler.HandleGoals).Methods("GET", "OPTIONS").Name("dashboard-goals")
	r.HandleFunc("/dashboard/{userID}/calendar", dashboardHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("dashboard-calendar")
	r.HandleFunc("/dashboard/{userID}/totals", dashboardHandler.HandleTotals).Methods("GET", "OPTIONS").Name("dashboard-totals")

	competitionsHandler := competitions.NewHandler(s.remoteClient, s.formatter)
	r.HandleFunc("/competitions/{id}/stats", competitionsHandler.HandleStats).Methods("GET", "OPTIONS").Name("competition-stats")
	r.HandleFunc("/competitions/{id}/feed", competitionsHandler.HandleFeed).Methods("GET", "OPTIONS").Name("competition-feed")
	r.HandleFunc("/competitions/{id}/charts", competitionsHandler.HandleCharts).Methods("GET", "OPTIONS").Name("competition-charts")
	r.HandleFunc("/competitions/{id}/progress", competitionsHandler.HandleGoalProgress).Methods("GET", "OPTIONS").Name("competition-goal-progress")

	equalizeHandler := equalize.NewHandler(s.remoteClient)
	r.HandleFunc("/equalize/preview", equalizeHandler.HandlePreview).Methods("POST", "OPTIONS").Name("equalize-preview")
	r.HandleFunc("/equalize/{userID}", equalizeHandler.HandleSave).Methods("POST", "OPTIONS").Name("equalize-save")

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

func (s *Server) Serve(_ context.Context, host string, port int) {
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
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		strconv.Itoa(s.config.PrometheusMetricsPort),
	)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	if err := s.syncer.Start(); err != nil {
		log.Fatalf("failed to start workouts syncer: %s", err)
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

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	var shutdownErr error

	syncerCtx := s.syncer.Stop()
	select {
	case <-syncerCtx.Done():
		log.Debugln("workouts syncer stopped")
	case <-time.After(30 * time.Second):
		shutdownErr = multierr.Append(shutdownErr, errors.New("workouts syncer stop timeout"))
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
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
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
	}
	log.Warnln("metrics server shut down")

	return shutdownErr
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

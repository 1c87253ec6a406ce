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

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/db/migrations"
	"github.com/2beens/gymlog/internal/gymlog/dashboard"
	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/performance"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
	"github.com/2beens/gymlog/internal/middleware"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/users"
	"github.com/2beens/gymlog/pkg"
)

const sessionCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	dbPool *pgxpool.Pool
	clock  pkg.Clock

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	muscleGroupsCache *exercises.MuscleGroupsCache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.RunMigrations {
		if err := migrations.MigrateUp(dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate up: %w", err)
		}
	} else if err := migrations.CheckStatus(dbPool); err != nil {
		log.Warnf("db schema status: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus("gymlog", pgxpoolCollector)
	metricsManager := metrics.NewManager("gymlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(cfg.SessionTTL.Duration, rdb)
	go authService.RunCleanup(ctx, sessionCleanupInterval)

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymlog-service", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config: cfg,
		dbPool: dbPool,
		clock:  pkg.RealClock{},

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL.Duration, rdb),

		muscleGroupsCache: exercises.NewMuscleGroupsCache(
			cfg.MuscleGroupsCacheSizeMB*1024*1024,
			cfg.MuscleGroupsCacheTTL.Duration,
			metricsManager,
		),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymlog-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	usersHandler := users.NewHandler(
		users.NewRepo(s.dbPool),
		s.authService,
		s.clock,
		s.metricsManager,
	)
	usersHandler.SetupRoutes(r, redis_rate.NewLimiter(s.redisClient), s.config.LoginRateLimitAllowedPerMin)

	exercisesService := exercises.NewService(exercises.NewRepo(s.dbPool), s.muscleGroupsCache, s.clock)
	exercisesHandler := exercises.NewHandler(exercisesService)
	r.HandleFunc("/muscle-groups", exercisesHandler.HandleListMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	r.HandleFunc("/muscle-groups", exercisesHandler.HandleAddMuscleGroup).Methods("POST", "OPTIONS").Name("new-muscle-group")
	r.HandleFunc("/muscle-groups/{id}", exercisesHandler.HandleDeleteMuscleGroup).Methods("DELETE", "OPTIONS").Name("delete-muscle-group")
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	performanceHandler := performance.NewHandler(performance.NewResolver(performance.NewRepo(s.dbPool)))
	r.HandleFunc("/exercises/{id}/latest", performanceHandler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-performance")
	r.HandleFunc("/exercises/{id}/history", performanceHandler.HandleHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	workoutsHandler := workouts.NewHandler(workouts.NewService(
		workouts.NewRepo(s.dbPool),
		exercisesService,
		s.clock,
		s.metricsManager,
	))
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/exercises", workoutsHandler.HandleLogExercise).Methods("POST", "OPTIONS").Name("log-exercise")
	r.HandleFunc("/workouts/{id}/exercises/{ewid}/sets", workoutsHandler.HandleReplaceSets).Methods("PUT", "OPTIONS").Name("replace-sets")
	r.HandleFunc("/workouts/{id}/exercises/{ewid}", workoutsHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-exercise")

	dashboardHandler := dashboard.NewHandler(dashboard.NewAggregator(
		dashboard.NewRepo(s.dbPool),
		s.clock,
		s.metricsManager,
	))
	r.HandleFunc("/dashboard", dashboardHandler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.Timeout(s.config.RequestTimeout.Duration))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.dbPool.Ping(ctx); err != nil {
		log.Errorf("health, ping db: %s", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

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

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"budget-tracker/internal/cache"
	"budget-tracker/internal/config"
	"budget-tracker/internal/database"
	"budget-tracker/internal/handlers"
	appmw "budget-tracker/internal/middleware"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "1M"

// Server owns the echo instance and everything it needs for a clean shutdown
type Server struct {
	cfg      *config.Config
	echo     *echo.Echo
	registry *prometheus.Registry
	caches   *cache.Manager
}

// New wires repositories, services, handlers and middleware on top of db.
// All metrics go to a private registry served on /metrics.
func New(cfg *config.Config, db *database.DB) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := services.NewPrometheusMetrics(registry)
	activity := services.NewActivityLogger(slog.Default())

	manager := cache.NewManager()
	caches := services.NewCaches(cfg.Cache, manager, metrics)

	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	location := cfg.Stats.Location
	categoryService := services.NewCategoryService(categoryRepo, caches, metrics, activity)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, caches, metrics, activity, location, cfg.Stats.RecentLimit)
	statsService := services.NewStatsService(transactionRepo, caches, metrics, activity, location)
	chartService := services.NewChartService()
	dashboardService := services.NewDashboardService(categoryService, transactionService, statsService, chartService, caches, metrics)
	identityService := services.NewIdentityService(userRepo, metrics, activity)
	verifier := services.NewSessionVerifier(&cfg.Identity)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmw.NewHTTPErrorHandler(registry)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(appmw.RequestID())
	e.Use(appmw.PanicRecovery())
	e.Use(requestLogger())
	e.Use(appmw.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, appmw.TraceIDHeader},
		ExposeHeaders:    []string{appmw.TraceIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.CORSAllowOrigins),
	}))
	e.Use(echomw.BodyLimit(maxBodySize))
	e.Use(appmw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(appmw.ResolveIdentity(verifier, identityService, cfg.Identity.CookieName))

	healthHandler := handlers.NewHealthCheckHandler(db)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, location)
	statsHandler := handlers.NewStatsHandler(statsService, chartService, location)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, statsService, location)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	requireIdentity := appmw.RequireIdentity()

	api := e.Group("/api/v1")
	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories/:categoryId/subcategories", categoryHandler.CreateSubCategory, requireIdentity)
	api.POST("/transactions", transactionHandler.CreateTransaction, requireIdentity)
	api.GET("/transactions/recent", transactionHandler.ListRecent)
	api.GET("/stats", statsHandler.GetMonthlyStats)
	api.GET("/stats/charts", statsHandler.GetCharts)
	api.GET("/dashboard", dashboardHandler.GetDashboard)

	if cfg.IsDevelopment() && cfg.Identity.PrivateKey != nil {
		sampleData := services.NewSampleDataService(categoryRepo, transactionRepo, caches, location, uint64(time.Now().UnixNano()))
		devHandler := handlers.NewDevHandler(sampleData, cfg.Identity.PrivateKey, cfg.Identity.Issuer)

		dev := api.Group("/dev")
		dev.POST("/session", devHandler.IssueSession)
		dev.POST("/generate-test-data", devHandler.GenerateTestData, requireIdentity)

		slog.Warn("Development endpoints enabled", "prefix", "/api/v1/dev")
	}

	return &Server{
		cfg:      cfg,
		echo:     e,
		registry: registry,
		caches:   manager,
	}
}

// ServeHTTP lets tests drive the full middleware chain without a listener
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start begins cache cleanup and blocks serving HTTP until Shutdown is called.
// http.ErrServerClosed is not reported as an error.
func (s *Server) Start() error {
	s.caches.StartCleanup(s.cfg.Cache.CleanupInterval)

	slog.Info("Starting server",
		"address", s.cfg.Server.Address(),
		"environment", s.cfg.Server.Environment,
	)

	if err := s.echo.Start(s.cfg.Server.Address()); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the cache janitor
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.caches.Stop()
	return s.echo.Shutdown(ctx)
}

func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"trace_id", appmw.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
			}
			slog.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	})
}

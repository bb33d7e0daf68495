package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/kanbanboard/core/docs"
	httpHandlers "github.com/kanbanboard/core/internal/adapters/http"
	"github.com/kanbanboard/core/internal/adapters/integrations"
	"github.com/kanbanboard/core/internal/adapters/repository"
	"github.com/kanbanboard/core/internal/application/services"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/infrastructure/storage"
)

// Server represents the HTTP server
type Server struct {
	echo      *echo.Echo
	config    *config.Config
	logger    *logger.Logger
	workspace *storage.Workspace
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, workspace *storage.Workspace, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(cfg, appLogger)

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(workspace, appLogger)

	// Initialize integration adapters
	analyzer := integrations.NewPendingAnalyzer(cfg.AI.DefaultProvider)
	uploader := integrations.NewDriveUploader(cfg.Google, appLogger)

	// Initialize services
	taskService := services.NewTaskService(taskRepo, appLogger)
	analysisService := services.NewAnalysisService(analyzer, cfg.AI, appLogger)

	// Initialize handlers
	taskHandler := httpHandlers.NewTaskHandler(taskService, appLogger)
	aiHandler := httpHandlers.NewAIHandler(analysisService, taskService, appLogger)
	driveHandler := httpHandlers.NewDriveHandler(uploader, appLogger)
	integrationHandler := httpHandlers.NewIntegrationHandler(appLogger)

	server := &Server{
		echo:      e,
		config:    cfg,
		logger:    appLogger,
		workspace: workspace,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes(taskHandler, aiHandler, driveHandler, integrationHandler)

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.config.Security.AllowedOrigins(),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, map[string]string{"message": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, map[string]string{"message": "rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Timeout middleware
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(taskHandler *httpHandlers.TaskHandler, aiHandler *httpHandlers.AIHandler, driveHandler *httpHandlers.DriveHandler, integrationHandler *httpHandlers.IntegrationHandler) {
	// Root and health routes
	s.echo.GET("/", s.root)
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/docs/*", echoSwagger.WrapHandler)

	// API routes
	api := s.echo.Group("/api")

	// Task routes
	taskGroup := api.Group("/tasks")
	taskGroup.GET("", taskHandler.ListTasks)
	taskGroup.POST("", taskHandler.CreateTask)
	taskGroup.POST("/reorder/:status", taskHandler.ReorderTasks)
	taskGroup.GET("/:task_id", taskHandler.GetTask)
	taskGroup.PATCH("/:task_id", taskHandler.UpdateTask)
	taskGroup.DELETE("/:task_id", taskHandler.DeleteTask)
	taskGroup.POST("/:task_id/move", taskHandler.MoveTask)

	// AI routes
	aiGroup := api.Group("/ai")
	aiGroup.POST("/analyze", aiHandler.AnalyzeTask)
	aiGroup.POST("/generate-description", aiHandler.GenerateDescription)
	aiGroup.POST("/breakdown", aiHandler.BreakdownTask)

	// Drive routes
	driveGroup := api.Group("/drive")
	driveGroup.POST("/upload", driveHandler.UploadReport)
	driveGroup.GET("/reports", driveHandler.ListReports)

	// Calendar routes
	calendarGroup := api.Group("/calendar")
	calendarGroup.GET("/auth", integrationHandler.CalendarAuth)
	calendarGroup.POST("/sync/:task_id", integrationHandler.SyncTaskToCalendar)

	// Telegram routes
	telegramGroup := api.Group("/telegram")
	telegramGroup.POST("/webhook", integrationHandler.TelegramWebhook)
	telegramGroup.GET("/status", integrationHandler.TelegramStatus)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// Root and health handlers

func (s *Server) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": s.config.App.Name,
		"version": s.config.App.Version,
		"docs":    "/docs",
	})
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "healthy"
	checks := make(map[string]interface{})

	// Storage health check
	if err := s.workspace.HealthCheck(); err != nil {
		status = "error"
		checks["storage"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["storage"] = map[string]interface{}{
			"status": "ok",
			"stats":  s.workspace.Stats(),
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
		},
	}

	if status == "healthy" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.workspace.HealthCheck(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "storage_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ServeHTTP lets the server be mounted as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler renders every error as a {"message": ...} payload. In
// development, internal errors also carry the underlying error text.
func customErrorHandler(cfg *config.Config, appLogger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		switch e := err.(type) {
		case *echo.HTTPError:
			code = e.Code
			if m, ok := e.Message.(string); ok {
				message = m
			} else {
				message = fmt.Sprintf("%v", e.Message)
			}
			if e.Internal != nil {
				err = fmt.Errorf("%v, %v", err, e.Internal)
			}
		case validator.ValidationErrors:
			code = http.StatusUnprocessableEntity
			message = e.Error()
		}

		body := echo.Map{"message": message}

		if code == http.StatusInternalServerError {
			appLogger.Errorw("internal server error", "error", err, "path", c.Request().URL.Path)
			if cfg.App.IsDevelopment() {
				body["error"] = err.Error()
			}
		}

		// Send response
		if !c.Response().Committed {
			var respErr error
			if c.Request().Method == echo.HEAD {
				respErr = c.NoContent(code)
			} else {
				respErr = c.JSON(code, body)
			}
			if respErr != nil {
				appLogger.Errorw("error response write failed", "error", respErr)
			}
		}
	}
}

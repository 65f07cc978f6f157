package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/taskify/core/docs"
	gqlAdapter "github.com/taskify/core/internal/adapters/graphql"
	httpHandlers "github.com/taskify/core/internal/adapters/http"
	"github.com/taskify/core/internal/adapters/repository"
	"github.com/taskify/core/internal/application/services"
	"github.com/taskify/core/internal/infrastructure/cache"
	"github.com/taskify/core/internal/infrastructure/config"
	"github.com/taskify/core/internal/infrastructure/database"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

const (
	bcryptCost       = 10
	defaultBodyLimit = "1M"
)

// Server represents the HTTP server
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *logger.Logger
	db     *database.DB
	redis  *redis.Client
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance. redisClient may be nil, in which case
// user lookups are never cached.
func New(cfg *config.Config, db *database.DB, redisClient *redis.Client, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	e.Validator = &CustomValidator{validator: services.Validator()}
	e.Debug = cfg.App.IsDevelopment()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Repositories
	userRepo := repository.NewUserRepository(db.DB)
	projectRepo := repository.NewProjectRepository(db.DB)
	taskRepo := repository.NewTaskRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	noteRepo := repository.NewNoteRepository(db.DB)

	var userCache ports.CacheRepository = repository.NoopCache{}
	if redisClient != nil {
		userCache = repository.NewCacheRepository(redisClient, "taskify:")
	}

	// Services
	authService := services.NewAuthService(userRepo, userCache, AuthConfig(cfg), appLogger)
	projectService := services.NewProjectService(projectRepo, appLogger)
	taskService := services.NewTaskService(taskRepo, appLogger)
	eventService := services.NewEventService(eventRepo, appLogger)
	noteService := services.NewNoteService(noteRepo, appLogger)

	var oauth ports.OAuthProvider
	if cfg.Google.Enabled() {
		oauth = services.NewGoogleOAuth(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.App.GoogleCallbackURL())
	} else {
		appLogger.Infow("Google login disabled, GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET missing")
	}

	server := &Server{
		echo:   e,
		config: cfg,
		logger: appLogger,
		db:     db,
		redis:  redisClient,
	}

	server.setupMiddleware()

	var recorder httpHandlers.AuthRecorder
	if cfg.Metrics.Enabled {
		recorder = server.setupMetrics()
	}

	schema, err := gqlAdapter.NewSchema(gqlAdapter.NewResolver(authService, projectService, taskService, noteService, appLogger))
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	server.setupRoutes(routes{
		auth:        httpHandlers.NewAuthHandler(authService, oauth, cfg.App.FrontendURL, recorder, appLogger),
		projects:    httpHandlers.NewProjectHandler(projectService, appLogger),
		tasks:       httpHandlers.NewTaskHandler(taskService, appLogger),
		events:      httpHandlers.NewEventHandler(eventService, appLogger),
		graphql:     gqlAdapter.NewHandler(schema, authService, appLogger),
		requireAuth: requireAuth(authService, appLogger),
	})

	return server, nil
}

// AuthConfig derives the auth service settings from the loaded configuration
func AuthConfig(cfg *config.Config) services.AuthConfig {
	return services.AuthConfig{
		Secret:       cfg.JWT.Secret,
		ExpiresIn:    cfg.JWT.ExpiresIn,
		Issuer:       cfg.JWT.Issuer,
		BcryptCost:   bcryptCost,
		UserCacheTTL: cfg.Redis.UserTTL,
		Cookie:       services.NewCookiePolicy(cfg.Cookie.Name, cfg.Cookie.MaxAge, cfg.App.IsProduction()),
	}
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())

	bodyLimit := s.config.Server.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}
	s.echo.Use(middleware.BodyLimit(bodyLimit))

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
				"request_id", values.RequestID,
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

	// Credentialed CORS needs explicit origins
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.config.AllowedOrigins(),
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	window := s.config.Security.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	requests := s.config.Security.RateLimitRequests
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool { return requests <= 0 },
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(requests) / window.Seconds()),
			Burst:     requests,
			ExpiresIn: window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, httpHandlers.ErrorResponse{Message: "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, httpHandlers.ErrorResponse{Message: "rate limit exceeded"})
		},
	}))

	secure := middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}
	if s.config.App.IsProduction() {
		secure.HSTSMaxAge = 31536000
	}
	s.echo.Use(middleware.SecureWithConfig(secure))

	s.echo.Use(middleware.RequestID())

	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      s.config.Server.RequestTimeout,
		ErrorMessage: "request timed out",
	}))
}

type routes struct {
	auth        *httpHandlers.AuthHandler
	projects    *httpHandlers.ProjectHandler
	tasks       *httpHandlers.TaskHandler
	events      *httpHandlers.EventHandler
	graphql     *gqlAdapter.Handler
	requireAuth echo.MiddlewareFunc
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(r routes) {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	authGroup := s.echo.Group("/auth")
	authGroup.POST("/signup", r.auth.Signup)
	authGroup.POST("/login", r.auth.Login)
	authGroup.POST("/logout", r.auth.Logout)
	authGroup.GET("/me", r.auth.Me, r.requireAuth)
	authGroup.GET("/google", r.auth.GoogleLogin)
	authGroup.GET("/google/callback", r.auth.GoogleCallback)

	projectGroup := s.echo.Group("/projects", r.requireAuth)
	projectGroup.POST("", r.projects.CreateProject)
	projectGroup.GET("", r.projects.ListProjects)
	projectGroup.GET("/:id", r.projects.GetProject)
	projectGroup.PUT("/:id", r.projects.UpdateProject)
	projectGroup.DELETE("/:id", r.projects.DeleteProject)

	taskGroup := s.echo.Group("/tasks", r.requireAuth)
	taskGroup.POST("", r.tasks.CreateTask)
	taskGroup.GET("", r.tasks.ListTasks)
	taskGroup.GET("/:id", r.tasks.GetTask)
	taskGroup.PUT("/:id", r.tasks.UpdateTask)
	taskGroup.DELETE("/:id", r.tasks.DeleteTask)

	eventGroup := s.echo.Group("/events", r.requireAuth)
	eventGroup.POST("", r.events.CreateEvent)
	eventGroup.GET("", r.events.ListEvents)
	eventGroup.GET("/:id", r.events.GetEvent)
	eventGroup.PUT("/:id", r.events.UpdateEvent)
	eventGroup.DELETE("/:id", r.events.DeleteEvent)

	// GraphQL authenticates per resolver, anonymous requests still execute
	s.echo.GET("/graphql", r.graphql.Serve)
	s.echo.POST("/graphql", r.graphql.Serve)
}

// setupMetrics configures Prometheus metrics and returns the auth event recorder
func (s *Server) setupMetrics() *metrics {
	m := newMetrics()
	s.echo.Use(m.middleware())
	s.echo.GET("/metrics", m.handler())
	return m
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	status := "ok"
	checks := make(map[string]interface{})

	if err := s.db.HealthCheck(ctx); err != nil {
		status = "error"
		checks["database"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["database"] = map[string]interface{}{
			"status": "ok",
			"stats":  s.db.GetConnectionInfo(),
		}
	}

	if s.redis != nil {
		if err := cache.HealthCheck(ctx, s.redis); err != nil {
			// Redis is optional: report it without failing the check
			checks["redis"] = map[string]interface{}{"status": "degraded", "error": err.Error()}
		} else {
			checks["redis"] = map[string]interface{}{"status": "ok"}
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

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.db.HealthCheck(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "database_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ServeHTTP lets the server be driven by httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler writes every error as {"message": ...} and logs 5xx
func customErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  = "Internal server error"
		)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Errorw("Internal server error",
				"error", err,
				"path", c.Request().URL.Path,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
		}

		if c.Response().Committed {
			return
		}

		resp := httpHandlers.ErrorResponse{Message: msg}
		// Debug mode exposes the underlying error on server failures
		if c.Echo().Debug && code >= http.StatusInternalServerError {
			resp.Details = err.Error()
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, resp)
		}
		if err != nil {
			log.Errorw("Error sending response", "error", err)
		}
	}
}

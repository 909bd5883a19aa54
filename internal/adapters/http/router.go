package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/handlers"
	"wisdomhub/internal/adapters/http/middleware"
	"wisdomhub/internal/auth"
	"wisdomhub/internal/platform/config"
	"wisdomhub/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// Sessions validates admin session tokens.
	Sessions *auth.Sessions

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the public quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// CatalogHandler handles the public author and tag endpoints.
	CatalogHandler *handlers.CatalogHandler

	// AuthHandler handles admin login and logout.
	AuthHandler *handlers.AuthHandler

	// AdminHandler handles the protected curation endpoints.
	AdminHandler *handlers.AdminHandler

	// AssistHandler handles the protected AI-assist endpoints.
	// Optional: when nil the assist routes are not registered.
	AssistHandler *handlers.AssistHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied on the API group)
//
// Route groups:
//   - /-/ (internal): health endpoints, no auth required
//   - /api/v1/ (public): browse and search, no auth required
//   - /api/v1/admin/ (protected): curation, requires a session cookie
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Health endpoints bypass auth and timeouts for probe reliability.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	cfg.CatalogHandler.RegisterCatalogRoutes(apiV1)

	admin := apiV1.Group("/admin")
	admin.POST("/login", cfg.AuthHandler.Login)
	admin.POST("/logout", cfg.AuthHandler.Logout)
	admin.GET("/session", cfg.AuthHandler.Session)

	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin(cfg.Sessions))

	cfg.AdminHandler.RegisterAdminRoutes(protected)

	if cfg.AssistHandler != nil {
		cfg.AssistHandler.RegisterAssistRoutes(protected)
	}
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/sristi/brainark-core/internal/api/handler"
	"github.com/sristi/brainark-core/internal/api/middleware"
	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
	"github.com/sristi/brainark-core/internal/infrastructure/http/handlers"

	_ "github.com/sristi/brainark-core/docs" // swagger spec
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The session facade is constructed by the caller (one per process, per the
// single-visitor session model) and passed in; rdb may be nil when the
// submission guard is disabled.
func NewRouter(session ports.Session, feed handler.NotificationFeed, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("brainark"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(session, jwtSecret, 24*time.Hour)
	bookingHandler := handler.NewBookingHandler(session)
	forumHandler := handler.NewForumHandler(session)
	notificationHandler := handler.NewNotificationHandler(feed)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Bookings ---
	bookings := e.Group("/v1/bookings", authMiddleware)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.ListMine)
	bookings.GET("/:id/invoice", bookingHandler.Invoice)
	bookings.GET("/:id/handoff", bookingHandler.Handoff)

	// --- Admin ---
	admin := e.Group("/v1/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.POST("/bookings/:id/confirm-payment", bookingHandler.ConfirmPayment)

	// --- Community board ---
	e.GET("/v1/posts", forumHandler.List)
	e.POST("/v1/posts", forumHandler.Create, authMiddleware)
	e.POST("/v1/posts/:id/like", forumHandler.Like, authMiddleware)

	// --- Notification feed ---
	e.GET("/v1/notifications", notificationHandler.Recent)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/orders-api/internal/api/handler"
	"github.com/storefront/orders-api/internal/api/middleware"
	"github.com/storefront/orders-api/internal/core/ports"
)

// Deps carries the collaborators the router wires into handlers. Services are
// constructed by the caller so the same instances can serve startup tasks.
type Deps struct {
	Orders    ports.OrderService
	Users     ports.UserService
	Auth      ports.AuthService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("orders_api"))

	authRequired := middleware.Auth(deps.JWTSecret)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth", authHandler.Login)

	// --- Users (registration is open; everything else requires auth) ---
	userHandler := handler.NewUserHandler(deps.Users)
	e.POST("/users", userHandler.Create)

	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.GET("/:userId", userHandler.Get)
	users.PUT("/:userId", userHandler.Update)
	users.DELETE("/:userId", userHandler.Delete)

	// --- Orders ---
	orderHandler := handler.NewOrderHandler(deps.Orders)
	orders := e.Group("/orders", authRequired)
	orders.GET("", orderHandler.List)
	orders.GET("/:orderId", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:orderId", orderHandler.Update)
	orders.DELETE("/:orderId", orderHandler.Delete)

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}

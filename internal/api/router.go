package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kidsync/childcare-api/docs"
	"github.com/kidsync/childcare-api/internal/api/handler"
	"github.com/kidsync/childcare-api/internal/api/middleware"
	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

// RouterDeps carries the injected dependencies the router wires together.
// Everything is constructed in main: the router owns no globals.
type RouterDeps struct {
	Accounts ports.AccountService
	Activity ports.ActivityService
	Recorder ports.ActivityRecorder
	Verifier ports.TokenVerifier
	Denylist ports.TokenDenylist
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("childcare"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Accounts, deps.Denylist, deps.Recorder)
	accountHandler := handler.NewAccountHandler(deps.Accounts)
	activityHandler := handler.NewActivityHandler(deps.Activity)

	authRequired := middleware.Auth(deps.Verifier, deps.Denylist)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	staffOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)
	e.GET("/auth/profile", authHandler.Me, authRequired)
	e.GET("/auth/session", authHandler.Session, authRequired)
	e.PUT("/auth/profile", authHandler.UpdateProfile, authRequired)

	// --- Account administration ---
	users := e.Group("/users", authRequired)
	users.GET("", accountHandler.List, staffOnly)
	users.GET("/:id", accountHandler.Get, staffOnly)
	users.PUT("/:id", accountHandler.Update, adminOnly)
	users.DELETE("/:id", accountHandler.SoftDelete, adminOnly)

	// --- Role-scoped sub-resources ---
	managers := e.Group("/managers", authRequired, adminOnly)
	managers.POST("", accountHandler.CreateWithRole(domain.RoleManager))
	managers.DELETE("/:id", accountHandler.DeleteWithRole(domain.RoleManager))

	nannies := e.Group("/nannies", authRequired, staffOnly)
	nannies.POST("", accountHandler.CreateWithRole(domain.RoleCaregiver))
	nannies.DELETE("/:id", accountHandler.DeleteWithRole(domain.RoleCaregiver))

	parents := e.Group("/parents", authRequired, staffOnly)
	parents.POST("", accountHandler.CreateWithRole(domain.RoleParent))
	parents.DELETE("/:id", accountHandler.DeleteWithRole(domain.RoleParent))

	// --- Activity trail ---
	e.GET("/activity", activityHandler.Recent, authRequired, adminOnly)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/controlempleados/employee-records/internal/api/handler"
	"github.com/controlempleados/employee-records/internal/api/middleware"
	"github.com/controlempleados/employee-records/internal/core/domain"
	"github.com/controlempleados/employee-records/internal/core/service"
	"github.com/controlempleados/employee-records/internal/infrastructure/config"
	mongostore "github.com/controlempleados/employee-records/internal/infrastructure/db/mongo"
	redisstore "github.com/controlempleados/employee-records/internal/infrastructure/db/redis"
	httphandlers "github.com/controlempleados/employee-records/internal/infrastructure/http/handlers"
	"github.com/controlempleados/employee-records/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("employee_records"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(service.TokenConfig{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Duration: cfg.JWT.Duration(),
	})

	authRepo := mongostore.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)

	employeeRepo := mongostore.NewEmployeeRepository(db)
	catalogCache := redisstore.NewCatalogCache(rdb)
	employeeService := service.NewEmployeeService(employeeRepo, catalogCache, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	authenticated := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/roles", authHandler.ListRoles)
	auth.GET("/me", authHandler.Me, authenticated)
	auth.POST("/activate/:id", authHandler.Activate, authenticated, adminOnly)
	auth.POST("/deactivate/:id", authHandler.Deactivate, authenticated, adminOnly)
	auth.GET("/users", authHandler.ListAccounts, authenticated, adminOnly)

	// --- Employee routes ---
	employees := e.Group("/api/employees")
	employees.GET("", employeeHandler.List)
	employees.GET("/genders", employeeHandler.ListGenders)
	employees.GET("/maritalstatuses", employeeHandler.ListMaritalStatuses)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create, authenticated, adminOnly)
	employees.PUT("/:id", employeeHandler.Update, authenticated, adminOnly)
	employees.DELETE("/:id", employeeHandler.Delete, authenticated, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/config"
	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/handler"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/middleware"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Stats    *handler.StatsHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
	// Ping checks the store for the health endpoint. Optional.
	Ping func(ctx context.Context) error
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middleware
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		deps.Logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.InternalServerError(c, "Internal server error")
		c.Abort()
	}))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Per-register rate limiter
	rateLimiter := middleware.NewClientRateLimiter(
		middleware.RateLimiterConfigFor(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration),
	)

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		v1.GET("/health", healthHandler(deps))

		// Public routes used by the register
		registerPublicRoutes(v1, h, deps)

		// Manager routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerProtectedRoutes(protected, h)
	}

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
	router.NoMethod(func(c *gin.Context) {
		response.ErrorWithCode(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return router
}

func healthHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": deps.Cfg.App.Name,
		})
	}
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.POST("/auth/login", h.Auth.Login)

	register := v1.Group("/register")
	{
		register.GET("/items", h.Product.RegisterItems)
		register.GET("/groups", h.Product.Groups)
		register.POST("/orders",
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo, Logger: deps.Logger}),
			h.Order.Save,
		)
	}

	v1.GET("/settings/language", h.Settings.GetLanguage)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.PUT("/auth/pin", h.Auth.ChangePIN)

	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.History)
		orders.GET("/:id", h.Order.Get)
	}

	sales := protected.Group("/sales")
	{
		sales.GET("/daily", h.Order.DailySales)
		sales.POST("/days", h.Order.MultipleDaysSales)
	}

	stats := protected.Group("/stats")
	{
		stats.GET("/revenue", h.Stats.Revenue)
		stats.GET("/orders", h.Stats.Orders)
		stats.GET("/products", h.Stats.Products)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/weekly", h.Report.Weekly)
		reports.GET("/summary", h.Report.Summary)
	}

	exports := protected.Group("/exports")
	{
		exports.GET("/weekly", h.Report.ExportWeekly)
		exports.GET("/summary", h.Report.ExportSummary)
		exports.GET("/orders", h.Report.ExportOrders)
		exports.GET("/products", h.Report.ExportProducts)
	}

	settings := protected.Group("/settings")
	{
		settings.PUT("/language", h.Settings.SetLanguage)
		settings.GET("/:key", h.Settings.Get)
		settings.PUT("/:key", h.Settings.Set)
	}

	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
		printer.POST("/orders/:id", h.Printer.PrintOrder)
	}
}

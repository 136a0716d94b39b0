package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/cafeteria-pos/internal/application/export"
	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/config"
	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/internal/infrastructure/database"
	"github.com/sangkips/cafeteria-pos/internal/infrastructure/pdf"
	"github.com/sangkips/cafeteria-pos/internal/infrastructure/repository"
	"github.com/sangkips/cafeteria-pos/internal/infrastructure/storage"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/handler"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/routes"
	"github.com/sangkips/cafeteria-pos/pkg/logger"
	"github.com/sangkips/cafeteria-pos/pkg/printer"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.App.Env, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.App.Location()
	if err != nil {
		zlog.Fatal("Invalid APP_TIMEZONE", zap.String("timezone", cfg.App.Timezone), zap.Error(err))
	}

	// Connect to database
	db, err := database.NewDB(&cfg.Database, cfg.App.Debug, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, zlog); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db, loc)

	var idempotencyRepo domainRepo.IdempotencyRepository
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			zlog.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := pingRedis(rdb); err != nil {
			zlog.Fatal("Failed to connect to redis", zap.Error(err))
		}
		idempotencyRepo = repository.NewRedisIdempotencyRepository(rdb)
		zlog.Info("Idempotency keys stored in redis")
	} else {
		idempotencyRepo = repository.NewIdempotencyRepository(db)
	}

	// Seed default data
	if err := database.SeedDefaultData(context.Background(), settingsRepo, cfg.Auth.ManagerPIN, zlog); err != nil {
		zlog.Warn("Failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.App.Name, cfg.JWT.Expiry)

	images, err := storage.New(&cfg.Storage)
	if err != nil {
		zlog.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		zlog.Warn("Failed to initialize printer", zap.Error(err))
		thermalPrinter = printer.NullPrinter{}
	}

	// Report rendering
	catalog, err := export.NewCatalog()
	if err != nil {
		zlog.Fatal("Failed to load translations", zap.Error(err))
	}
	htmlRenderer := export.NewHTMLRenderer(catalog, cfg.Report.CurrencySymbol, loc)
	pdfWriter := export.NewPDFWriter(
		pdf.NewChromeSurface(cfg.Report.ChromePath, cfg.Report.PDFTimeout),
		cfg.Report.TempDir,
		zlog,
	)

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(settingsRepo, jwtManager)
	statsService := service.NewStatsService(analyticsRepo)
	productService := service.NewProductService(itemRepo, images, cfg.Storage.UploadMaxSize, zlog)
	orderService := service.NewOrderService(orderRepo, loc)
	reportService := service.NewReportService(service.ReportServiceConfig{
		Builder:       report.NewBuilder(analyticsRepo),
		OrderRepo:     orderRepo,
		ItemRepo:      itemRepo,
		Settings:      settingsService,
		Catalog:       catalog,
		HTML:          htmlRenderer,
		PDF:           pdfWriter,
		Location:      loc,
		DefaultLocale: cfg.Report.DefaultLocale,
		Logger:        zlog,
	})
	printerService := service.NewPrinterService(thermalPrinter, orderService, cfg.Printer.StoreName, cfg.Printer.CharWidth, zlog)

	// Initialize handlers
	clock := handler.NewClock(loc)
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, clock),
		Product:  handler.NewProductHandler(productService),
		Order:    handler.NewOrderHandler(orderService, statsService, clock),
		Stats:    handler.NewStatsHandler(statsService, clock),
		Report:   handler.NewReportHandler(reportService, clock, cfg.Report.TempDir, zlog),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(printerService, clock),
	}

	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("Failed to access database pool", zap.Error(err))
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          zlog,
		Ping:            sqlDB.PingContext,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeIdempotencyKeys(ctx, idempotencyRepo, zlog)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("Starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server shutdown failed", zap.Error(err))
	}
}

// purgeIdempotencyKeys removes expired keys once an hour until ctx ends.
func purgeIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := repo.DeleteExpired(ctx, now); err != nil {
				log.Warn("Failed to purge idempotency keys", zap.Error(err))
			}
		}
	}
}

func pingRedis(rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

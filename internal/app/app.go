package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shadowme_backend/internal/config"
	"shadowme_backend/internal/database"
	"shadowme_backend/internal/email"
	"shadowme_backend/internal/handlers"
	"shadowme_backend/internal/logger"
	"shadowme_backend/internal/metrics"
	"shadowme_backend/internal/middleware"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/routes"
	"shadowme_backend/internal/services"
	"shadowme_backend/internal/validator"
	"shadowme_backend/internal/workers"
)

// Run boots the whole server: config, logging, database, migrations,
// background workers, and finally the HTTP listener.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the gin engine with all middleware and routes. Split
// out from Run so tests can drive the full stack over httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := newEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, emailProvider)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, v)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		metrics.GinMiddleware(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("Email delivery disabled, using noop provider")
		return email.NewNoopProvider()
	}

	renderer, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}
	return email.NewSMTPProvider(cfg, renderer)
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) {
	if cfg.Worker.CloseExpiredInterval <= 0 {
		return
	}

	interval := time.Duration(cfg.Worker.CloseExpiredInterval) * time.Minute
	worker := workers.NewMaintenanceWorker(
		repositories.NewOpportunityRepository(gormDB),
		repositories.NewUserRepository(gormDB),
		interval,
	)
	worker.Start(ctx)
	logger.Info("Maintenance worker started", "interval", interval)
}

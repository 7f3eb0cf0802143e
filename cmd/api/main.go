package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"todo-api/config"
	_ "todo-api/docs" // Swagger docs
	"todo-api/internal/httpserver"
	"todo-api/internal/middleware"
	"todo-api/internal/todo/repository"
	"todo-api/internal/todo/repository/memory"
	"todo-api/internal/todo/repository/orm"
	"todo-api/pkg/database"
	"todo-api/pkg/log"
)

// @title       Todo API
// @description CRUD service for todo items backed by memory or a SQL database.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	var (
		todoRepo repository.Repository
		db       *gorm.DB
	)

	switch repository.Backend(cfg.Repository.Backend) {
	case repository.BackendDatabase:
		dbOpts := cfg.DatabaseOptions()
		dbOpts.Logger = logger
		db, err = database.Open(dbOpts)
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect to %s database: %v", cfg.Database.Driver, err)
		}
		defer database.Close(db)

		ormRepo := orm.New(db, logger)
		if cfg.Database.AutoMigrate {
			if err := ormRepo.Migrate(ctx); err != nil {
				logger.Fatalf(ctx, "Failed to migrate todos table: %v", err)
			}
		}
		todoRepo = ormRepo
		logger.Infof(ctx, "Todo storage: %s database %q", cfg.Database.Driver, cfg.Database.Name)
	default:
		todoRepo = memory.New()
		logger.Info(ctx, "Todo storage: in-memory")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		},
		TodoRepository: todoRepo,
		DB:             db,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/auth"
	ledgerUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/ledger"
	reportUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/report"

	authAdapter "github.com/fintrack-app/fintrack/internal/infrastructure/adapter/auth"

	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/routes"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/database"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/database/migration"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/logger"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/repository"
	timeProvider "github.com/fintrack-app/fintrack/internal/infrastructure/adapter/time"
	"github.com/fintrack-app/fintrack/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	categoryRepo := repository.NewCategoryRepository(conn.DB, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger)

	// Initialize auth adapters
	tokens := authAdapter.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes, tp)
	hasher := authAdapter.NewBcryptHasher()

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, hasher, tokens, tp, appLogger)
	ledgerService := ledgerUseCase.NewService(uow, categoryRepo, transactionRepo, tp, appLogger, cfg.Ledger.MaxAmount)
	reportService := reportUseCase.NewService(categoryRepo, transactionRepo, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	categoryHandler := handler.NewCategoryHandler(ledgerService, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, appLogger)
	dashboardHandler := handler.NewDashboardHandler(reportService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(
		router,
		tokens,
		appLogger,
		authHandler,
		categoryHandler,
		transactionHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parsePort converts the configured port string to an int, falling back to
// the postgres default.
func parsePort(port string) int {
	parsed, err := strconv.Atoi(port)
	if err != nil || parsed <= 0 {
		return 5432
	}
	return parsed
}

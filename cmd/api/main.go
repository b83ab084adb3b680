// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/packtrack/packtrack-be/internal/adapters/db"
	redis_a "github.com/packtrack/packtrack-be/internal/adapters/redis_adapter"
	"github.com/packtrack/packtrack-be/internal/core/ports"
	"github.com/packtrack/packtrack-be/internal/core/services"
	"github.com/packtrack/packtrack-be/internal/handlers"
	"github.com/packtrack/packtrack-be/internal/handlers/middleware"
	"github.com/packtrack/packtrack-be/internal/pkg/config"
	"github.com/packtrack/packtrack-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting packtrack supply chain backend",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations if enabled
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.asynqClient != nil {
			if err := deps.asynqClient.Close(); err != nil {
				slogger.Error("failed to close Asynq client", slog.String("error", err.Error()))
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	houseService *services.ProductionHouseService

	transactionHandler *handlers.TransactionHandler
	authHandler        *handlers.AuthHandler
	directoryHandler   *handlers.DirectoryHandler
	reportHandler      *handlers.ReportHandler
	healthHandler      *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisOpts := &redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	}

	redisClient := redis.NewClient(redisOpts)

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	deps.asynqClient = asynqClient

	asynqInspector := asynq.NewInspector(asynqRedisOpt)
	deps.asynqInspector = asynqInspector

	// Repositories
	txRepo := db.NewTransactionRepository(database, logger)
	invRepo := db.NewInventoryRepository(database, logger)
	seqRepo := db.NewSequenceRepository(logger)
	houseRepo := db.NewProductionHouseRepository(database, logger)
	dirRepo := db.NewDirectoryRepository(database, logger)

	// Services
	txService := services.NewTransactionService(
		database, txRepo, invRepo, seqRepo, houseRepo, dirRepo,
		deps.redisCache, logger)
	deps.houseService = services.NewProductionHouseService(
		houseRepo, invRepo,
		cfg.Security.JWTSecret, cfg.Security.JWTExpiration, cfg.Security.BcryptCost,
		logger)
	dirService := services.NewDirectoryService(dirRepo, logger)
	exportService := services.NewExportService(asynqClient, deps.redisCache, logger)

	// Handlers
	deps.transactionHandler = handlers.NewTransactionHandler(txService, logger)
	deps.authHandler = handlers.NewAuthHandler(deps.houseService, logger)
	deps.directoryHandler = handlers.NewDirectoryHandler(dirService, logger)
	deps.reportHandler = handlers.NewReportHandler(txService, exportService, logger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		asynqInspector,
		cfg,
		logger,
	)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	// Middleware chain, applied in reverse order (innermost first)
	var handler http.Handler = mux

	handler = middleware.Auth(deps.houseService, slogger,
		"/api/v1/auth/register",
		"/api/v1/auth/login",
		"/health",
		"/ready",
		"/api/v1/health",
	)(handler)

	if cfg.App.Environment != "test" {
		requestLogger := logger.NewLogger(&logger.LogConfig{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Output:      "stdout",
			Environment: cfg.App.Environment,
			ServiceName: cfg.App.Name,
		})
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(requestLogger)(handler)
		handler = middleware.Recovery(slogger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}

	return server
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Authentication
	mux.HandleFunc("POST "+apiV1+"/auth/register", deps.authHandler.Register)
	mux.HandleFunc("POST "+apiV1+"/auth/login", deps.authHandler.Login)

	// Production houses
	mux.HandleFunc("GET "+apiV1+"/production-houses", deps.authHandler.ListHouses)
	mux.HandleFunc("GET "+apiV1+"/production-houses/{id}", deps.authHandler.GetHouse)
	mux.HandleFunc("GET "+apiV1+"/production-houses/{id}/stock", deps.authHandler.GetStock)

	// Transaction ledger
	mux.HandleFunc("POST "+apiV1+"/transactions", deps.transactionHandler.CreateTransaction)
	mux.HandleFunc("GET "+apiV1+"/transactions", deps.transactionHandler.ListTransactions)
	mux.HandleFunc("GET "+apiV1+"/transactions/{id}", deps.transactionHandler.GetTransaction)
	mux.HandleFunc("PATCH "+apiV1+"/transactions/{id}", deps.transactionHandler.UpdateTransaction)
	mux.HandleFunc("DELETE "+apiV1+"/transactions/{id}", deps.transactionHandler.DeleteTransaction)

	// Directory: parties
	mux.HandleFunc("POST "+apiV1+"/parties", deps.directoryHandler.CreateParty)
	mux.HandleFunc("GET "+apiV1+"/parties", deps.directoryHandler.ListParties)
	mux.HandleFunc("GET "+apiV1+"/parties/{id}", deps.directoryHandler.GetParty)
	mux.HandleFunc("PUT "+apiV1+"/parties/{id}", deps.directoryHandler.UpdateParty)
	mux.HandleFunc("DELETE "+apiV1+"/parties/{id}", deps.directoryHandler.DeleteParty)

	// Directory: factories
	mux.HandleFunc("POST "+apiV1+"/factories", deps.directoryHandler.CreateFactory)
	mux.HandleFunc("GET "+apiV1+"/factories", deps.directoryHandler.ListFactories)
	mux.HandleFunc("GET "+apiV1+"/factories/{id}", deps.directoryHandler.GetFactory)
	mux.HandleFunc("PUT "+apiV1+"/factories/{id}", deps.directoryHandler.UpdateFactory)
	mux.HandleFunc("DELETE "+apiV1+"/factories/{id}", deps.directoryHandler.DeleteFactory)

	// Directory: pallets
	mux.HandleFunc("POST "+apiV1+"/pallets", deps.directoryHandler.CreatePallet)
	mux.HandleFunc("GET "+apiV1+"/pallets", deps.directoryHandler.ListPallets)
	mux.HandleFunc("GET "+apiV1+"/pallets/{id}", deps.directoryHandler.GetPallet)
	mux.HandleFunc("PUT "+apiV1+"/pallets/{id}", deps.directoryHandler.UpdatePallet)
	mux.HandleFunc("DELETE "+apiV1+"/pallets/{id}", deps.directoryHandler.DeletePallet)

	// Directory: associate companies
	mux.HandleFunc("POST "+apiV1+"/associate-companies", deps.directoryHandler.CreateAssociateCompany)
	mux.HandleFunc("GET "+apiV1+"/associate-companies", deps.directoryHandler.ListAssociateCompanies)
	mux.HandleFunc("GET "+apiV1+"/associate-companies/{id}", deps.directoryHandler.GetAssociateCompany)
	mux.HandleFunc("PUT "+apiV1+"/associate-companies/{id}", deps.directoryHandler.UpdateAssociateCompany)
	mux.HandleFunc("DELETE "+apiV1+"/associate-companies/{id}", deps.directoryHandler.DeleteAssociateCompany)

	// Reports and exports
	mux.HandleFunc("GET "+apiV1+"/reports/transactions", deps.reportHandler.GetReport)
	mux.HandleFunc("POST "+apiV1+"/reports/export", deps.reportHandler.ExportReport)
	mux.HandleFunc("GET "+apiV1+"/reports/export/{id}", deps.reportHandler.ExportStatus)
	mux.HandleFunc("GET "+apiV1+"/stats/pallets", deps.reportHandler.PalletStats)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}

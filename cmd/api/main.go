package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/usecase/admin"
	"github.com/simplecyberhub/txc/internal/domain/usecase/auth"
	"github.com/simplecyberhub/txc/internal/domain/usecase/kyc"
	"github.com/simplecyberhub/txc/internal/domain/usecase/ledger"
	"github.com/simplecyberhub/txc/internal/domain/usecase/portfolio"
	"github.com/simplecyberhub/txc/internal/domain/usecase/transaction"

	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/handler"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/routes"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/database/migration"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/logger"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/metrics"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/notifier"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/ratelimit"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/security"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/storage"
	timeProvider "github.com/simplecyberhub/txc/internal/infrastructure/adapter/time"
	"github.com/simplecyberhub/txc/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		OutputPaths: []string{cfg.Logger.Output},
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	appMetrics := metrics.New()

	// Database
	dbManager := database.NewManager(databaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := dbManager.RegisterMetrics(appMetrics.Registry()); err != nil {
		appLogger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
	}

	uow := dbManager.CreateUnitOfWork()

	// Adapters
	tokens := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	store, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes, appLogger)
	if err != nil {
		return fmt.Errorf("prepare upload directory: %w", err)
	}

	var redisClient redis.UniversalClient
	if cfg.RateLimit.Enabled && cfg.RateLimit.Backend == ratelimit.BackendRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.New(ratelimit.Config{
			Backend: cfg.RateLimit.Backend,
			Limit:   cfg.RateLimit.Limit,
			Window:  cfg.RateLimit.Window,
		}, redisClient)
		if err != nil {
			return fmt.Errorf("create rate limiter: %w", err)
		}
	}

	// Use cases
	ledgerUC := ledger.NewLedgerUseCase(uow, tp, appLogger)
	portfolioUC := portfolio.NewPortfolioUseCase(uow, appLogger)
	watchlistUC := portfolio.NewWatchlistUseCase(uow, tp, appLogger)
	kycUC := kyc.NewKYCUseCase(uow, tp, appLogger, appMetrics)
	engine := transaction.NewEngine(uow, ledgerUC, portfolioUC, tp, appLogger, appMetrics)
	authUC := auth.NewAuthUseCase(auth.Dependencies{
		UoW:            uow,
		Ledger:         ledgerUC,
		Hasher:         security.NewBcryptHasher(cfg.Auth.BcryptCost),
		Tokens:         tokens,
		TokenGenerator: security.NewHexTokenGenerator(security.VerificationTokenBytes),
		Notifier:       notifier.NewLogNotifier(cfg.Server.BaseURL, appLogger),
		TimeProvider:   tp,
		Logger:         appLogger,
		Metrics:        appMetrics,
	}, cfg.Auth.VerificationTTL)
	adminUC := admin.NewAdminUseCase(uow, appLogger)
	contentUC := admin.NewContentUseCase(uow, tp, appLogger)
	settingUC := admin.NewSettingUseCase(uow, tp, appLogger)

	if err := migration.SeedAdmin(ctx, authUC, migration.AdminSeed{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, appLogger); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// HTTP
	router := gin.New()
	var extra []gin.HandlerFunc
	if cfg.Metrics.Enabled {
		extra = append(extra, appMetrics.Middleware())
	}
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, extra...)

	opts := routes.Options{
		Tokens:       tokens,
		Limiter:      limiter,
		TimeProvider: tp,
		Logger:       appLogger,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
		opts.Metrics = appMetrics.Handler()
	}

	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handler.NewAuthHandler(authUC, appLogger),
		Transaction: handler.NewTransactionHandler(engine, ledgerUC, appLogger),
		Portfolio:   handler.NewPortfolioHandler(portfolioUC, watchlistUC, engine, appLogger),
		KYC:         handler.NewKYCHandler(kycUC, store, store.MaxBytes(), appLogger),
		Admin:       handler.NewAdminHandler(adminUC, contentUC, settingUC, appLogger),
		Health:      handler.NewHealthHandler(dbManager, appLogger),
	}, opts)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		IsolationLevel:  cfg.Database.IsolationLevel,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   cfg.Database.SlowThreshold,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if err := databaseConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins should not contain '*' in production")
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/core/services"
	"github.com/tulu-g559/talkheal-backend/internal/handlers"
	"github.com/tulu-g559/talkheal-backend/internal/middleware"
	"github.com/tulu-g559/talkheal-backend/internal/platform/config"
	"github.com/tulu-g559/talkheal-backend/internal/repositories/database/pgsql"
	"github.com/tulu-g559/talkheal-backend/internal/utils"
	"github.com/tulu-g559/talkheal-backend/pkg/database"
)

// @title TalkHeal Backend API
// @version 1.0
// @description Journal, mood analytics and chat support backend for TalkHeal.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Gemini responder lives for the whole process; conversations fall back
	// to a canned reply when the model is unreachable.
	responder, err := services.NewLLMService(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		logger.Error("Failed to initialize chat responder", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := responder.Close(); cerr != nil {
			logger.Error("Error closing chat responder", slog.String("error", cerr.Error()))
		}
	}()

	repoProvider := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewContainer(cfg, &repoProvider, responder)

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	defer posthogClient.Close()

	r, err := buildRouter(cfg, logger, serviceContainer, posthogClient)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRouter assembles the gin engine with the global middleware chain and
// all application routes.
func buildRouter(cfg *config.Config, logger *slog.Logger, serviceContainer *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	// Global middleware (logging, recovery, cors, rate limit, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.RateLimit(ipLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)
	return r, nil
}

// runMigrations applies all pending "up" migrations using a short-lived
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

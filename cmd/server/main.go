package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"langportal/internal/config"
	"langportal/internal/handler"
	"langportal/internal/repository/postgres"
	"langportal/internal/seed"
	"langportal/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting lang portal API")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	newMigrator := func() (service.Migrator, error) {
		return buildMigrator(db, cfg.MigrationsPath)
	}
	if err := runMigrations(newMigrator, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	wordRepo := postgres.NewWordRepo(db)
	groupRepo := postgres.NewGroupRepo(db)
	activityRepo := postgres.NewStudyActivityRepo(db)
	sessionRepo := postgres.NewStudySessionRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	dashboardRepo := postgres.NewDashboardRepo(db)
	systemRepo := postgres.NewSystemRepo(db)

	// Initialize seeder and services
	seeder := seed.NewSeeder(db, cfg.SeedsDir, logger)

	wordService := service.NewWordService(wordRepo)
	groupService := service.NewGroupService(groupRepo, wordRepo, sessionRepo)
	activityService := service.NewStudyActivityService(activityRepo, sessionRepo)
	sessionService := service.NewStudySessionService(sessionRepo, groupRepo, activityRepo, wordRepo, reviewRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	systemService := service.NewSystemService(systemRepo, newMigrator, seeder, logger)

	// Seed baseline data on first start
	if err := seeder.SeedAll(context.Background()); err != nil {
		logger.Fatal("Failed to seed baseline data", zap.Error(err))
	}

	// Initialize router
	router := handler.NewRouter(handler.RouterConfig{
		Words:       handler.NewWordHandler(wordService, logger),
		Groups:      handler.NewGroupHandler(groupService, logger),
		Activities:  handler.NewStudyActivityHandler(activityService, logger),
		Sessions:    handler.NewStudySessionHandler(sessionService, logger),
		Dashboard:   handler.NewDashboardHandler(dashboardService, logger),
		System:      handler.NewSystemHandler(systemService, logger),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	// Start server in background
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// buildMigrator creates a migrate instance over the shared connection
func buildMigrator(db *sql.DB, migrationsPath string) (service.Migrator, error) {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// runMigrations applies any pending database migrations
func runMigrations(newMigrator service.MigratorFactory, logger *zap.Logger) error {
	m, err := newMigrator()
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}

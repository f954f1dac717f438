package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "gymdesk/docs"
	"gymdesk/internal/access"
	"gymdesk/internal/config"
	"gymdesk/internal/db"
	"gymdesk/internal/email"
	"gymdesk/internal/expiry"
	"gymdesk/internal/logger"
	"gymdesk/internal/membership"
	"gymdesk/internal/notification"
	"gymdesk/internal/server"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// @title GymDesk API
// @version 1.0
// @description Back office API for gym owners: gyms, staff, plans, members, memberships, payments, notifications and dashboards.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Info("Starting GymDesk", "env", cfg.Env, "port", cfg.Port)

	database, err := db.Connect(cfg.Database.URL, db.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis not reachable at startup, emails and logout will fail until it is", "addr", cfg.Redis.Addr, "error", err)
	}

	emailService := email.New(rdb, email.Config{
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
		SMTPHost: cfg.Email.SMTPHost,
		SMTPPort: cfg.Email.SMTPPort,
		SMTPUser: cfg.Email.SMTPUser,
		SMTPPass: cfg.Email.SMTPPass,
	})

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		emailService.Start(workerCtx)
	}()

	scheduler := newScheduler(cfg, database, emailService)
	scheduler.Start()

	srv := server.New(cfg, database, rdb, emailService)

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		serverErr <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received signal", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", "error", err)
		}
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("Scheduled jobs still running at shutdown")
	}

	stopWorker()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logger.Warn("Email worker did not stop in time")
	}

	if err := rdb.Close(); err != nil {
		logger.Error("Redis close failed", "error", err)
	}
	if err := database.Close(); err != nil {
		logger.Error("Database close failed", "error", err)
	}

	logger.Info("Server stopped")
}

// newScheduler sets up the periodic jobs: the membership expiry sweep and
// the email queue gauge refresh.
func newScheduler(cfg *config.Config, database *sqlx.DB, emailService *email.Service) *cron.Cron {
	var scheduler *cron.Cron

	if cfg.Expiry.Enabled {
		notifications := notification.NewService(
			notification.NewRepository(database),
			access.NewGate(access.NewRepository(database)),
		)
		sweeper := expiry.NewSweeper(membership.NewRepository(database), notifications, emailService, cfg.Expiry.ReminderDays)

		var err error
		scheduler, err = expiry.NewScheduler(sweeper, cfg.Expiry.Schedule)
		if err != nil {
			logger.Fatalf("Invalid expiry schedule %q: %v", cfg.Expiry.Schedule, err)
		}
		logger.Info("Membership expiry sweep scheduled", "schedule", cfg.Expiry.Schedule, "reminder_days", cfg.Expiry.ReminderDays)
	} else {
		scheduler = cron.New()
	}

	if _, err := scheduler.AddFunc("@every 1m", func() {
		emailService.QueueLength(context.Background())
	}); err != nil {
		logger.Fatalf("Failed to schedule queue gauge: %v", err)
	}

	return scheduler
}

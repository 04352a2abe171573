// cmd/allocation-server/main.go
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"internship-allocator/internal/archive"
	"internship-allocator/internal/auth"
	"internship-allocator/internal/common/aws"
	"internship-allocator/internal/common/config"
	"internship-allocator/internal/common/database"
	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/common/observability"
	"internship-allocator/internal/engine"
	"internship-allocator/internal/notify"
	"internship-allocator/internal/seed"
	"internship-allocator/internal/server"
	"internship-allocator/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting allocation server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("address", cfg.Server.Address),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis with retry (session backend) ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init PostgreSQL audit archive (optional) ---
	var auditor engine.Auditor
	if cfg.Database.Postgres.Enabled() {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()

		arch := archive.New(pg.DB, log)
		if err := arch.EnsureSchema(ctx); err != nil {
			zapLog.Fatal("archive schema setup failed", zap.Error(err))
		}
		auditor = arch
		zapLog.Info("PostgreSQL audit archive enabled")
	} else {
		zapLog.Info("PostgreSQL not configured, audit archive disabled")
	}

	// --- Stores ---
	postings := store.NewPostingRegistry()
	applicants := store.NewApplicantStore()
	ledger := store.NewRosterLedger()
	feed := store.NewNotificationFeed()
	meetings := store.NewMeetingBook()

	// --- Notifications ---
	var snsClient *aws.SNSClient
	if cfg.Notifications.SNSTopicARN != "" {
		snsClient, err = aws.NewSNSClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		zapLog.Info("SNS fan-out enabled", zap.String("topic", cfg.Notifications.SNSTopicARN))
	}
	notifier := notify.NewFeedNotifier(feed, snsClient, cfg.Notifications.SNSTopicARN, log)

	var sender notify.Sender
	if cfg.Notifications.EmailEnabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		sender = notify.NewSESSender(sesClient, cfg.Notifications.FromAddress)
		zapLog.Info("SES email delivery enabled", zap.String("from", cfg.Notifications.FromAddress))
	} else {
		sender = notify.NewSimulatedSender(log)
		zapLog.Info("Email delivery simulated")
	}
	dispatcher := notify.NewDispatcher(sender, cfg.Notifications.QueueSize, log)
	defer dispatcher.Close()

	// --- Engine ---
	eng := engine.New(postings, applicants, ledger, notifier, log, engine.Options{
		AssessBaseURL:      cfg.Allocation.AssessBaseURL,
		EnforceManualGuard: cfg.Allocation.EnforceManualGuard,
		Auditor:            auditor,
	})

	// --- Auth ---
	directory := auth.NewUserDirectory()
	sessions := auth.NewSessionStore(redisClient.Client, time.Duration(cfg.Auth.SessionTTL)*time.Second)
	authSvc := auth.NewService(directory, sessions, cfg.Auth.MinPasswordLen, log)

	// --- Seed data ---
	if cfg.Auth.SeedUsers {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if err := seed.Load(rng, postings, applicants, directory); err != nil {
			zapLog.Fatal("seed data load failed", zap.Error(err))
		}
		zapLog.Info("Demo dataset seeded",
			zap.Int("departments", len(seed.Sectors)),
			zap.Int("hrAccounts", directory.Count()),
		)
	}

	// --- HTTP server ---
	srv := server.New(server.Deps{
		Engine:        eng,
		Postings:      postings,
		Applicants:    applicants,
		Ledger:        ledger,
		Feed:          feed,
		Meetings:      meetings,
		Auth:          authSvc,
		Dispatcher:    dispatcher,
		Logger:        log,
		Observability: obs,
	}, server.Options{
		TopPercentDefault: cfg.Allocation.TopPercentDefault,
		MeetBaseURL:       cfg.Allocation.MeetBaseURL,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown error", zap.Error(err))
	}

	zapLog.Info("Allocation server stopped")
}

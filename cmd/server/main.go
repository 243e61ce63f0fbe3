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

	"knowledge-base-backend/internal/api/routes"
	"knowledge-base-backend/internal/blob"
	"knowledge-base-backend/internal/config"
	"knowledge-base-backend/internal/database"
	"knowledge-base-backend/internal/events"
	"knowledge-base-backend/internal/index"
	"knowledge-base-backend/internal/lock"
	"knowledge-base-backend/internal/repository"
	"knowledge-base-backend/internal/service"

	"github.com/cenkalti/backoff/v5"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Knowledge Base Backend API
//	@version		1.0
//	@description	Multi-tenant document knowledge base with subscription-gated chat over an external search index.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const (
	shutdownTimeout     = 30 * time.Second
	indexPrepareTimeout = 30 * time.Second
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// External index; without it documents fail their sync and chat answers with a notice
	var provider index.Provider
	if cfg.MeiliURL != "" {
		meiliProvider := index.NewMeiliProvider(cfg.MeiliURL, cfg.MeiliAPIKey, cfg.MeiliIndex)
		if err := prepareIndex(ctx, meiliProvider); err != nil {
			// stays wired; the index is prepared on first use and health reports it degraded
			logrus.WithError(err).Warn("Search index not ready yet, continuing")
		}
		provider = meiliProvider
	}

	var blobs blob.Store = blob.NopStore{}
	if cfg.MinioEndpoint != "" {
		store, err := blob.NewMinioStore(ctx, blob.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			logrus.Fatal("Failed to initialize object storage:", err)
		}
		blobs = store
	}

	var locker lock.Locker
	var redisLocker *lock.RedisLocker
	if cfg.RedisURL != "" {
		redisLocker, err = lock.NewRedisLocker(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, sync lock is process-local")
		} else {
			locker = redisLocker
		}
	}

	var publisher events.Publisher = events.NopPublisher{}
	var natsPublisher *events.NatsPublisher
	if cfg.NatsURL != "" {
		natsPublisher, err = events.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			logrus.WithError(err).Warn("NATS unavailable, document status events are disabled")
		} else {
			publisher = natsPublisher
		}
	}

	engine := service.NewIndexSyncEngine(repository.NewDocumentRepository(db), provider, locker, publisher, service.SyncConfig{
		PollInterval:    cfg.SyncPollInterval,
		MaxPollAttempts: cfg.SyncMaxPollAttempts,
		UploadTimeout:   cfg.SyncUploadTimeout,
		UploadMaxTries:  3,
	})

	// rows left behind by a process that did not shut down cleanly
	if swept, err := engine.RecoverInterrupted(ctx); err != nil {
		logrus.WithError(err).Error("Failed to recover interrupted document syncs")
	} else if swept > 0 {
		logrus.Warnf("Marked %d interrupted document syncs as failed", swept)
	}
	engine.StartRecovery()

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, routes.Dependencies{
		SyncEngine: engine,
		Blobs:      blobs,
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	// in-flight syncs are marked failed so they can be re-uploaded
	if err := engine.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Index sync engine did not stop cleanly")
	}
	if natsPublisher != nil {
		natsPublisher.Close()
	}
	if redisLocker != nil {
		if err := redisLocker.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logrus.Info("Server stopped")
}

func prepareIndex(ctx context.Context, provider *index.MeiliProvider) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := provider.EnsureIndex(attemptCtx); err != nil {
			logrus.WithError(err).Debug("Search index not reachable, retrying")
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(indexPrepareTimeout))
	return err
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

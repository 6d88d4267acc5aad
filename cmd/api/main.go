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

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/api/handlers"
	"github.com/whenwework/platform-go/internal/api/middleware"
	"github.com/whenwework/platform-go/internal/api/routes"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/config/db"
	"github.com/whenwework/platform-go/internal/cron"
	"github.com/whenwework/platform-go/internal/events"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/internal/pending"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/internal/storage"
	"github.com/whenwework/platform-go/pkg/logger"
	"go.uber.org/zap"
)

// @title WhenWeWork API
// @version 1.0
// @description Job marketplace backend: businesses, admins, workers, jobs and applications.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	// Initialize JWT signing key
	middleware.Init(cfg.Auth)
	handlers.RegisterValidation()

	gdb, err := db.Init(cfg.Database, cfg.Debug)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	repos := repository.NewRepositories(gdb)

	ctx := context.Background()

	var (
		store  pending.Store
		purger cron.Purger
	)
	switch cfg.Pending.Store {
	case "redis":
		client, err := pending.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			zlog.Fatal("failed to connect redis", zap.Error(err))
		}
		defer func() { _ = client.Close() }()
		store = pending.NewRedisStore(client, cfg.Pending.TTL)
	default:
		mem := pending.NewMemoryStore(cfg.Pending.TTL)
		store, purger = mem, mem
	}

	mail, err := mailer.New(ctx, cfg.Email, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize mailer", zap.Error(err))
	}

	var objects storage.ObjectStore = storage.DisabledStore{}
	if cfg.Minio.Enabled {
		ms, err := storage.NewMinioStore(ctx, cfg.Minio)
		if err != nil {
			zlog.Fatal("failed to initialize object storage", zap.Error(err))
		}
		objects = ms
	}

	hub := events.NewHub(zlog)
	services := application.New(repos, application.Deps{
		Mailer:     mail,
		Pending:    store,
		Storage:    objects,
		Events:     hub,
		Logger:     zlog,
		TokenTTL:   cfg.Auth.AccessTokenTTL(),
		PendingTTL: cfg.Pending.TTL,
	})

	// Start background tasks
	var cleaner cron.AuditCleaner
	if cfg.Audit.EmbeddedCleanup {
		cleaner = services.Audit
	}
	scheduler, err := cron.NewScheduler(cfg.Audit, cleaner, purger, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize scheduler", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handlers.New(services, repos, hub, handlers.Options{
		AppName:      cfg.AppName,
		AppVersion:   cfg.AppVersion,
		SecureCookie: cfg.IsProduction(),
		Logger:       zlog,
	})
	router := routes.NewRouter(h, routes.Options{
		APIPrefix:   cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      zlog,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("addr", srv.Addr), zap.String("version", cfg.AppVersion))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
}

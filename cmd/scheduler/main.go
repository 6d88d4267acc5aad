package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/config/db"
	"github.com/whenwework/platform-go/internal/cron"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/logger"
	"go.uber.org/zap"
)

// Standalone audit retention worker. Deploy it with AUDIT_EMBEDDED_CLEANUP=false
// on the API so only one process prunes the audit table.
func main() {
	once := flag.Bool("once", false, "run the audit cleanup a single time and exit")
	flag.Parse()

	// Load configuration from environment variables and .env file
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()

	gdb, err := db.Init(cfg.Database, cfg.Debug)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	audit := application.NewAuditService(repository.NewRepositories(gdb))

	sched, err := cron.NewScheduler(cfg.Audit, audit, nil, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize scheduler", zap.Error(err))
	}

	if *once {
		sched.CleanupAuditLogs()
		return
	}

	sched.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	zlog.Info("shutdown signal")
	sched.Stop()
}

package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/metrics"
	"go.uber.org/zap"
)

const purgeSchedule = "@every 1m"

type AuditCleaner interface {
	CleanupOldLogs(ctx context.Context, retentionDays int) (int64, error)
}

// Purger drops expired entries from an in-process store.
type Purger interface {
	Purge() int
	Len() int
}

type Scheduler struct {
	cron    *cron.Cron
	audit   AuditCleaner
	pending Purger
	cfg     config.AuditConfig
	logger  *zap.Logger
}

// NewScheduler registers the cleanup jobs. pending may be nil when
// registrations are kept in Redis, which expires keys itself. audit is nil
// when retention runs in the standalone scheduler process.
func NewScheduler(cfg config.AuditConfig, audit AuditCleaner, pending Purger, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		audit:   audit,
		pending: pending,
		cfg:     cfg,
		logger:  logger,
	}

	if audit != nil {
		if _, err := s.cron.AddFunc(cfg.CleanupSchedule, s.CleanupAuditLogs); err != nil {
			return nil, err
		}
	}
	if pending != nil {
		if _, err := s.cron.AddFunc(purgeSchedule, s.PurgePending); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start runs the audit cleanup once and then hands over to the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting background cleanup", zap.Int("jobs", s.Entries()))
	if s.audit != nil {
		go s.CleanupAuditLogs()
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cleanup scheduler stopped")
}

func (s *Scheduler) CleanupAuditLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.audit.CleanupOldLogs(ctx, s.cfg.RetentionDays)
	if err != nil {
		s.logger.Error("failed to cleanup old audit logs", zap.Error(err))
		return
	}
	metrics.AuditLogsPurged.Add(float64(n))
	s.logger.Info("audit log cleanup completed", zap.Int64("deleted", n))
}

func (s *Scheduler) PurgePending() {
	if n := s.pending.Purge(); n > 0 {
		s.logger.Debug("purged expired registrations", zap.Int("count", n))
	}
	metrics.PendingRegistrations.Set(float64(s.pending.Len()))
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

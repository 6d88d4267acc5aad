package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeAudit struct {
	days    int
	deleted int64
	err     error
}

func (f *fakeAudit) CleanupOldLogs(_ context.Context, days int) (int64, error) {
	f.days = days
	return f.deleted, f.err
}

type fakePurger struct{ purged, left int }

func (f *fakePurger) Purge() int { return f.purged }
func (f *fakePurger) Len() int   { return f.left }

func TestNewScheduler_RegistersJobs(t *testing.T) {
	cfg := config.AuditConfig{RetentionDays: 30, CleanupSchedule: "@daily"}

	s, err := NewScheduler(cfg, &fakeAudit{}, &fakePurger{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Entries())

	s, err = NewScheduler(cfg, &fakeAudit{}, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())

	s, err = NewScheduler(cfg, nil, &fakePurger{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())
}

func TestScheduler_StartStopWithoutAudit(t *testing.T) {
	s, err := NewScheduler(config.AuditConfig{CleanupSchedule: "@daily"}, nil, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Entries())
	s.Start()
	s.Stop()
}

func TestNewScheduler_BadSchedule(t *testing.T) {
	_, err := NewScheduler(config.AuditConfig{CleanupSchedule: "not a schedule"}, &fakeAudit{}, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestCleanupAuditLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := &fakeAudit{deleted: 4}
	s, err := NewScheduler(config.AuditConfig{RetentionDays: 14, CleanupSchedule: "@daily"}, audit, nil, zap.New(core))
	require.NoError(t, err)

	s.CleanupAuditLogs()
	assert.Equal(t, 14, audit.days)
	assert.Equal(t, 1, logs.FilterMessage("audit log cleanup completed").Len())

	audit.err = errors.New("db down")
	s.CleanupAuditLogs()
	assert.Equal(t, 1, logs.FilterMessage("failed to cleanup old audit logs").Len())
}

func TestPurgePending(t *testing.T) {
	p := &fakePurger{purged: 2, left: 1}
	s, err := NewScheduler(config.AuditConfig{CleanupSchedule: "@daily"}, &fakeAudit{}, p, zap.NewNop())
	require.NoError(t, err)
	s.PurgePending()
}

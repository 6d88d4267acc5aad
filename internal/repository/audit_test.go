package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/audit"
)

func TestGetAuditLogs_ResourceHistory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepo(db)

	resource, key := audit.ResourceJobApplication, audit.ResourceKey(20)
	mock.ExpectQuery(`^` + regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE resource_type = $1 AND resource_id = $2 ORDER BY created_at ASC, id ASC`) + `$`).
		WithArgs("job_application", "id=20").
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "resource_type", "resource_id"}).
			AddRow(1, audit.ActionCreate, resource, key).
			AddRow(2, audit.ActionUpdate, resource, key))

	logs, err := repo.GetAuditLogs(context.Background(), AuditQueryParams{
		ResourceType: &resource,
		ResourceID:   &key,
		OldestFirst:  true,
	})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionCreate, logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAuditLogs_NewestFirstByDefault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepo(db)

	uid := uint(3)
	mock.ExpectQuery(`^` + regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE user_id = $1 ORDER BY created_at DESC`) + `$`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetAuditLogs(context.Background(), AuditQueryParams{UserID: &uid})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/job"
)

func TestJobUpdate_NeverWritesHiredCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepo(db)

	mock.ExpectExec(`^` + regexp.QuoteMeta(`UPDATE "jobs" SET "title"=$1,"updated_at"=$2 WHERE id = $3`) + `$`).
		WithArgs("B", sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// stale values for the counter and owner are dropped
	err := repo.Update(context.Background(), 4, map[string]any{
		"title":         "B",
		"workers_hired": 2,
		"admin_id":      99,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobUpdate_FromInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepo(db)

	salary := int64(300)
	status := job.StatusInactive
	in := job.UpdateJobInput{Salary: &salary, Status: &status}

	mock.ExpectExec(`^` + regexp.QuoteMeta(`UPDATE "jobs" SET "salary"=$1,"status"=$2,"updated_at"=$3 WHERE id = $4`) + `$`).
		WithArgs(salary, "inactive", sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 4, in.Changes()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobUpdate_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "jobs" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 4, map[string]any{"title": "B"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDelete_ReferencedByApplications(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "jobs" WHERE "jobs"."id" = $1`)).
		WithArgs(4).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_job_applications_job"})

	err := repo.Delete(context.Background(), 4)
	assert.ErrorIs(t, err, ErrInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobApplicationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "job_applications" WHERE job_id = $1`)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountByJob(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

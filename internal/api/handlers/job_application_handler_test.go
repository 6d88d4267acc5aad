package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/domain/jobapplication"
	"github.com/whenwework/platform-go/internal/repository"
)

func appliedApplication() jobapplication.JobApplication {
	return jobapplication.JobApplication{
		ID: 20, JobID: 4, WorkerID: 8,
		ApprovedStatus: jobapplication.ApprovedStatusApplied,
		WorkStatus:     jobapplication.WorkStatusPending,
		PaymentStatus:  jobapplication.PaymentStatusPending,
	}
}

func TestApply_Duplicate(t *testing.T) {
	env := setupTestEnv(t)
	env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3, Status: job.StatusActive, IsActive: true}, nil)
	env.apps.EXPECT().GetByJobAndWorker(gomock.Any(), uint(4), uint(8)).Return(appliedApplication(), nil)

	w, body := env.do(t, http.MethodPost, "/api/v1/job_applications", workerToken(t), map[string]any{"job_id": 4})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, body.Success)
}

func TestApply_AdminForbidden(t *testing.T) {
	env := setupTestEnv(t)
	w, _ := env.do(t, http.MethodPost, "/api/v1/job_applications", adminToken(t), map[string]any{"job_id": 4})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApprove(t *testing.T) {
	t.Run("assigns the worker and publishes", func(t *testing.T) {
		env := setupTestEnv(t)
		events, cancel := env.hub.Subscribe(3)
		defer cancel()

		approved := appliedApplication()
		approved.ApprovedStatus = jobapplication.ApprovedStatusApproved
		approved.WorkStatus = jobapplication.WorkStatusAssigned

		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(appliedApplication(), nil)
		env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)
		env.apps.EXPECT().Transition(gomock.Any(), uint(20), jobapplication.ActionApprove).Return(approved, nil)

		w, body := env.do(t, http.MethodPost, "/api/v1/job_applications/20/approve", adminToken(t), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var app jobapplication.JobApplication
		require.NoError(t, json.Unmarshal(body.Data, &app))
		assert.Equal(t, jobapplication.WorkStatusAssigned, app.WorkStatus)

		ev := <-events
		assert.Equal(t, jobapplication.EventApproved, ev.Type)
		assert.Equal(t, uint(20), ev.ApplicationID)

		require.Len(t, *env.audited, 1)
		assert.Equal(t, auditCall{"update", "job_application", "id=20"}, (*env.audited)[0])
	})

	t.Run("already decided is a conflict", func(t *testing.T) {
		env := setupTestEnv(t)
		done := appliedApplication()
		done.ApprovedStatus = jobapplication.ApprovedStatusApproved
		done.WorkStatus = jobapplication.WorkStatusAssigned

		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(done, nil)
		env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)

		w, _ := env.do(t, http.MethodPost, "/api/v1/job_applications/20/approve", adminToken(t), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, *env.audited)
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		env := setupTestEnv(t)
		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(appliedApplication(), nil)
		env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)
		env.apps.EXPECT().Transition(gomock.Any(), uint(20), jobapplication.ActionApprove).
			Return(jobapplication.JobApplication{}, repository.ErrStaleState)

		w, _ := env.do(t, http.MethodPost, "/api/v1/job_applications/20/approve", adminToken(t), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("worker token", func(t *testing.T) {
		env := setupTestEnv(t)
		w, _ := env.do(t, http.MethodPost, "/api/v1/job_applications/20/approve", workerToken(t), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("another admin's job", func(t *testing.T) {
		env := setupTestEnv(t)
		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(appliedApplication(), nil)
		env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 42}, nil)

		w, _ := env.do(t, http.MethodPost, "/api/v1/job_applications/20/approve", adminToken(t), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("needs exactly one field", func(t *testing.T) {
		env := setupTestEnv(t)
		w, _ := env.do(t, http.MethodPut, "/api/v1/job_applications/20", adminToken(t), map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = env.do(t, http.MethodPut, "/api/v1/job_applications/20", adminToken(t), map[string]any{
			"approved_status": "approved", "payment_status": "paid",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reject dispatches to the workflow", func(t *testing.T) {
		env := setupTestEnv(t)
		rejected := appliedApplication()
		rejected.ApprovedStatus = jobapplication.ApprovedStatusRejected

		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(appliedApplication(), nil)
		env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)
		env.apps.EXPECT().Transition(gomock.Any(), uint(20), jobapplication.ActionReject).Return(rejected, nil)

		w, _ := env.do(t, http.MethodPut, "/api/v1/job_applications/20", adminToken(t), map[string]any{
			"approved_status": "rejected",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWithdraw_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(jobapplication.JobApplication{}, repository.ErrNotFound)

	w, _ := env.do(t, http.MethodDelete, "/api/v1/job_applications/20", workerToken(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprovalPanel(t *testing.T) {
	t.Run("defaults to applied", func(t *testing.T) {
		env := setupTestEnv(t)
		env.apps.EXPECT().ApprovalPanel(gomock.Any(), uint(3), jobapplication.ApprovedStatusApplied).Return(nil, nil)

		w, body := env.do(t, http.MethodGet, "/api/v1/job_applications/approval-panel", adminToken(t), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", string(body.Data))
	})

	t.Run("invalid status", func(t *testing.T) {
		env := setupTestEnv(t)
		w, _ := env.do(t, http.MethodGet, "/api/v1/job_applications/approval-panel?status=maybe", adminToken(t), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWorkerRevenue_CompletedOnly(t *testing.T) {
	env := setupTestEnv(t)
	env.apps.EXPECT().WorkerRevenueRows(gomock.Any(), uint(8)).Return([]jobapplication.RevenueRow{
		{ApplicationID: 1, Salary: 100, WorkStatus: jobapplication.WorkStatusCompleted},
		{ApplicationID: 2, Salary: 50, WorkStatus: jobapplication.WorkStatusAssigned},
	}, nil)

	w, body := env.do(t, http.MethodGet, "/api/v1/job_applications/worker/revenue", workerToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rev jobapplication.WorkerRevenue
	require.NoError(t, json.Unmarshal(body.Data, &rev))
	assert.Equal(t, int64(100), rev.TotalSalary)
}

func TestApplicationHistory(t *testing.T) {
	t.Run("applicant sees the application's entries", func(t *testing.T) {
		env := setupTestEnv(t)
		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(appliedApplication(), nil)
		env.audit.EXPECT().GetAuditLogs(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p repository.AuditQueryParams) ([]audit.AuditLog, error) {
			require.NotNil(t, p.ResourceType)
			require.NotNil(t, p.ResourceID)
			assert.Equal(t, "job_application", *p.ResourceType)
			assert.Equal(t, "id=20", *p.ResourceID)
			assert.Nil(t, p.UserID)
			assert.True(t, p.OldestFirst)
			return []audit.AuditLog{
				{ID: 1, Action: audit.ActionCreate, ResourceType: *p.ResourceType, ResourceID: *p.ResourceID},
				{ID: 2, Action: audit.ActionUpdate, ResourceType: *p.ResourceType, ResourceID: *p.ResourceID},
			}, nil
		})

		w, body := env.do(t, http.MethodGet, "/api/v1/job_applications/20/history", workerToken(t), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var logs []audit.AuditLog
		require.NoError(t, json.Unmarshal(body.Data, &logs))
		require.Len(t, logs, 2)
		assert.Equal(t, audit.ActionCreate, logs[0].Action)
	})

	t.Run("admin of another job is refused", func(t *testing.T) {
		env := setupTestEnv(t)
		env.apps.EXPECT().GetByID(gomock.Any(), uint(20)).Return(appliedApplication(), nil)
		env.jobs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 5}, nil)

		w, _ := env.do(t, http.MethodGet, "/api/v1/job_applications/20/history", adminToken(t), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

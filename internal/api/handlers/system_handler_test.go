package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/internal/repository"
)

func TestRootAndHealth(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &info))
	assert.Equal(t, "WhenWeWork", info["name"])
	assert.Equal(t, "running", info["status"])

	w, _ = env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	env.do(t, http.MethodGet, "/", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAuthStatus(t *testing.T) {
	env := setupTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/api/v1/auth/status", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := env.do(t, http.MethodGet, "/api/v1/auth/status", workerToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &status))
	assert.Equal(t, "valid", status["status"])
	assert.EqualValues(t, 8, status["user_id"])
}

func TestAuditLogs(t *testing.T) {
	t.Run("defaults to the caller", func(t *testing.T) {
		env := setupTestEnv(t)
		env.audit.EXPECT().GetAuditLogs(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p repository.AuditQueryParams) ([]audit.AuditLog, error) {
				require.NotNil(t, p.UserID)
				assert.Equal(t, uint(3), *p.UserID)
				assert.Equal(t, 100, p.Limit)
				return []audit.AuditLog{{ID: 1, UserID: 3, Action: "login"}}, nil
			})

		w, _ := env.do(t, http.MethodGet, "/api/v1/audit/logs?limit=5000", adminToken(t), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("another tenant's user", func(t *testing.T) {
		env := setupTestEnv(t)
		env.users.EXPECT().GetByID(gomock.Any(), uint(50)).Return(user.User{ID: 50, UserRole: user.RoleWorker, AdminID: uintPtr(42)}, nil)

		w, _ := env.do(t, http.MethodGet, "/api/v1/audit/logs?user_id=50", adminToken(t), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("co-admin of the same business", func(t *testing.T) {
		env := setupTestEnv(t)
		env.users.EXPECT().GetByID(gomock.Any(), uint(51)).Return(user.User{ID: 51, UserRole: user.RoleAdmin, BusinessID: uintPtr(1)}, nil)

		w, _ := env.do(t, http.MethodGet, "/api/v1/audit/logs?user_id=51", adminToken(t), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("own worker", func(t *testing.T) {
		env := setupTestEnv(t)
		env.users.EXPECT().GetByID(gomock.Any(), uint(8)).Return(user.User{ID: 8, UserRole: user.RoleWorker, AdminID: uintPtr(3)}, nil)
		env.audit.EXPECT().GetAuditLogs(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p repository.AuditQueryParams) ([]audit.AuditLog, error) {
				assert.Equal(t, uint(8), *p.UserID)
				return nil, nil
			})

		w, _ := env.do(t, http.MethodGet, "/api/v1/audit/logs?user_id=8", adminToken(t), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad time", func(t *testing.T) {
		env := setupTestEnv(t)
		w, _ := env.do(t, http.MethodGet, "/api/v1/audit/logs?start_time=yesterday", adminToken(t), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

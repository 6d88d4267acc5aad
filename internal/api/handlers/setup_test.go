package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/api/handlers"
	"github.com/whenwework/platform-go/internal/api/middleware"
	"github.com/whenwework/platform-go/internal/api/routes"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/internal/events"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/internal/repository/mock"
	"github.com/whenwework/platform-go/pkg/utils"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.Init(config.AuthConfig{Secret: "test-secret", Issuer: "test", AccessTokenMinutes: 30})
	handlers.RegisterValidation()
}

type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

type auditCall struct {
	action, resourceType, resourceID string
}

type testEnv struct {
	router   *gin.Engine
	users    *mock.MockUserRepo
	business *mock.MockBusinessRepo
	jobs     *mock.MockJobRepo
	apps     *mock.MockJobApplicationRepo
	audit    *mock.MockAuditRepo
	mailer   *captureMailer
	hub      *events.Hub
	audited  *[]auditCall
}

func setupTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	env := &testEnv{
		users:    mock.NewMockUserRepo(ctrl),
		business: mock.NewMockBusinessRepo(ctrl),
		jobs:     mock.NewMockJobRepo(ctrl),
		apps:     mock.NewMockJobApplicationRepo(ctrl),
		audit:    mock.NewMockAuditRepo(ctrl),
		mailer:   &captureMailer{},
		hub:      events.NewHub(zap.NewNop()),
	}
	repos := &repository.Repos{
		Business:       env.business,
		User:           env.users,
		Job:            env.jobs,
		JobApplication: env.apps,
		Audit:          env.audit,
	}

	var calls []auditCall
	env.audited = &calls
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(_ *gin.Context, action, resourceType, resourceID string, _, _ any, _ string, _ repository.AuditRepo) {
		calls = append(calls, auditCall{action, resourceType, resourceID})
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	svc := application.New(repos, application.Deps{Mailer: env.mailer, Events: env.hub})
	h := handlers.New(svc, repos, env.hub, handlers.Options{AppName: "WhenWeWork", AppVersion: "test"})
	env.router = routes.NewRouter(h, routes.Options{APIPrefix: "/api/v1", CORSOrigins: []string{"*"}})
	return env
}

func tokenFor(t *testing.T, u user.User) string {
	tok, err := middleware.GenerateToken(u, time.Hour)
	require.NoError(t, err)
	return tok
}

func uintPtr(v uint) *uint { return &v }

func adminToken(t *testing.T) string {
	return tokenFor(t, user.User{ID: 3, UserRole: user.RoleAdmin, BusinessID: uintPtr(1)})
}

func workerToken(t *testing.T) string {
	return tokenFor(t, user.User{ID: 8, UserRole: user.RoleWorker, AdminID: uintPtr(3), BusinessID: uintPtr(1)})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && w.Code != http.StatusNoContent {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/whenwework/platform-go/internal/api/handlers"
	"github.com/whenwework/platform-go/internal/api/middleware"
	"github.com/whenwework/platform-go/internal/api/routes"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/config/db"
	"github.com/whenwework/platform-go/internal/events"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router *gin.Engine
	DB     *gorm.DB
	Mailer *CaptureMailer
}

var testCtx *TestContext

// CaptureMailer keeps every message so tests can read OTPs and passwords.
type CaptureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *CaptureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// LastTo returns the most recent message sent to addr.
func (m *CaptureMailer) LastTo(addr string) (mailer.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].To == addr {
			return m.sent[i], true
		}
	}
	return mailer.Message{}, false
}

func GetTestContext() *TestContext {
	return testCtx
}

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	ctx := context.Background()

	container, dbCfg, err := startPostgres(ctx)
	if err != nil {
		log.Fatalf("Failed to start postgres: %v", err)
	}

	if err := setupTestEnvironment(dbCfg); err != nil {
		_ = container.Terminate(ctx)
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	if err := container.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate postgres: %v", err)
	}
	os.Exit(code)
}

func startPostgres(ctx context.Context) (testcontainers.Container, config.DatabaseConfig, error) {
	const (
		user     = "postgres"
		password = "postgres"
		name     = "whenwework_test"
	)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       name,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, config.DatabaseConfig{}, err
	}

	host, err := c.Host(ctx)
	if err != nil {
		return c, config.DatabaseConfig{}, err
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return c, config.DatabaseConfig{}, err
	}

	return c, config.DatabaseConfig{
		Host:         host,
		Port:         port.Port(),
		User:         user,
		Password:     password,
		Name:         name,
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		AutoMigrate:  true,
	}, nil
}

func setupTestEnvironment(dbCfg config.DatabaseConfig) error {
	gin.SetMode(gin.TestMode)
	middleware.Init(config.AuthConfig{
		Secret:             "test-secret-key-for-integration-testing",
		Issuer:             "test-platform",
		AccessTokenMinutes: 30,
	})
	handlers.RegisterValidation()

	gdb, err := db.Init(dbCfg, false)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}

	repos := repository.NewRepositories(gdb)
	capture := &CaptureMailer{}
	hub := events.NewHub(zap.NewNop())
	svc := application.New(repos, application.Deps{Mailer: capture, Events: hub})
	h := handlers.New(svc, repos, hub, handlers.Options{AppName: "WhenWeWork", AppVersion: "integration"})

	testCtx = &TestContext{
		Router: routes.NewRouter(h, routes.Options{APIPrefix: "/api/v1", CORSOrigins: []string{"*"}}),
		DB:     gdb,
		Mailer: capture,
	}
	return nil
}

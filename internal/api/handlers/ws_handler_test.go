package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/jobapplication"
)

func TestStreamApplications(t *testing.T) {
	env := setupTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/job_applications?token=" + adminToken(t)
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return env.hub.Subscribers(3) == 1 }, time.Second, 10*time.Millisecond)

	env.hub.Publish(jobapplication.Event{Type: jobapplication.EventApplied, ApplicationID: 20, AdminID: 3})
	env.hub.Publish(jobapplication.Event{Type: jobapplication.EventApplied, ApplicationID: 21, AdminID: 42})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got jobapplication.Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint(20), got.ApplicationID)
	assert.Equal(t, jobapplication.EventApplied, got.Type)

	conn.Close()
	assert.Eventually(t, func() bool { return env.hub.Subscribers(3) == 0 }, time.Second, 10*time.Millisecond)
}

func TestStreamApplications_RequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/job_applications?token=" + workerToken(t)
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

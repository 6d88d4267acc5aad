package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/pkg/response"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	name    string
	version string
	db      Pinger
}

func NewSystemHandler(name, version string, db Pinger) *SystemHandler {
	return &SystemHandler{name: name, version: version, db: db}
}

// Root godoc
// @Summary Service name and version
// @Tags system
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"name":    h.name,
		"version": h.version,
		"status":  "running",
	}, "")
}

// Health godoc
// @Summary Liveness and database check
// @Tags system
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			response.Fail(c, http.StatusServiceUnavailable, "database unavailable", err.Error())
			return
		}
	}
	response.OK(c, http.StatusOK, gin.H{"status": "healthy"}, "")
}

// AuthStatus godoc
// @Summary Check the caller's token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/status [get]
func (h *SystemHandler) AuthStatus(c *gin.Context) {
	claims, uid, ok := callerClaims(c)
	if !ok {
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"status":  "valid",
		"user_id": uid,
		"role":    claims.Role,
	}, "")
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/response"
	"github.com/whenwework/platform-go/pkg/utils"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

type AuditHandler struct {
	svc   *application.AuditService
	users *application.UserService
}

func NewAuditHandler(svc *application.AuditService, users *application.UserService) *AuditHandler {
	return &AuditHandler{svc: svc, users: users}
}

// GetAuditLogs godoc
// @Summary Query audit logs
// @Description Without user_id the caller's own entries are returned. Another user's entries need the caller to manage that user.
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "User ID"
// @Param resource_type query string false "Resource type"
// @Param action query string false "Action"
// @Param start_time query string false "Start time (RFC3339)"
// @Param end_time query string false "End time (RFC3339)"
// @Param limit query int false "Limit" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Envelope{data=[]audit.AuditLog}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	claims, callerID, ok := callerClaims(c)
	if !ok {
		return
	}

	params := repository.AuditQueryParams{UserID: &callerID}

	uid, err := utils.ParseQueryUintParam(c, "user_id")
	switch {
	case errors.Is(err, utils.ErrEmptyParameter):
	case err != nil:
		response.Fail(c, http.StatusBadRequest, "Invalid user_id", nil)
		return
	case uid != callerID:
		if _, err := h.users.ManagedUser(c.Request.Context(), claims, uid); err != nil {
			respondError(c, err)
			return
		}
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if action := c.Query("action"); action != "" {
		params.Action = &action
	}

	if st := c.Query("start_time"); st != "" {
		t, err := time.Parse(time.RFC3339, st)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid start_time, expected RFC3339", nil)
			return
		}
		params.StartTime = &t
	}
	if et := c.Query("end_time"); et != "" {
		t, err := time.Parse(time.RFC3339, et)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid end_time, expected RFC3339", nil)
			return
		}
		params.EndTime = &t
	}

	params.Limit = utils.ParseQueryIntParam(c, "limit", defaultAuditLimit)
	if params.Limit <= 0 || params.Limit > maxAuditLimit {
		params.Limit = defaultAuditLimit
	}
	params.Offset = utils.ParseQueryIntParam(c, "offset", 0)
	if params.Offset < 0 {
		params.Offset = 0
	}

	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, logs, "")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/response"
	"github.com/whenwework/platform-go/pkg/types"
	"github.com/whenwework/platform-go/pkg/utils"
)

// callerClaims returns the token claims; a missing value aborts with 401.
func callerClaims(c *gin.Context) (*types.Claims, uint, bool) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized", nil)
		return nil, 0, false
	}
	id, err := claims.UserID()
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized", nil)
		return nil, 0, false
	}
	return claims, id, true
}

func pageParams(c *gin.Context) (int, int) {
	return utils.ParseQueryIntParam(c, "page", 1), utils.ParseQueryIntParam(c, "limit", 10)
}

type auditor struct {
	repo repository.AuditRepo
}

func (a auditor) record(c *gin.Context, action, resourceType string, id uint, oldData, newData any) {
	if a.repo == nil {
		return
	}
	utils.LogAuditWithConsole(c, action, resourceType, audit.ResourceKey(id), oldData, newData, "", a.repo)
}

package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/repository"
	"go.uber.org/zap"
)

// LogAuditWithConsole records an audit entry in the background. Request data is
// read synchronously since the gin context is recycled after the handler returns.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData any, msg string, repo repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := LogAudit(ctx, userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			zap.L().Warn("audit log write failed", zap.String("resource", resourceType), zap.Error(err))
		}
	}()
}

var LogAudit = func(
	ctx context.Context,
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			zap.L().Warn("audit marshal old data", zap.Error(err))
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			zap.L().Warn("audit marshal new data", zap.Error(err))
		}
	}

	auditLog := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repo.CreateAuditLog(ctx, auditLog)
}

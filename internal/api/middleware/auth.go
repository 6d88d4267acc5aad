package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/pkg/response"
	"github.com/whenwework/platform-go/pkg/utils"
)

// RequireRole lets the request through when the caller has one of roles.
// It must run after JWTAuthMiddleware.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaims(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		for _, r := range roles {
			if claims.Role == string(r) {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "Insufficient permissions")
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleAdmin)
}

func RequireWorker() gin.HandlerFunc {
	return RequireRole(user.RoleWorker)
}

package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/pkg/response"
	"github.com/whenwework/platform-go/pkg/types"
	"github.com/whenwework/platform-go/pkg/utils"
)

var (
	jwtKey []byte
	issuer string
)

var ErrMissingToken = errors.New("authorization required")

// Init sets the JWT signing key and issuer.
func Init(cfg config.AuthConfig) {
	jwtKey = []byte(cfg.Secret)
	issuer = cfg.Issuer
}

// GenerateToken issues a signed access token for u.
var GenerateToken = func(u user.User, expireDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Role:       string(u.UserRole),
		AdminID:    u.AdminID,
		BusinessID: u.BusinessID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if _, err := claims.UserID(); err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}

// tokenFromRequest reads the bearer header, then the token cookie, then the
// token query parameter used by websocket clients.
func tokenFromRequest(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", errors.New("authorization header format must be Bearer {token}")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, nil
	}
	if q := c.Query("token"); q != "" {
		return q, nil
	}
	return "", ErrMissingToken
}

// JWTAuthMiddleware rejects requests without a valid token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := tokenFromRequest(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Abort(c, http.StatusUnauthorized, "token expired")
				return
			}
			response.Abort(c, http.StatusUnauthorized, "Invalid token: "+err.Error())
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}

// OptionalJWTMiddleware attaches claims when a valid token is present and
// lets anonymous requests through.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := tokenFromRequest(c)
		if err != nil {
			c.Next()
			return
		}
		claims, err := ParseToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid token: "+err.Error())
			return
		}
		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}

package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/repository/mock"
	"github.com/whenwework/platform-go/pkg/types"
)

func testContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/x?"+query, nil)
	return c
}

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, otp, OTPLength)
	for _, r := range otp {
		assert.Contains(t, digits, string(r))
	}
}

func TestGeneratePassword(t *testing.T) {
	a, err := GeneratePassword()
	require.NoError(t, err)
	b, err := GeneratePassword()
	require.NoError(t, err)
	assert.Len(t, a, PasswordSize)
	assert.NotEqual(t, a, b)
}

func TestParseQueryIntParam(t *testing.T) {
	c := testContext("limit=25&bad=abc")
	assert.Equal(t, 25, ParseQueryIntParam(c, "limit", 10))
	assert.Equal(t, 10, ParseQueryIntParam(c, "bad", 10))
	assert.Equal(t, 7, ParseQueryIntParam(c, "missing", 7))
}

func TestParseQueryUintParam(t *testing.T) {
	c := testContext("user_id=12")
	id, err := ParseQueryUintParam(c, "user_id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	_, err = ParseQueryUintParam(c, "other")
	assert.ErrorIs(t, err, ErrEmptyParameter)
}

func TestGetClaims(t *testing.T) {
	c := testContext("")
	_, err := GetClaims(c)
	assert.ErrorIs(t, err, ErrNoClaims)

	c.Set(ClaimsKey, "not claims")
	_, err = GetClaims(c)
	assert.Error(t, err)

	c.Set(ClaimsKey, &types.Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: "9"}})
	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(9), id)
}

func TestLogAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepo(ctrl)

	repo.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *audit.AuditLog) error {
			assert.Equal(t, uint(3), log.UserID)
			assert.Equal(t, "update", log.Action)
			assert.Equal(t, "job", log.ResourceType)
			assert.JSONEq(t, `{"status":"open"}`, string(log.OldData))
			assert.Nil(t, log.NewData)
			return nil
		})

	err := LogAudit(context.Background(), 3, "10.0.0.1", "curl", "update", "job", "id=4",
		map[string]string{"status": "open"}, nil, "closed job", repo)
	require.NoError(t, err)
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	t.Run("success sets token cookie", func(t *testing.T) {
		env := setupTestEnv(t)
		env.users.EXPECT().GetByEmail(gomock.Any(), "jane@acme.io").Return(user.User{
			ID: 8, FirstName: "Jane", LastName: "Doe", Email: "jane@acme.io",
			Password: hashed(t, "secret123"), UserRole: user.RoleWorker, AdminID: uintPtr(3), IsActive: true,
		}, nil)
		env.users.EXPECT().TouchLastLogin(gomock.Any(), uint(8), gomock.Any()).Return(nil)

		w, body := env.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email": "Jane@Acme.io", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, body.Success)

		var res user.LoginResult
		require.NoError(t, json.Unmarshal(body.Data, &res))
		assert.Equal(t, "Jane Doe", res.Name)
		assert.Equal(t, "bearer", res.TokenType)
		assert.NotEmpty(t, res.AccessToken)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "token=")
		require.Len(t, *env.audited, 1)
		assert.Equal(t, "login", (*env.audited)[0].action)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := setupTestEnv(t)
		env.users.EXPECT().GetByEmail(gomock.Any(), "jane@acme.io").Return(user.User{
			ID: 8, Password: hashed(t, "secret123"), IsActive: true,
		}, nil)

		w, body := env.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email": "jane@acme.io", "password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, body.Success)
	})

	t.Run("validation message uses json names", func(t *testing.T) {
		env := setupTestEnv(t)
		w, body := env.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{"password": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body.Message, "email is required")
	})
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.users.EXPECT().GetByEmail(gomock.Any(), "ghost@acme.io").Return(user.User{}, repository.ErrNotFound)

	w, body := env.do(t, http.MethodPost, "/api/v1/users/forgot-password", "", map[string]string{"email": "ghost@acme.io"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Empty(t, env.mailer.sent)
}

func TestCreateUser_WorkerNeedsAdminToken(t *testing.T) {
	env := setupTestEnv(t)
	input := map[string]any{
		"first_name": "Sam", "last_name": "Lee", "email": "sam@acme.io",
		"phone": "555", "gender": "male", "user_role": "worker",
	}

	w, _ := env.do(t, http.MethodPost, "/api/v1/users", "", input)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = env.do(t, http.MethodPost, "/api/v1/users", "not-a-token", input)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateUser_AdminIgnoresBodyBusiness(t *testing.T) {
	env := setupTestEnv(t)
	env.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user.User{}, repository.ErrNotFound).Times(2)
	env.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.Nil(t, u.BusinessID)
		u.ID = 12
		return nil
	})

	input := map[string]any{
		"first_name": "Eve", "last_name": "Ray", "email": "eve@evil.io", "password": "secret123",
		"phone": "555", "gender": "female", "user_role": "admin", "business_id": 1,
	}
	w, _ := env.do(t, http.MethodPost, "/api/v1/users", "", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	input["setup_token"] = "made-up"
	w, body := env.do(t, http.MethodPost, "/api/v1/users", "", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid or expired setup token", body.Message)
}

func TestCreateWorker_AdminOnly(t *testing.T) {
	env := setupTestEnv(t)
	w, _ := env.do(t, http.MethodPost, "/api/v1/workers", workerToken(t), map[string]any{})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/v1/workers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateWorker_GeneratesPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.users.EXPECT().GetByEmail(gomock.Any(), "sam@acme.io").Return(user.User{}, repository.ErrNotFound)
	env.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		u.ID = 11
		return nil
	})

	w, body := env.do(t, http.MethodPost, "/api/v1/workers", adminToken(t), map[string]any{
		"first_name": "Sam", "last_name": "Lee", "email": "sam@acme.io",
		"phone": "555", "gender": "male", "user_role": "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res user.CreateUserResult
	require.NoError(t, json.Unmarshal(body.Data, &res))
	assert.Equal(t, user.RoleWorker, res.User.UserRole)
	require.NotNil(t, res.User.AdminID)
	assert.Equal(t, uint(3), *res.User.AdminID)
	assert.Len(t, env.mailer.sent, 1)
}

func TestGetUser_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	env.users.EXPECT().GetByID(gomock.Any(), uint(99)).Return(user.User{}, repository.ErrNotFound)

	w, _ := env.do(t, http.MethodGet, "/api/v1/users/99", adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/v1/users/abc", adminToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMe_WorkerOnly(t *testing.T) {
	env := setupTestEnv(t)
	w, _ := env.do(t, http.MethodPut, "/api/v1/users/worker/me", adminToken(t), map[string]any{"phone": "1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadPhoto_StorageDisabled(t *testing.T) {
	env := setupTestEnv(t)
	env.users.EXPECT().GetByID(gomock.Any(), uint(8)).Return(user.User{ID: 8}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="photo"; filename="me.PNG"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/me/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+workerToken(t))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUploadPhoto_RejectsNonImage(t *testing.T) {
	env := setupTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "notes.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("hello"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/me/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+workerToken(t))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

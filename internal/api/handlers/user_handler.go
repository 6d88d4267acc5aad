package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/response"
	"github.com/whenwework/platform-go/pkg/utils"
)

const maxPhotoSize = 5 << 20

type UserHandler struct {
	svc          *application.UserService
	audit        auditor
	secureCookie bool
}

func NewUserHandler(svc *application.UserService, auditRepo repository.AuditRepo, secureCookie bool) *UserHandler {
	return &UserHandler{svc: svc, audit: auditor{repo: auditRepo}, secureCookie: secureCookie}
}

func (h *UserHandler) create(c *gin.Context, input user.CreateUserInput) {
	claims, _ := utils.GetClaims(c)

	res, err := h.svc.CreateUser(c.Request.Context(), claims, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionCreate, audit.ResourceUser, res.User.ID, nil, res.User)
	response.OK(c, http.StatusCreated, res, "User created successfully")
}

// CreateUser godoc
// @Summary Create an admin or a worker
// @Description Admins may be created without a token. Workers need an admin token and belong to that admin. A random password is mailed when none is given.
// @Tags users
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User"
// @Success 201 {object} response.Envelope{data=user.CreateUserResult}
// @Failure 400 {object} response.Envelope "Invalid input"
// @Failure 403 {object} response.Envelope "Only admins can create workers"
// @Failure 409 {object} response.Envelope "Email already registered"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	h.create(c, input)
}

// CreateWorker godoc
// @Summary Create a worker owned by the calling admin
// @Tags workers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Worker"
// @Success 201 {object} response.Envelope{data=user.CreateUserResult}
// @Failure 409 {object} response.Envelope "Email already registered"
// @Router /workers [post]
func (h *UserHandler) CreateWorker(c *gin.Context) {
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	input.UserRole = user.RoleWorker
	h.create(c, input)
}

// CreateAdmin godoc
// @Summary Create another admin in the caller's business
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Admin"
// @Success 201 {object} response.Envelope{data=user.CreateUserResult}
// @Failure 409 {object} response.Envelope "Email already registered"
// @Router /admin [post]
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	input.UserRole = user.RoleAdmin
	h.create(c, input)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.Envelope{data=user.LoginResult}
// @Failure 401 {object} response.Envelope "Invalid email or password"
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := h.svc.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", res.AccessToken, 3600, "/", "", h.secureCookie, true)
	h.audit.record(c, audit.ActionLogin, audit.ResourceUser, res.ID, nil, nil)
	response.OK(c, http.StatusOK, res, "Login successful")
}

// Logout godoc
// @Summary Clear the token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", h.secureCookie, true)
	response.OK(c, http.StatusOK, nil, "Logout successful")
}

// ForgotPassword godoc
// @Summary Mail a newly generated password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.ForgotPasswordInput true "Email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "User not found"
// @Router /users/forgot-password [post]
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var input user.ForgotPasswordInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil, "A new password has been sent to your email")
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope{data=user.User}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.FindUserByID(c.Request.Context(), claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, u, "")
}

// ListWorkers godoc
// @Summary List the calling admin's workers
// @Tags workers
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.Envelope{data=[]user.User}
// @Router /workers [get]
func (h *UserHandler) ListWorkers(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)
	users, err := h.svc.ListWorkers(c.Request.Context(), adminID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, users, "")
}

// ListAdmins godoc
// @Summary List admins of the caller's business
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.Envelope{data=[]user.User}
// @Router /admin [get]
func (h *UserHandler) ListAdmins(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)
	users, err := h.svc.ListAdmins(c.Request.Context(), claims, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, users, "")
}

// UpdateUser godoc
// @Summary Admin update of a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to change"
// @Success 200 {object} response.Envelope{data=user.User}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Email already registered"
// @Router /users/admin/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input user.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}

	old, u, err := h.svc.UpdateUser(c.Request.Context(), claims, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionUpdate, audit.ResourceUser, id, old, u)
	response.OK(c, http.StatusOK, u, "User updated successfully")
}

// UpdateMe godoc
// @Summary Update the caller's own profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateWorkerInput true "Fields to change"
// @Success 200 {object} response.Envelope{data=user.User}
// @Router /users/worker/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	_, id, ok := callerClaims(c)
	if !ok {
		return
	}
	var input user.UpdateWorkerInput
	if !bindJSON(c, &input) {
		return
	}

	old, u, err := h.svc.UpdateSelf(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionUpdate, audit.ResourceUser, id, old, u)
	response.OK(c, http.StatusOK, u, "Profile updated successfully")
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Worker still has applications"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.RemoveUser(c.Request.Context(), claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionDelete, audit.ResourceUser, id, u, nil)
	response.OK(c, http.StatusOK, nil, "User deleted successfully")
}

// UploadPhoto godoc
// @Summary Upload the caller's profile photo
// @Tags users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope "Storage not configured"
// @Router /users/me/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	_, id, ok := callerClaims(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "photo file is required", nil)
		return
	}
	if fh.Size > maxPhotoSize {
		response.Fail(c, http.StatusBadRequest, "photo must be at most 5MB", nil)
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Fail(c, http.StatusBadRequest, "photo must be an image", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, errors.New("failed to read upload"))
		return
	}
	defer f.Close()

	url, err := h.svc.UploadPhoto(c.Request.Context(), id, fh.Filename, contentType, f, fh.Size)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"photo": url}, "Photo uploaded successfully")
}

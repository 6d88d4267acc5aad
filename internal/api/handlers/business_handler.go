package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/business"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/response"
)

type BusinessHandler struct {
	svc   *application.BusinessService
	audit auditor
}

func NewBusinessHandler(svc *application.BusinessService, auditRepo repository.AuditRepo) *BusinessHandler {
	return &BusinessHandler{svc: svc, audit: auditor{repo: auditRepo}}
}

// RequestRegistration godoc
// @Summary Start business registration
// @Description Emails a 6 digit code to the business address. The code must be confirmed with verify-and-register before it expires.
// @Tags business
// @Accept json
// @Produce json
// @Param input body business.CreateBusinessInput true "Business"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Invalid input or business already registered"
// @Router /business/request-registration [post]
func (h *BusinessHandler) RequestRegistration(c *gin.Context) {
	var input business.CreateBusinessInput
	if !bindJSON(c, &input) {
		return
	}

	err := h.svc.RequestRegistration(c.Request.Context(), input)
	switch {
	case errors.Is(err, application.ErrBusinessExists):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	case err != nil:
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"email": input.NormalizedEmail()}, "OTP sent to your email")
}

// VerifyAndRegister godoc
// @Summary Confirm the emailed code and create the business
// @Tags business
// @Accept json
// @Produce json
// @Param input body business.VerifyRegistrationInput true "Email and code"
// @Success 201 {object} response.Envelope{data=business.RegistrationResult}
// @Failure 400 {object} response.Envelope "Invalid, expired or incorrect OTP"
// @Failure 409 {object} response.Envelope "Business already registered"
// @Router /business/verify-and-register [post]
func (h *BusinessHandler) VerifyAndRegister(c *gin.Context) {
	var input business.VerifyRegistrationInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := h.svc.VerifyAndRegister(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionCreate, audit.ResourceBusiness, res.Business.ID, nil, res.Business)
	response.OK(c, http.StatusCreated, res, "Business registered successfully")
}

// GetBusiness godoc
// @Summary Get a business
// @Tags business
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} response.Envelope{data=business.Business}
// @Failure 404 {object} response.Envelope
// @Router /business/{id} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.svc.GetBusiness(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, b, "")
}

// ListBusinesses godoc
// @Summary List businesses
// @Tags business
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.Envelope{data=[]business.Business}
// @Router /business [get]
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	page, limit := pageParams(c)
	list, err := h.svc.ListBusinesses(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, list, "")
}

// UpdateBusiness godoc
// @Summary Update the caller's business
// @Tags business
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param input body business.UpdateBusinessInput true "Fields to change"
// @Success 200 {object} response.Envelope{data=business.Business}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /business/{id} [put]
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input business.UpdateBusinessInput
	if !bindJSON(c, &input) {
		return
	}

	old, b, err := h.svc.UpdateBusiness(c.Request.Context(), claims, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionUpdate, audit.ResourceBusiness, id, old, b)
	response.OK(c, http.StatusOK, b, "Business updated successfully")
}

// DeleteBusiness godoc
// @Summary Delete the caller's business
// @Tags business
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /business/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteBusiness(c.Request.Context(), claims, id); err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionDelete, audit.ResourceBusiness, id, nil, nil)
	response.OK(c, http.StatusOK, nil, "Business deleted successfully")
}

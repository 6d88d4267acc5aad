package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/jobapplication"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/response"
)

type JobApplicationHandler struct {
	svc   *application.JobApplicationService
	audit auditor
}

func NewJobApplicationHandler(svc *application.JobApplicationService, auditRepo repository.AuditRepo) *JobApplicationHandler {
	return &JobApplicationHandler{svc: svc, audit: auditor{repo: auditRepo}}
}

// Apply godoc
// @Summary Apply to a job
// @Tags job_applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body jobapplication.CreateApplicationInput true "Job"
// @Success 201 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 403 {object} response.Envelope "Job belongs to another admin"
// @Failure 404 {object} response.Envelope "Job not found"
// @Failure 409 {object} response.Envelope "Already applied or job not open"
// @Router /job_applications [post]
func (h *JobApplicationHandler) Apply(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	var input jobapplication.CreateApplicationInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), claims, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionCreate, audit.ResourceJobApplication, app.ID, nil, app)
	response.OK(c, http.StatusCreated, app, "Application submitted successfully")
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]jobapplication.JobApplication}
// @Router /job_applications [get]
func (h *JobApplicationHandler) ListMine(c *gin.Context) {
	_, workerID, ok := callerClaims(c)
	if !ok {
		return
	}
	apps, err := h.svc.ListMine(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, apps, "")
}

// GetApplication godoc
// @Summary Get an application
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /job_applications/{id} [get]
func (h *JobApplicationHandler) GetApplication(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	app, err := h.svc.GetApplication(c.Request.Context(), claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, app, "")
}

// History godoc
// @Summary List the recorded changes of an application
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope{data=[]audit.AuditLog}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /job_applications/{id}/history [get]
func (h *JobApplicationHandler) History(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	logs, err := h.svc.History(c.Request.Context(), claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, logs, "")
}

// Withdraw godoc
// @Summary Withdraw an application that is still awaiting a decision
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Already decided"
// @Router /job_applications/{id} [delete]
func (h *JobApplicationHandler) Withdraw(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, err := h.svc.Withdraw(c.Request.Context(), claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionDelete, audit.ResourceJobApplication, id, old, nil)
	response.OK(c, http.StatusOK, nil, "Application withdrawn successfully")
}

func (h *JobApplicationHandler) respondTransition(c *gin.Context, id uint, old, updated jobapplication.JobApplication, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionUpdate, audit.ResourceJobApplication, id, old, updated)
	response.OK(c, http.StatusOK, updated, "Application updated successfully")
}

// UpdateStatus godoc
// @Summary Change an application's status
// @Description Exactly one of approved_status, work_status or payment_status must be set.
// @Tags job_applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body jobapplication.UpdateStatusInput true "Status change"
// @Success 200 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Transition not allowed from the current status"
// @Router /job_applications/{id} [put]
func (h *JobApplicationHandler) UpdateStatus(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input jobapplication.UpdateStatusInput
	if !bindJSON(c, &input) {
		return
	}
	old, updated, err := h.svc.UpdateStatus(c.Request.Context(), adminID, id, input)
	h.respondTransition(c, id, old, updated, err)
}

func (h *JobApplicationHandler) transition(c *gin.Context, action jobapplication.Action) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, updated, err := h.svc.Transition(c.Request.Context(), adminID, id, action)
	h.respondTransition(c, id, old, updated, err)
}

// Approve godoc
// @Summary Approve an application and assign the worker
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /job_applications/{id}/approve [post]
func (h *JobApplicationHandler) Approve(c *gin.Context) {
	h.transition(c, jobapplication.ActionApprove)
}

// Reject godoc
// @Summary Reject an application
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /job_applications/{id}/reject [post]
func (h *JobApplicationHandler) Reject(c *gin.Context) {
	h.transition(c, jobapplication.ActionReject)
}

// Complete godoc
// @Summary Mark assigned work as completed
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /job_applications/{id}/complete [post]
func (h *JobApplicationHandler) Complete(c *gin.Context) {
	h.transition(c, jobapplication.ActionComplete)
}

// Payment godoc
// @Summary Settle payment for an application
// @Tags job_applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body jobapplication.PaymentInput true "Payment status"
// @Success 200 {object} response.Envelope{data=jobapplication.JobApplication}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /job_applications/{id}/payment [post]
func (h *JobApplicationHandler) Payment(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input jobapplication.PaymentInput
	if !bindJSON(c, &input) {
		return
	}
	old, updated, err := h.svc.SetPayment(c.Request.Context(), adminID, id, input.PaymentStatus)
	h.respondTransition(c, id, old, updated, err)
}

// ApprovalPanel godoc
// @Summary Applications on the admin's jobs joined with worker details
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Param status query string false "approved_status filter" Enums(applied, approved, rejected) default(applied)
// @Success 200 {object} response.Envelope{data=[]jobapplication.ApprovalRow}
// @Failure 400 {object} response.Envelope
// @Router /job_applications/approval-panel [get]
func (h *JobApplicationHandler) ApprovalPanel(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	rows, err := h.svc.ApprovalPanel(c.Request.Context(), adminID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, rows, "")
}

// WorkerRevenue godoc
// @Summary Earnings of the calling worker over completed work
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=jobapplication.WorkerRevenue}
// @Router /job_applications/worker/revenue [get]
func (h *JobApplicationHandler) WorkerRevenue(c *gin.Context) {
	_, workerID, ok := callerClaims(c)
	if !ok {
		return
	}
	rev, err := h.svc.WorkerRevenue(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, rev, "")
}

// AdminRevenue godoc
// @Summary Pending payouts across the admin's workers
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=jobapplication.AdminRevenue}
// @Router /job_applications/admin/revenue [get]
func (h *JobApplicationHandler) AdminRevenue(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	rev, err := h.svc.AdminRevenue(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, rev, "")
}

// WorkerStatus godoc
// @Summary The calling worker's applications with job details
// @Tags job_applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]jobapplication.WorkerStatusRow}
// @Router /job_applications/worker/status [get]
func (h *JobApplicationHandler) WorkerStatus(c *gin.Context) {
	_, workerID, ok := callerClaims(c)
	if !ok {
		return
	}
	rows, err := h.svc.WorkerStatus(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, rows, "")
}

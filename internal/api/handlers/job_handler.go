package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/response"
)

// JobHandler handles job posting endpoints. The admin always comes from the token.
type JobHandler struct {
	svc   *application.JobService
	audit auditor
}

func NewJobHandler(svc *application.JobService, auditRepo repository.AuditRepo) *JobHandler {
	return &JobHandler{svc: svc, audit: auditor{repo: auditRepo}}
}

// CreateJob godoc
// @Summary Post a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body job.CreateJobInput true "Job"
// @Success 201 {object} response.Envelope{data=job.Job}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	var input job.CreateJobInput
	if !bindJSON(c, &input) {
		return
	}

	j, err := h.svc.CreateJob(c.Request.Context(), adminID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionCreate, audit.ResourceJob, j.ID, nil, j)
	response.OK(c, http.StatusCreated, j, "Job created successfully")
}

// ListJobs godoc
// @Summary List the calling admin's jobs
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(active, inactive, completed, cancelled)
// @Success 200 {object} response.Envelope{data=[]job.Job}
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}

	var status *job.JobStatus
	if raw := c.Query("status"); raw != "" {
		s := job.JobStatus(raw)
		switch s {
		case job.StatusActive, job.StatusInactive, job.StatusCompleted, job.StatusCancelled:
			status = &s
		default:
			response.Fail(c, http.StatusBadRequest, "status must be one of [active inactive completed cancelled]", nil)
			return
		}
	}

	jobs, err := h.svc.ListJobs(c.Request.Context(), adminID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, jobs, "")
}

// ListOpenJobs godoc
// @Summary List active jobs a worker can apply to
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]job.Job}
// @Router /jobs/open [get]
func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	jobs, err := h.svc.ListOpenJobs(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, jobs, "")
}

// GetJob godoc
// @Summary Get a job
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Envelope{data=job.Job}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	claims, _, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	j, err := h.svc.GetJob(c.Request.Context(), claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, j, "")
}

// UpdateJob godoc
// @Summary Update a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param input body job.UpdateJobInput true "Fields to change"
// @Success 200 {object} response.Envelope{data=job.Job}
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input job.UpdateJobInput
	if !bindJSON(c, &input) {
		return
	}

	old, j, err := h.svc.UpdateJob(c.Request.Context(), adminID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionUpdate, audit.ResourceJob, id, old, j)
	response.OK(c, http.StatusOK, j, "Job updated successfully")
}

// DeleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Job still has applications"
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, err := h.svc.DeleteJob(c.Request.Context(), adminID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, audit.ActionDelete, audit.ResourceJob, id, old, nil)
	response.OK(c, http.StatusOK, nil, "Job deleted successfully")
}

// JobStats godoc
// @Summary Job counts per status for the calling admin
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=job.Stats}
// @Router /jobs/stats [get]
func (h *JobHandler) JobStats(c *gin.Context) {
	_, adminID, ok := callerClaims(c)
	if !ok {
		return
	}
	stats, err := h.svc.Stats(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, stats, "")
}

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/domain/jobapplication"
	"github.com/whenwework/platform-go/internal/events"
	"github.com/whenwework/platform-go/internal/metrics"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/types"
	"go.uber.org/zap"
)

const historyLimit = 200

type JobApplicationService struct {
	Repos  *repository.Repos
	events events.Publisher
	logger *zap.Logger
}

func NewJobApplicationService(repos *repository.Repos, deps Deps) *JobApplicationService {
	deps = deps.withDefaults()
	return &JobApplicationService{
		Repos:  repos,
		events: deps.Events,
		logger: deps.Logger,
	}
}

func (s *JobApplicationService) getApplication(ctx context.Context, id uint) (jobapplication.JobApplication, error) {
	app, err := s.Repos.JobApplication.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return app, ErrApplicationNotFound
	}
	return app, err
}

func (s *JobApplicationService) getJob(ctx context.Context, id uint) (job.Job, error) {
	j, err := s.Repos.Job.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return j, ErrJobNotFound
	}
	return j, err
}

// adminApplication loads an application whose job is owned by adminID.
func (s *JobApplicationService) adminApplication(ctx context.Context, id, adminID uint) (jobapplication.JobApplication, error) {
	app, err := s.getApplication(ctx, id)
	if err != nil {
		return app, err
	}
	j, err := s.getJob(ctx, app.JobID)
	if err != nil {
		return app, err
	}
	if j.AdminID != adminID {
		return app, ErrForbidden
	}
	return app, nil
}

// Apply creates an application for the calling worker. The job must be an
// active posting of the worker's admin and the worker must not have applied
// before.
func (s *JobApplicationService) Apply(ctx context.Context, caller *types.Claims, input jobapplication.CreateApplicationInput) (jobapplication.JobApplication, error) {
	workerID, err := caller.UserID()
	if err != nil {
		return jobapplication.JobApplication{}, err
	}

	j, err := s.getJob(ctx, input.JobID)
	if err != nil {
		return jobapplication.JobApplication{}, err
	}
	if j.AdminID != caller.TenantAdminID() {
		return jobapplication.JobApplication{}, ErrForbidden
	}
	if j.Status != job.StatusActive || !j.IsActive {
		return jobapplication.JobApplication{}, ErrJobNotOpen
	}

	_, err = s.Repos.JobApplication.GetByJobAndWorker(ctx, j.ID, workerID)
	if err == nil {
		return jobapplication.JobApplication{}, ErrApplicationExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return jobapplication.JobApplication{}, err
	}

	app := jobapplication.New(j.ID, workerID)
	if err := s.Repos.JobApplication.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return jobapplication.JobApplication{}, ErrApplicationExists
		}
		return jobapplication.JobApplication{}, err
	}

	s.events.Publish(jobapplication.NewEvent(jobapplication.EventApplied, j.AdminID, *app))
	return *app, nil
}

func (s *JobApplicationService) ListMine(ctx context.Context, workerID uint) ([]jobapplication.JobApplication, error) {
	return s.Repos.JobApplication.ListByWorker(ctx, workerID)
}

// GetApplication is visible to the applicant and to the admin owning the job.
func (s *JobApplicationService) GetApplication(ctx context.Context, caller *types.Claims, id uint) (jobapplication.JobApplication, error) {
	callerID, err := caller.UserID()
	if err != nil {
		return jobapplication.JobApplication{}, err
	}
	if caller.IsAdmin() {
		return s.adminApplication(ctx, id, callerID)
	}
	app, err := s.getApplication(ctx, id)
	if err != nil {
		return app, err
	}
	if app.WorkerID != callerID {
		return jobapplication.JobApplication{}, ErrForbidden
	}
	return app, nil
}

// History lists the recorded changes of one application, oldest first. Access
// follows GetApplication.
func (s *JobApplicationService) History(ctx context.Context, caller *types.Claims, id uint) ([]audit.AuditLog, error) {
	if _, err := s.GetApplication(ctx, caller, id); err != nil {
		return nil, err
	}
	resource, key := audit.ResourceJobApplication, audit.ResourceKey(id)
	return s.Repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{
		ResourceType: &resource,
		ResourceID:   &key,
		OldestFirst:  true,
		Limit:        historyLimit,
	})
}

// Withdraw deletes the worker's own application while it is still applied.
func (s *JobApplicationService) Withdraw(ctx context.Context, caller *types.Claims, id uint) (jobapplication.JobApplication, error) {
	workerID, err := caller.UserID()
	if err != nil {
		return jobapplication.JobApplication{}, err
	}
	app, err := s.getApplication(ctx, id)
	if err != nil {
		return app, err
	}
	if app.WorkerID != workerID {
		return app, ErrForbidden
	}
	if app.ApprovedStatus != jobapplication.ApprovedStatusApplied {
		return app, ErrWithdrawNotAllowed
	}
	if err := s.Repos.JobApplication.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return app, ErrApplicationNotFound
		}
		return app, err
	}

	s.events.Publish(jobapplication.NewEvent(jobapplication.EventWithdrawn, caller.TenantAdminID(), app))
	return app, nil
}

var actionEvents = map[jobapplication.Action]string{
	jobapplication.ActionApprove:  jobapplication.EventApproved,
	jobapplication.ActionReject:   jobapplication.EventRejected,
	jobapplication.ActionComplete: jobapplication.EventCompleted,
}

// Transition applies a workflow action on behalf of the owning admin and
// returns the application before and after. Approval increments the job's
// hired count in the same transaction.
func (s *JobApplicationService) Transition(ctx context.Context, adminID, id uint, action jobapplication.Action) (jobapplication.JobApplication, jobapplication.JobApplication, error) {
	app, err := s.adminApplication(ctx, id, adminID)
	if err != nil {
		return app, app, err
	}

	if _, err := jobapplication.Next(app.State(), action); err != nil {
		metrics.ApplicationTransitions.WithLabelValues(string(action), metrics.OutcomeConflict).Inc()
		return app, app, err
	}

	updated, err := s.Repos.JobApplication.Transition(ctx, id, action)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStaleState):
			metrics.ApplicationTransitions.WithLabelValues(string(action), metrics.OutcomeConflict).Inc()
			return app, app, fmt.Errorf("%w: application %d changed concurrently", ErrInvalidTransition, id)
		case errors.Is(err, repository.ErrNotFound):
			return app, app, ErrJobNotFound
		}
		metrics.ApplicationTransitions.WithLabelValues(string(action), metrics.OutcomeError).Inc()
		return app, app, err
	}

	metrics.ApplicationTransitions.WithLabelValues(string(action), metrics.OutcomeOK).Inc()
	s.logger.Info("job application transitioned",
		zap.Uint("application_id", id),
		zap.String("action", string(action)),
		zap.Stringer("from", app.State()),
		zap.Stringer("to", updated.State()),
	)
	s.events.Publish(jobapplication.NewEvent(actionEvents[action], adminID, updated))
	return app, updated, nil
}

func (s *JobApplicationService) Approve(ctx context.Context, adminID, id uint) (jobapplication.JobApplication, jobapplication.JobApplication, error) {
	return s.Transition(ctx, adminID, id, jobapplication.ActionApprove)
}

func (s *JobApplicationService) Reject(ctx context.Context, adminID, id uint) (jobapplication.JobApplication, jobapplication.JobApplication, error) {
	return s.Transition(ctx, adminID, id, jobapplication.ActionReject)
}

func (s *JobApplicationService) Complete(ctx context.Context, adminID, id uint) (jobapplication.JobApplication, jobapplication.JobApplication, error) {
	return s.Transition(ctx, adminID, id, jobapplication.ActionComplete)
}

// SetPayment moves payment_status out of pending. It does not depend on the
// approval state.
func (s *JobApplicationService) SetPayment(ctx context.Context, adminID, id uint, to jobapplication.PaymentStatus) (jobapplication.JobApplication, jobapplication.JobApplication, error) {
	app, err := s.adminApplication(ctx, id, adminID)
	if err != nil {
		return app, app, err
	}

	if !jobapplication.IsPaymentTransitionAllowed(app.PaymentStatus, to) {
		metrics.ApplicationTransitions.WithLabelValues("payment", metrics.OutcomeConflict).Inc()
		return app, app, fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, app.PaymentStatus, to)
	}

	updated, err := s.Repos.JobApplication.UpdatePayment(ctx, id, app.PaymentStatus, to)
	if err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			metrics.ApplicationTransitions.WithLabelValues("payment", metrics.OutcomeConflict).Inc()
			return app, app, fmt.Errorf("%w: application %d changed concurrently", ErrInvalidTransition, id)
		}
		metrics.ApplicationTransitions.WithLabelValues("payment", metrics.OutcomeError).Inc()
		return app, app, err
	}

	metrics.ApplicationTransitions.WithLabelValues("payment", metrics.OutcomeOK).Inc()
	s.events.Publish(jobapplication.NewEvent(jobapplication.EventPayment, adminID, updated))
	return app, updated, nil
}

// UpdateStatus dispatches a generic status update to the matching action.
func (s *JobApplicationService) UpdateStatus(ctx context.Context, adminID, id uint, input jobapplication.UpdateStatusInput) (jobapplication.JobApplication, jobapplication.JobApplication, error) {
	set := 0
	for _, present := range []bool{input.ApprovedStatus != nil, input.WorkStatus != nil, input.PaymentStatus != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		var zero jobapplication.JobApplication
		return zero, zero, ErrNoStatusChange
	}

	switch {
	case input.ApprovedStatus != nil:
		switch *input.ApprovedStatus {
		case jobapplication.ApprovedStatusApproved:
			return s.Approve(ctx, adminID, id)
		case jobapplication.ApprovedStatusRejected:
			return s.Reject(ctx, adminID, id)
		}
	case input.WorkStatus != nil:
		if *input.WorkStatus == jobapplication.WorkStatusCompleted {
			return s.Complete(ctx, adminID, id)
		}
	case input.PaymentStatus != nil:
		return s.SetPayment(ctx, adminID, id, *input.PaymentStatus)
	}

	var zero jobapplication.JobApplication
	return zero, zero, ErrInvalidStatus
}

// ApprovalPanel lists applications on the admin's jobs with the given
// approved_status, applied when empty.
func (s *JobApplicationService) ApprovalPanel(ctx context.Context, adminID uint, status string) ([]jobapplication.ApprovalRow, error) {
	st := jobapplication.ApprovedStatusApplied
	if status != "" {
		parsed, err := jobapplication.ParseApprovedStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		st = parsed
	}
	rows, err := s.Repos.JobApplication.ApprovalPanel(ctx, adminID, st)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []jobapplication.ApprovalRow{}
	}
	return rows, nil
}

func (s *JobApplicationService) WorkerRevenue(ctx context.Context, workerID uint) (jobapplication.WorkerRevenue, error) {
	rows, err := s.Repos.JobApplication.WorkerRevenueRows(ctx, workerID)
	if err != nil {
		return jobapplication.WorkerRevenue{}, err
	}
	return jobapplication.SummarizeWorkerRevenue(rows), nil
}

func (s *JobApplicationService) AdminRevenue(ctx context.Context, adminID uint) (jobapplication.AdminRevenue, error) {
	rows, err := s.Repos.JobApplication.PendingPaymentRows(ctx, adminID)
	if err != nil {
		return jobapplication.AdminRevenue{}, err
	}
	return jobapplication.SummarizePendingRevenue(rows), nil
}

func (s *JobApplicationService) WorkerStatus(ctx context.Context, workerID uint) ([]jobapplication.WorkerStatusRow, error) {
	rows, err := s.Repos.JobApplication.WorkerStatus(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []jobapplication.WorkerStatusRow{}
	}
	return rows, nil
}

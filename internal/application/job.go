package application

import (
	"context"
	"errors"

	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/types"
)

type JobService struct {
	Repos *repository.Repos
}

func NewJobService(repos *repository.Repos) *JobService {
	return &JobService{
		Repos: repos,
	}
}

func (s *JobService) getJob(ctx context.Context, id uint) (job.Job, error) {
	j, err := s.Repos.Job.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return j, ErrJobNotFound
	}
	return j, err
}

// ownedJob loads a job and checks it belongs to adminID.
func (s *JobService) ownedJob(ctx context.Context, id, adminID uint) (job.Job, error) {
	j, err := s.getJob(ctx, id)
	if err != nil {
		return j, err
	}
	if j.AdminID != adminID {
		return j, ErrForbidden
	}
	return j, nil
}

func (s *JobService) CreateJob(ctx context.Context, adminID uint, input job.CreateJobInput) (job.Job, error) {
	j := input.ToModel(adminID)
	if err := s.Repos.Job.Create(ctx, j); err != nil {
		return job.Job{}, err
	}
	return *j, nil
}

// GetJob is visible to the owning admin and that admin's workers.
func (s *JobService) GetJob(ctx context.Context, caller *types.Claims, id uint) (job.Job, error) {
	j, err := s.getJob(ctx, id)
	if err != nil {
		return j, err
	}
	if j.AdminID != caller.TenantAdminID() {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func (s *JobService) ListJobs(ctx context.Context, adminID uint, status *job.JobStatus) ([]job.Job, error) {
	return s.Repos.Job.ListByAdmin(ctx, adminID, status)
}

// ListOpenJobs returns the active postings of the caller's tenant.
func (s *JobService) ListOpenJobs(ctx context.Context, caller *types.Claims) ([]job.Job, error) {
	active := job.StatusActive
	return s.Repos.Job.ListByAdmin(ctx, caller.TenantAdminID(), &active)
}

func (s *JobService) UpdateJob(ctx context.Context, adminID, id uint, input job.UpdateJobInput) (job.Job, job.Job, error) {
	j, err := s.ownedJob(ctx, id, adminID)
	if err != nil {
		return j, j, err
	}
	changes := input.Changes()
	if len(changes) == 0 {
		return j, j, nil
	}
	if err := s.Repos.Job.Update(ctx, id, changes); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return j, j, ErrJobNotFound
		}
		return j, j, err
	}
	updated, err := s.getJob(ctx, id)
	if err != nil {
		return j, j, err
	}
	return j, updated, nil
}

func (s *JobService) DeleteJob(ctx context.Context, adminID, id uint) (job.Job, error) {
	j, err := s.ownedJob(ctx, id, adminID)
	if err != nil {
		return j, err
	}
	n, err := s.Repos.JobApplication.CountByJob(ctx, id)
	if err != nil {
		return j, err
	}
	if n > 0 {
		return j, ErrJobHasApplications
	}
	if err := s.Repos.Job.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return j, ErrJobNotFound
		case errors.Is(err, repository.ErrInUse):
			return j, ErrJobHasApplications
		}
		return j, err
	}
	return j, nil
}

func (s *JobService) Stats(ctx context.Context, adminID uint) (job.Stats, error) {
	return s.Repos.Job.Stats(ctx, adminID)
}

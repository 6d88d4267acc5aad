package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/internal/repository/mock"
)

func setupJobServiceMocks(t *testing.T) (*JobService, *mock.MockJobRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock.NewMockJobRepo(ctrl)
	return NewJobService(&repository.Repos{Job: mockJob}), mockJob
}

func TestCreateJob_OwnerFromCaller(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j *job.Job) error {
		j.ID = 4
		return nil
	})

	j, err := svc.CreateJob(context.Background(), 3, job.CreateJobInput{Title: "Barista", WorkersRequired: 2, Salary: 100})
	require.NoError(t, err)
	assert.Equal(t, uint(3), j.AdminID)
	assert.Equal(t, job.StatusActive, j.Status)
	assert.Equal(t, 0, j.Hired())
}

func TestGetJob_Tenancy(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)
	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil).Times(3)

	_, err := svc.GetJob(context.Background(), adminClaims(3, nil), 4)
	assert.NoError(t, err)
	_, err = svc.GetJob(context.Background(), workerClaims(8, 3), 4)
	assert.NoError(t, err)
	_, err = svc.GetJob(context.Background(), workerClaims(8, 9), 4)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateJob_WritesOnlyChangedColumns(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3, Title: "A", WorkersHired: ptrInt(2)}, nil),
		repo.EXPECT().Update(gomock.Any(), uint(4), map[string]any{"title": "B"}).Return(nil),
		// an approval landed between the read and the write
		repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3, Title: "B", WorkersHired: ptrInt(3)}, nil),
	)

	old, j, err := svc.UpdateJob(context.Background(), 3, 4, job.UpdateJobInput{Title: ptrString("B")})
	require.NoError(t, err)
	assert.Equal(t, "A", old.Title)
	assert.Equal(t, "B", j.Title)
	assert.Equal(t, 3, j.Hired())
}

func TestUpdateJob_NoChanges(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)
	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3, Title: "A"}, nil)

	_, j, err := svc.UpdateJob(context.Background(), 3, 4, job.UpdateJobInput{})
	require.NoError(t, err)
	assert.Equal(t, "A", j.Title)
}

func TestUpdateJob_ForeignAdmin(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)
	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)

	_, _, err := svc.UpdateJob(context.Background(), 5, 4, job.UpdateJobInput{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteJob_NotFound(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)
	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{}, repository.ErrNotFound)

	_, err := svc.DeleteJob(context.Background(), 3, 4)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func setupJobServiceWithApps(t *testing.T) (*JobService, *mock.MockJobRepo, *mock.MockJobApplicationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock.NewMockJobRepo(ctrl)
	mockApps := mock.NewMockJobApplicationRepo(ctrl)
	return NewJobService(&repository.Repos{Job: mockJob, JobApplication: mockApps}), mockJob, mockApps
}

func TestDeleteJob(t *testing.T) {
	svc, repo, apps := setupJobServiceWithApps(t)

	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)
	apps.EXPECT().CountByJob(gomock.Any(), uint(4)).Return(int64(0), nil)
	repo.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil)

	j, err := svc.DeleteJob(context.Background(), 3, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(4), j.ID)
}

func TestDeleteJob_RefusedWhileApplicationsExist(t *testing.T) {
	svc, repo, apps := setupJobServiceWithApps(t)

	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)
	apps.EXPECT().CountByJob(gomock.Any(), uint(4)).Return(int64(1), nil)

	_, err := svc.DeleteJob(context.Background(), 3, 4)
	assert.ErrorIs(t, err, ErrJobHasApplications)
}

func TestDeleteJob_ForeignKeyViolation(t *testing.T) {
	svc, repo, apps := setupJobServiceWithApps(t)

	repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(job.Job{ID: 4, AdminID: 3}, nil)
	apps.EXPECT().CountByJob(gomock.Any(), uint(4)).Return(int64(0), nil)
	repo.EXPECT().Delete(gomock.Any(), uint(4)).Return(repository.ErrInUse)

	_, err := svc.DeleteJob(context.Background(), 3, 4)
	assert.ErrorIs(t, err, ErrJobHasApplications)
}

func TestListOpenJobs_UsesTenant(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)

	repo.EXPECT().ListByAdmin(gomock.Any(), uint(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, st *job.JobStatus) ([]job.Job, error) {
		require.NotNil(t, st)
		assert.Equal(t, job.StatusActive, *st)
		return []job.Job{{ID: 1}}, nil
	})

	jobs, err := svc.ListOpenJobs(context.Background(), workerClaims(8, 3))
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestStats(t *testing.T) {
	svc, repo := setupJobServiceMocks(t)
	repo.EXPECT().Stats(gomock.Any(), uint(3)).Return(job.Stats{Total: 2, Active: 1}, nil)

	st, err := svc.Stats(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Total)
}

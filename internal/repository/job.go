package repository

//go:generate mockgen -source=job.go -destination=mock/job.go -package=mock

import (
	"context"

	"github.com/whenwework/platform-go/internal/domain/job"
	"gorm.io/gorm"
)

type JobRepo interface {
	Create(ctx context.Context, j *job.Job) error
	GetByID(ctx context.Context, id uint) (job.Job, error)
	ListByAdmin(ctx context.Context, adminID uint, status *job.JobStatus) ([]job.Job, error)
	Update(ctx context.Context, id uint, changes map[string]any) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context, adminID uint) (job.Stats, error)
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) Create(ctx context.Context, j *job.Job) error {
	return translateError(r.db.WithContext(ctx).Create(j).Error)
}

func (r *DBJobRepo) GetByID(ctx context.Context, id uint) (job.Job, error) {
	var j job.Job
	err := r.db.WithContext(ctx).First(&j, id).Error
	return j, translateError(err)
}

func (r *DBJobRepo) ListByAdmin(ctx context.Context, adminID uint, status *job.JobStatus) ([]job.Job, error) {
	var jobs []job.Job
	query := r.db.WithContext(ctx).Where("admin_id = ?", adminID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// Update writes only the given columns. The hired counter and the owner are
// never taken from changes; approvals increment workers_hired in place.
func (r *DBJobRepo) Update(ctx context.Context, id uint, changes map[string]any) error {
	res := r.db.WithContext(ctx).Model(&job.Job{}).
		Where("id = ?", id).
		Omit("workers_hired", "admin_id").
		Updates(changes)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBJobRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&job.Job{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBJobRepo) Stats(ctx context.Context, adminID uint) (job.Stats, error) {
	var s job.Stats
	err := r.db.WithContext(ctx).Model(&job.Job{}).
		Select(`
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'inactive') AS inactive,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
			COALESCE(SUM(workers_required), 0) AS workers_required,
			COALESCE(SUM(COALESCE(workers_hired, 0)), 0) AS workers_hired
		`).
		Where("admin_id = ?", adminID).
		Scan(&s).Error
	return s, err
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}

package repository

//go:generate mockgen -source=job_application.go -destination=mock/job_application.go -package=mock

import (
	"context"
	"time"

	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/domain/jobapplication"
	"gorm.io/gorm"
)

type JobApplicationRepo interface {
	Create(ctx context.Context, a *jobapplication.JobApplication) error
	GetByID(ctx context.Context, id uint) (jobapplication.JobApplication, error)
	GetByJobAndWorker(ctx context.Context, jobID, workerID uint) (jobapplication.JobApplication, error)
	ListByWorker(ctx context.Context, workerID uint) ([]jobapplication.JobApplication, error)
	CountByJob(ctx context.Context, jobID uint) (int64, error)
	CountByWorker(ctx context.Context, workerID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	Transition(ctx context.Context, id uint, action jobapplication.Action) (jobapplication.JobApplication, error)
	UpdatePayment(ctx context.Context, id uint, from, to jobapplication.PaymentStatus) (jobapplication.JobApplication, error)
	ApprovalPanel(ctx context.Context, adminID uint, status jobapplication.ApprovedStatus) ([]jobapplication.ApprovalRow, error)
	WorkerStatus(ctx context.Context, workerID uint) ([]jobapplication.WorkerStatusRow, error)
	WorkerRevenueRows(ctx context.Context, workerID uint) ([]jobapplication.RevenueRow, error)
	PendingPaymentRows(ctx context.Context, adminID uint) ([]jobapplication.RevenueRow, error)
	WithTx(tx *gorm.DB) JobApplicationRepo
}

type DBJobApplicationRepo struct {
	db *gorm.DB
}

func NewJobApplicationRepo(db *gorm.DB) *DBJobApplicationRepo {
	return &DBJobApplicationRepo{
		db: db,
	}
}

func (r *DBJobApplicationRepo) Create(ctx context.Context, a *jobapplication.JobApplication) error {
	return translateError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *DBJobApplicationRepo) GetByID(ctx context.Context, id uint) (jobapplication.JobApplication, error) {
	var a jobapplication.JobApplication
	err := r.db.WithContext(ctx).First(&a, id).Error
	return a, translateError(err)
}

func (r *DBJobApplicationRepo) GetByJobAndWorker(ctx context.Context, jobID, workerID uint) (jobapplication.JobApplication, error) {
	var a jobapplication.JobApplication
	err := r.db.WithContext(ctx).Where("job_id = ? AND worker_id = ?", jobID, workerID).First(&a).Error
	return a, translateError(err)
}

func (r *DBJobApplicationRepo) ListByWorker(ctx context.Context, workerID uint) ([]jobapplication.JobApplication, error) {
	var apps []jobapplication.JobApplication
	err := r.db.WithContext(ctx).Where("worker_id = ?", workerID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *DBJobApplicationRepo) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&jobapplication.JobApplication{}).Where("job_id = ?", jobID).Count(&n).Error
	return n, err
}

func (r *DBJobApplicationRepo) CountByWorker(ctx context.Context, workerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&jobapplication.JobApplication{}).Where("worker_id = ?", workerID).Count(&n).Error
	return n, err
}

func (r *DBJobApplicationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&jobapplication.JobApplication{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Transition moves an application along the approval graph in one transaction.
// The update only matches rows still in the action's source state, so two
// concurrent callers cannot both succeed; the loser gets ErrStaleState.
// Approval also bumps jobs.workers_hired in SQL, treating NULL as 0.
func (r *DBJobApplicationRepo) Transition(ctx context.Context, id uint, action jobapplication.Action) (jobapplication.JobApplication, error) {
	var app jobapplication.JobApplication

	from, _ := jobapplication.Source(action)
	to, err := jobapplication.Next(from, action)
	if err != nil {
		return app, err
	}

	updates := map[string]any{
		"approved_status": to.Approved,
		"work_status":     to.Work,
	}
	now := time.Now()
	switch action {
	case jobapplication.ActionApprove:
		updates["approved_at"] = now
	case jobapplication.ActionComplete:
		updates["completed_at"] = now
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobapplication.JobApplication{}).
			Where("id = ? AND approved_status = ? AND work_status = ?", id, from.Approved, from.Work).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleState
		}

		if err := tx.First(&app, id).Error; err != nil {
			return err
		}

		if action != jobapplication.ActionApprove {
			return nil
		}
		res = tx.Model(&job.Job{}).
			Where("id = ?", app.JobID).
			UpdateColumn("workers_hired", gorm.Expr("COALESCE(workers_hired, 0) + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return app, translateError(err)
}

func (r *DBJobApplicationRepo) UpdatePayment(ctx context.Context, id uint, from, to jobapplication.PaymentStatus) (jobapplication.JobApplication, error) {
	var app jobapplication.JobApplication

	updates := map[string]any{"payment_status": to}
	if to == jobapplication.PaymentStatusPaid {
		updates["paid_at"] = time.Now()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobapplication.JobApplication{}).
			Where("id = ? AND payment_status = ?", id, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleState
		}
		return tx.First(&app, id).Error
	})
	return app, translateError(err)
}

func (r *DBJobApplicationRepo) ApprovalPanel(ctx context.Context, adminID uint, status jobapplication.ApprovedStatus) ([]jobapplication.ApprovalRow, error) {
	var rows []jobapplication.ApprovalRow
	err := r.db.WithContext(ctx).Table("job_applications AS ja").
		Select(`
			ja.id,
			ja.job_id,
			j.title AS job_name,
			u.id AS worker_id,
			TRIM(u.first_name || ' ' || u.last_name) AS worker_name,
			u.email AS worker_email,
			u.availability,
			u.gender,
			j.workers_required,
			COALESCE(j.workers_hired, 0) AS workers_hired,
			u.employment_type,
			ja.approved_status,
			ja.created_at AS applied_at
		`).
		Joins("JOIN jobs j ON j.id = ja.job_id").
		Joins("JOIN users u ON u.id = ja.worker_id").
		Where("j.admin_id = ? AND ja.approved_status = ?", adminID, status).
		Order("ja.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBJobApplicationRepo) WorkerStatus(ctx context.Context, workerID uint) ([]jobapplication.WorkerStatusRow, error) {
	var rows []jobapplication.WorkerStatusRow
	err := r.db.WithContext(ctx).Table("job_applications AS ja").
		Select(`
			ja.id,
			ja.job_id,
			j.title AS job_title,
			j.status AS job_status,
			j.salary,
			j.salary_type,
			j.join_date,
			ja.approved_status,
			ja.work_status,
			ja.payment_status
		`).
		Joins("JOIN jobs j ON j.id = ja.job_id").
		Where("ja.worker_id = ?", workerID).
		Order("ja.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

const revenueColumns = `
	ja.id AS application_id,
	j.id AS job_id,
	j.title AS job_name,
	j.salary,
	j.join_date,
	ja.completed_at,
	ja.work_status,
	u.id AS worker_id,
	u.first_name,
	u.last_name,
	u.email AS worker_email
`

func (r *DBJobApplicationRepo) WorkerRevenueRows(ctx context.Context, workerID uint) ([]jobapplication.RevenueRow, error) {
	var rows []jobapplication.RevenueRow
	err := r.db.WithContext(ctx).Table("job_applications AS ja").
		Select(revenueColumns).
		Joins("JOIN jobs j ON j.id = ja.job_id").
		Joins("JOIN users u ON u.id = ja.worker_id").
		Where("ja.worker_id = ? AND ja.work_status = ?", workerID, jobapplication.WorkStatusCompleted).
		Order("ja.completed_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBJobApplicationRepo) PendingPaymentRows(ctx context.Context, adminID uint) ([]jobapplication.RevenueRow, error) {
	var rows []jobapplication.RevenueRow
	err := r.db.WithContext(ctx).Table("job_applications AS ja").
		Select(revenueColumns).
		Joins("JOIN jobs j ON j.id = ja.job_id").
		Joins("JOIN users u ON u.id = ja.worker_id").
		Where("j.admin_id = ? AND ja.payment_status = ?", adminID, jobapplication.PaymentStatusPending).
		Order("ja.worker_id, j.id").
		Scan(&rows).Error
	return rows, err
}

func (r *DBJobApplicationRepo) WithTx(tx *gorm.DB) JobApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBJobApplicationRepo{
		db: tx,
	}
}

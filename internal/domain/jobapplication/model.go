package jobapplication

import (
	"time"

	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/domain/user"
)

// JobApplication links one worker to one job; (job_id, worker_id) is unique.
type JobApplication struct {
	ID             uint           `gorm:"primaryKey;column:id" json:"id"`
	JobID          uint           `gorm:"column:job_id;not null;uniqueIndex:idx_job_applications_job_worker" json:"job_id"`
	WorkerID       uint           `gorm:"column:worker_id;not null;uniqueIndex:idx_job_applications_job_worker;index" json:"worker_id"`
	ApprovedStatus ApprovedStatus `gorm:"column:approved_status;size:20;not null;default:applied" json:"approved_status"`
	WorkStatus     WorkStatus     `gorm:"column:work_status;size:20;not null;default:pending" json:"work_status"`
	PaymentStatus  PaymentStatus  `gorm:"column:payment_status;size:20;not null;default:pending" json:"payment_status"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CompletedAt    *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
	PaidAt         *time.Time     `gorm:"column:paid_at" json:"paid_at,omitempty"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Job    *job.Job   `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Worker *user.User `gorm:"foreignKey:WorkerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}

func (a JobApplication) State() State {
	return State{Approved: a.ApprovedStatus, Work: a.WorkStatus}
}

// New returns a fresh application in its initial state.
func New(jobID, workerID uint) *JobApplication {
	return &JobApplication{
		JobID:          jobID,
		WorkerID:       workerID,
		ApprovedStatus: ApprovedStatusApplied,
		WorkStatus:     WorkStatusPending,
		PaymentStatus:  PaymentStatusPending,
		IsActive:       true,
	}
}

// ApprovalRow is one line of the admin approval panel.
type ApprovalRow struct {
	ID              uint           `json:"id"`
	JobID           uint           `json:"job_id"`
	JobName         string         `json:"job_name"`
	WorkerID        uint           `json:"worker_id"`
	WorkerName      string         `json:"worker_name"`
	WorkerEmail     string         `json:"worker_email"`
	Availability    bool           `json:"availability"`
	Gender          string         `json:"gender"`
	WorkersRequired int            `json:"workers_required"`
	WorkersHired    int            `json:"workers_hired"`
	EmploymentType  *string        `json:"employment_type,omitempty"`
	ApprovedStatus  ApprovedStatus `json:"approved_status"`
	AppliedAt       time.Time      `json:"applied_at"`
}

// WorkerStatusRow is a worker's view of one of their applications.
type WorkerStatusRow struct {
	ID             uint           `json:"id"`
	JobID          uint           `json:"job_id"`
	JobTitle       string         `json:"job_title"`
	JobStatus      string         `json:"job_status"`
	Salary         int64          `json:"salary"`
	SalaryType     string         `json:"salary_type"`
	JoinDate       *time.Time     `json:"join_date,omitempty"`
	ApprovedStatus ApprovedStatus `json:"approved_status"`
	WorkStatus     WorkStatus     `json:"work_status"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
}

package job

import (
	"time"

	"github.com/lib/pq"
)

// JobStatus represents the posting state of a job
type JobStatus string

const (
	StatusActive    JobStatus = "active"
	StatusInactive  JobStatus = "inactive"
	StatusCompleted JobStatus = "completed"
	StatusCancelled JobStatus = "cancelled"
)

type Category string

const (
	CategoryFullTime   Category = "full_time"
	CategoryPartTime   Category = "part_time"
	CategoryContract   Category = "contract"
	CategoryFreelancer Category = "freelancer"
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
	ToneFriendly     Tone = "friendly"
	ToneEmpathetic   Tone = "empathetic"
)

type SalaryType string

const (
	SalaryHourly SalaryType = "hourly"
	SalaryFixed  SalaryType = "fixed"
)

// Job is a posting owned by one admin. WorkersHired is nullable in storage
// and read as zero when unset.
type Job struct {
	ID               uint           `gorm:"primaryKey;column:id" json:"id"`
	Title            string         `gorm:"column:title;size:255;not null" json:"title"`
	Description      string         `gorm:"column:description;type:text;not null" json:"description"`
	Status           JobStatus      `gorm:"column:status;size:20;not null;default:active;index" json:"status"`
	Email            string         `gorm:"column:email;size:255;not null" json:"email"`
	Phone            string         `gorm:"column:phone;size:20;not null" json:"phone"`
	MinimumEducation string         `gorm:"column:minimum_education;size:255;not null" json:"minimum_education"`
	JobCategory      Category       `gorm:"column:job_category;size:20;not null" json:"job_category"`
	ToneRequirement  Tone           `gorm:"column:tone_requirement;size:20;not null" json:"tone_requirement"`
	Characteristics  pq.StringArray `gorm:"column:characteristics;type:text[]" json:"characteristics"`
	WorkersRequired  int            `gorm:"column:workers_required;not null" json:"workers_required"`
	WorkersHired     *int           `gorm:"column:workers_hired;default:0" json:"workers_hired"`
	Salary           int64          `gorm:"column:salary;not null" json:"salary"`
	SalaryType       SalaryType     `gorm:"column:salary_type;size:10;not null" json:"salary_type"`
	Language         pq.StringArray `gorm:"column:language;type:text[]" json:"language"`
	JoinDate         *time.Time     `gorm:"column:join_date" json:"join_date,omitempty"`
	AdminID          uint           `gorm:"column:admin_id;not null;index" json:"admin_id"`
	IsActive         bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// Hired returns the filled headcount, treating null as 0.
func (j Job) Hired() int {
	if j.WorkersHired == nil {
		return 0
	}
	return *j.WorkersHired
}

// Stats summarises an admin's postings.
type Stats struct {
	Total           int64 `json:"total"`
	Active          int64 `json:"active"`
	Inactive        int64 `json:"inactive"`
	Completed       int64 `json:"completed"`
	Cancelled       int64 `json:"cancelled"`
	WorkersRequired int64 `json:"workers_required"`
	WorkersHired    int64 `json:"workers_hired"`
}

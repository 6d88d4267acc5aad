package job

import (
	"time"

	"github.com/lib/pq"
)

type CreateJobInput struct {
	Title            string     `json:"title" binding:"required,max=255" example:"Barista"`
	Description      string     `json:"description" binding:"required" example:"Morning shift"`
	Status           JobStatus  `json:"status,omitempty" binding:"omitempty,oneof=active inactive completed cancelled"`
	Email            string     `json:"email" binding:"required,email" example:"jobs@acme.io"`
	Phone            string     `json:"phone" binding:"required,max=20"`
	MinimumEducation string     `json:"minimum_education" binding:"required,max=255" example:"High school"`
	JobCategory      Category   `json:"job_category" binding:"required,oneof=full_time part_time contract freelancer"`
	ToneRequirement  Tone       `json:"tone_requirement" binding:"required,oneof=professional casual formal friendly empathetic"`
	Characteristics  []string   `json:"characteristics,omitempty"`
	WorkersRequired  int        `json:"workers_required" binding:"required,min=1" example:"3"`
	Salary           int64      `json:"salary" binding:"required,min=0" example:"120"`
	SalaryType       SalaryType `json:"salary_type" binding:"required,oneof=hourly fixed"`
	Language         []string   `json:"language,omitempty"`
	JoinDate         *time.Time `json:"join_date,omitempty"`
}

// ToModel never takes the owner from the payload.
func (in CreateJobInput) ToModel(adminID uint) *Job {
	status := in.Status
	if status == "" {
		status = StatusActive
	}
	hired := 0
	return &Job{
		Title:            in.Title,
		Description:      in.Description,
		Status:           status,
		Email:            in.Email,
		Phone:            in.Phone,
		MinimumEducation: in.MinimumEducation,
		JobCategory:      in.JobCategory,
		ToneRequirement:  in.ToneRequirement,
		Characteristics:  in.Characteristics,
		WorkersRequired:  in.WorkersRequired,
		WorkersHired:     &hired,
		Salary:           in.Salary,
		SalaryType:       in.SalaryType,
		Language:         in.Language,
		JoinDate:         in.JoinDate,
		AdminID:          adminID,
		IsActive:         true,
	}
}

type UpdateJobInput struct {
	Title            *string     `json:"title,omitempty" binding:"omitempty,max=255"`
	Description      *string     `json:"description,omitempty"`
	Status           *JobStatus  `json:"status,omitempty" binding:"omitempty,oneof=active inactive completed cancelled"`
	Email            *string     `json:"email,omitempty" binding:"omitempty,email"`
	Phone            *string     `json:"phone,omitempty" binding:"omitempty,max=20"`
	MinimumEducation *string     `json:"minimum_education,omitempty"`
	JobCategory      *Category   `json:"job_category,omitempty" binding:"omitempty,oneof=full_time part_time contract freelancer"`
	ToneRequirement  *Tone       `json:"tone_requirement,omitempty" binding:"omitempty,oneof=professional casual formal friendly empathetic"`
	Characteristics  []string    `json:"characteristics,omitempty"`
	WorkersRequired  *int        `json:"workers_required,omitempty" binding:"omitempty,min=1"`
	Salary           *int64      `json:"salary,omitempty" binding:"omitempty,min=0"`
	SalaryType       *SalaryType `json:"salary_type,omitempty" binding:"omitempty,oneof=hourly fixed"`
	Language         []string    `json:"language,omitempty"`
	JoinDate         *time.Time  `json:"join_date,omitempty"`
	IsActive         *bool       `json:"is_active,omitempty"`
}

// Changes lists the columns to update, keyed by column name.
func (in UpdateJobInput) Changes() map[string]any {
	changes := make(map[string]any)
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}
	if in.Phone != nil {
		changes["phone"] = *in.Phone
	}
	if in.MinimumEducation != nil {
		changes["minimum_education"] = *in.MinimumEducation
	}
	if in.JobCategory != nil {
		changes["job_category"] = *in.JobCategory
	}
	if in.ToneRequirement != nil {
		changes["tone_requirement"] = *in.ToneRequirement
	}
	if in.Characteristics != nil {
		changes["characteristics"] = pq.StringArray(in.Characteristics)
	}
	if in.WorkersRequired != nil {
		changes["workers_required"] = *in.WorkersRequired
	}
	if in.Salary != nil {
		changes["salary"] = *in.Salary
	}
	if in.SalaryType != nil {
		changes["salary_type"] = *in.SalaryType
	}
	if in.Language != nil {
		changes["language"] = pq.StringArray(in.Language)
	}
	if in.JoinDate != nil {
		changes["join_date"] = *in.JoinDate
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	return changes
}

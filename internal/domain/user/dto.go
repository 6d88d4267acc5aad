package user

import (
	"strings"
	"time"
)

type CreateUserInput struct {
	FirstName        string          `json:"first_name" binding:"required,max=100" example:"Jane"`
	LastName         string          `json:"last_name" binding:"required,max=100" example:"Doe"`
	Email            string          `json:"email" binding:"required,email" example:"jane@acme.io"`
	Password         *string         `json:"password,omitempty" binding:"omitempty,min=6" example:"secret123"`
	Phone            string          `json:"phone" binding:"required,max=20" example:"+1-555-0101"`
	Address          *string         `json:"address,omitempty"`
	EmergencyContact *string         `json:"emergency_contact,omitempty"`
	Gender           Gender          `json:"gender" binding:"required,oneof=male female other" example:"female"`
	Availability     *bool           `json:"availability,omitempty"`
	EmploymentType   *EmploymentType `json:"employment_type,omitempty" binding:"omitempty,oneof=full_time part_time contract freelancer"`
	UserRole         Role            `json:"user_role" binding:"required,oneof=admin worker" example:"worker"`
	WorkerRoles      []string        `json:"worker_roles,omitempty"`
	Remarks          *string         `json:"remarks,omitempty"`
	// SetupToken is the single-use token from business verification. It links
	// an anonymously created admin to that business.
	SetupToken       string          `json:"setup_token,omitempty"`
}

func (in CreateUserInput) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(in.Email))
}

// ToModel builds the row without password or tenant fields; the service fills those.
func (in CreateUserInput) ToModel() *User {
	availability := true
	if in.Availability != nil {
		availability = *in.Availability
	}
	return &User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.NormalizedEmail(),
		Phone:            in.Phone,
		Address:          in.Address,
		EmergencyContact: in.EmergencyContact,
		Gender:           in.Gender,
		Availability:     availability,
		EmploymentType:   in.EmploymentType,
		UserRole:         in.UserRole,
		WorkerRoles:      in.WorkerRoles,
		Remarks:          in.Remarks,
		IsActive:         true,
	}
}

// UpdateWorkerInput is what a worker may change about themselves.
type UpdateWorkerInput struct {
	FirstName        *string         `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName         *string         `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Phone            *string         `json:"phone,omitempty" binding:"omitempty,max=20"`
	Password         *string         `json:"password,omitempty" binding:"omitempty,min=6"`
	Address          *string         `json:"address,omitempty"`
	EmergencyContact *string         `json:"emergency_contact,omitempty"`
	Gender           *Gender         `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	Availability     *bool           `json:"availability,omitempty"`
	EmploymentType   *EmploymentType `json:"employment_type,omitempty" binding:"omitempty,oneof=full_time part_time contract freelancer"`
	WorkerRoles      []string        `json:"worker_roles,omitempty"`
}

// UpdateUserInput is the admin-side update; it may also change email, remarks
// and the active flag. Role and tenant fields are fixed at creation.
type UpdateUserInput struct {
	UpdateWorkerInput
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Remarks  *string `json:"remarks,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Apply copies profile fields. Password is handled by the caller since it needs hashing.
func (in UpdateWorkerInput) Apply(u *User) {
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Address != nil {
		u.Address = in.Address
	}
	if in.EmergencyContact != nil {
		u.EmergencyContact = in.EmergencyContact
	}
	if in.Gender != nil {
		u.Gender = *in.Gender
	}
	if in.Availability != nil {
		u.Availability = *in.Availability
	}
	if in.EmploymentType != nil {
		u.EmploymentType = in.EmploymentType
	}
	if in.WorkerRoles != nil {
		u.WorkerRoles = in.WorkerRoles
	}
}

func (in UpdateUserInput) Apply(u *User) {
	in.UpdateWorkerInput.Apply(u)
	if in.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Remarks != nil {
		u.Remarks = in.Remarks
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"jane@acme.io"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email" example:"jane@acme.io"`
}

type LoginResult struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	BusinessName *string    `json:"business_name,omitempty"`
	Email        string     `json:"email"`
	UserRole     Role       `json:"user_role"`
	AdminID      *uint      `json:"admin_id,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
}

type CreateUserResult struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

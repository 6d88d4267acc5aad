package user

import (
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentFreelancer EmploymentType = "freelancer"
)

// User is both admin and worker; UserRole decides which.
// Workers carry the owning admin in AdminID.
type User struct {
	ID               uint            `gorm:"primaryKey;column:id" json:"id"`
	FirstName        string          `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName         string          `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email            string          `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password         string          `gorm:"column:password;size:255;not null" json:"-"`
	Phone            string          `gorm:"column:phone;size:20;not null" json:"phone"`
	Address          *string         `gorm:"column:address;size:255" json:"address,omitempty"`
	EmergencyContact *string         `gorm:"column:emergency_contact;size:255" json:"emergency_contact,omitempty"`
	Photo            *string         `gorm:"column:photo;size:500" json:"photo,omitempty"`
	Gender           Gender          `gorm:"column:gender;size:10;not null" json:"gender"`
	Availability     bool            `gorm:"column:availability;not null;default:true" json:"availability"`
	EmploymentType   *EmploymentType `gorm:"column:employment_type;size:20" json:"employment_type,omitempty"`
	UserRole         Role            `gorm:"column:user_role;size:10;not null;index" json:"user_role"`
	WorkerRoles      pq.StringArray  `gorm:"column:worker_roles;type:text[]" json:"worker_roles"`
	Remarks          *string         `gorm:"column:remarks;type:text" json:"remarks,omitempty"`
	AdminID          *uint           `gorm:"column:admin_id;index" json:"admin_id,omitempty"`
	BusinessID       *uint           `gorm:"column:business_id;index" json:"business_id,omitempty"`
	LastLoginAt      *time.Time      `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	IsActive         bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u User) IsAdmin() bool {
	return u.UserRole == RoleAdmin
}

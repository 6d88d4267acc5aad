package audit

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
)

const (
	ResourceBusiness       = "business"
	ResourceUser           = "user"
	ResourceJob            = "job"
	ResourceJobApplication = "job_application"
)

// ResourceKey is the resource_id stored for a row keyed by a numeric id.
func ResourceKey(id uint) string {
	return fmt.Sprintf("id=%d", id)
}

type AuditLog struct {
	ID           uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint           `gorm:"column:user_id;index" json:"user_id"`
	Action       string         `gorm:"column:action;size:50;not null;index" json:"action"`
	ResourceType string         `gorm:"column:resource_type;size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"column:resource_id;size:64;not null" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"column:old_data" json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `gorm:"column:new_data" json:"new_data,omitempty" swaggertype:"object"`
	IPAddress    string         `gorm:"column:ip_address;size:64" json:"ip_address"`
	UserAgent    string         `gorm:"column:user_agent;size:255" json:"user_agent"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

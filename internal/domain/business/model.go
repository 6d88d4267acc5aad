package business

import "time"

type Business struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	BusinessName string    `gorm:"column:business_name;size:255;not null" json:"business_name"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Phone        string    `gorm:"column:phone;size:20;not null" json:"phone"`
	Address      string    `gorm:"column:address;size:255;not null" json:"address"`
	City         string    `gorm:"column:city;size:100;not null" json:"city"`
	State        string    `gorm:"column:state;size:100;not null" json:"state"`
	ZipCode      string    `gorm:"column:zip_code;size:20;not null" json:"zip_code"`
	Country      string    `gorm:"column:country;size:100;not null" json:"country"`
	Description  *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Business) TableName() string {
	return "business"
}

package models

import "time"

// Business is a childcare business owned by a user. The license type drives
// which subsidy rules can apply to its sites.
type Business struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID      string      `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string      `json:"name" gorm:"not null" validate:"required"`
	LicenseType LicenseType `json:"license_type" gorm:"not null;type:varchar(30)" validate:"required,oneof=licensed_center licensed_family_home licensed_group_home license_exempt_home license_exempt_center"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	User        *User       `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Sites       []*Site     `json:"sites,omitempty" gorm:"foreignKey:BusinessID;references:ID"`
}

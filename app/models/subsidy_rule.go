package models

import "time"

// SubsidyRule is a rate-table row keyed by state/county/license-type/age
// ceiling/quality rating. Rates are integer cents; the hour columns define how
// attendance splits into part days and full days (the classification itself
// happens downstream of this service).
type SubsidyRule struct {
	ID                       string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name                     string      `json:"name" gorm:"not null" validate:"required"`
	StateID                  string      `json:"state_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CountyID                 string      `json:"county_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	LicenseType              LicenseType `json:"license_type" gorm:"not null;type:varchar(30)" validate:"required"`
	MaxAge                   int         `json:"max_age" gorm:"not null" validate:"gt=0"`
	PartDayRateCents         int64       `json:"part_day_rate_cents" gorm:"not null" validate:"gt=0"`
	FullDayRateCents         int64       `json:"full_day_rate_cents" gorm:"not null" validate:"gt=0"`
	PartDayMaxHours          int         `json:"part_day_max_hours" gorm:"not null" validate:"gt=0"`
	FullDayMaxHours          int         `json:"full_day_max_hours" gorm:"not null" validate:"gt=0"`
	FullPlusPartDayMaxHours  int         `json:"full_plus_part_day_max_hours" gorm:"not null" validate:"gt=0"`
	FullPlusFullDayMaxHours  int         `json:"full_plus_full_day_max_hours" gorm:"not null" validate:"gt=0"`
	PartDayThreshold         int         `json:"part_day_threshold" gorm:"not null" validate:"gt=0"`
	FullDayThreshold         int         `json:"full_day_threshold" gorm:"not null" validate:"gt=0"`
	QrisRating               string      `json:"qris_rating,omitempty" gorm:"type:varchar(5)"`
	CreatedAt                time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	State                    *State      `json:"state,omitempty" gorm:"foreignKey:StateID;references:ID"`
	County                   *County     `json:"county,omitempty" gorm:"foreignKey:CountyID;references:ID"`
}

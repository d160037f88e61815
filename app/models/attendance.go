package models

import "time"

// Attendance is one day of care for a child: one row per enrollment per
// case-cycle allowance per calendar day. CheckIn must precede CheckOut, and
// StartsOn is the calendar date of CheckIn (a shift may cross midnight, so
// CheckOut can land on the following day).
type Attendance struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ChildSiteID      string          `json:"child_site_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ChildCaseCycleID string          `json:"child_case_cycle_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StartsOn         time.Time       `json:"starts_on" gorm:"not null;index;type:date" validate:"required"`
	CheckIn          time.Time       `json:"check_in" gorm:"not null" validate:"required"`
	CheckOut         time.Time       `json:"check_out" gorm:"not null" validate:"required,gtfield=CheckIn"`
	CreatedAt        time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	ChildSite        *ChildSite      `json:"child_site,omitempty" gorm:"foreignKey:ChildSiteID;references:ID"`
	ChildCaseCycle   *ChildCaseCycle `json:"child_case_cycle,omitempty" gorm:"foreignKey:ChildCaseCycleID;references:ID"`
}

// Duration returns the length of the attended shift.
func (a *Attendance) Duration() time.Duration {
	return a.CheckOut.Sub(a.CheckIn)
}

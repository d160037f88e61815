package models

import "time"

// ChildSite records a child's enrollment at a care site over a date range.
// StartedCare must not come after EndedCare when EndedCare is set.
type ChildSite struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ChildID     string     `json:"child_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SiteID      string     `json:"site_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StartedCare time.Time  `json:"started_care" gorm:"not null;type:date" validate:"required"`
	EndedCare   *time.Time `json:"ended_care,omitempty" gorm:"type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Child       *Child     `json:"child,omitempty" gorm:"foreignKey:ChildID;references:ID"`
	Site        *Site      `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID"`
}

// ActiveOn reports whether the enrollment covers the given date.
func (cs *ChildSite) ActiveOn(date time.Time) bool {
	if date.Before(cs.StartedCare) {
		return false
	}
	return cs.EndedCare == nil || !date.After(*cs.EndedCare)
}

package models

import "time"

// Payment records an agency's payment to a site for a period of care.
// Amounts are integer cents. CareStartedOn must not come after CareFinishedOn.
type Payment struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AgencyID         string    `json:"agency_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SiteID           string    `json:"site_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PaidOn           time.Time `json:"paid_on" gorm:"not null;index;type:date" validate:"required"`
	CareStartedOn    time.Time `json:"care_started_on" gorm:"not null;type:date" validate:"required"`
	CareFinishedOn   time.Time `json:"care_finished_on" gorm:"not null;type:date" validate:"required"`
	AmountCents      int64     `json:"amount_cents" gorm:"not null" validate:"gt=0"`
	DiscrepancyCents int64     `json:"discrepancy_cents" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Agency           *Agency   `json:"agency,omitempty" gorm:"foreignKey:AgencyID;references:ID"`
	Site             *Site     `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID"`
}

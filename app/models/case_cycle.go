package models

import "time"

// CaseCycle is a user's subsidy authorization period. Copay is integer cents.
type CaseCycle struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID         string          `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Status         CaseCycleStatus `json:"status" gorm:"not null;default:'pending';type:varchar(20)" validate:"required,oneof=pending submitted approved denied expired"`
	CopayCents     int64           `json:"copay_cents" gorm:"not null" validate:"gte=0"`
	CopayFrequency CopayFrequency  `json:"copay_frequency" gorm:"not null;type:varchar(10)" validate:"required,oneof=daily weekly monthly"`
	EffectiveOn    time.Time       `json:"effective_on" gorm:"not null;type:date" validate:"required"`
	ExpiresOn      time.Time       `json:"expires_on" gorm:"not null;type:date" validate:"required"`
	SubmittedOn    time.Time       `json:"submitted_on" gorm:"not null;type:date" validate:"required"`
	NotifiedOn     *time.Time      `json:"notified_on,omitempty" gorm:"type:date"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	User           *User           `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// ExpiredAsOf reports whether the cycle's authorization has lapsed on the
// given date.
func (cc *CaseCycle) ExpiredAsOf(date time.Time) bool {
	return cc.ExpiresOn.Before(date)
}

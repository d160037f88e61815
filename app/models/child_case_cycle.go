package models

import "time"

// ChildCaseCycle binds a child, a case cycle and a subsidy rule, carrying the
// number of part days and full days the child is authorized to use within the
// cycle. Both allowances must be greater than zero.
type ChildCaseCycle struct {
	ID              string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ChildID         string       `json:"child_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CaseCycleID     string       `json:"case_cycle_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubsidyRuleID   string       `json:"subsidy_rule_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PartDaysAllowed int          `json:"part_days_allowed" gorm:"not null" validate:"gt=0"`
	FullDaysAllowed int          `json:"full_days_allowed" gorm:"not null" validate:"gt=0"`
	CreatedAt       time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	Child           *Child       `json:"child,omitempty" gorm:"foreignKey:ChildID;references:ID"`
	CaseCycle       *CaseCycle   `json:"case_cycle,omitempty" gorm:"foreignKey:CaseCycleID;references:ID"`
	SubsidyRule     *SubsidyRule `json:"subsidy_rule,omitempty" gorm:"foreignKey:SubsidyRuleID;references:ID"`
}

package models

import "time"

// Agency is a funding body scoped to a state; unique by (state, name).
type Agency struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StateID   string    `json:"state_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	State     *State    `json:"state,omitempty" gorm:"foreignKey:StateID;references:ID"`
}

package models

import "time"

// Site is a physical childcare location belonging to a business, anchored to
// the geographic lookup rows.
type Site struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	BusinessID string    `json:"business_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name       string    `json:"name" gorm:"not null" validate:"required"`
	Address    string    `json:"address,omitempty"`
	CityID     *string   `json:"city_id,omitempty" gorm:"index;type:uuid"`
	CountyID   *string   `json:"county_id,omitempty" gorm:"index;type:uuid"`
	StateID    *string   `json:"state_id,omitempty" gorm:"index;type:uuid"`
	ZipcodeID  *string   `json:"zipcode_id,omitempty" gorm:"index;type:uuid"`
	QrisRating *int      `json:"qris_rating,omitempty" validate:"omitempty,min=1,max=5"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Business   *Business `json:"business,omitempty" gorm:"foreignKey:BusinessID;references:ID"`
	City       *City     `json:"city,omitempty" gorm:"foreignKey:CityID;references:ID"`
	County     *County   `json:"county,omitempty" gorm:"foreignKey:CountyID;references:ID"`
	State      *State    `json:"state,omitempty" gorm:"foreignKey:StateID;references:ID"`
	Zipcode    *Zipcode  `json:"zipcode,omitempty" gorm:"foreignKey:ZipcodeID;references:ID"`
}

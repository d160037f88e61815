package models

import "time"

// State is a geographic reference row. States anchor counties, cities,
// agencies and subsidy rules.
type State struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Abbr      string    `json:"abbr" gorm:"uniqueIndex;not null;type:varchar(2)" validate:"required,len=2"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// County belongs to a state; unique by (state, name).
type County struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StateID   string    `json:"state_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	State     *State    `json:"state,omitempty" gorm:"foreignKey:StateID;references:ID"`
}

// City belongs to a state and county; unique by (state, county, name).
type City struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StateID   string    `json:"state_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CountyID  string    `json:"county_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	State     *State    `json:"state,omitempty" gorm:"foreignKey:StateID;references:ID"`
	County    *County   `json:"county,omitempty" gorm:"foreignKey:CountyID;references:ID"`
}

// Zipcode belongs to a city; unique by (city, code).
type Zipcode struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CityID    string    `json:"city_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Code      string    `json:"code" gorm:"not null;type:varchar(10)" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	City      *City     `json:"city,omitempty" gorm:"foreignKey:CityID;references:ID"`
}

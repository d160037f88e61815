package models

import "time"

// Child represents a child in a provider's care. A child always belongs to
// the user who tracks them; date_of_birth must precede any attendance date.
type Child struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID      string       `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FullName    string       `json:"full_name" gorm:"not null" validate:"required"`
	DateOfBirth time.Time    `json:"date_of_birth" gorm:"not null;type:date" validate:"required"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	ChildSites  []*ChildSite `json:"child_sites,omitempty" gorm:"foreignKey:ChildID;references:ID"`
}

// AgeOn returns the child's age in whole years on the given date.
func (c *Child) AgeOn(date time.Time) int {
	years := date.Year() - c.DateOfBirth.Year()
	anniversary := c.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(date) {
		years--
	}
	return years
}

package models

import "time"

type User struct {
	ID                       string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email                    string      `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password                 string      `json:"-" gorm:"not null" validate:"required,min=8"`
	FullName                 string      `json:"full_name" gorm:"not null" validate:"required"`
	GreetingName             string      `json:"greeting_name,omitempty"`
	Organization             string      `json:"organization,omitempty"`
	Language                 string      `json:"language,omitempty" gorm:"default:'english'"`
	PhoneNumber              string      `json:"phone_number,omitempty" gorm:"type:varchar(20)"`
	PhoneType                PhoneType   `json:"phone_type,omitempty" gorm:"type:varchar(10)" validate:"omitempty,oneof=cell home work"`
	Timezone                 string      `json:"timezone,omitempty"`
	OptInEmail               bool        `json:"opt_in_email" gorm:"default:true"`
	OptInText                bool        `json:"opt_in_text" gorm:"default:true"`
	ServiceAgreementAccepted bool        `json:"service_agreement_accepted" gorm:"default:false"`
	IsActive                 bool        `json:"is_active" gorm:"default:true"`
	ConfirmedAt              *time.Time  `json:"confirmed_at,omitempty"`
	CreatedAt                time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Children                 []*Child    `json:"children,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Businesses               []*Business `json:"businesses,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID    string    `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

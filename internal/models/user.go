package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	GivenName string `gorm:"size:100;not null" json:"given_name"`
	Surname   string `gorm:"size:100;not null" json:"surname"`
	City      string `gorm:"size:100" json:"city"`

	// Exactly 11 numeric digits, validated before insert.
	Phone string `gorm:"size:11;not null" json:"phone"`

	PasswordHash       string `gorm:"size:255;not null" json:"-"`
	ProfileDescription string `gorm:"type:text" json:"profile_description"`

	Caregiver *Caregiver `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"caregiver,omitempty"`
	Member    *Member    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

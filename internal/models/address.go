package models

import "time"

type Address struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	MemberUserID uint `gorm:"not null;index" json:"member_user_id"`

	HouseNumber string `gorm:"size:10;not null" json:"house_number"`
	Street      string `gorm:"size:200;not null" json:"street"`
	Town        string `gorm:"size:100;not null" json:"town"`
	IsPrimary   bool   `gorm:"default:false" json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Member shares its identity key with the owning User (1:1 role row).
type Member struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`

	HouseRules           string `gorm:"type:text" json:"house_rules"`
	DependentDescription string `gorm:"type:text" json:"dependent_description"`

	Addresses []Address `gorm:"foreignKey:MemberUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addresses,omitempty"`
	Jobs      []Job     `gorm:"foreignKey:MemberUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"jobs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

const (
	CaregivingBabysitter = "babysitter"
	CaregivingElderly    = "caregiver for elderly"
	CaregivingPlaymate   = "playmate for children"
)

const (
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderOther          = "Other"
	GenderPreferNotToSay = "Prefer not to say"
)

func IsValidCaregivingType(t string) bool {
	switch t {
	case CaregivingBabysitter, CaregivingElderly, CaregivingPlaymate:
		return true
	}
	return false
}

func IsValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// Caregiver shares its identity key with the owning User (1:1 role row).
type Caregiver struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`

	Photo          string  `gorm:"size:255" json:"photo"`
	Gender         string  `gorm:"size:20" json:"gender"`
	CaregivingType string  `gorm:"size:30;not null" json:"caregiving_type"`
	HourlyRate     float64 `gorm:"not null" json:"hourly_rate"`
	Active         bool    `gorm:"default:true" json:"active"`

	// Externally maintained aggregates, write-through only.
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

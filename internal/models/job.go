package models

import "time"

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

const (
	FrequencyAsNeeded = "as needed"
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

func IsValidFrequency(f string) bool {
	switch f {
	case FrequencyAsNeeded, FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

type Job struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	MemberUserID uint `gorm:"not null;index" json:"member_user_id"`

	RequiredCaregivingType string    `gorm:"size:30;not null" json:"required_caregiving_type"`
	OtherRequirements      string    `gorm:"type:text" json:"other_requirements"`
	DatePosted             time.Time `json:"date_posted"`
	Status                 string    `gorm:"size:10;default:'open'" json:"status"`

	DependentAge *int `json:"dependent_age"`

	// "15:04" wall-clock strings; start must precede end when both are set.
	PreferredTimeStart *string `gorm:"size:5" json:"preferred_time_start"`
	PreferredTimeEnd   *string `gorm:"size:5" json:"preferred_time_end"`

	Frequency     string   `gorm:"size:20;default:'as needed'" json:"frequency"`
	DurationHours *float64 `json:"duration_hours"`

	Applications []JobApplication `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"applications,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

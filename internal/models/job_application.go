package models

import "time"

type JobApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// A caregiver may apply to a given job at most once.
	CaregiverUserID uint `gorm:"not null;uniqueIndex:idx_applications_caregiver_job" json:"caregiver_user_id"`
	JobID           uint `gorm:"not null;uniqueIndex:idx_applications_caregiver_job" json:"job_id"`

	DateApplied time.Time `json:"date_applied"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	Status      string    `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

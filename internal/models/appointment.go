package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CaregiverUserID uint `gorm:"not null;index" json:"caregiver_user_id"`
	MemberUserID    uint `gorm:"not null;index" json:"member_user_id"`

	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`

	// 0 < hours <= 24, validated at the write boundary.
	WorkHours float64 `gorm:"not null" json:"work_hours"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Frozen at booking time; filled from rate*hours only when absent.
	TotalCost *float64 `json:"total_cost"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

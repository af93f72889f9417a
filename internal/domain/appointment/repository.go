package appointment

import (
	"context"

	"github.com/careconnect/care-marketplace/internal/models"
)

type Repository interface {
	// -------- Parties --------
	GetCaregiver(
		ctx context.Context,
		userID uint,
	) (*models.Caregiver, error)

	GetMember(
		ctx context.Context,
		userID uint,
	) (*models.Member, error)

	// -------- Appointment (create) --------
	// CreateAppointment persists the row and, inside the same transaction,
	// fills TotalCost from the caregiver's current rate when none was supplied.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForCaregiver(
		ctx context.Context,
		appointmentID uint,
		caregiverUserID uint,
	) (*models.Appointment, error)

	GetAppointmentForMember(
		ctx context.Context,
		appointmentID uint,
		memberUserID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListForCaregiver(
		ctx context.Context,
		caregiverUserID uint,
		status string,
	) ([]models.Appointment, error)

	ListForMember(
		ctx context.Context,
		memberUserID uint,
	) ([]models.Appointment, error)
}

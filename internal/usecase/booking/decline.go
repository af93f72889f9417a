package booking

import (
	"context"

	"github.com/careconnect/care-marketplace/internal/audit"
	domain "github.com/careconnect/care-marketplace/internal/domain/appointment"
	"github.com/careconnect/care-marketplace/internal/models"
)

type DeclineBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeclineBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeclineBooking {
	return &DeclineBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeclineBooking) Execute(
	ctx context.Context,
	caregiverUserID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCaregiver(ctx, appointmentID, caregiverUserID)
	if err != nil {
		return nil, err
	}

	if err := domain.Decline(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caregiverUserID,
		Action:   "appointment_declined",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package booking

import (
	"context"
	"time"

	"github.com/careconnect/care-marketplace/internal/audit"
	domain "github.com/careconnect/care-marketplace/internal/domain/appointment"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
	"github.com/careconnect/care-marketplace/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	CaregiverUserID uint
	MemberUserID    uint

	Date      string // "2006-01-02"
	Time      string // "15:04"
	WorkHours float64
	Notes     string
}

type CreateBookingOutput struct {
	AppointmentID uint    `json:"appointment_id"`
	TotalCost     float64 `json:"total_cost"`
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the guided creation path: it prices the engagement from
// the caregiver's current rate and returns both the new identifier and the
// frozen cost.
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(timezone.DefaultTimezone),
	)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrValidation("invalid_time")
	}

	if err := domain.ValidateWorkHours(in.WorkHours); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CaregiverUserID: in.CaregiverUserID,
		MemberUserID:    in.MemberUserID,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		WorkHours:       in.WorkHours,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	// Existence checks, rate snapshot and the cost fill all happen inside
	// the repository's creation transaction.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.MemberUserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &CreateBookingOutput{
		AppointmentID: ap.ID,
		TotalCost:     *ap.TotalCost,
	}, nil
}

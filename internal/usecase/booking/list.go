package booking

import (
	"context"

	domain "github.com/careconnect/care-marketplace/internal/domain/appointment"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForCaregiver lists a caregiver's engagements, optionally filtered by
// status.
func (uc *ListBookings) ForCaregiver(
	ctx context.Context,
	caregiverUserID uint,
	status string,
) ([]models.Appointment, error) {

	if status != "" && !domain.IsValidStatus(domain.Status(status)) {
		return nil, httperr.ErrValidation("unknown_status")
	}

	if _, err := uc.repo.GetCaregiver(ctx, caregiverUserID); err != nil {
		return nil, err
	}

	return uc.repo.ListForCaregiver(ctx, caregiverUserID, status)
}

func (uc *ListBookings) ForMember(
	ctx context.Context,
	memberUserID uint,
) ([]models.Appointment, error) {

	if _, err := uc.repo.GetMember(ctx, memberUserID); err != nil {
		return nil, err
	}

	return uc.repo.ListForMember(ctx, memberUserID)
}

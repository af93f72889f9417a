package appointment

import (
	"math"

	"github.com/careconnect/care-marketplace/internal/httperr"
)

// Cost is the derive-once booking price: the caregiver's hourly rate at the
// moment of creation times the booked hours, rounded to cents. It is frozen
// on the appointment row and never re-derived after a rate change.
func Cost(hourlyRate, workHours float64) float64 {
	return math.Round(hourlyRate*workHours*100) / 100
}

func ValidateWorkHours(hours float64) error {
	if hours <= 0 || hours > 24 {
		return httperr.ErrValidation("invalid_work_hours")
	}
	return nil
}

func ValidateTotalCost(cost *float64) error {
	if cost != nil && *cost < 0 {
		return httperr.ErrValidation("negative_total_cost")
	}
	return nil
}

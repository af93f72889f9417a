package appointment

import "github.com/careconnect/care-marketplace/internal/models"

// ===============================
// Domain Actions
// ===============================

func Transition(ap *models.Appointment, to Status) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	return nil
}

func Confirm(ap *models.Appointment) error {
	return Transition(ap, StatusConfirmed)
}

func Decline(ap *models.Appointment) error {
	return Transition(ap, StatusDeclined)
}

func Cancel(ap *models.Appointment) error {
	return Transition(ap, StatusCancelled)
}

func Complete(ap *models.Appointment) error {
	return Transition(ap, StatusCompleted)
}

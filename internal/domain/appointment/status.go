package appointment

import "github.com/careconnect/care-marketplace/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Declined, completed and cancelled are terminal.
func IsTerminal(s Status) bool {
	switch s {
	case StatusDeclined, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanTransition enforces the lifecycle:
// pending -> confirmed -> completed, with declined/cancelled
// reachable from pending or confirmed only.
func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrInvalidTransition("unknown_status")
	}

	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusDeclined || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusDeclined || to == StatusCancelled {
			return nil
		}
	}

	return httperr.ErrInvalidTransition("invalid_state")
}

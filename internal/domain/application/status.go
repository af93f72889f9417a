package application

import "github.com/careconnect/care-marketplace/internal/httperr"

// ===============================
// Job Application Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	return s == StatusAccepted || s == StatusRejected
}

// ===============================
// Validations
// ===============================

// CanTransition enforces pending -> reviewed -> {accepted, rejected},
// with the direct pending -> {accepted, rejected} shortcut allowed.
// Accepting one application never auto-rejects competitors; that call
// belongs to the member.
func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrInvalidTransition("unknown_status")
	}

	switch from {
	case StatusPending:
		if to == StatusReviewed || to == StatusAccepted || to == StatusRejected {
			return nil
		}
	case StatusReviewed:
		if to == StatusAccepted || to == StatusRejected {
			return nil
		}
	}

	return httperr.ErrInvalidTransition("invalid_state")
}

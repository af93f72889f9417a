package job

import (
	"time"

	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
)

const timeLayout = "15:04"

func ValidateDependentAge(age *int) error {
	if age != nil && (*age < 0 || *age > 200) {
		return httperr.ErrValidation("invalid_dependent_age")
	}
	return nil
}

// ValidateTimeWindow accepts either end on its own; when both are given the
// start must be strictly before the end.
func ValidateTimeWindow(start, end *string) error {
	var startT, endT time.Time
	var err error

	if start != nil {
		if startT, err = time.Parse(timeLayout, *start); err != nil {
			return httperr.ErrValidation("invalid_time_window")
		}
	}
	if end != nil {
		if endT, err = time.Parse(timeLayout, *end); err != nil {
			return httperr.ErrValidation("invalid_time_window")
		}
	}

	if start != nil && end != nil && !startT.Before(endT) {
		return httperr.ErrValidation("invalid_time_window")
	}

	return nil
}

func ValidateFrequency(frequency string) error {
	if frequency != "" && !models.IsValidFrequency(frequency) {
		return httperr.ErrValidation("invalid_frequency")
	}
	return nil
}

// Close transitions open -> closed; closing an already-closed job is a no-op.
func Close(j *models.Job) {
	j.Status = models.JobStatusClosed
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/httperr"
)

// translate maps driver-level failures onto the business taxonomy. Business
// errors raised inside transactions pass through untouched; everything the
// caller can act on (missing row, unique-key loser, expired lock wait)
// becomes a typed error.
func translate(err error, notFoundCode string) error {
	if err == nil {
		return nil
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrNotFound(notFoundCode)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return httperr.ErrConflict("duplicate_record")
	case errors.Is(err, context.DeadlineExceeded):
		return httperr.ErrTimeout("operation_timed_out")
	}

	return err
}

package httperr

import "errors"

// Kind classifies a rejected operation. Validation, NotFound, Conflict and
// InvalidTransition are non-retriable without an input change; Timeout is retriable.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInvalidTransition
	KindTimeout
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrInvalidTransition(code string) error {
	return BusinessError{Kind: KindInvalidTransition, Code: code}
}

func ErrTimeout(code string) error {
	return BusinessError{Kind: KindTimeout, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

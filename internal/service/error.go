package service

import (
	"errors"

	"github.com/Tyler2517/creditkeeper/internal/constants"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// mapBackendError translates backend sentinels into service error codes while
// keeping the cause chain intact, so handlers can still surface the backend's
// own message verbatim.
func mapBackendError(err error) error {
	switch {
	case errors.Is(err, backend.ErrCustomerNotFound):
		return NewServiceError(constants.ErrCodeCustomerNotFound, err)
	case errors.Is(err, backend.ErrDuplicateEmail):
		return NewServiceError(constants.ErrCodeDuplicateEmail, err)
	case errors.Is(err, backend.ErrValidationFailed):
		return NewServiceError(constants.ErrCodeValidationFailed, err)
	case errors.Is(err, backend.ErrTimeout):
		return NewServiceError(constants.ErrCodeBackendTimeout, err)
	default:
		return NewServiceError(constants.ErrCodeBackendError, err)
	}
}

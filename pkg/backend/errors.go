package backend

import "errors"

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
)

const (
	ErrCodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeDuplicateEmail   = "DUPLICATE_EMAIL"
	ErrCodeTimeout          = "TIMEOUT"
	ErrCodeServerError      = "SERVER_ERROR"
)

var (
	ErrCustomerNotFound = errors.New(ErrCodeCustomerNotFound)
	ErrValidationFailed = errors.New(ErrCodeValidationFailed)
	ErrDuplicateEmail   = errors.New(ErrCodeDuplicateEmail)
	ErrTimeout          = errors.New(ErrCodeTimeout)
	ErrServerError      = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	StatusNotFound:            ErrCustomerNotFound,
	StatusUnprocessableEntity: ErrValidationFailed,
	StatusConflict:            ErrDuplicateEmail,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}

// Error wraps a sentinel with the backend's own message when the response body
// carried one, so callers can match with errors.Is and still surface the
// backend's wording verbatim.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

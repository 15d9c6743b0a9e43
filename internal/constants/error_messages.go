package constants

const (
	ErrCodeCustomerNotFound      = "CUSTOMER_NOT_FOUND"
	ErrCodeDuplicateEmail        = "DUPLICATE_EMAIL"
	ErrCodeValidationFailed      = "VALIDATION_FAILED"
	ErrCodeCreditInvalid         = "CREDIT_INVALID"
	ErrCodeJustificationRequired = "JUSTIFICATION_REQUIRED"
	ErrCodeNotEditing            = "NOT_EDITING"
	ErrCodeNoCustomerLoaded      = "NO_CUSTOMER_LOADED"
	ErrCodeSaveInFlight          = "SAVE_IN_FLIGHT"
	ErrCodeStaleResult           = "STALE_RESULT"
	ErrCodeUnknownField          = "UNKNOWN_FIELD"
	ErrCodeBackendTimeout        = "BACKEND_TIMEOUT"
	ErrCodeBackendError          = "BACKEND_ERROR"
	ErrCodeInternalError         = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody    = "INVALID_REQUEST_BODY"
	ErrCodeInvalidCustomerID     = "INVALID_CUSTOMER_ID"
)

const (
	ErrMsgCustomerNotFound      = "customer not found"
	ErrMsgDuplicateEmail        = "a customer with this email already exists"
	ErrMsgValidationFailed      = "the backend rejected the request"
	ErrMsgCreditInvalid         = "credit must be a non-negative amount with at most two decimals"
	ErrMsgJustificationRequired = "a justification is required for credit changes"
	ErrMsgNotEditing            = "the record is not being edited"
	ErrMsgNoCustomerLoaded      = "no customer is loaded"
	ErrMsgSaveInFlight          = "a save is already in progress"
	ErrMsgStaleResult           = "the request was superseded by navigation"
	ErrMsgUnknownField          = "unknown field"
	ErrMsgBackendTimeout        = "the backend did not respond in time"
	ErrMsgBackendError          = "the backend is unavailable"
	ErrMsgInternalError         = "Internal server error"
	ErrMsgInvalidRequestBody    = "failed to parse request body"
	ErrMsgInvalidCustomerID     = "customer id must be a positive integer"
)

const MessageErrorFormat = "%s is invalid or missing"

var errorMessages = map[string]string{
	ErrCodeCustomerNotFound:      ErrMsgCustomerNotFound,
	ErrCodeDuplicateEmail:        ErrMsgDuplicateEmail,
	ErrCodeValidationFailed:      ErrMsgValidationFailed,
	ErrCodeCreditInvalid:         ErrMsgCreditInvalid,
	ErrCodeJustificationRequired: ErrMsgJustificationRequired,
	ErrCodeNotEditing:            ErrMsgNotEditing,
	ErrCodeNoCustomerLoaded:      ErrMsgNoCustomerLoaded,
	ErrCodeSaveInFlight:          ErrMsgSaveInFlight,
	ErrCodeStaleResult:           ErrMsgStaleResult,
	ErrCodeUnknownField:          ErrMsgUnknownField,
	ErrCodeBackendTimeout:        ErrMsgBackendTimeout,
	ErrCodeBackendError:          ErrMsgBackendError,
	ErrCodeInternalError:         ErrMsgInternalError,
	ErrCodeInvalidRequestBody:    ErrMsgInvalidRequestBody,
	ErrCodeInvalidCustomerID:     ErrMsgInvalidCustomerID,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidCustomerID, ErrCodeUnknownField:
		return 400
	case ErrCodeCustomerNotFound:
		return 404
	case ErrCodeDuplicateEmail, ErrCodeNotEditing, ErrCodeNoCustomerLoaded,
		ErrCodeSaveInFlight, ErrCodeStaleResult:
		return 409
	case ErrCodeValidationFailed, ErrCodeCreditInvalid, ErrCodeJustificationRequired:
		return 422
	case ErrCodeBackendError:
		return 502
	case ErrCodeBackendTimeout:
		return 504
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}

package apperror

import "net/http"

// Error kinds returned to callers alongside the HTTP status. Domain
// invariant violations are detected before any write; infrastructure
// kinds roll the whole operation back.
const (
	KindValidation           = "VALIDATION"
	KindNotFound             = "NOT_FOUND"
	KindForbidden            = "FORBIDDEN"
	KindDuplicateApplication = "DUPLICATE_APPLICATION"
	KindJobApplicationLimit  = "JOB_APPLICATION_LIMIT"
	KindApplicantLimit       = "APPLICANT_LIMIT"
	KindAlreadyEmployed      = "ALREADY_EMPLOYED"
	KindPositionsFilled      = "POSITIONS_FILLED"
	KindInvalidTransition    = "INVALID_TRANSITION"
	KindNotEligible          = "NOT_ELIGIBLE"
	KindMalformedResult      = "MALFORMED_RESULT"
	KindAggregateUpdate      = "AGGREGATE_UPDATE_FAILED"
	KindStorageUnavailable   = "STORAGE_UNAVAILABLE"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindForbidden, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// Conflict reports a domain invariant violation with its taxonomy kind.
func Conflict(kind, message string) *AppError {
	return New(http.StatusConflict, kind, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindStorageUnavailable, "Internal Server Error", err)
}

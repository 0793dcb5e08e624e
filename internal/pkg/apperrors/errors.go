package apperrors

import "errors"

// Common errors
var (
	// Validation errors never leave the client boundary: an incomplete
	// course record blocks submission before any network call is made.
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Time parsing errors. Callers must treat a parse failure as "time not
	// set" rather than letting a bad number reach layout math.
	ErrParseFailure = errors.New("malformed time string")

	// Lookup errors
	ErrLookupMiss       = errors.New("no matching course record")
	ErrResourceNotFound = errors.New("resource not found")

	// External collaborator errors
	ErrNetwork         = errors.New("remote service unreachable")
	ErrRemoteRejection = errors.New("remote service rejected request")
	ErrTimeout         = errors.New("remote call timed out")

	// Permission errors. A denial disables only the dependent feature and
	// is surfaced once; there is no automatic retry.
	ErrPermissionDenied = errors.New("permission denied")
)

// Authentication errors
var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// NewValidationError creates a new custom error for a failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewRemoteRejectionError wraps a structured error payload returned by a
// remote collaborator. The message is shown to the user verbatim.
func NewRemoteRejectionError(message string) error {
	return &CustomError{
		Err:     ErrRemoteRejection,
		Message: message,
	}
}

// NewNetworkError creates a new custom error for an unreachable collaborator
func NewNetworkError(message string) error {
	return &CustomError{
		Err:     ErrNetwork,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

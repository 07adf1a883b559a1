package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound   = errors.New("resource not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Dataset load errors. All of them are fatal at startup: the service never
// runs over a partially loaded table.
var (
	ErrDatasetNotFound  = errors.New("dataset file not found")
	ErrDatasetMalformed = errors.New("dataset is malformed")
	ErrDatasetEmpty     = errors.New("dataset contains no records")
)

// Chart binding errors
var (
	ErrEmptySummary = errors.New("summary has no data points")
)

// NewLoadError creates a dataset load error with a row/column level message
func NewLoadError(message string) error {
	return &CustomError{
		Err:     ErrDatasetMalformed,
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

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

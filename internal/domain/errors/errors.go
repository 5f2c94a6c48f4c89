package errors

import (
	"net/http"

	"bazaar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY",
		"Invalid geospatial query",
		"",
	)

	// Lookup errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// Write-path errors
	ErrProfileTypeMismatch = NewBaseError(
		http.StatusConflict,
		"PROFILE_TYPE_MISMATCH",
		"Profile kind does not match the user's declared type",
		"",
	)

	ErrQueryTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"QUERY_TIMEOUT",
		"Spatial query exceeded its deadline",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ConstraintViolationError reports a uniqueness or foreign-key breach,
// naming the violated constraint. It implements the AppError interface.
type ConstraintViolationError struct {
	constraint string
	err        error
}

// NewConstraintViolation creates a constraint violation error for the named
// constraint, wrapping the underlying database error.
func NewConstraintViolation(constraint string, err error) AppError {
	return &ConstraintViolationError{
		constraint: constraint,
		err:        err,
	}
}

// Error implements the error interface
func (e *ConstraintViolationError) Error() string {
	return "constraint violated: " + e.constraint
}

// Unwrap exposes the underlying database error.
func (e *ConstraintViolationError) Unwrap() error {
	return e.err
}

// Constraint returns the name of the violated constraint.
func (e *ConstraintViolationError) Constraint() string {
	return e.constraint
}

// HTTPCode returns the HTTP status code
func (e *ConstraintViolationError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *ConstraintViolationError) ErrorCode() string {
	return "CONSTRAINT_VIOLATION"
}

// Message returns the user-friendly error message
func (e *ConstraintViolationError) Message() string {
	return "A uniqueness or reference constraint was violated"
}

// Details returns detailed error information
func (e *ConstraintViolationError) Details() string {
	return e.constraint
}

// CompositionError reports that hydrating one relation of an aggregate view
// failed. Aggregates are all-or-nothing, so the whole composition fails with
// the offending relation named.
type CompositionError struct {
	relation string
	err      error
}

// NewCompositionError creates a composition error for the named relation.
func NewCompositionError(relation string, err error) AppError {
	return &CompositionError{
		relation: relation,
		err:      err,
	}
}

// Error implements the error interface
func (e *CompositionError) Error() string {
	return errors.Wrapf(e.err, "failed to compose relation %q", e.relation).Error()
}

// Unwrap exposes the underlying fetch error.
func (e *CompositionError) Unwrap() error {
	return e.err
}

// Relation returns the relation whose hydration failed.
func (e *CompositionError) Relation() string {
	return e.relation
}

// HTTPCode returns the HTTP status code
func (e *CompositionError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *CompositionError) ErrorCode() string {
	return "COMPOSITION_FAILED"
}

// Message returns the user-friendly error message
func (e *CompositionError) Message() string {
	return "Failed to compose the aggregate view"
}

// Details returns detailed error information
func (e *CompositionError) Details() string {
	return e.relation
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

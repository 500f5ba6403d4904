package errors

import (
	"net/http"

	"ecommerce/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
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
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidPagination = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGINATION",
		"Page number and page size must be at least 1",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Image exceeds the maximum allowed size",
		"",
	)

	ErrImageUploadDisabled = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_UPLOAD_DISABLED",
		"Image storage is not configured",
		"",
	)

	ErrCategoryReferenceInvalid = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_REFERENCE_INVALID",
		"The referenced category does not exist",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Username is already taken",
		"",
	)

	// Authentication
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication is required",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Token could not be issued",
		"",
	)

	// Categories
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_EXISTS",
		"A category with this name already exists",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"Category still has products",
		"",
	)

	// Products
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_EXISTS",
		"A product with this name already exists",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		"",
	)

	ErrPageNotFound = NewBaseError(
		http.StatusNotFound,
		"PAGE_NOT_FOUND",
		"No more pages available",
		"",
	)

	// Startup
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"Service is misconfigured",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

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

// Unwrap exposes the driver error.
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ValidationError builds a 400 error for the given field problem.
func ValidationError(details string) *BaseError {
	return ErrValidationFailed.WithDetails(details)
}

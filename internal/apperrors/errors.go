package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller identity is missing or invalid.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDatasource indicates a failure in the storage layer.
var ErrDatasource = errors.New("datasource error")

// AppError is a generic error carrying an HTTP-ish status code and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the status code associated with the error.
func (e *AppError) StatusCode() int {
	return e.Code
}

// AuthError is returned when a use case is invoked without a caller identity.
type AuthError struct {
	Message string
}

// NewAuthError creates an AuthError. An empty message falls back to "Unauthorized".
func NewAuthError(message string) *AuthError {
	if message == "" {
		message = "Unauthorized"
	}
	return &AuthError{Message: message}
}

func (e *AuthError) Error() string        { return e.Message }
func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }
func (e *AuthError) StatusCode() int      { return http.StatusUnauthorized }

// ValidationError is returned when input fails schema validation.
// Fields maps a field path to its message.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	if message == "" {
		message = "Validation failed"
	}
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *ValidationError) StatusCode() int      { return http.StatusBadRequest }

// DomainValidationError is returned when a value object or entity rule is violated.
type DomainValidationError struct {
	Message string
}

// NewDomainValidationError creates a DomainValidationError.
func NewDomainValidationError(message string) *DomainValidationError {
	return &DomainValidationError{Message: message}
}

func (e *DomainValidationError) Error() string        { return e.Message }
func (e *DomainValidationError) Is(target error) bool { return target == ErrValidation }
func (e *DomainValidationError) StatusCode() int      { return http.StatusBadRequest }

// ConflictError is returned when a uniqueness constraint is violated.
type ConflictError struct {
	Message string
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string        { return e.Message }
func (e *ConflictError) Is(target error) bool { return target == ErrDuplicate }
func (e *ConflictError) StatusCode() int      { return http.StatusConflict }

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string        { return e.Message }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }

// DatasourceError wraps a storage-layer failure.
type DatasourceError struct {
	Message string
	Err     error
}

// NewDatasourceError creates a DatasourceError.
func NewDatasourceError(message string, err error) *DatasourceError {
	return &DatasourceError{Message: message, Err: err}
}

func (e *DatasourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}
func (e *DatasourceError) Unwrap() error        { return e.Err }
func (e *DatasourceError) Is(target error) bool { return target == ErrDatasource }
func (e *DatasourceError) StatusCode() int      { return http.StatusInternalServerError }

// StatusCoder is implemented by errors that know their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// StatusCode returns the status code for err, defaulting to 500.
func StatusCode(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// FieldErrors returns the field-level messages of a ValidationError, if any.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserInactive          = errors.New("user is inactive")
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrCompanyNotConfigured  = errors.New("company settings are not configured")
	ErrInvoiceNumberConflict = errors.New("invoice number allocation exhausted retries")
)

// ValidationError reports a rejected input with the field that failed,
// so callers can correct the request. Item fields are addressed as
// "items[2].rate".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

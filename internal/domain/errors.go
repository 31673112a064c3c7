package domain

import "errors"

// ErrNotFound signals a lookup by id that matched nothing
var ErrNotFound = errors.New("not found")

// ValidationError signals a missing or malformed request field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package contracts

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable means the source could not be read or no record survived loading
var ErrDataUnavailable = errors.New("dataset unavailable")

// ValidationError reports an invalid request or config parameter
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected field on a create/update request.
// The mutation that produced it is aborted, leaving prior state untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ErrMalformedBackup is returned when an imported backup cannot be parsed.
// The store is left unchanged.
var ErrMalformedBackup = errors.New("malformed backup document")

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

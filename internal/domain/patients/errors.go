package patients

import (
	"errors"
	"strings"
)

var (
	ErrValidation           = errors.New("required fields missing")
	ErrUnknownField         = errors.New("unknown field")
	ErrNotFound             = errors.New("patient not found")
	ErrConfirmationRequired = errors.New("delete requires confirmation")
)

// ValidationError lista los campos que faltan. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

package domain

import "errors"

var ErrNotFound = errors.New("restaurant not found")

// ErrValidation marks client-input failures; handlers map it to 400.
var ErrValidation = errors.New("validation failed")

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return ErrValidation }

// Validation builds an error that satisfies errors.Is(err, ErrValidation)
// while keeping the descriptive message.
func Validation(msg string) error { return &validationError{msg: msg} }

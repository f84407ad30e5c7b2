package pulse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration reports a pulse length, given or derived, that is
	// not strictly positive and finite.
	ErrInvalidDuration = errors.New("pulse: invalid duration")
	// ErrInvalidBorder reports Gaussian edges that do not fit in the pulse.
	ErrInvalidBorder = errors.New("pulse: invalid border configuration")
	// ErrInvalidWidth reports a missing or unusable Gaussian width parameter.
	ErrInvalidWidth = errors.New("pulse: invalid width parameter")
	// ErrInvalidTimestep reports a sampling timestep that is not strictly
	// positive and finite.
	ErrInvalidTimestep = errors.New("pulse: invalid timestep")
	// ErrInvalidInitialTime reports a non-finite sampling start time.
	ErrInvalidInitialTime = errors.New("pulse: invalid initial time")
)

// ValidationError describes the parameter that made a constructor fail.
type ValidationError struct {
	Shape string
	Field string
	Value float64
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s = %g", e.Err, e.Shape, e.Field, e.Value)
}

// Unwrap returns the sentinel error kind.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(shape, field string, value float64, kind error) error {
	return &ValidationError{Shape: shape, Field: field, Value: value, Err: kind}
}

func validateLength(shape string, length float64) error {
	if !(length > 0) || !isFinite(length) {
		return invalid(shape, "length", length, ErrInvalidDuration)
	}
	return nil
}

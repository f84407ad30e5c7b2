package spectrum

import "errors"

var (
	// ErrEmptyInput is returned when there are no samples to analyze.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidTimestep is returned for a sample spacing that is not a
	// positive finite number.
	ErrInvalidTimestep = errors.New("spectrum: invalid timestep")
	// ErrLengthMismatch is returned when times and samples differ in length.
	ErrLengthMismatch = errors.New("spectrum: times and samples length mismatch")
)

package stats

import "errors"

var (
	// ErrEmptyInput is returned when a sample is nil or has no elements.
	ErrEmptyInput = errors.New("empty input")
	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("samples differ in length")
	// ErrInsufficientData is returned when a sample is too small for the
	// requested estimator, such as a sample deviation of one observation.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrZeroDeviation is returned when a computation would divide by a zero
	// standard deviation.
	ErrZeroDeviation = errors.New("zero standard deviation")
	// ErrOverflow is returned when a result or an intermediate deviation is
	// too large to be represented as a finite float64.
	ErrOverflow = errors.New("result out of float64 range")
)

// Package distribution evaluates probability densities over whole samples,
// splitting the work across a fixed number of goroutines.
//
//	// Density of each observation under the normal fitted to the sample.
//	dens, err := distribution.Normal(values, runtime.NumCPU())
//
//	// Poisson probability of each count for rate lambda.
//	probs, err := distribution.Poisson(counts, 3.5, runtime.NumCPU())
//
// Inputs are shared read-only between workers and every worker writes a
// disjoint range of the output, so no locking is involved. On error the
// returned slice is nil.
package distribution

import "errors"

var (
	// ErrEmptyInput is returned for a nil or zero-length input.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidLambda is returned for a negative, infinite or NaN Poisson rate.
	ErrInvalidLambda = errors.New("invalid poisson rate")
)

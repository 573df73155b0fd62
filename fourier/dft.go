// Package fourier implements the direct Discrete Fourier Transform and its
// inverse over complex128 sequences, with the output index range split
// across a fixed number of goroutines.
//
// The transform is the O(n²) definitional sum, not a fast transform:
//
//	X[k] = Σ_j x[j]·exp(-2πi·k·j/n)          (Forward)
//	x[k] = (1/n)·Σ_j X[j]·exp(+2πi·k·j/n)    (Inverse)
//
// Both functions replace the contents of the caller's slice, and only do so
// once every worker has finished; on error the slice is left untouched.
package fourier

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/sartorproj/amath/parallel"
)

// ErrEmptyInput is returned for a nil or zero-length sequence.
var ErrEmptyInput = errors.New("empty sequence")

type direction int

const (
	forward direction = -1
	inverse direction = 1
)

// Forward replaces data with its Discrete Fourier Transform, computed by
// threads workers (capped at len(data)).
func Forward(data []complex128, threads int) error {
	if err := transform(data, threads, forward); err != nil {
		return fmt.Errorf("forward dft: %w", err)
	}
	return nil
}

// Inverse replaces data with its inverse Discrete Fourier Transform,
// computed by threads workers (capped at len(data)).
func Inverse(data []complex128, threads int) error {
	if err := transform(data, threads, inverse); err != nil {
		return fmt.Errorf("inverse dft: %w", err)
	}
	return nil
}

func transform(data []complex128, threads int, dir direction) error {
	n := len(data)
	if n == 0 {
		return ErrEmptyInput
	}
	if threads <= 0 {
		return fmt.Errorf("%w: %d", parallel.ErrInvalidWorkers, threads)
	}

	twiddles := twiddleTable(n, dir)
	out := make([]complex128, n)

	err := parallel.For(n, threads, func(p parallel.Partition) {
		coefficients(data, twiddles, out, p)
	})
	if err != nil {
		return err
	}

	if dir == inverse {
		scale := complex(1/float64(n), 0)
		for k := range out {
			out[k] *= scale
		}
	}

	copy(data, out)
	return nil
}

// twiddleTable returns w[m] = exp(dir·2πi·m/n) for m in [0, n). Every phase
// k·j/n of the transform reduces to one of these entries modulo n.
func twiddleTable(n int, dir direction) []complex128 {
	w := make([]complex128, n)
	for m := range w {
		angle := float64(dir) * 2 * math.Pi * float64(m) / float64(n)
		w[m] = cmplx.Rect(1, angle)
	}
	return w
}

// coefficients computes out[k] for every k in p from the full input.
func coefficients(in, twiddles, out []complex128, p parallel.Partition) {
	n := len(in)
	for k := p.Start; k < p.End; k++ {
		var sum complex128
		idx := 0
		for j := 0; j < n; j++ {
			sum += in[j] * twiddles[idx]
			idx += k
			if idx >= n {
				idx %= n
			}
		}
		out[k] = sum
	}
}

// Magnitudes returns |X[k]| for every coefficient.
func Magnitudes(data []complex128) []float64 {
	out := make([]float64, len(data))
	for i, c := range data {
		out[i] = cmplx.Abs(c)
	}
	return out
}

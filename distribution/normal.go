package distribution

import (
	"fmt"
	"math"

	"github.com/sartorproj/amath/parallel"
	"github.com/sartorproj/amath/stats"
)

// Normal evaluates, for every element of data, the density of the normal
// distribution fitted to data: mean and population standard deviation are
// computed once and shared read-only by threads workers. The result is a new
// slice of the same length as data. A sample whose deviations exceed the
// float64 range fails with stats.ErrOverflow.
func Normal(data []float64, threads int) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("normal densities: %w", ErrEmptyInput)
	}
	if threads <= 0 {
		return nil, fmt.Errorf("normal densities: %w: %d", parallel.ErrInvalidWorkers, threads)
	}

	mu, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("normal densities: %w", err)
	}
	sigma, err := stats.StdDev(data, true)
	if err != nil {
		return nil, fmt.Errorf("normal densities: %w", err)
	}
	if sigma == 0 {
		return nil, fmt.Errorf("normal densities: %w", stats.ErrZeroDeviation)
	}

	// Standardised form; sigma² overflows once sigma passes 1e154.
	norm := 1 / (sigma * math.Sqrt(2*math.Pi))
	out := make([]float64, len(data))

	err = parallel.For(len(data), threads, func(p parallel.Partition) {
		for i := p.Start; i < p.End; i++ {
			z := (data[i] - mu) / sigma
			out[i] = norm * math.Exp(-z*z/2)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("normal densities: %w", err)
	}

	return out, nil
}

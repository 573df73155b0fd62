package distribution

import (
	"fmt"
	"math"

	"github.com/sartorproj/amath/parallel"
)

// PoissonPMF returns λ^k·e^(-λ)/k!, evaluated in log space as
// exp(k·ln λ − λ − lnΓ(k+1)) so that large k and λ do not overflow.
// Negative counts have probability 0. For λ = 0 all mass sits on k = 0.
func PoissonPMF(k int, lambda float64) float64 {
	switch {
	case k < 0:
		return 0
	case lambda == 0:
		if k == 0 {
			return 1
		}
		return 0
	case k == 0:
		return math.Exp(-lambda)
	}

	kf := float64(k)
	return math.Exp(kf*math.Log(lambda) - lambda - LogGamma(kf+1))
}

// Poisson evaluates the Poisson probability mass at every count in counts
// for rate lambda, split across threads workers. The result is a new slice
// of the same length as counts.
func Poisson(counts []int, lambda float64, threads int) ([]float64, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("poisson densities: %w", ErrEmptyInput)
	}
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("poisson densities: %w: %v", ErrInvalidLambda, lambda)
	}
	if threads <= 0 {
		return nil, fmt.Errorf("poisson densities: %w: %d", parallel.ErrInvalidWorkers, threads)
	}

	out := make([]float64, len(counts))

	err := parallel.For(len(counts), threads, func(p parallel.Partition) {
		for i := p.Start; i < p.End; i++ {
			out[i] = PoissonPMF(counts[i], lambda)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("poisson densities: %w", err)
	}

	return out, nil
}

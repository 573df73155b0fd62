package stats

import (
	"cmp"
	"fmt"
	"math"
)

// KendallResult holds the pair counts behind a Kendall rank correlation.
type KendallResult struct {
	Tau        float64
	Concordant int
	Discordant int
	Ties       int // pairs tied in x, y or both
	Pairs      int // n(n-1)/2
}

// KendallTau computes Kendall's tau-a over every pair (i, j), i < j.
// A pair is concordant when xi-xj and yi-yj have the same sign, discordant
// when the signs differ and counted for neither when either difference is
// zero. Signs come from comparisons, so pairs of tiny values never underflow
// into ties.
// Tau = (concordant - discordant) / (n(n-1)/2); ties are not corrected for.
func KendallTau(x, y []float64) (*KendallResult, error) {
	if err := checkPair(x, y); err != nil {
		return nil, err
	}

	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 pairs, got %d", ErrInsufficientData, n)
	}

	res := &KendallResult{Pairs: n * (n - 1) / 2}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			switch cmp.Compare(x[i], x[j]) * cmp.Compare(y[i], y[j]) {
			case 1:
				res.Concordant++
			case -1:
				res.Discordant++
			default:
				res.Ties++
			}
		}
	}

	res.Tau = float64(res.Concordant-res.Discordant) / float64(res.Pairs)
	return res, nil
}

// Kendall returns Kendall's tau-a rank correlation of x and y.
func Kendall(x, y []float64) (float64, error) {
	res, err := KendallTau(x, y)
	if err != nil {
		return math.NaN(), err
	}
	return res.Tau, nil
}

package stats

import (
	"fmt"
	"math"
)

func checkPair(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptyInput
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	return nil
}

// Covariance returns the covariance of x and y, sum((x-mx)(y-my)) divided by
// n when population is set and by n-1 otherwise. A covariance beyond the
// float64 range is reported as ErrOverflow.
func Covariance(x, y []float64, population bool) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return math.NaN(), err
	}

	n := len(x)
	divisor := n
	if !population {
		divisor--
	}
	if divisor <= 0 {
		return math.NaN(), fmt.Errorf("%w: sample covariance needs at least 2 pairs, got %d", ErrInsufficientData, n)
	}

	mx, _ := Mean(x)
	my, _ := Mean(y)
	sx, err := deviationScale(x, mx)
	if err != nil {
		return math.NaN(), err
	}
	sy, err := deviationScale(y, my)
	if err != nil {
		return math.NaN(), err
	}
	if sx == 0 || sy == 0 {
		return 0, nil
	}

	sum := 0.0
	for i := range x {
		sum += (x[i] - mx) / sx * ((y[i] - my) / sy)
	}

	cov := sx * (sy * (sum / float64(divisor)))
	if math.IsInf(cov, 0) {
		return math.NaN(), ErrOverflow
	}
	return cov, nil
}

// Pearson returns the Pearson product-moment correlation of x and y: the
// population covariance over the product of the population standard
// deviations. Population deviations are used in place of sample ones to
// match the population covariance, which makes Pearson(x, x) exactly 1. The
// result lies in [-1, 1].
func Pearson(x, y []float64) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return math.NaN(), err
	}

	mx, _ := Mean(x)
	my, _ := Mean(y)
	sx, err := deviationScale(x, mx)
	if err != nil {
		return math.NaN(), err
	}
	sy, err := deviationScale(y, my)
	if err != nil {
		return math.NaN(), err
	}
	if sx == 0 || sy == 0 {
		return math.NaN(), ErrZeroDeviation
	}

	// r is invariant under scaling, so deviations are divided by their
	// largest magnitude and the products stay within [-1, 1].
	var sxy, sxx, syy float64
	for i := range x {
		u := (x[i] - mx) / sx
		v := (y[i] - my) / sy
		sxy += u * v
		sxx += u * u
		syy += v * v
	}

	r := sxy / math.Sqrt(sxx*syy)
	// Rounding can push |r| a few ulps past 1 for perfectly linear data.
	return max(-1, min(r, 1)), nil
}

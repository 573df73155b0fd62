package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Mean returns the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return math.NaN(), ErrEmptyInput
	}

	n := float64(len(data))
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	if math.IsInf(sum, 0) {
		// The running sum of finite values can overflow; the mean cannot.
		sum = 0
		for _, v := range data {
			sum += v / n
		}
		return sum, nil
	}
	return sum / n, nil
}

// SortDescending sorts data in place, largest first.
func SortDescending(data []float64) {
	slices.SortFunc(data, func(a, b float64) int {
		return cmp.Compare(b, a)
	})
}

// Median returns the median of data. Unless sorted is true, data is sorted
// in place in descending order first; a caller passing sorted=true promises
// that data is already in descending order.
func Median(data []float64, sorted bool) (float64, error) {
	n := len(data)
	if n == 0 {
		return math.NaN(), ErrEmptyInput
	}

	if !sorted {
		SortDescending(data)
	}

	mid := (n - 1) / 2
	if n%2 == 1 {
		return data[mid], nil
	}
	return (data[mid] + data[mid+1]) / 2, nil
}

// StdDev returns the standard deviation of data. With population set the sum
// of squared deviations is divided by n, otherwise by n-1 (Bessel's correction).
func StdDev(data []float64, population bool) (float64, error) {
	scale, ms, err := meanSquaredDeviation(data, population)
	if err != nil {
		return math.NaN(), err
	}

	sd := scale * math.Sqrt(ms)
	if math.IsInf(sd, 0) {
		return math.NaN(), ErrOverflow
	}
	return sd, nil
}

// meanSquaredDeviation returns the mean squared deviation of data as
// scale² · ms, where scale is the largest absolute deviation from the mean.
// Squaring deviations divided by scale keeps large finite inputs from
// overflowing.
func meanSquaredDeviation(data []float64, population bool) (scale, ms float64, err error) {
	n := len(data)
	if n == 0 {
		return math.NaN(), math.NaN(), ErrEmptyInput
	}

	divisor := n
	if !population {
		divisor--
	}
	if divisor <= 0 {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: sample deviation needs at least 2 values, got %d", ErrInsufficientData, n)
	}

	mean, _ := Mean(data)
	scale, err = deviationScale(data, mean)
	if err != nil || scale == 0 {
		return scale, 0, err
	}

	sumSq := 0.0
	for _, v := range data {
		u := (v - mean) / scale
		sumSq += u * u
	}
	return scale, sumSq / float64(divisor), nil
}

// deviationScale returns max |v - mean| over data.
func deviationScale(data []float64, mean float64) (float64, error) {
	scale := 0.0
	for _, v := range data {
		scale = max(scale, math.Abs(v-mean))
	}
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		return math.NaN(), ErrOverflow
	}
	return scale, nil
}

// Variance returns the population variance of data, defined as the population
// covariance of data with itself.
func Variance(data []float64) (float64, error) {
	return Covariance(data, data, true)
}

// Min returns the smallest value in data.
func Min(data []float64) (float64, error) {
	if len(data) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	m := data[0]
	for _, v := range data[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest value in data.
func Max(data []float64) (float64, error) {
	if len(data) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	m := data[0]
	for _, v := range data[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Range returns Max(data) - Min(data).
func Range(data []float64) (float64, error) {
	lo, err := Min(data)
	if err != nil {
		return math.NaN(), err
	}
	hi, _ := Max(data)
	return hi - lo, nil
}

// Normalize rescales data in place to (x - min) / range, so the minimum maps
// to 0 and the maximum to 1. Data is left untouched when it is empty or every
// element is equal (zero range). It reports whether data was rescaled.
func Normalize(data []float64) bool {
	lo, err := Min(data)
	if err != nil {
		return false
	}
	r, err := Range(data)
	if err != nil || math.IsNaN(lo) || math.IsNaN(r) || r == 0 {
		return false
	}

	for i, v := range data {
		data[i] = (v - lo) / r
	}
	return true
}

// ZScore returns (x - mean) / s for every element of data, where s is the
// sample standard deviation. The result is a new slice.
func ZScore(data []float64) ([]float64, error) {
	std, err := StdDev(data, false)
	if err != nil {
		return nil, err
	}
	if std == 0 {
		return nil, ErrZeroDeviation
	}
	mean, _ := Mean(data)

	z := make([]float64, len(data))
	for i, v := range data {
		z[i] = (v - mean) / std
	}
	return z, nil
}

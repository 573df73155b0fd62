package stats

import (
	"errors"
	"math"
)

// Summary collects the descriptive statistics of a sample.
// SampleStdDev and SampleVariance are NaN for a single observation.
type Summary struct {
	Count          int     `json:"count" yaml:"count"`
	Mean           float64 `json:"mean" yaml:"mean"`
	Median         float64 `json:"median" yaml:"median"`
	Min            float64 `json:"min" yaml:"min"`
	Max            float64 `json:"max" yaml:"max"`
	Range          float64 `json:"range" yaml:"range"`
	StdDev         float64 `json:"stdev" yaml:"stdev"`
	SampleStdDev   float64 `json:"sample_stdev" yaml:"sample_stdev"`
	Variance       float64 `json:"variance" yaml:"variance"`
	SampleVariance float64 `json:"sample_variance" yaml:"sample_variance"`
}

// Summarize computes a Summary of data. The median is taken from a sorted
// copy, so data is not modified.
func Summarize(data []float64) (*Summary, error) {
	mean, err := Mean(data)
	if err != nil {
		return nil, err
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	median, _ := Median(sorted, false)

	// sorted is descending.
	hi, lo := sorted[0], sorted[len(sorted)-1]

	s := &Summary{
		Count:  len(data),
		Mean:   mean,
		Median: median,
		Min:    lo,
		Max:    hi,
		Range:  hi - lo,
	}

	if s.StdDev, err = StdDev(data, true); err != nil {
		return nil, err
	}
	if s.Variance, err = Variance(data); err != nil {
		return nil, err
	}

	s.SampleStdDev, err = StdDev(data, false)
	switch {
	case errors.Is(err, ErrInsufficientData):
		s.SampleStdDev = math.NaN()
		s.SampleVariance = math.NaN()
	case err != nil:
		return nil, err
	default:
		if s.SampleVariance, err = Covariance(data, data, false); err != nil {
			return nil, err
		}
	}

	return s, nil
}

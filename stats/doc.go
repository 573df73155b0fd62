// Package stats provides descriptive and bivariate statistics over samples of
// float64 values.
//
// Every function returns an error alongside its result instead of signalling
// failure through a NaN; the float result is NaN whenever the error is non-nil.
// Callers branch on the sentinel errors with errors.Is:
//
//	m, err := stats.Mean(values)
//	if errors.Is(err, stats.ErrEmptyInput) {
//	    // nothing to average
//	}
//
// # Descriptive Statistics
//
//	stats.Mean(values)
//	stats.Median(values, false)  // sorts values in place, largest first
//	stats.StdDev(values, true)   // population (divide by n)
//	stats.StdDev(values, false)  // sample (divide by n-1)
//	stats.Variance(values)       // population covariance of values with itself
//	stats.Min(values); stats.Max(values); stats.Range(values)
//	stats.Normalize(values)      // in place, no-op on zero range
//	stats.ZScore(values)         // new slice, sample deviation
//
// # Association
//
//	stats.Covariance(x, y, true)
//	stats.Pearson(x, y)
//	stats.Kendall(x, y)          // tau-a, ties counted for neither side
package stats
